package commands

import (
	"context"
	"log/slog"

	"resort-booking/internal/domain/contact"
)

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/commands/mock_contact.go -package=commands

type ContactInput struct {
	Name    string
	Email   string
	Company string
	Subject string
	Message string
}

type ContactCommands interface {
	SubmitContact(ctx context.Context, in ContactInput) error
}

type contactUseCaseImpl struct {
	logger *slog.Logger
}

func NewContactUseCase(logger *slog.Logger) ContactCommands {
	return &contactUseCaseImpl{logger: logger}
}

// SubmitContact validates and acknowledges the message. Nothing is stored
// and no mail is sent.
func (u *contactUseCaseImpl) SubmitContact(ctx context.Context, in ContactInput) error {
	msg, err := contact.NewMessage(in.Name, in.Email, in.Company, in.Subject, in.Message)
	if err != nil {
		return err
	}

	u.logger.InfoContext(ctx, "contact message received",
		slog.String("email", msg.Email),
		slog.String("subject", msg.Subject))
	return nil
}
