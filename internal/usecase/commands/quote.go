package commands

import (
	"context"
	"log/slog"

	"resort-booking/internal/domain/booking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=quote.go -destination=../../../tests/mock/commands/mock_quote.go -package=commands

type QuoteRepository interface {
	Create(ctx context.Context, q *booking.QuoteRequest) (uuid.UUID, error)
}

type QuoteCommands interface {
	SubmitQuote(ctx context.Context, sub booking.QuoteSubmission) (uuid.UUID, error)
}

type quoteUseCaseImpl struct {
	quoteRepo  QuoteRepository
	sideWriter *SideWriter
	factory    *booking.Factory
	logger     *slog.Logger
}

func NewQuoteUseCase(
	quoteRepo QuoteRepository,
	sideWriter *SideWriter,
	factory *booking.Factory,
	logger *slog.Logger,
) QuoteCommands {
	return &quoteUseCaseImpl{
		quoteRepo:  quoteRepo,
		sideWriter: sideWriter,
		factory:    factory,
		logger:     logger,
	}
}

func (u *quoteUseCaseImpl) SubmitQuote(ctx context.Context, sub booking.QuoteSubmission) (uuid.UUID, error) {
	q, err := u.factory.CreateQuote(sub)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := u.quoteRepo.Create(ctx, q)
	if err != nil {
		return uuid.Nil, err
	}

	u.logger.Info("quote created",
		slog.String("quote_id", id.String()),
		slog.String("inquiry_type", q.InquiryType()))

	legacy, err := booking.LegacyFromQuote(q)
	if err != nil {
		u.logger.Warn("failed to build legacy quote request", slog.String("error", err.Error()))
		return id, nil
	}
	u.sideWriter.Write(ctx, legacy)

	return id, nil
}
