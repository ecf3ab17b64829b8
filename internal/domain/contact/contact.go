package contact

import (
	"strings"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/pkg/ptr"
)

type Message struct {
	Name    string
	Email   string
	Company *string
	Subject string
	Body    string
}

// NewMessage requires name, email, subject and message body.
func NewMessage(name, email, company, subject, body string) (*Message, error) {
	m := &Message{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Company: ptr.NonEmpty(company),
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
	}
	if m.Name == "" || m.Email == "" || m.Subject == "" || m.Body == "" {
		return nil, booking.ErrMissingContact
	}
	return m, nil
}
