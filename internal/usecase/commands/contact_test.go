//go:build unit

package commands_test

import (
	"context"
	"testing"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/usecase/commands"
	"resort-booking/tests/common/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSubmitContact(t *testing.T) {
	uc := commands.NewContactUseCase(testutil.DiscardLogger())
	valid := commands.ContactInput{Name: "Ada", Email: "ada@example.com", Subject: "Wedding", Message: "Do you host events?"}

	tests := []struct {
		name   string
		mutate func(in *commands.ContactInput)
		err    error
	}{
		{name: "complete message", mutate: func(*commands.ContactInput) {}},
		{name: "company is optional", mutate: func(in *commands.ContactInput) { in.Company = "" }},
		{name: "missing name", mutate: func(in *commands.ContactInput) { in.Name = " " }, err: booking.ErrMissingContact},
		{name: "missing email", mutate: func(in *commands.ContactInput) { in.Email = "" }, err: booking.ErrMissingContact},
		{name: "missing subject", mutate: func(in *commands.ContactInput) { in.Subject = "" }, err: booking.ErrMissingContact},
		{name: "missing message", mutate: func(in *commands.ContactInput) { in.Message = "" }, err: booking.ErrMissingContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := uc.SubmitContact(context.Background(), in)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
