package booking

import "resort-booking/internal/pkg/errs"

var (
	ErrInvalidDateFormat = errs.NewValidation("Invalid date format")
	ErrCheckInInPast     = errs.NewValidation("Check-in date cannot be in the past")
	ErrInvertedRange     = errs.NewValidation("Check-out must be after check-in")
	ErrInvalidEmail      = errs.NewValidation("Invalid email address")
	ErrInvalidPhone      = errs.NewValidation("Invalid phone number")
	ErrEmailRequired     = errs.NewValidation("email is required")
	ErrMissingContact    = errs.NewValidation("Missing required fields")
)
