package errs

import "errors"

// ValidationError is a client-caused rejection. Message is shown to the
// caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// AsValidation returns the first ValidationError in err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
