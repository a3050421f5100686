package rttl

import (
	"fmt"
	"net/mail"
)

// MissingFieldError is returned when a required key is absent from an API
// payload. Optional keys never produce this error, they take defaults.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field {%s} in API data", e.Field)
}

// ValidationError is returned when a field value is present but malformed,
// e.g. a bad email address or SIS course id.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func validateEmail(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("{%s} is not a valid email address", value),
		}
	}
	return nil
}
