// Package validation contains an error type for rejected input.
package validation

import (
	"errors"
	"fmt"
)

// Error is returned when input is rejected before any network call is made.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Reason
	}

	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Errorf creates new validation error for the field.
func Errorf(field, format string, args ...interface{}) error {
	return &Error{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsError returns true if err is or wraps validation error.
func IsError(err error) bool {
	var v *Error
	return errors.As(err, &v)
}
