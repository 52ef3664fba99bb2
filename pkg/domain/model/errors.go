package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// ErrValidation marks structural or field-level validation failures.
// Callers discriminate with errors.Is.
var ErrValidation = errors.New("validation failed")

// NewValidationError creates a validation error with a message
func NewValidationError(msg string) error {
	return goerr.Wrap(ErrValidation, msg)
}
