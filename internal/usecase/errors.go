package usecase

import (
	"errors"

	"artliving/pkg/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrLoginRequired      = errors.New("login required")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError carries field-level messages back to the form. Cause is
// set when a check beyond the schema failed (e.g. ErrEmailExists).
type ValidationError struct {
	Fields map[string]string
	Cause  error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func fieldError(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Fields: map[string]string{field: message},
		Cause:  cause,
	}
}

// validateForm runs the whole schema; submission is blocked on any failure.
func validateForm(form any, messages utils.Messages) error {
	if errs := utils.ValidateStruct(form, messages); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
