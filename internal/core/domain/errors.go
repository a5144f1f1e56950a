package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation indicates a wizard step is missing its required selection.
	// It is recoverable: the wizard state is left untouched.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration indicates the price table does not cover a combination
	// the domain enums allow. This is a data/enum mismatch, not a user error.
	ErrConfiguration = errors.New("pricing configuration error")

	// ErrNotInResult indicates an operation needs a submitted quote.
	ErrNotInResult = errors.New("quote not submitted")
)

// ValidationError reports which selection was missing when advancing.
type ValidationError struct {
	Step  Step
	Field string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s is required", int(e.Step), e.Field)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
