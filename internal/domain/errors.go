package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	// ErrConflict reports a request that contradicts existing state or its own
	// preconditions (duplicate live enrollment, SELECTED without ids, unknown plan type).
	ErrConflict = errors.New("conflict")
	// ErrInvalidStateTransition reports an operation not permitted in the
	// entity's current status.
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewStateError wraps ErrInvalidStateTransition with the entity and its status.
func NewStateError(entity string, status fmt.Stringer, op string) error {
	return fmt.Errorf("%s is %s, cannot %s: %w", entity, status, op, ErrInvalidStateTransition)
}
