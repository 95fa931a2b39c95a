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
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidTransition means the requested status edge does not exist
	// from the entity's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingField means a companion field required by the requested
	// transition was not provided.
	ErrMissingField = errors.New("missing required field")
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

// TransitionError describes why a status transition was rejected.
// It unwraps to one of the sentinel errors so callers can errors.Is it.
type TransitionError struct {
	From    string
	To      string
	Reason  error  // one of ErrInvalidTransition, ErrForbidden, ErrMissingField
	Details string // optional human-readable context (e.g. missing field name)
}

func (e *TransitionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("transition %s -> %s: %v: %s", e.From, e.To, e.Reason, e.Details)
	}
	return fmt.Sprintf("transition %s -> %s: %v", e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error { return e.Reason }

// NewTransitionError creates a TransitionError.
func NewTransitionError(from, to string, reason error, details string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason, Details: details}
}

// PublishBlockedError carries the full list of issues preventing a publish.
type PublishBlockedError struct {
	Issues []string
}

func (e *PublishBlockedError) Error() string {
	return fmt.Sprintf("publish blocked: %d unresolved issues", len(e.Issues))
}

func (e *PublishBlockedError) Unwrap() error { return ErrValidation }
