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
	ErrSessionClosed = errors.New("session closed")
)

// Derived sentinels. Each wraps a base sentinel so callers can match either
// the specific condition or the broad class with errors.Is.
var (
	ErrSessionNotFound      = fmt.Errorf("%w: session", ErrNotFound)
	ErrParticipantNotFound  = fmt.Errorf("%w: participant", ErrNotFound)
	ErrStatementNotFound    = fmt.Errorf("%w: statement", ErrNotFound)
	ErrVoteItemNotFound     = fmt.Errorf("%w: vote item", ErrNotFound)
	ErrDuplicateParticipant = fmt.Errorf("%w: participant identity", ErrAlreadyExists)
	ErrNotFacilitator       = fmt.Errorf("%w: facilitator only", ErrForbidden)
	ErrIllegalTransition    = fmt.Errorf("%w: illegal phase transition", ErrConflict)
	ErrAlreadyFinalized     = fmt.Errorf("%w: finalized by another facilitator", ErrConflict)
)

// Point-budget violations. Three distinct kinds so the caller can tell a
// single absurd allocation apart from a total that is over budget.
var (
	ErrNegativePoints = fmt.Errorf("%w: negative points", ErrValidation)
	ErrPointsPerItem  = fmt.Errorf("%w: per-item allocation exceeds budget", ErrValidation)
	ErrBudgetExceeded = fmt.Errorf("%w: total allocation exceeds budget", ErrValidation)
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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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
