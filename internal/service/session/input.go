package session

import (
	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 2000
	maxNameLen        = 120
	maxIdentityLen    = 255
)

// CreateInput holds parameters for session creation.
type CreateInput struct {
	ToolKind        domain.ToolKind
	Title           string
	Description     *string
	CreatorIdentity string
	CreatorName     string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.ToolKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tool_kind", Message: "must be PROBLEM_FRAMING or POINT_VOTING"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	errs = appendIdentityErrs(errs, i.CreatorIdentity, i.CreatorName)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// JoinInput holds parameters for joining a session.
type JoinInput struct {
	SessionID   uuid.UUID
	Identity    string
	DisplayName string
}

// Validate validates the join input.
func (i JoinInput) Validate() error {
	var errs []domain.FieldError
	errs = appendIdentityErrs(errs, i.Identity, i.DisplayName)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdvancePhaseInput holds parameters for a phase transition.
type AdvancePhaseInput struct {
	SessionID uuid.UUID
	Identity  string
	Target    domain.Phase
}

// Validate validates the advance phase input.
func (i AdvancePhaseInput) Validate() error {
	var errs []domain.FieldError

	if i.Identity == "" {
		errs = append(errs, domain.FieldError{Field: "identity", Message: "required"})
	}
	if !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "unknown phase"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FinalizeInput holds parameters for session finalization.
type FinalizeInput struct {
	SessionID uuid.UUID
	Identity  string
	Name      string
	Body      string
}

// Validate validates the finalize input.
func (i FinalizeInput) Validate() error {
	var errs []domain.FieldError

	if i.Body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	errs = appendIdentityErrs(errs, i.Identity, i.Name)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReconcileIdentityInput holds parameters for identity reconciliation.
type ReconcileIdentityInput struct {
	SessionID             uuid.UUID
	CachedIdentity        string
	AuthoritativeIdentity string
}

// Validate validates the reconcile identity input.
func (i ReconcileIdentityInput) Validate() error {
	var errs []domain.FieldError

	if i.CachedIdentity == "" {
		errs = append(errs, domain.FieldError{Field: "cached_identity", Message: "required"})
	}
	if i.AuthoritativeIdentity == "" {
		errs = append(errs, domain.FieldError{Field: "authoritative_identity", Message: "required"})
	} else if len(i.AuthoritativeIdentity) > maxIdentityLen {
		errs = append(errs, domain.FieldError{Field: "authoritative_identity", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendIdentityErrs(errs []domain.FieldError, identity, name string) []domain.FieldError {
	if identity == "" {
		errs = append(errs, domain.FieldError{Field: "identity", Message: "required"})
	} else if len(identity) > maxIdentityLen {
		errs = append(errs, domain.FieldError{Field: "identity", Message: "too long"})
	}
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}
