package statement

import (
	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

const (
	maxBodyLen     = 4000
	maxNameLen     = 120
	maxIdentityLen = 255
)

// SubmitInput holds parameters for statement submission.
type SubmitInput struct {
	SessionID  uuid.UUID
	Identity   string
	AuthorName string
	Body       string
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.Body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	} else if len(i.Body) > maxBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}
	if i.Identity == "" {
		errs = append(errs, domain.FieldError{Field: "identity", Message: "required"})
	} else if len(i.Identity) > maxIdentityLen {
		errs = append(errs, domain.FieldError{Field: "identity", Message: "too long"})
	}
	if i.AuthorName == "" {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "required"})
	} else if len(i.AuthorName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TogglePinInput holds parameters for a pin toggle.
type TogglePinInput struct {
	SessionID    uuid.UUID
	StatementID  uuid.UUID
	Identity     string
	EndorserName string
}

// Validate validates the toggle pin input.
func (i TogglePinInput) Validate() error {
	var errs []domain.FieldError

	if i.Identity == "" {
		errs = append(errs, domain.FieldError{Field: "identity", Message: "required"})
	}
	if i.EndorserName == "" {
		errs = append(errs, domain.FieldError{Field: "endorser_name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
