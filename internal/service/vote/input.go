package vote

import (
	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

const maxLabelLen = 255

// AddItemInput holds parameters for adding a voting board item.
type AddItemInput struct {
	SessionID uuid.UUID
	Identity  string
	Label     string
	Position  int
}

// Validate validates the add item input.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.Identity == "" {
		errs = append(errs, domain.FieldError{Field: "identity", Message: "required"})
	}
	if i.Label == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	} else if len(i.Label) > maxLabelLen {
		errs = append(errs, domain.FieldError{Field: "label", Message: "too long"})
	}
	if i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitAllocationInput holds parameters for an allocation update. Pairs may
// cover any subset of the board; items not mentioned keep their stored
// points.
type SubmitAllocationInput struct {
	SessionID uuid.UUID
	Identity  string
	Pairs     []domain.PointAllocation
}

// Validate validates the submit allocation input.
func (i SubmitAllocationInput) Validate() error {
	var errs []domain.FieldError

	if i.Identity == "" {
		errs = append(errs, domain.FieldError{Field: "identity", Message: "required"})
	}
	if len(i.Pairs) == 0 {
		errs = append(errs, domain.FieldError{Field: "pairs", Message: "required"})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.Pairs))
	for _, p := range i.Pairs {
		if _, dup := seen[p.ItemID]; dup {
			errs = append(errs, domain.FieldError{Field: "pairs", Message: "duplicate item"})
			break
		}
		seen[p.ItemID] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
