package vote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// AllocationResult is a participant's allocation after an update, with the
// points still available under the budget.
type AllocationResult struct {
	Allocations []domain.PointAllocation
	Remaining   int
}

// SubmitAllocation updates the caller's point allocation. The submitted
// pairs are overlaid on whatever is already stored, and the merged whole is
// judged against the budget: a participant cannot sneak past the limit by
// updating one item at a time. On success the stored allocation is replaced
// and the participant is marked as having submitted.
//
// The three budget violations surface as distinct errors so the client can
// say which rule was broken: ErrNegativePoints, ErrPointsPerItem and
// ErrBudgetExceeded, all of them validation errors.
func (s *Service) SubmitAllocation(ctx context.Context, input SubmitAllocationInput) (*AllocationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("vote.SubmitAllocation: %w", err)
	}
	if sess.ToolKind != domain.ToolKindPointVoting {
		return nil, domain.NewValidationError("tool_kind", "session has no voting board")
	}
	if sess.Closed() {
		return nil, domain.ErrSessionClosed
	}

	ids := make([]uuid.UUID, 0, len(input.Pairs))
	for _, p := range input.Pairs {
		ids = append(ids, p.ItemID)
	}
	known, err := s.votes.CountItemsIn(ctx, input.SessionID, ids)
	if err != nil {
		return nil, fmt.Errorf("vote.SubmitAllocation: %w", err)
	}
	if known != len(ids) {
		return nil, domain.ErrVoteItemNotFound
	}

	stored, err := s.votes.GetAllocation(ctx, input.SessionID, input.Identity)
	if err != nil {
		return nil, fmt.Errorf("vote.SubmitAllocation: %w", err)
	}

	merged := domain.MergePointAllocations(stored, input.Pairs)
	if err := domain.ValidatePointAllocations(merged, s.budget); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.votes.ReplaceAllocation(ctx, input.SessionID, input.Identity, merged); err != nil {
			return err
		}
		return s.participants.MarkSubmitted(ctx, input.SessionID, input.Identity)
	})
	if err != nil {
		return nil, fmt.Errorf("vote.SubmitAllocation: %w", err)
	}

	remaining := domain.RemainingPoints(merged, s.budget)
	s.log.InfoContext(ctx, "allocation submitted",
		slog.String("session_id", input.SessionID.String()),
		slog.Int("remaining", remaining),
	)

	return &AllocationResult{Allocations: merged, Remaining: remaining}, nil
}

// GetAllocation returns the caller's stored allocation and remaining points.
func (s *Service) GetAllocation(ctx context.Context, sessionID uuid.UUID, identity string) (*AllocationResult, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("vote.GetAllocation: %w", err)
	}

	stored, err := s.votes.GetAllocation(ctx, sessionID, identity)
	if err != nil {
		return nil, fmt.Errorf("vote.GetAllocation: %w", err)
	}

	allocs := make([]domain.PointAllocation, 0, len(stored))
	for _, a := range stored {
		allocs = append(allocs, domain.PointAllocation{ItemID: a.ItemID, Points: a.Points})
	}

	return &AllocationResult{
		Allocations: allocs,
		Remaining:   domain.RemainingPoints(allocs, s.budget),
	}, nil
}
