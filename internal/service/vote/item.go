package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// AddItem puts a new option on the voting board. Only the facilitator may
// shape the board, and only while the session has not reached the review
// phase; once participants are weighing options the board is frozen.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.VoteItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("vote.AddItem: %w", err)
	}
	if sess.ToolKind != domain.ToolKindPointVoting {
		return nil, domain.NewValidationError("tool_kind", "session has no voting board")
	}
	if sess.Closed() {
		return nil, domain.ErrSessionClosed
	}
	if sess.Phase.Rank() >= domain.PhaseReview.Rank() {
		return nil, fmt.Errorf("vote.AddItem: board frozen in %s: %w",
			sess.Phase, domain.ErrIllegalTransition)
	}

	p, err := s.participants.GetByIdentity(ctx, input.SessionID, input.Identity)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("vote.AddItem: %w", err)
	}
	if !sess.IsFacilitator(p) {
		return nil, domain.ErrNotFacilitator
	}

	item, err := s.votes.CreateItem(ctx, &domain.VoteItem{
		ID:        uuid.New(),
		SessionID: input.SessionID,
		Label:     input.Label,
		Position:  input.Position,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("vote.AddItem: %w", err)
	}

	s.log.InfoContext(ctx, "vote item added",
		slog.String("session_id", input.SessionID.String()),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}

// ListItems returns the voting board in display order.
func (s *Service) ListItems(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("vote.ListItems: %w", err)
	}

	items, err := s.votes.ListItems(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("vote.ListItems: %w", err)
	}
	return items, nil
}
