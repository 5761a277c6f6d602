package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// Snapshot is the full read model of one session: everything a client needs
// to render the workshop screen in a single response.
type Snapshot struct {
	Session        *domain.Session
	Participants   []domain.Participant
	Statements     []domain.StatementWithPins
	FinalStatement *domain.FinalStatement
	VoteItems      []domain.VoteItem
	Allocations    []domain.VoteAllocation
}

// GetSnapshot assembles the session snapshot. The final statement is only
// exposed once the session has reached its terminal phase; until then readers
// must treat the session as not finalized even if a statement row already
// exists. Voting data is only loaded for voting sessions.
func (s *Service) GetSnapshot(ctx context.Context, sessionID uuid.UUID) (*Snapshot, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session.GetSnapshot: %w", err)
	}

	snap := &Snapshot{Session: sess}

	snap.Participants, err = s.participants.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session.GetSnapshot: %w", err)
	}

	snap.Statements, err = s.statements.ListWithPins(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session.GetSnapshot: %w", err)
	}

	if sess.Closed() {
		final, err := s.finals.GetBySession(ctx, sessionID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("session.GetSnapshot: %w", err)
		}
		snap.FinalStatement = final
	}

	if sess.ToolKind == domain.ToolKindPointVoting {
		snap.VoteItems, err = s.votes.ListItems(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("session.GetSnapshot: %w", err)
		}
		snap.Allocations, err = s.votes.ListAllocations(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("session.GetSnapshot: %w", err)
		}
	}

	return snap, nil
}
