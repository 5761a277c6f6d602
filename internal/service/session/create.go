package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// Create opens a new session and registers the creator as its first
// participant. Both writes run in one transaction, so a failed registration
// leaves no orphaned session behind.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		ID:              uuid.New(),
		ToolKind:        input.ToolKind,
		Title:           input.Title,
		Description:     input.Description,
		CreatorIdentity: input.CreatorIdentity,
		CreatorName:     input.CreatorName,
		Phase:           domain.PhaseSetup,
		CreatedAt:       now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.sessions.Create(ctx, sess); err != nil {
			return err
		}
		_, err := s.participants.Create(ctx, &domain.Participant{
			ID:          uuid.New(),
			SessionID:   sess.ID,
			Identity:    input.CreatorIdentity,
			DisplayName: input.CreatorName,
			JoinedAt:    now,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("session.Create: %w", err)
	}

	s.log.InfoContext(ctx, "session created",
		slog.String("session_id", sess.ID.String()),
		slog.String("tool_kind", sess.ToolKind.String()),
	)

	return sess, nil
}

// Join registers a participant in an open session. Joining twice with the
// same identity is rejected with ErrDuplicateParticipant and leaves the
// original registration untouched.
func (s *Service) Join(ctx context.Context, input JoinInput) (*domain.Participant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("session.Join: %w", err)
	}
	if sess.Closed() {
		return nil, domain.ErrSessionClosed
	}

	p, err := s.participants.Create(ctx, &domain.Participant{
		ID:          uuid.New(),
		SessionID:   input.SessionID,
		Identity:    input.Identity,
		DisplayName: input.DisplayName,
		JoinedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("session.Join: %w", domain.ErrDuplicateParticipant)
		}
		return nil, fmt.Errorf("session.Join: %w", err)
	}

	s.log.InfoContext(ctx, "participant joined",
		slog.String("session_id", input.SessionID.String()),
		slog.Bool("facilitator", p.Facilitator),
	)

	return p, nil
}
