package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// Finalize records the facilitator's closing statement and moves the session
// to its terminal phase. Both writes run in one transaction: a session is
// never left completed without its final statement, or holding a final
// statement while still open.
//
// Repeating the call with the same identity overwrites the statement body,
// so a retried request is safe. A session already finalized by someone else
// is rejected with ErrAlreadyFinalized.
func (s *Service) Finalize(ctx context.Context, input FinalizeInput) (*domain.FinalStatement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("session.Finalize: %w", err)
	}

	if err := s.requireFacilitator(ctx, sess, input.Identity); err != nil {
		return nil, err
	}

	existing, err := s.finals.GetBySession(ctx, input.SessionID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("session.Finalize: %w", err)
	}
	if existing != nil && existing.AuthorIdentity != input.Identity {
		return nil, domain.ErrAlreadyFinalized
	}

	now := time.Now().UTC()
	final := &domain.FinalStatement{
		SessionID:      input.SessionID,
		Body:           input.Body,
		AuthorIdentity: input.Identity,
		AuthorName:     input.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		final, txErr = s.finals.Upsert(ctx, final)
		if txErr != nil {
			return txErr
		}
		return s.sessions.Complete(ctx, input.SessionID, now)
	})
	if err != nil {
		return nil, fmt.Errorf("session.Finalize: %w", err)
	}

	s.log.InfoContext(ctx, "session finalized",
		slog.String("session_id", input.SessionID.String()))

	return final, nil
}
