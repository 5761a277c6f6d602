package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// ReconcileIdentity rewrites every row the cached identity owns in a session
// to the authoritative one. Clients cache their identity locally; when the
// auth provider hands out a different subject for the same person, the cached
// value goes stale and the participant would lose their statement, pins and
// votes. The rewrite covers participants, statements, pins, allocations and
// the session's creator identity, all in one transaction.
//
// The operation is idempotent: when the cached identity no longer owns any
// rows but the authoritative one already does, the reconciliation has already
// happened and the call succeeds without writes.
func (s *Service) ReconcileIdentity(ctx context.Context, input ReconcileIdentityInput) (*domain.Participant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.CachedIdentity == input.AuthoritativeIdentity {
		return s.participants.GetByIdentity(ctx, input.SessionID, input.AuthoritativeIdentity)
	}

	if _, err := s.sessions.GetByID(ctx, input.SessionID); err != nil {
		return nil, fmt.Errorf("session.ReconcileIdentity: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		moved, err := s.participants.UpdateIdentity(ctx, input.SessionID,
			input.CachedIdentity, input.AuthoritativeIdentity)
		if err != nil {
			return err
		}
		if moved == 0 {
			// Nothing owned by the cached identity. Fine if a previous call
			// already moved it, an error otherwise.
			if _, err := s.participants.GetByIdentity(ctx, input.SessionID, input.AuthoritativeIdentity); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.ErrParticipantNotFound
				}
				return err
			}
			return nil
		}

		if err := s.statements.UpdateAuthorIdentity(ctx, input.SessionID,
			input.CachedIdentity, input.AuthoritativeIdentity); err != nil {
			return err
		}
		if err := s.pins.UpdateEndorserIdentity(ctx, input.SessionID,
			input.CachedIdentity, input.AuthoritativeIdentity); err != nil {
			return err
		}
		if err := s.votes.UpdateParticipantIdentity(ctx, input.SessionID,
			input.CachedIdentity, input.AuthoritativeIdentity); err != nil {
			return err
		}
		return s.sessions.UpdateCreatorIdentity(ctx, input.SessionID,
			input.CachedIdentity, input.AuthoritativeIdentity)
	})
	if err != nil {
		return nil, fmt.Errorf("session.ReconcileIdentity: %w", err)
	}

	s.log.InfoContext(ctx, "identity reconciled",
		slog.String("session_id", input.SessionID.String()))

	return s.participants.GetByIdentity(ctx, input.SessionID, input.AuthoritativeIdentity)
}
