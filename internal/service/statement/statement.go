package statement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// Submit stores a participant's statement and marks the participant as
// having submitted. A participant has at most one statement per session;
// submitting again replaces the body in place and keeps the statement's
// identity, so pins collected on the first draft survive a rewrite. Both
// writes run in one transaction.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Statement, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("statement.Submit: %w", err)
	}
	if sess.Closed() {
		return nil, domain.ErrSessionClosed
	}

	now := time.Now().UTC()
	st := &domain.Statement{
		ID:             uuid.New(),
		SessionID:      input.SessionID,
		AuthorIdentity: input.Identity,
		AuthorName:     input.AuthorName,
		Body:           input.Body,
		SubmittedAt:    now,
		UpdatedAt:      now,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		st, txErr = s.statements.Upsert(ctx, st)
		if txErr != nil {
			return txErr
		}
		return s.participants.MarkSubmitted(ctx, input.SessionID, input.Identity)
	})
	if err != nil {
		return nil, fmt.Errorf("statement.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "statement submitted",
		slog.String("session_id", input.SessionID.String()),
		slog.String("statement_id", st.ID.String()),
	)

	return st, nil
}

// List returns the session's statements with pin counts and endorser
// identities, in submission order.
func (s *Service) List(ctx context.Context, sessionID uuid.UUID) ([]domain.StatementWithPins, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("statement.List: %w", err)
	}

	list, err := s.statements.ListWithPins(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("statement.List: %w", err)
	}
	return list, nil
}
