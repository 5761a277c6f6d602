package statement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// TogglePin flips the caller's endorsement on a statement: absent becomes
// present, present becomes absent. The returned result says which way the
// toggle went. Statements from other sessions are invisible here; a
// statement id that exists but belongs elsewhere reads as not found.
func (s *Service) TogglePin(ctx context.Context, input TogglePinInput) (domain.PinToggleResult, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	sess, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return "", fmt.Errorf("statement.TogglePin: %w", err)
	}
	if sess.Closed() {
		return "", domain.ErrSessionClosed
	}

	st, err := s.statements.GetByID(ctx, input.StatementID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrStatementNotFound
		}
		return "", fmt.Errorf("statement.TogglePin: %w", err)
	}
	if st.SessionID != input.SessionID {
		return "", domain.ErrStatementNotFound
	}

	res, err := s.pins.Toggle(ctx, input.StatementID, input.Identity, input.EndorserName)
	if err != nil {
		return "", fmt.Errorf("statement.TogglePin: %w", err)
	}

	s.log.InfoContext(ctx, "pin toggled",
		slog.String("statement_id", input.StatementID.String()),
		slog.String("result", string(res)),
	)

	return res, nil
}
