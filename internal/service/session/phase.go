package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// AdvancePhase moves the session to the target phase. Only the facilitator
// may call it. Phases advance one step at a time and never backwards; asking
// for the phase the session is already in succeeds without a write, so a
// double-click on the facilitator's screen is harmless. The underlying
// update is a compare-and-swap, so two racing calls resolve to exactly one
// transition.
func (s *Service) AdvancePhase(ctx context.Context, input AdvancePhaseInput) (*domain.Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("session.AdvancePhase: %w", err)
	}

	if err := s.requireFacilitator(ctx, sess, input.Identity); err != nil {
		return nil, err
	}

	if sess.Phase == input.Target {
		return sess, nil
	}
	if !sess.Phase.CanTransition(input.Target) {
		return nil, fmt.Errorf("session.AdvancePhase: %s to %s: %w",
			sess.Phase, input.Target, domain.ErrIllegalTransition)
	}

	swapped, err := s.sessions.AdvancePhase(ctx, input.SessionID, sess.Phase, input.Target)
	if err != nil {
		return nil, fmt.Errorf("session.AdvancePhase: %w", err)
	}
	if !swapped {
		// Lost a race. If the winner moved the session to our target the
		// request is satisfied; anything else is a real conflict.
		sess, err = s.sessions.GetByID(ctx, input.SessionID)
		if err != nil {
			return nil, fmt.Errorf("session.AdvancePhase: %w", err)
		}
		if sess.Phase != input.Target {
			return nil, fmt.Errorf("session.AdvancePhase: phase moved to %s: %w",
				sess.Phase, domain.ErrConflict)
		}
		return sess, nil
	}

	sess.Phase = input.Target
	s.log.InfoContext(ctx, "phase advanced",
		slog.String("session_id", input.SessionID.String()),
		slog.String("phase", input.Target.String()),
	)

	return sess, nil
}

// requireFacilitator loads the caller's participant row and checks it against
// the session's facilitator rule. A caller who never joined gets the same
// ErrNotFacilitator as a joined non-facilitator.
func (s *Service) requireFacilitator(ctx context.Context, sess *domain.Session, identity string) error {
	p, err := s.participants.GetByIdentity(ctx, sess.ID, identity)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("session.requireFacilitator: %w", err)
	}
	if !sess.IsFacilitator(p) {
		return domain.ErrNotFacilitator
	}
	return nil
}
