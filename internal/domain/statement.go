package domain

import (
	"time"

	"github.com/google/uuid"
)

// Statement is a participant's free-text submission. At most one exists per
// (session, author); re-submission replaces the body in place.
type Statement struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	AuthorIdentity string
	AuthorName     string
	Body           string
	SubmittedAt    time.Time
	UpdatedAt      time.Time
}

// Pin is an endorsement a participant places on another's statement. At most
// one exists per (statement, endorser).
type Pin struct {
	StatementID      uuid.UUID
	EndorserIdentity string
	EndorserName     string
	PinnedAt         time.Time
}

// StatementWithPins annotates a statement with its current pin count and the
// identities of its endorsers, so a client can render "pinned by you" without
// a second round-trip.
type StatementWithPins struct {
	Statement
	PinCount  int
	Endorsers []string
}

// PinnedBy reports whether the given identity is among the endorsers.
func (s *StatementWithPins) PinnedBy(identity string) bool {
	for _, e := range s.Endorsers {
		if e == identity {
			return true
		}
	}
	return false
}

// FinalStatement is the facilitator's synthesis that closes a session.
// At most one exists per session.
type FinalStatement struct {
	SessionID      uuid.UUID
	Body           string
	AuthorIdentity string
	AuthorName     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
