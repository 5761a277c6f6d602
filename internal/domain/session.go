package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is one instance of a facilitated workshop exercise.
type Session struct {
	ID              uuid.UUID
	ToolKind        ToolKind
	Title           string
	Description     *string
	CreatorIdentity string
	CreatorName     string
	Phase           Phase
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// Closed reports whether the session has reached its terminal phase. All
// mutating operations on statements, pins, allocations and the final
// statement must be rejected once this is true.
func (s *Session) Closed() bool {
	return s.Phase.Terminal()
}

// IsFacilitator reports whether the given participant may advance phases and
// finalize. The check honors both the stored facilitator flag and a match
// against the session creator's identity: the two can disagree for sessions
// whose creator identity was migrated after an identity scheme change. This
// is the only place the OR lives; call sites must not re-derive it.
func (s *Session) IsFacilitator(p *Participant) bool {
	if p == nil {
		return false
	}
	return p.Facilitator || p.Identity == s.CreatorIdentity
}

// Participant is a joined member of a session. Identity is an opaque external
// value: an auth-subject id for authenticated users, a locally generated id
// for anonymous ones.
type Participant struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	Identity    string
	DisplayName string
	Facilitator bool
	Submitted   bool
	JoinedAt    time.Time
}
