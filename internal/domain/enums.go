package domain

// ToolKind discriminates which workshop workflow a session runs.
type ToolKind string

const (
	// ToolKindProblemFraming is the statement/pin workflow: participants submit
	// free-text problem statements and pin each other's during review.
	ToolKindProblemFraming ToolKind = "PROBLEM_FRAMING"
	// ToolKindPointVoting is the voting-board workflow: participants distribute
	// a fixed point budget across items.
	ToolKindPointVoting ToolKind = "POINT_VOTING"
)

func (k ToolKind) String() string { return string(k) }

func (k ToolKind) IsValid() bool {
	switch k {
	case ToolKindProblemFraming, ToolKindPointVoting:
		return true
	}
	return false
}

// Phase is one ordered stage of a session's lifecycle. The stored phase value
// is the single source of truth; it is never derived from counting rows.
type Phase string

const (
	PhaseSetup     Phase = "SETUP"
	PhaseInput     Phase = "INPUT"
	PhaseReview    Phase = "REVIEW"
	PhaseFinalize  Phase = "FINALIZE"
	PhaseCompleted Phase = "COMPLETED"
)

// phaseRank defines the strict forward order of phases.
var phaseRank = map[Phase]int{
	PhaseSetup:     0,
	PhaseInput:     1,
	PhaseReview:    2,
	PhaseFinalize:  3,
	PhaseCompleted: 4,
}

func (p Phase) String() string { return string(p) }

func (p Phase) IsValid() bool {
	_, ok := phaseRank[p]
	return ok
}

// Rank returns the position of the phase in the forward order, or -1 for an
// unknown phase.
func (p Phase) Rank() int {
	r, ok := phaseRank[p]
	if !ok {
		return -1
	}
	return r
}

// Terminal reports whether the phase is the terminal one. A session in a
// terminal phase is immutable.
func (p Phase) Terminal() bool { return p == PhaseCompleted }

// CanTransition reports whether a plain advance from p to target is legal:
// exactly one step forward, never backward, never a skip. Finalization is the
// only operation allowed to jump straight to COMPLETED and it does not go
// through this check.
func (p Phase) CanTransition(target Phase) bool {
	from, to := p.Rank(), target.Rank()
	if from < 0 || to < 0 {
		return false
	}
	return to == from+1
}

// PinToggleResult is the outcome of a pin toggle.
type PinToggleResult string

const (
	PinAdded   PinToggleResult = "added"
	PinRemoved PinToggleResult = "removed"
)
