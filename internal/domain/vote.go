package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPointBudget is the fixed total a voting participant distributes.
const DefaultPointBudget = 100

// VoteItem is one option on a voting board.
type VoteItem struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Label     string
	Position  int
	CreatedAt time.Time
}

// PointAllocation is a proposed or stored (item, points) pair.
type PointAllocation struct {
	ItemID uuid.UUID
	Points int
}

// VoteAllocation is a stored allocation row for one participant.
type VoteAllocation struct {
	SessionID           uuid.UUID
	ParticipantIdentity string
	ItemID              uuid.UUID
	Points              int
	UpdatedAt           time.Time
}

// ValidatePointAllocations checks a complete allocation against the budget.
// The three violations are reported as distinct errors: ErrNegativePoints for
// any value below zero, ErrPointsPerItem for a single value above the budget,
// ErrBudgetExceeded when the sum is above the budget. Item order is
// irrelevant and an empty list is valid. Zero-point entries are accepted,
// including alongside one entry carrying the whole budget.
func ValidatePointAllocations(allocs []PointAllocation, budget int) error {
	sum := 0
	for _, a := range allocs {
		if a.Points < 0 {
			return ErrNegativePoints
		}
		if a.Points > budget {
			return ErrPointsPerItem
		}
		sum += a.Points
	}
	if sum > budget {
		return ErrBudgetExceeded
	}
	return nil
}

// MergePointAllocations overlays proposed pairs on top of the stored
// allocation and returns the resulting complete allocation. A proposed pair
// replaces the stored value for the same item; untouched items keep their
// stored points. The result is what must be validated: a partial update is
// judged against the whole budget, not in isolation.
func MergePointAllocations(stored []VoteAllocation, proposed []PointAllocation) []PointAllocation {
	merged := make(map[uuid.UUID]int, len(stored)+len(proposed))
	order := make([]uuid.UUID, 0, len(stored)+len(proposed))

	for _, s := range stored {
		if _, seen := merged[s.ItemID]; !seen {
			order = append(order, s.ItemID)
		}
		merged[s.ItemID] = s.Points
	}
	for _, p := range proposed {
		if _, seen := merged[p.ItemID]; !seen {
			order = append(order, p.ItemID)
		}
		merged[p.ItemID] = p.Points
	}

	out := make([]PointAllocation, 0, len(order))
	for _, id := range order {
		out = append(out, PointAllocation{ItemID: id, Points: merged[id]})
	}
	return out
}

// RemainingPoints recomputes budget minus the current sum. Remaining is never
// stored; it is always derived so it cannot drift.
func RemainingPoints(allocs []PointAllocation, budget int) int {
	sum := 0
	for _, a := range allocs {
		sum += a.Points
	}
	return budget - sum
}
