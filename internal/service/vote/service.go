// Package vote implements the voting board: item management and point
// allocation under a fixed per-participant budget.
package vote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// sessionRepo defines the session repository interface needed by vote service.
type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

// participantRepo defines the participant repository interface needed by vote service.
type participantRepo interface {
	GetByIdentity(ctx context.Context, sessionID uuid.UUID, identity string) (*domain.Participant, error)
	MarkSubmitted(ctx context.Context, sessionID uuid.UUID, identity string) error
}

// votingRepo defines the voting repository interface needed by vote service.
type votingRepo interface {
	CreateItem(ctx context.Context, item *domain.VoteItem) (*domain.VoteItem, error)
	ListItems(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error)
	CountItemsIn(ctx context.Context, sessionID uuid.UUID, ids []uuid.UUID) (int, error)
	GetAllocation(ctx context.Context, sessionID uuid.UUID, identity string) ([]domain.VoteAllocation, error)
	ReplaceAllocation(ctx context.Context, sessionID uuid.UUID, identity string, allocs []domain.PointAllocation) error
}

// txManager defines the transaction manager interface needed by vote service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements voting board operations.
type Service struct {
	log          *slog.Logger
	sessions     sessionRepo
	participants participantRepo
	votes        votingRepo
	tx           txManager
	budget       int
}

// NewService creates a new vote service instance. budget is the total number
// of points each participant may distribute; values below 1 fall back to
// domain.DefaultPointBudget.
func NewService(
	logger *slog.Logger,
	sessions sessionRepo,
	participants participantRepo,
	votes votingRepo,
	tx txManager,
	budget int,
) *Service {
	if budget < 1 {
		budget = domain.DefaultPointBudget
	}
	return &Service{
		log:          logger.With("service", "vote"),
		sessions:     sessions,
		participants: participants,
		votes:        votes,
		tx:           tx,
		budget:       budget,
	}
}

// Budget returns the per-participant point budget.
func (s *Service) Budget() int { return s.budget }
