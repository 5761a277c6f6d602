// Package statement implements statement submission, listing and pin
// endorsement for problem-framing sessions.
package statement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

// sessionRepo defines the session repository interface needed by statement service.
type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

// participantRepo defines the participant repository interface needed by statement service.
type participantRepo interface {
	MarkSubmitted(ctx context.Context, sessionID uuid.UUID, identity string) error
}

// statementRepo defines the statement repository interface needed by statement service.
type statementRepo interface {
	Upsert(ctx context.Context, st *domain.Statement) (*domain.Statement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error)
	ListWithPins(ctx context.Context, sessionID uuid.UUID) ([]domain.StatementWithPins, error)
}

// pinRepo defines the pin repository interface needed by statement service.
type pinRepo interface {
	Toggle(ctx context.Context, statementID uuid.UUID, identity, name string) (domain.PinToggleResult, error)
}

// txManager defines the transaction manager interface needed by statement service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements statement and pin operations.
type Service struct {
	log          *slog.Logger
	sessions     sessionRepo
	participants participantRepo
	statements   statementRepo
	pins         pinRepo
	tx           txManager
}

// NewService creates a new statement service instance.
func NewService(
	logger *slog.Logger,
	sessions sessionRepo,
	participants participantRepo,
	statements statementRepo,
	pins pinRepo,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "statement"),
		sessions:     sessions,
		participants: participants,
		statements:   statements,
		pins:         pins,
		tx:           tx,
	}
}
