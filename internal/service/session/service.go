// Package session implements the session lifecycle: creation, joining,
// phase advancement, finalization and identity reconciliation.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workshopkit/workshop-backend/internal/domain"
)

// sessionRepo defines the session repository interface needed by session service.
type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	AdvancePhase(ctx context.Context, id uuid.UUID, from, to domain.Phase) (bool, error)
	Complete(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateCreatorIdentity(ctx context.Context, id uuid.UUID, oldIdentity, newIdentity string) error
}

// participantRepo defines the participant repository interface needed by session service.
type participantRepo interface {
	Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	GetByIdentity(ctx context.Context, sessionID uuid.UUID, identity string) (*domain.Participant, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Participant, error)
	UpdateIdentity(ctx context.Context, sessionID uuid.UUID, oldIdentity, newIdentity string) (int64, error)
}

// statementRepo defines the statement repository interface needed by session service.
type statementRepo interface {
	ListWithPins(ctx context.Context, sessionID uuid.UUID) ([]domain.StatementWithPins, error)
	UpdateAuthorIdentity(ctx context.Context, sessionID uuid.UUID, oldIdentity, newIdentity string) error
}

// pinRepo defines the pin repository interface needed by session service.
type pinRepo interface {
	UpdateEndorserIdentity(ctx context.Context, sessionID uuid.UUID, oldIdentity, newIdentity string) error
}

// finalStatementRepo defines the final statement repository interface needed by session service.
type finalStatementRepo interface {
	Upsert(ctx context.Context, fs *domain.FinalStatement) (*domain.FinalStatement, error)
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*domain.FinalStatement, error)
}

// votingRepo defines the voting repository interface needed by session service.
type votingRepo interface {
	ListItems(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error)
	ListAllocations(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteAllocation, error)
	UpdateParticipantIdentity(ctx context.Context, sessionID uuid.UUID, oldIdentity, newIdentity string) error
}

// txManager defines the transaction manager interface needed by session service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements session lifecycle operations.
type Service struct {
	log          *slog.Logger
	sessions     sessionRepo
	participants participantRepo
	statements   statementRepo
	pins         pinRepo
	finals       finalStatementRepo
	votes        votingRepo
	tx           txManager
}

// NewService creates a new session service instance.
func NewService(
	logger *slog.Logger,
	sessions sessionRepo,
	participants participantRepo,
	statements statementRepo,
	pins pinRepo,
	finals finalStatementRepo,
	votes votingRepo,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "session"),
		sessions:     sessions,
		participants: participants,
		statements:   statements,
		pins:         pins,
		finals:       finals,
		votes:        votes,
		tx:           tx,
	}
}
