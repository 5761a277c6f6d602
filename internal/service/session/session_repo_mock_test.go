package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc                func(ctx context.Context, s *domain.Session) error
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	AdvancePhaseFunc          func(ctx context.Context, id uuid.UUID, from, to domain.Phase) (bool, error)
	CompleteFunc              func(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateCreatorIdentityFunc func(ctx context.Context, id uuid.UUID, oldIdentity, newIdentity string) error

	calls struct {
		Create []struct {
			S *domain.Session
		}
		GetByID []struct {
			ID uuid.UUID
		}
		AdvancePhase []struct {
			ID   uuid.UUID
			From domain.Phase
			To   domain.Phase
		}
		Complete []struct {
			ID uuid.UUID
			At time.Time
		}
		UpdateCreatorIdentity []struct {
			ID          uuid.UUID
			OldIdentity string
			NewIdentity string
		}
	}
	lockCreate                sync.RWMutex
	lockGetByID               sync.RWMutex
	lockAdvancePhase          sync.RWMutex
	lockComplete              sync.RWMutex
	lockUpdateCreatorIdentity sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.Session) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ S *domain.Session }{S: s})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct{ S *domain.Session } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) AdvancePhase(ctx context.Context, id uuid.UUID, from, to domain.Phase) (bool, error) {
	if mock.AdvancePhaseFunc == nil {
		panic("sessionRepoMock.AdvancePhaseFunc: method is nil but sessionRepo.AdvancePhase was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		From domain.Phase
		To   domain.Phase
	}{ID: id, From: from, To: to}
	mock.lockAdvancePhase.Lock()
	mock.calls.AdvancePhase = append(mock.calls.AdvancePhase, callInfo)
	mock.lockAdvancePhase.Unlock()
	return mock.AdvancePhaseFunc(ctx, id, from, to)
}

func (mock *sessionRepoMock) AdvancePhaseCalls() []struct {
	ID   uuid.UUID
	From domain.Phase
	To   domain.Phase
} {
	mock.lockAdvancePhase.RLock()
	calls := mock.calls.AdvancePhase
	mock.lockAdvancePhase.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Complete(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.CompleteFunc == nil {
		panic("sessionRepoMock.CompleteFunc: method is nil but sessionRepo.Complete was just called")
	}
	callInfo := struct {
		ID uuid.UUID
		At time.Time
	}{ID: id, At: at}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, id, at)
}

func (mock *sessionRepoMock) CompleteCalls() []struct {
	ID uuid.UUID
	At time.Time
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *sessionRepoMock) UpdateCreatorIdentity(ctx context.Context, id uuid.UUID, oldIdentity, newIdentity string) error {
	if mock.UpdateCreatorIdentityFunc == nil {
		panic("sessionRepoMock.UpdateCreatorIdentityFunc: method is nil but sessionRepo.UpdateCreatorIdentity was just called")
	}
	callInfo := struct {
		ID          uuid.UUID
		OldIdentity string
		NewIdentity string
	}{ID: id, OldIdentity: oldIdentity, NewIdentity: newIdentity}
	mock.lockUpdateCreatorIdentity.Lock()
	mock.calls.UpdateCreatorIdentity = append(mock.calls.UpdateCreatorIdentity, callInfo)
	mock.lockUpdateCreatorIdentity.Unlock()
	return mock.UpdateCreatorIdentityFunc(ctx, id, oldIdentity, newIdentity)
}

func (mock *sessionRepoMock) UpdateCreatorIdentityCalls() []struct {
	ID          uuid.UUID
	OldIdentity string
	NewIdentity string
} {
	mock.lockUpdateCreatorIdentity.RLock()
	calls := mock.calls.UpdateCreatorIdentity
	mock.lockUpdateCreatorIdentity.RUnlock()
	return calls
}
