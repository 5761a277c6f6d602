package vote

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Session, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

var _ participantRepo = &participantRepoMock{}

type participantRepoMock struct {
	GetByIdentityFunc func(ctx context.Context, sessionID uuid.UUID, identity string) (*domain.Participant, error)
	MarkSubmittedFunc func(ctx context.Context, sessionID uuid.UUID, identity string) error

	calls struct {
		GetByIdentity []struct {
			SessionID uuid.UUID
			Identity  string
		}
		MarkSubmitted []struct {
			SessionID uuid.UUID
			Identity  string
		}
	}
	lockGetByIdentity sync.RWMutex
	lockMarkSubmitted sync.RWMutex
}

func (mock *participantRepoMock) GetByIdentity(ctx context.Context, sessionID uuid.UUID, identity string) (*domain.Participant, error) {
	if mock.GetByIdentityFunc == nil {
		panic("participantRepoMock.GetByIdentityFunc: method is nil but participantRepo.GetByIdentity was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		Identity  string
	}{SessionID: sessionID, Identity: identity}
	mock.lockGetByIdentity.Lock()
	mock.calls.GetByIdentity = append(mock.calls.GetByIdentity, callInfo)
	mock.lockGetByIdentity.Unlock()
	return mock.GetByIdentityFunc(ctx, sessionID, identity)
}

func (mock *participantRepoMock) GetByIdentityCalls() []struct {
	SessionID uuid.UUID
	Identity  string
} {
	mock.lockGetByIdentity.RLock()
	calls := mock.calls.GetByIdentity
	mock.lockGetByIdentity.RUnlock()
	return calls
}

func (mock *participantRepoMock) MarkSubmitted(ctx context.Context, sessionID uuid.UUID, identity string) error {
	if mock.MarkSubmittedFunc == nil {
		panic("participantRepoMock.MarkSubmittedFunc: method is nil but participantRepo.MarkSubmitted was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		Identity  string
	}{SessionID: sessionID, Identity: identity}
	mock.lockMarkSubmitted.Lock()
	mock.calls.MarkSubmitted = append(mock.calls.MarkSubmitted, callInfo)
	mock.lockMarkSubmitted.Unlock()
	return mock.MarkSubmittedFunc(ctx, sessionID, identity)
}

func (mock *participantRepoMock) MarkSubmittedCalls() []struct {
	SessionID uuid.UUID
	Identity  string
} {
	mock.lockMarkSubmitted.RLock()
	calls := mock.calls.MarkSubmitted
	mock.lockMarkSubmitted.RUnlock()
	return calls
}

var _ votingRepo = &votingRepoMock{}

type votingRepoMock struct {
	CreateItemFunc        func(ctx context.Context, item *domain.VoteItem) (*domain.VoteItem, error)
	ListItemsFunc         func(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error)
	CountItemsInFunc      func(ctx context.Context, sessionID uuid.UUID, ids []uuid.UUID) (int, error)
	GetAllocationFunc     func(ctx context.Context, sessionID uuid.UUID, identity string) ([]domain.VoteAllocation, error)
	ReplaceAllocationFunc func(ctx context.Context, sessionID uuid.UUID, identity string, allocs []domain.PointAllocation) error

	calls struct {
		CreateItem []struct {
			Item *domain.VoteItem
		}
		ListItems []struct {
			SessionID uuid.UUID
		}
		CountItemsIn []struct {
			SessionID uuid.UUID
			IDs       []uuid.UUID
		}
		GetAllocation []struct {
			SessionID uuid.UUID
			Identity  string
		}
		ReplaceAllocation []struct {
			SessionID uuid.UUID
			Identity  string
			Allocs    []domain.PointAllocation
		}
	}
	lockCreateItem        sync.RWMutex
	lockListItems         sync.RWMutex
	lockCountItemsIn      sync.RWMutex
	lockGetAllocation     sync.RWMutex
	lockReplaceAllocation sync.RWMutex
}

func (mock *votingRepoMock) CreateItem(ctx context.Context, item *domain.VoteItem) (*domain.VoteItem, error) {
	if mock.CreateItemFunc == nil {
		panic("votingRepoMock.CreateItemFunc: method is nil but votingRepo.CreateItem was just called")
	}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, struct{ Item *domain.VoteItem }{Item: item})
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, item)
}

func (mock *votingRepoMock) CreateItemCalls() []struct{ Item *domain.VoteItem } {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

func (mock *votingRepoMock) ListItems(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error) {
	if mock.ListItemsFunc == nil {
		panic("votingRepoMock.ListItemsFunc: method is nil but votingRepo.ListItems was just called")
	}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, struct{ SessionID uuid.UUID }{SessionID: sessionID})
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, sessionID)
}

func (mock *votingRepoMock) ListItemsCalls() []struct{ SessionID uuid.UUID } {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *votingRepoMock) CountItemsIn(ctx context.Context, sessionID uuid.UUID, ids []uuid.UUID) (int, error) {
	if mock.CountItemsInFunc == nil {
		panic("votingRepoMock.CountItemsInFunc: method is nil but votingRepo.CountItemsIn was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		IDs       []uuid.UUID
	}{SessionID: sessionID, IDs: ids}
	mock.lockCountItemsIn.Lock()
	mock.calls.CountItemsIn = append(mock.calls.CountItemsIn, callInfo)
	mock.lockCountItemsIn.Unlock()
	return mock.CountItemsInFunc(ctx, sessionID, ids)
}

func (mock *votingRepoMock) CountItemsInCalls() []struct {
	SessionID uuid.UUID
	IDs       []uuid.UUID
} {
	mock.lockCountItemsIn.RLock()
	calls := mock.calls.CountItemsIn
	mock.lockCountItemsIn.RUnlock()
	return calls
}

func (mock *votingRepoMock) GetAllocation(ctx context.Context, sessionID uuid.UUID, identity string) ([]domain.VoteAllocation, error) {
	if mock.GetAllocationFunc == nil {
		panic("votingRepoMock.GetAllocationFunc: method is nil but votingRepo.GetAllocation was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		Identity  string
	}{SessionID: sessionID, Identity: identity}
	mock.lockGetAllocation.Lock()
	mock.calls.GetAllocation = append(mock.calls.GetAllocation, callInfo)
	mock.lockGetAllocation.Unlock()
	return mock.GetAllocationFunc(ctx, sessionID, identity)
}

func (mock *votingRepoMock) GetAllocationCalls() []struct {
	SessionID uuid.UUID
	Identity  string
} {
	mock.lockGetAllocation.RLock()
	calls := mock.calls.GetAllocation
	mock.lockGetAllocation.RUnlock()
	return calls
}

func (mock *votingRepoMock) ReplaceAllocation(ctx context.Context, sessionID uuid.UUID, identity string, allocs []domain.PointAllocation) error {
	if mock.ReplaceAllocationFunc == nil {
		panic("votingRepoMock.ReplaceAllocationFunc: method is nil but votingRepo.ReplaceAllocation was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
		Identity  string
		Allocs    []domain.PointAllocation
	}{SessionID: sessionID, Identity: identity, Allocs: allocs}
	mock.lockReplaceAllocation.Lock()
	mock.calls.ReplaceAllocation = append(mock.calls.ReplaceAllocation, callInfo)
	mock.lockReplaceAllocation.Unlock()
	return mock.ReplaceAllocationFunc(ctx, sessionID, identity, allocs)
}

func (mock *votingRepoMock) ReplaceAllocationCalls() []struct {
	SessionID uuid.UUID
	Identity  string
	Allocs    []domain.PointAllocation
} {
	mock.lockReplaceAllocation.RLock()
	calls := mock.calls.ReplaceAllocation
	mock.lockReplaceAllocation.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
