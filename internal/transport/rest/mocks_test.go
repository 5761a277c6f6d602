package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/workshopkit/workshop-backend/internal/domain"
	"github.com/workshopkit/workshop-backend/internal/service/session"
	"github.com/workshopkit/workshop-backend/internal/service/statement"
	"github.com/workshopkit/workshop-backend/internal/service/vote"
)

var _ sessionService = &sessionServiceMock{}

type sessionServiceMock struct {
	CreateFunc            func(ctx context.Context, input session.CreateInput) (*domain.Session, error)
	JoinFunc              func(ctx context.Context, input session.JoinInput) (*domain.Participant, error)
	AdvancePhaseFunc      func(ctx context.Context, input session.AdvancePhaseInput) (*domain.Session, error)
	FinalizeFunc          func(ctx context.Context, input session.FinalizeInput) (*domain.FinalStatement, error)
	ReconcileIdentityFunc func(ctx context.Context, input session.ReconcileIdentityInput) (*domain.Participant, error)
	GetSnapshotFunc       func(ctx context.Context, sessionID uuid.UUID) (*session.Snapshot, error)

	calls struct {
		Create []struct {
			Input session.CreateInput
		}
		Join []struct {
			Input session.JoinInput
		}
		AdvancePhase []struct {
			Input session.AdvancePhaseInput
		}
		Finalize []struct {
			Input session.FinalizeInput
		}
		ReconcileIdentity []struct {
			Input session.ReconcileIdentityInput
		}
		GetSnapshot []struct {
			SessionID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockJoin              sync.RWMutex
	lockAdvancePhase      sync.RWMutex
	lockFinalize          sync.RWMutex
	lockReconcileIdentity sync.RWMutex
	lockGetSnapshot       sync.RWMutex
}

func (mock *sessionServiceMock) Create(ctx context.Context, input session.CreateInput) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionServiceMock.CreateFunc: method is nil but sessionService.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Input session.CreateInput }{Input: input})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *sessionServiceMock) CreateCalls() []struct{ Input session.CreateInput } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionServiceMock) Join(ctx context.Context, input session.JoinInput) (*domain.Participant, error) {
	if mock.JoinFunc == nil {
		panic("sessionServiceMock.JoinFunc: method is nil but sessionService.Join was just called")
	}
	mock.lockJoin.Lock()
	mock.calls.Join = append(mock.calls.Join, struct{ Input session.JoinInput }{Input: input})
	mock.lockJoin.Unlock()
	return mock.JoinFunc(ctx, input)
}

func (mock *sessionServiceMock) JoinCalls() []struct{ Input session.JoinInput } {
	mock.lockJoin.RLock()
	calls := mock.calls.Join
	mock.lockJoin.RUnlock()
	return calls
}

func (mock *sessionServiceMock) AdvancePhase(ctx context.Context, input session.AdvancePhaseInput) (*domain.Session, error) {
	if mock.AdvancePhaseFunc == nil {
		panic("sessionServiceMock.AdvancePhaseFunc: method is nil but sessionService.AdvancePhase was just called")
	}
	mock.lockAdvancePhase.Lock()
	mock.calls.AdvancePhase = append(mock.calls.AdvancePhase, struct{ Input session.AdvancePhaseInput }{Input: input})
	mock.lockAdvancePhase.Unlock()
	return mock.AdvancePhaseFunc(ctx, input)
}

func (mock *sessionServiceMock) AdvancePhaseCalls() []struct{ Input session.AdvancePhaseInput } {
	mock.lockAdvancePhase.RLock()
	calls := mock.calls.AdvancePhase
	mock.lockAdvancePhase.RUnlock()
	return calls
}

func (mock *sessionServiceMock) Finalize(ctx context.Context, input session.FinalizeInput) (*domain.FinalStatement, error) {
	if mock.FinalizeFunc == nil {
		panic("sessionServiceMock.FinalizeFunc: method is nil but sessionService.Finalize was just called")
	}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, struct{ Input session.FinalizeInput }{Input: input})
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, input)
}

func (mock *sessionServiceMock) FinalizeCalls() []struct{ Input session.FinalizeInput } {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}

func (mock *sessionServiceMock) ReconcileIdentity(ctx context.Context, input session.ReconcileIdentityInput) (*domain.Participant, error) {
	if mock.ReconcileIdentityFunc == nil {
		panic("sessionServiceMock.ReconcileIdentityFunc: method is nil but sessionService.ReconcileIdentity was just called")
	}
	mock.lockReconcileIdentity.Lock()
	mock.calls.ReconcileIdentity = append(mock.calls.ReconcileIdentity, struct{ Input session.ReconcileIdentityInput }{Input: input})
	mock.lockReconcileIdentity.Unlock()
	return mock.ReconcileIdentityFunc(ctx, input)
}

func (mock *sessionServiceMock) ReconcileIdentityCalls() []struct{ Input session.ReconcileIdentityInput } {
	mock.lockReconcileIdentity.RLock()
	calls := mock.calls.ReconcileIdentity
	mock.lockReconcileIdentity.RUnlock()
	return calls
}

func (mock *sessionServiceMock) GetSnapshot(ctx context.Context, sessionID uuid.UUID) (*session.Snapshot, error) {
	if mock.GetSnapshotFunc == nil {
		panic("sessionServiceMock.GetSnapshotFunc: method is nil but sessionService.GetSnapshot was just called")
	}
	mock.lockGetSnapshot.Lock()
	mock.calls.GetSnapshot = append(mock.calls.GetSnapshot, struct{ SessionID uuid.UUID }{SessionID: sessionID})
	mock.lockGetSnapshot.Unlock()
	return mock.GetSnapshotFunc(ctx, sessionID)
}

func (mock *sessionServiceMock) GetSnapshotCalls() []struct{ SessionID uuid.UUID } {
	mock.lockGetSnapshot.RLock()
	calls := mock.calls.GetSnapshot
	mock.lockGetSnapshot.RUnlock()
	return calls
}

var _ statementService = &statementServiceMock{}

type statementServiceMock struct {
	SubmitFunc    func(ctx context.Context, input statement.SubmitInput) (*domain.Statement, error)
	ListFunc      func(ctx context.Context, sessionID uuid.UUID) ([]domain.StatementWithPins, error)
	TogglePinFunc func(ctx context.Context, input statement.TogglePinInput) (domain.PinToggleResult, error)

	calls struct {
		Submit []struct {
			Input statement.SubmitInput
		}
		List []struct {
			SessionID uuid.UUID
		}
		TogglePin []struct {
			Input statement.TogglePinInput
		}
	}
	lockSubmit    sync.RWMutex
	lockList      sync.RWMutex
	lockTogglePin sync.RWMutex
}

func (mock *statementServiceMock) Submit(ctx context.Context, input statement.SubmitInput) (*domain.Statement, error) {
	if mock.SubmitFunc == nil {
		panic("statementServiceMock.SubmitFunc: method is nil but statementService.Submit was just called")
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, struct{ Input statement.SubmitInput }{Input: input})
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *statementServiceMock) SubmitCalls() []struct{ Input statement.SubmitInput } {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *statementServiceMock) List(ctx context.Context, sessionID uuid.UUID) ([]domain.StatementWithPins, error) {
	if mock.ListFunc == nil {
		panic("statementServiceMock.ListFunc: method is nil but statementService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ SessionID uuid.UUID }{SessionID: sessionID})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, sessionID)
}

func (mock *statementServiceMock) ListCalls() []struct{ SessionID uuid.UUID } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *statementServiceMock) TogglePin(ctx context.Context, input statement.TogglePinInput) (domain.PinToggleResult, error) {
	if mock.TogglePinFunc == nil {
		panic("statementServiceMock.TogglePinFunc: method is nil but statementService.TogglePin was just called")
	}
	mock.lockTogglePin.Lock()
	mock.calls.TogglePin = append(mock.calls.TogglePin, struct{ Input statement.TogglePinInput }{Input: input})
	mock.lockTogglePin.Unlock()
	return mock.TogglePinFunc(ctx, input)
}

func (mock *statementServiceMock) TogglePinCalls() []struct{ Input statement.TogglePinInput } {
	mock.lockTogglePin.RLock()
	calls := mock.calls.TogglePin
	mock.lockTogglePin.RUnlock()
	return calls
}

var _ voteService = &voteServiceMock{}

type voteServiceMock struct {
	AddItemFunc          func(ctx context.Context, input vote.AddItemInput) (*domain.VoteItem, error)
	ListItemsFunc        func(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error)
	SubmitAllocationFunc func(ctx context.Context, input vote.SubmitAllocationInput) (*vote.AllocationResult, error)
	GetAllocationFunc    func(ctx context.Context, sessionID uuid.UUID, identity string) (*vote.AllocationResult, error)

	calls struct {
		AddItem []struct {
			Input vote.AddItemInput
		}
		ListItems []struct {
			SessionID uuid.UUID
		}
		SubmitAllocation []struct {
			Input vote.SubmitAllocationInput
		}
		GetAllocation []struct {
			SessionID uuid.UUID
			Identity  string
		}
	}
	lockAddItem          sync.RWMutex
	lockListItems        sync.RWMutex
	lockSubmitAllocation sync.RWMutex
	lockGetAllocation    sync.RWMutex
}

func (mock *voteServiceMock) AddItem(ctx context.Context, input vote.AddItemInput) (*domain.VoteItem, error) {
	if mock.AddItemFunc == nil {
		panic("voteServiceMock.AddItemFunc: method is nil but voteService.AddItem was just called")
	}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, struct{ Input vote.AddItemInput }{Input: input})
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, input)
}

func (mock *voteServiceMock) AddItemCalls() []struct{ Input vote.AddItemInput } {
	mock.lockAddItem.RLock()
	calls := mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *voteServiceMock) ListItems(ctx context.Context, sessionID uuid.UUID) ([]domain.VoteItem, error) {
	if mock.ListItemsFunc == nil {
		panic("voteServiceMock.ListItemsFunc: method is nil but voteService.ListItems was just called")
	}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, struct{ SessionID uuid.UUID }{SessionID: sessionID})
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, sessionID)
}

func (mock *voteServiceMock) ListItemsCalls() []struct{ SessionID uuid.UUID } {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *voteServiceMock) SubmitAllocation(ctx context.Context, input vote.SubmitAllocationInput) (*vote.AllocationResult, error) {
	if mock.SubmitAllocationFunc == nil {
		panic("voteServiceMock.SubmitAllocationFunc: method is nil but voteService.SubmitAllocation was just called")
	}
	mock.lockSubmitAllocation.Lock()
	mock.calls.SubmitAllocation = append(mock.calls.SubmitAllocation, struct{ Input vote.SubmitAllocationInput }{Input: input})
	mock.lockSubmitAllocation.Unlock()
	return mock.SubmitAllocationFunc(ctx, input)
}

func (mock *voteServiceMock) SubmitAllocationCalls() []struct{ Input vote.SubmitAllocationInput } {
	mock.lockSubmitAllocation.RLock()
	calls := mock.calls.SubmitAllocation
	mock.lockSubmitAllocation.RUnlock()
	return calls
}

func (mock *voteServiceMock) GetAllocation(ctx context.Context, sessionID uuid.UUID, identity string) (*vote.AllocationResult, error) {
	if mock.GetAllocationFunc == nil {
		panic("voteServiceMock.GetAllocationFunc: method is nil but voteService.GetAllocation was just called")
	}
	mock.lockGetAllocation.Lock()
	mock.calls.GetAllocation = append(mock.calls.GetAllocation, struct {
		SessionID uuid.UUID
		Identity  string
	}{SessionID: sessionID, Identity: identity})
	mock.lockGetAllocation.Unlock()
	return mock.GetAllocationFunc(ctx, sessionID, identity)
}

func (mock *voteServiceMock) GetAllocationCalls() []struct {
	SessionID uuid.UUID
	Identity  string
} {
	mock.lockGetAllocation.RLock()
	calls := mock.calls.GetAllocation
	mock.lockGetAllocation.RUnlock()
	return calls
}
