package claim

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var _ claimRepo = &claimRepoMock{}

type claimRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	CreateFunc  func(ctx context.Context, c *domain.Claim) (*domain.Claim, error)
	DecideFunc  func(ctx context.Context, id uuid.UUID, d domain.ClaimDecision) (*domain.Claim, error)
	FindFunc    func(ctx context.Context, f domain.ClaimFilter, page domain.PageRequest) (domain.Page[domain.Claim], error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Claim
		}
		Decide []struct {
			Ctx context.Context
			Id  uuid.UUID
			D   domain.ClaimDecision
		}
		Find []struct {
			Ctx  context.Context
			F    domain.ClaimFilter
			Page domain.PageRequest
		}
	}
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockDecide  sync.RWMutex
	lockFind    sync.RWMutex
}

func (mock *claimRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	if mock.GetByIDFunc == nil {
		panic("claimRepoMock.GetByIDFunc: method is nil but claimRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *claimRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *claimRepoMock) Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	if mock.CreateFunc == nil {
		panic("claimRepoMock.CreateFunc: method is nil but claimRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Claim
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *claimRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Claim
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *claimRepoMock) Decide(ctx context.Context, id uuid.UUID, d domain.ClaimDecision) (*domain.Claim, error) {
	if mock.DecideFunc == nil {
		panic("claimRepoMock.DecideFunc: method is nil but claimRepo.Decide was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		D   domain.ClaimDecision
	}{Ctx: ctx, Id: id, D: d}
	mock.lockDecide.Lock()
	mock.calls.Decide = append(mock.calls.Decide, callInfo)
	mock.lockDecide.Unlock()
	return mock.DecideFunc(ctx, id, d)
}

func (mock *claimRepoMock) DecideCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	D   domain.ClaimDecision
} {
	mock.lockDecide.RLock()
	calls := mock.calls.Decide
	mock.lockDecide.RUnlock()
	return calls
}

func (mock *claimRepoMock) Find(ctx context.Context, f domain.ClaimFilter, page domain.PageRequest) (domain.Page[domain.Claim], error) {
	if mock.FindFunc == nil {
		panic("claimRepoMock.FindFunc: method is nil but claimRepo.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.ClaimFilter
		Page domain.PageRequest
	}{Ctx: ctx, F: f, Page: page}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f, page)
}

func (mock *claimRepoMock) FindCalls() []struct {
	Ctx  context.Context
	F    domain.ClaimFilter
	Page domain.PageRequest
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}
