package plan

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-admin/internal/domain"
	"github.com/shopspring/decimal"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	CreateFunc             func(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	UpdateContributionFunc func(ctx context.Context, id uuid.UUID, contribution decimal.Decimal, at time.Time) (*domain.Plan, error)
	FindFunc               func(ctx context.Context, f domain.PlanFilter, page domain.PageRequest) (domain.Page[domain.Plan], error)
	GetTypeFunc            func(ctx context.Context, id uuid.UUID) (*domain.PlanType, error)
	ListTypesFunc          func(ctx context.Context) ([]domain.PlanType, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Plan
		}
		UpdateContribution []struct {
			Ctx          context.Context
			Id           uuid.UUID
			Contribution decimal.Decimal
			At           time.Time
		}
		Find []struct {
			Ctx  context.Context
			F    domain.PlanFilter
			Page domain.PageRequest
		}
		GetType []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListTypes []struct {
			Ctx context.Context
		}
	}
	lockGetByID            sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdateContribution sync.RWMutex
	lockFind               sync.RWMutex
	lockGetType            sync.RWMutex
	lockListTypes          sync.RWMutex
}

func (mock *planRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	if mock.GetByIDFunc == nil {
		panic("planRepoMock.GetByIDFunc: method is nil but planRepo.GetByID was just called")
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

func (mock *planRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *planRepoMock) Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	if mock.CreateFunc == nil {
		panic("planRepoMock.CreateFunc: method is nil but planRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Plan
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *planRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Plan
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *planRepoMock) UpdateContribution(ctx context.Context, id uuid.UUID, contribution decimal.Decimal, at time.Time) (*domain.Plan, error) {
	if mock.UpdateContributionFunc == nil {
		panic("planRepoMock.UpdateContributionFunc: method is nil but planRepo.UpdateContribution was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Id           uuid.UUID
		Contribution decimal.Decimal
		At           time.Time
	}{Ctx: ctx, Id: id, Contribution: contribution, At: at}
	mock.lockUpdateContribution.Lock()
	mock.calls.UpdateContribution = append(mock.calls.UpdateContribution, callInfo)
	mock.lockUpdateContribution.Unlock()
	return mock.UpdateContributionFunc(ctx, id, contribution, at)
}

func (mock *planRepoMock) UpdateContributionCalls() []struct {
	Ctx          context.Context
	Id           uuid.UUID
	Contribution decimal.Decimal
	At           time.Time
} {
	mock.lockUpdateContribution.RLock()
	calls := mock.calls.UpdateContribution
	mock.lockUpdateContribution.RUnlock()
	return calls
}

func (mock *planRepoMock) Find(ctx context.Context, f domain.PlanFilter, page domain.PageRequest) (domain.Page[domain.Plan], error) {
	if mock.FindFunc == nil {
		panic("planRepoMock.FindFunc: method is nil but planRepo.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.PlanFilter
		Page domain.PageRequest
	}{Ctx: ctx, F: f, Page: page}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f, page)
}

func (mock *planRepoMock) FindCalls() []struct {
	Ctx  context.Context
	F    domain.PlanFilter
	Page domain.PageRequest
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *planRepoMock) GetType(ctx context.Context, id uuid.UUID) (*domain.PlanType, error) {
	if mock.GetTypeFunc == nil {
		panic("planRepoMock.GetTypeFunc: method is nil but planRepo.GetType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetType.Lock()
	mock.calls.GetType = append(mock.calls.GetType, callInfo)
	mock.lockGetType.Unlock()
	return mock.GetTypeFunc(ctx, id)
}

func (mock *planRepoMock) GetTypeCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetType.RLock()
	calls := mock.calls.GetType
	mock.lockGetType.RUnlock()
	return calls
}

func (mock *planRepoMock) ListTypes(ctx context.Context) ([]domain.PlanType, error) {
	if mock.ListTypesFunc == nil {
		panic("planRepoMock.ListTypesFunc: method is nil but planRepo.ListTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTypes.Lock()
	mock.calls.ListTypes = append(mock.calls.ListTypes, callInfo)
	mock.lockListTypes.Unlock()
	return mock.ListTypesFunc(ctx)
}

func (mock *planRepoMock) ListTypesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTypes.RLock()
	calls := mock.calls.ListTypes
	mock.lockListTypes.RUnlock()
	return calls
}
