package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFunc           func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams, actor string, at time.Time) (*domain.User, error)
	SetStatusFunc        func(ctx context.Context, id uuid.UUID, status domain.UserStatus, actor string, at time.Time) error
	AddFunctionsFunc     func(ctx context.Context, id uuid.UUID, fns []domain.UserFunction) error
	RemoveFunctionsFunc  func(ctx context.Context, id uuid.UUID, fns []domain.UserFunction) error
	FindFunc             func(ctx context.Context, f domain.UserFilter, page domain.PageRequest) (domain.Page[domain.User], error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		Update []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Params domain.UserUpdateParams
			Actor  string
			At     time.Time
		}
		SetStatus []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Status domain.UserStatus
			Actor  string
			At     time.Time
		}
		AddFunctions []struct {
			Ctx context.Context
			Id  uuid.UUID
			Fns []domain.UserFunction
		}
		RemoveFunctions []struct {
			Ctx context.Context
			Id  uuid.UUID
			Fns []domain.UserFunction
		}
		Find []struct {
			Ctx  context.Context
			F    domain.UserFilter
			Page domain.PageRequest
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockSetStatus        sync.RWMutex
	lockAddFunctions     sync.RWMutex
	lockRemoveFunctions  sync.RWMutex
	lockFind             sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("userRepoMock.GetByIDForUpdateFunc: method is nil but userRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams, actor string, at time.Time) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Params domain.UserUpdateParams
		Actor  string
		At     time.Time
	}{Ctx: ctx, Id: id, Params: params, Actor: actor, At: at}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params, actor, at)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Params domain.UserUpdateParams
	Actor  string
	At     time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus, actor string, at time.Time) error {
	if mock.SetStatusFunc == nil {
		panic("userRepoMock.SetStatusFunc: method is nil but userRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Status domain.UserStatus
		Actor  string
		At     time.Time
	}{Ctx: ctx, Id: id, Status: status, Actor: actor, At: at}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status, actor, at)
}

func (mock *userRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Status domain.UserStatus
	Actor  string
	At     time.Time
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *userRepoMock) AddFunctions(ctx context.Context, id uuid.UUID, fns []domain.UserFunction) error {
	if mock.AddFunctionsFunc == nil {
		panic("userRepoMock.AddFunctionsFunc: method is nil but userRepo.AddFunctions was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Fns []domain.UserFunction
	}{Ctx: ctx, Id: id, Fns: fns}
	mock.lockAddFunctions.Lock()
	mock.calls.AddFunctions = append(mock.calls.AddFunctions, callInfo)
	mock.lockAddFunctions.Unlock()
	return mock.AddFunctionsFunc(ctx, id, fns)
}

func (mock *userRepoMock) AddFunctionsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Fns []domain.UserFunction
} {
	mock.lockAddFunctions.RLock()
	calls := mock.calls.AddFunctions
	mock.lockAddFunctions.RUnlock()
	return calls
}

func (mock *userRepoMock) RemoveFunctions(ctx context.Context, id uuid.UUID, fns []domain.UserFunction) error {
	if mock.RemoveFunctionsFunc == nil {
		panic("userRepoMock.RemoveFunctionsFunc: method is nil but userRepo.RemoveFunctions was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Fns []domain.UserFunction
	}{Ctx: ctx, Id: id, Fns: fns}
	mock.lockRemoveFunctions.Lock()
	mock.calls.RemoveFunctions = append(mock.calls.RemoveFunctions, callInfo)
	mock.lockRemoveFunctions.Unlock()
	return mock.RemoveFunctionsFunc(ctx, id, fns)
}

func (mock *userRepoMock) RemoveFunctionsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Fns []domain.UserFunction
} {
	mock.lockRemoveFunctions.RLock()
	calls := mock.calls.RemoveFunctions
	mock.lockRemoveFunctions.RUnlock()
	return calls
}

func (mock *userRepoMock) Find(ctx context.Context, f domain.UserFilter, page domain.PageRequest) (domain.Page[domain.User], error) {
	if mock.FindFunc == nil {
		panic("userRepoMock.FindFunc: method is nil but userRepo.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.UserFilter
		Page domain.PageRequest
	}{Ctx: ctx, F: f, Page: page}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f, page)
}

func (mock *userRepoMock) FindCalls() []struct {
	Ctx  context.Context
	F    domain.UserFilter
	Page domain.PageRequest
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}
