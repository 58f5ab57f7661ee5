package enrollment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var _ enrollmentRepo = &enrollmentRepoMock{}

type enrollmentRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error)
	ExistsLiveFunc func(ctx context.Context, userID uuid.UUID, planID uuid.UUID) (bool, error)
	CreateFunc     func(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error)
	EndFunc        func(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, includeEnded bool) ([]domain.Enrollment, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ExistsLive []struct {
			Ctx    context.Context
			UserID uuid.UUID
			PlanID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			E   *domain.Enrollment
		}
		End []struct {
			Ctx context.Context
			Id  uuid.UUID
			At  time.Time
		}
		ListByUser []struct {
			Ctx          context.Context
			UserID       uuid.UUID
			IncludeEnded bool
		}
	}
	lockGetByID    sync.RWMutex
	lockExistsLive sync.RWMutex
	lockCreate     sync.RWMutex
	lockEnd        sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *enrollmentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error) {
	if mock.GetByIDFunc == nil {
		panic("enrollmentRepoMock.GetByIDFunc: method is nil but enrollmentRepo.GetByID was just called")
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

func (mock *enrollmentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) ExistsLive(ctx context.Context, userID uuid.UUID, planID uuid.UUID) (bool, error) {
	if mock.ExistsLiveFunc == nil {
		panic("enrollmentRepoMock.ExistsLiveFunc: method is nil but enrollmentRepo.ExistsLive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		PlanID uuid.UUID
	}{Ctx: ctx, UserID: userID, PlanID: planID}
	mock.lockExistsLive.Lock()
	mock.calls.ExistsLive = append(mock.calls.ExistsLive, callInfo)
	mock.lockExistsLive.Unlock()
	return mock.ExistsLiveFunc(ctx, userID, planID)
}

func (mock *enrollmentRepoMock) ExistsLiveCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	PlanID uuid.UUID
} {
	mock.lockExistsLive.RLock()
	calls := mock.calls.ExistsLive
	mock.lockExistsLive.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	if mock.CreateFunc == nil {
		panic("enrollmentRepoMock.CreateFunc: method is nil but enrollmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Enrollment
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *enrollmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Enrollment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) End(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if mock.EndFunc == nil {
		panic("enrollmentRepoMock.EndFunc: method is nil but enrollmentRepo.End was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		At  time.Time
	}{Ctx: ctx, Id: id, At: at}
	mock.lockEnd.Lock()
	mock.calls.End = append(mock.calls.End, callInfo)
	mock.lockEnd.Unlock()
	return mock.EndFunc(ctx, id, at)
}

func (mock *enrollmentRepoMock) EndCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	At  time.Time
} {
	mock.lockEnd.RLock()
	calls := mock.calls.End
	mock.lockEnd.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, includeEnded bool) ([]domain.Enrollment, error) {
	if mock.ListByUserFunc == nil {
		panic("enrollmentRepoMock.ListByUserFunc: method is nil but enrollmentRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       uuid.UUID
		IncludeEnded bool
	}{Ctx: ctx, UserID: userID, IncludeEnded: includeEnded}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, includeEnded)
}

func (mock *enrollmentRepoMock) ListByUserCalls() []struct {
	Ctx          context.Context
	UserID       uuid.UUID
	IncludeEnded bool
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
