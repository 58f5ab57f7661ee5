package enrollment

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Plan, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
