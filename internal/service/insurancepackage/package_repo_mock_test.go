package insurancepackage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var _ packageRepo = &packageRepoMock{}

type packageRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.InsurancePackage, error)
	CreateFunc          func(ctx context.Context, p *domain.InsurancePackage) (*domain.InsurancePackage, error)
	UpdateFunc          func(ctx context.Context, p *domain.InsurancePackage) (*domain.InsurancePackage, error)
	ListStatusBatchFunc func(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.PackageStatusRow, error)
	UpdateStatusFunc    func(ctx context.Context, id uuid.UUID, from domain.PackageStatus, to domain.PackageStatus, at time.Time) (bool, error)
	FindFunc            func(ctx context.Context, f domain.InsurancePackageFilter, page domain.PageRequest) (domain.Page[domain.InsurancePackage], error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   *domain.InsurancePackage
		}
		Update []struct {
			Ctx context.Context
			P   *domain.InsurancePackage
		}
		ListStatusBatch []struct {
			Ctx     context.Context
			AfterID uuid.UUID
			Limit   int
		}
		UpdateStatus []struct {
			Ctx  context.Context
			Id   uuid.UUID
			From domain.PackageStatus
			To   domain.PackageStatus
			At   time.Time
		}
		Find []struct {
			Ctx  context.Context
			F    domain.InsurancePackageFilter
			Page domain.PageRequest
		}
	}
	lockGetByID         sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockListStatusBatch sync.RWMutex
	lockUpdateStatus    sync.RWMutex
	lockFind            sync.RWMutex
}

func (mock *packageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.InsurancePackage, error) {
	if mock.GetByIDFunc == nil {
		panic("packageRepoMock.GetByIDFunc: method is nil but packageRepo.GetByID was just called")
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

func (mock *packageRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *packageRepoMock) Create(ctx context.Context, p *domain.InsurancePackage) (*domain.InsurancePackage, error) {
	if mock.CreateFunc == nil {
		panic("packageRepoMock.CreateFunc: method is nil but packageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.InsurancePackage
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *packageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.InsurancePackage
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *packageRepoMock) Update(ctx context.Context, p *domain.InsurancePackage) (*domain.InsurancePackage, error) {
	if mock.UpdateFunc == nil {
		panic("packageRepoMock.UpdateFunc: method is nil but packageRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.InsurancePackage
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *packageRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.InsurancePackage
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *packageRepoMock) ListStatusBatch(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.PackageStatusRow, error) {
	if mock.ListStatusBatchFunc == nil {
		panic("packageRepoMock.ListStatusBatchFunc: method is nil but packageRepo.ListStatusBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AfterID uuid.UUID
		Limit   int
	}{Ctx: ctx, AfterID: afterID, Limit: limit}
	mock.lockListStatusBatch.Lock()
	mock.calls.ListStatusBatch = append(mock.calls.ListStatusBatch, callInfo)
	mock.lockListStatusBatch.Unlock()
	return mock.ListStatusBatchFunc(ctx, afterID, limit)
}

func (mock *packageRepoMock) ListStatusBatchCalls() []struct {
	Ctx     context.Context
	AfterID uuid.UUID
	Limit   int
} {
	mock.lockListStatusBatch.RLock()
	calls := mock.calls.ListStatusBatch
	mock.lockListStatusBatch.RUnlock()
	return calls
}

func (mock *packageRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, from domain.PackageStatus, to domain.PackageStatus, at time.Time) (bool, error) {
	if mock.UpdateStatusFunc == nil {
		panic("packageRepoMock.UpdateStatusFunc: method is nil but packageRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		From domain.PackageStatus
		To   domain.PackageStatus
		At   time.Time
	}{Ctx: ctx, Id: id, From: from, To: to, At: at}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, from, to, at)
}

func (mock *packageRepoMock) UpdateStatusCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	From domain.PackageStatus
	To   domain.PackageStatus
	At   time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *packageRepoMock) Find(ctx context.Context, f domain.InsurancePackageFilter, page domain.PageRequest) (domain.Page[domain.InsurancePackage], error) {
	if mock.FindFunc == nil {
		panic("packageRepoMock.FindFunc: method is nil but packageRepo.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.InsurancePackageFilter
		Page domain.PageRequest
	}{Ctx: ctx, F: f, Page: page}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f, page)
}

func (mock *packageRepoMock) FindCalls() []struct {
	Ctx  context.Context
	F    domain.InsurancePackageFilter
	Page domain.PageRequest
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}
