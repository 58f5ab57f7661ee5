package company

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	SetStatusByCompanyFunc func(ctx context.Context, companyID uuid.UUID, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error)
	SetStatusForIDsFunc    func(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error)

	calls struct {
		SetStatusByCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
			Status    domain.UserStatus
			Actor     string
			At        time.Time
		}
		SetStatusForIDs []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
			Ids       []uuid.UUID
			Status    domain.UserStatus
			Actor     string
			At        time.Time
		}
	}
	lockSetStatusByCompany sync.RWMutex
	lockSetStatusForIDs    sync.RWMutex
}

func (mock *userRepoMock) SetStatusByCompany(ctx context.Context, companyID uuid.UUID, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error) {
	if mock.SetStatusByCompanyFunc == nil {
		panic("userRepoMock.SetStatusByCompanyFunc: method is nil but userRepo.SetStatusByCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		Status    domain.UserStatus
		Actor     string
		At        time.Time
	}{Ctx: ctx, CompanyID: companyID, Status: status, Actor: actor, At: at}
	mock.lockSetStatusByCompany.Lock()
	mock.calls.SetStatusByCompany = append(mock.calls.SetStatusByCompany, callInfo)
	mock.lockSetStatusByCompany.Unlock()
	return mock.SetStatusByCompanyFunc(ctx, companyID, status, actor, at)
}

func (mock *userRepoMock) SetStatusByCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
	Status    domain.UserStatus
	Actor     string
	At        time.Time
} {
	mock.lockSetStatusByCompany.RLock()
	calls := mock.calls.SetStatusByCompany
	mock.lockSetStatusByCompany.RUnlock()
	return calls
}

func (mock *userRepoMock) SetStatusForIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID, status domain.UserStatus, actor string, at time.Time) ([]uuid.UUID, error) {
	if mock.SetStatusForIDsFunc == nil {
		panic("userRepoMock.SetStatusForIDsFunc: method is nil but userRepo.SetStatusForIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		Ids       []uuid.UUID
		Status    domain.UserStatus
		Actor     string
		At        time.Time
	}{Ctx: ctx, CompanyID: companyID, Ids: ids, Status: status, Actor: actor, At: at}
	mock.lockSetStatusForIDs.Lock()
	mock.calls.SetStatusForIDs = append(mock.calls.SetStatusForIDs, callInfo)
	mock.lockSetStatusForIDs.Unlock()
	return mock.SetStatusForIDsFunc(ctx, companyID, ids, status, actor, at)
}

func (mock *userRepoMock) SetStatusForIDsCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
	Ids       []uuid.UUID
	Status    domain.UserStatus
	Actor     string
	At        time.Time
} {
	mock.lockSetStatusForIDs.RLock()
	calls := mock.calls.SetStatusForIDs
	mock.lockSetStatusForIDs.RUnlock()
	return calls
}
