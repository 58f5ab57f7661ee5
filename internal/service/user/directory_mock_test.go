package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var _ directory = &directoryMock{}

type directoryMock struct {
	CreateAccountFunc  func(ctx context.Context, u *domain.User) error
	UpdateAccountFunc  func(ctx context.Context, u *domain.User) error
	SendInvitationFunc func(ctx context.Context, u *domain.User) error

	calls struct {
		CreateAccount []struct {
			Ctx context.Context
			U   *domain.User
		}
		UpdateAccount []struct {
			Ctx context.Context
			U   *domain.User
		}
		SendInvitation []struct {
			Ctx context.Context
			U   *domain.User
		}
	}
	lockCreateAccount  sync.RWMutex
	lockUpdateAccount  sync.RWMutex
	lockSendInvitation sync.RWMutex
}

func (mock *directoryMock) CreateAccount(ctx context.Context, u *domain.User) error {
	if mock.CreateAccountFunc == nil {
		panic("directoryMock.CreateAccountFunc: method is nil but directory.CreateAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreateAccount.Lock()
	mock.calls.CreateAccount = append(mock.calls.CreateAccount, callInfo)
	mock.lockCreateAccount.Unlock()
	return mock.CreateAccountFunc(ctx, u)
}

func (mock *directoryMock) CreateAccountCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreateAccount.RLock()
	calls := mock.calls.CreateAccount
	mock.lockCreateAccount.RUnlock()
	return calls
}

func (mock *directoryMock) UpdateAccount(ctx context.Context, u *domain.User) error {
	if mock.UpdateAccountFunc == nil {
		panic("directoryMock.UpdateAccountFunc: method is nil but directory.UpdateAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockUpdateAccount.Lock()
	mock.calls.UpdateAccount = append(mock.calls.UpdateAccount, callInfo)
	mock.lockUpdateAccount.Unlock()
	return mock.UpdateAccountFunc(ctx, u)
}

func (mock *directoryMock) UpdateAccountCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockUpdateAccount.RLock()
	calls := mock.calls.UpdateAccount
	mock.lockUpdateAccount.RUnlock()
	return calls
}

func (mock *directoryMock) SendInvitation(ctx context.Context, u *domain.User) error {
	if mock.SendInvitationFunc == nil {
		panic("directoryMock.SendInvitationFunc: method is nil but directory.SendInvitation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockSendInvitation.Lock()
	mock.calls.SendInvitation = append(mock.calls.SendInvitation, callInfo)
	mock.lockSendInvitation.Unlock()
	return mock.SendInvitationFunc(ctx, u)
}

func (mock *directoryMock) SendInvitationCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockSendInvitation.RLock()
	calls := mock.calls.SendInvitation
	mock.lockSendInvitation.RUnlock()
	return calls
}
