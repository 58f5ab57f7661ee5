package insurancepackage

import (
	"context"
	"sync"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

var _ revisionLog = &revisionLogMock{}

type revisionLogMock struct {
	AppendFunc func(ctx context.Context, rev domain.Revision) (int64, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Rev domain.Revision
		}
	}
	lockAppend sync.RWMutex
}

func (mock *revisionLogMock) Append(ctx context.Context, rev domain.Revision) (int64, error) {
	if mock.AppendFunc == nil {
		panic("revisionLogMock.AppendFunc: method is nil but revisionLog.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rev domain.Revision
	}{Ctx: ctx, Rev: rev}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rev)
}

func (mock *revisionLogMock) AppendCalls() []struct {
	Ctx context.Context
	Rev domain.Revision
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
