package timeentry

import (
	"context"
	"sync"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

var _ taskNameRegistry = &taskNameRegistryMock{}

type taskNameRegistryMock struct {
	FindOrCreateFunc func(ctx context.Context, name string) (*domain.TaskName, error)

	calls struct {
		FindOrCreate []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockFindOrCreate sync.RWMutex
}

func (mock *taskNameRegistryMock) FindOrCreate(ctx context.Context, name string) (*domain.TaskName, error) {
	if mock.FindOrCreateFunc == nil {
		panic("taskNameRegistryMock.FindOrCreateFunc: method is nil but taskNameRegistry.FindOrCreate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockFindOrCreate.Lock()
	mock.calls.FindOrCreate = append(mock.calls.FindOrCreate, callInfo)
	mock.lockFindOrCreate.Unlock()
	return mock.FindOrCreateFunc(ctx, name)
}

func (mock *taskNameRegistryMock) FindOrCreateCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockFindOrCreate.RLock()
	calls = mock.calls.FindOrCreate
	mock.lockFindOrCreate.RUnlock()
	return calls
}
