package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
	"github.com/heartmarshall/timetracker-backend/internal/service/timeentry"
)

var _ timeEntryService = &timeEntryServiceMock{}

type timeEntryServiceMock struct {
	CreateTimeEntryFunc     func(ctx context.Context, input timeentry.CreateInput) (*domain.TimeEntry, error)
	DeleteTimeEntryFunc     func(ctx context.Context, id int64) (*domain.TimeEntry, error)
	GetActiveTimersFunc     func(ctx context.Context) ([]domain.TimeEntry, error)
	GetAllTimeEntriesFunc   func(ctx context.Context) ([]domain.TimeEntry, error)
	GetEntriesByProjectFunc func(ctx context.Context, projectID int64) ([]domain.TimeEntry, error)
	GetReportDataFunc       func(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error)
	GetTimeEntryFunc        func(ctx context.Context, id int64) (*domain.TimeEntry, error)
	GetTodayEntriesFunc     func(ctx context.Context) ([]domain.TimeEntry, error)
	GetTodayStatsFunc       func(ctx context.Context) (domain.TodayStats, error)
	LocationFunc            func() *time.Location
	StartTimerFunc          func(ctx context.Context, description string, projectID *int64) (*domain.TimeEntry, error)
	StopTimerFunc           func(ctx context.Context, id int64) (*domain.TimeEntry, error)
	UpdateTimeEntryFunc     func(ctx context.Context, id int64, input timeentry.UpdateInput) (*domain.TimeEntry, error)

	calls struct {
		CreateTimeEntry []struct {
			Ctx   context.Context
			Input timeentry.CreateInput
		}
		DeleteTimeEntry []struct {
			Ctx context.Context
			ID  int64
		}
		GetActiveTimers []struct {
			Ctx context.Context
		}
		GetAllTimeEntries []struct {
			Ctx context.Context
		}
		GetEntriesByProject []struct {
			Ctx       context.Context
			ProjectID int64
		}
		GetReportData []struct {
			Ctx    context.Context
			Filter domain.ReportFilter
		}
		GetTimeEntry []struct {
			Ctx context.Context
			ID  int64
		}
		GetTodayEntries []struct {
			Ctx context.Context
		}
		GetTodayStats []struct {
			Ctx context.Context
		}
		Location []struct{}
		StartTimer []struct {
			Ctx         context.Context
			Description string
			ProjectID   *int64
		}
		StopTimer []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateTimeEntry []struct {
			Ctx   context.Context
			ID    int64
			Input timeentry.UpdateInput
		}
	}
	lockCreateTimeEntry     sync.RWMutex
	lockDeleteTimeEntry     sync.RWMutex
	lockGetActiveTimers     sync.RWMutex
	lockGetEntriesByProject sync.RWMutex
	lockGetAllTimeEntries   sync.RWMutex
	lockGetReportData       sync.RWMutex
	lockGetTimeEntry        sync.RWMutex
	lockGetTodayEntries     sync.RWMutex
	lockGetTodayStats       sync.RWMutex
	lockLocation            sync.RWMutex
	lockStartTimer          sync.RWMutex
	lockStopTimer           sync.RWMutex
	lockUpdateTimeEntry     sync.RWMutex
}

func (mock *timeEntryServiceMock) CreateTimeEntry(ctx context.Context, input timeentry.CreateInput) (*domain.TimeEntry, error) {
	if mock.CreateTimeEntryFunc == nil {
		panic("timeEntryServiceMock.CreateTimeEntryFunc: method is nil but timeEntryService.CreateTimeEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeentry.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTimeEntry.Lock()
	mock.calls.CreateTimeEntry = append(mock.calls.CreateTimeEntry, callInfo)
	mock.lockCreateTimeEntry.Unlock()
	return mock.CreateTimeEntryFunc(ctx, input)
}

func (mock *timeEntryServiceMock) CreateTimeEntryCalls() []struct {
	Ctx   context.Context
	Input timeentry.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input timeentry.CreateInput
	}
	mock.lockCreateTimeEntry.RLock()
	calls = mock.calls.CreateTimeEntry
	mock.lockCreateTimeEntry.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) DeleteTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if mock.DeleteTimeEntryFunc == nil {
		panic("timeEntryServiceMock.DeleteTimeEntryFunc: method is nil but timeEntryService.DeleteTimeEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteTimeEntry.Lock()
	mock.calls.DeleteTimeEntry = append(mock.calls.DeleteTimeEntry, callInfo)
	mock.lockDeleteTimeEntry.Unlock()
	return mock.DeleteTimeEntryFunc(ctx, id)
}

func (mock *timeEntryServiceMock) DeleteTimeEntryCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDeleteTimeEntry.RLock()
	calls = mock.calls.DeleteTimeEntry
	mock.lockDeleteTimeEntry.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) GetActiveTimers(ctx context.Context) ([]domain.TimeEntry, error) {
	if mock.GetActiveTimersFunc == nil {
		panic("timeEntryServiceMock.GetActiveTimersFunc: method is nil but timeEntryService.GetActiveTimers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetActiveTimers.Lock()
	mock.calls.GetActiveTimers = append(mock.calls.GetActiveTimers, callInfo)
	mock.lockGetActiveTimers.Unlock()
	return mock.GetActiveTimersFunc(ctx)
}

func (mock *timeEntryServiceMock) GetActiveTimersCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetActiveTimers.RLock()
	calls = mock.calls.GetActiveTimers
	mock.lockGetActiveTimers.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) GetAllTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	if mock.GetAllTimeEntriesFunc == nil {
		panic("timeEntryServiceMock.GetAllTimeEntriesFunc: method is nil but timeEntryService.GetAllTimeEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetAllTimeEntries.Lock()
	mock.calls.GetAllTimeEntries = append(mock.calls.GetAllTimeEntries, callInfo)
	mock.lockGetAllTimeEntries.Unlock()
	return mock.GetAllTimeEntriesFunc(ctx)
}

func (mock *timeEntryServiceMock) GetAllTimeEntriesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetAllTimeEntries.RLock()
	calls = mock.calls.GetAllTimeEntries
	mock.lockGetAllTimeEntries.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) GetReportData(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error) {
	if mock.GetReportDataFunc == nil {
		panic("timeEntryServiceMock.GetReportDataFunc: method is nil but timeEntryService.GetReportData was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockGetReportData.Lock()
	mock.calls.GetReportData = append(mock.calls.GetReportData, callInfo)
	mock.lockGetReportData.Unlock()
	return mock.GetReportDataFunc(ctx, filter)
}

func (mock *timeEntryServiceMock) GetReportDataCalls() []struct {
	Ctx    context.Context
	Filter domain.ReportFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}
	mock.lockGetReportData.RLock()
	calls = mock.calls.GetReportData
	mock.lockGetReportData.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if mock.GetTimeEntryFunc == nil {
		panic("timeEntryServiceMock.GetTimeEntryFunc: method is nil but timeEntryService.GetTimeEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetTimeEntry.Lock()
	mock.calls.GetTimeEntry = append(mock.calls.GetTimeEntry, callInfo)
	mock.lockGetTimeEntry.Unlock()
	return mock.GetTimeEntryFunc(ctx, id)
}

func (mock *timeEntryServiceMock) GetTimeEntryCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetTimeEntry.RLock()
	calls = mock.calls.GetTimeEntry
	mock.lockGetTimeEntry.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) GetTodayEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	if mock.GetTodayEntriesFunc == nil {
		panic("timeEntryServiceMock.GetTodayEntriesFunc: method is nil but timeEntryService.GetTodayEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetTodayEntries.Lock()
	mock.calls.GetTodayEntries = append(mock.calls.GetTodayEntries, callInfo)
	mock.lockGetTodayEntries.Unlock()
	return mock.GetTodayEntriesFunc(ctx)
}

func (mock *timeEntryServiceMock) GetTodayEntriesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetTodayEntries.RLock()
	calls = mock.calls.GetTodayEntries
	mock.lockGetTodayEntries.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) GetTodayStats(ctx context.Context) (domain.TodayStats, error) {
	if mock.GetTodayStatsFunc == nil {
		panic("timeEntryServiceMock.GetTodayStatsFunc: method is nil but timeEntryService.GetTodayStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetTodayStats.Lock()
	mock.calls.GetTodayStats = append(mock.calls.GetTodayStats, callInfo)
	mock.lockGetTodayStats.Unlock()
	return mock.GetTodayStatsFunc(ctx)
}

func (mock *timeEntryServiceMock) GetTodayStatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetTodayStats.RLock()
	calls = mock.calls.GetTodayStats
	mock.lockGetTodayStats.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) Location() *time.Location {
	if mock.LocationFunc == nil {
		panic("timeEntryServiceMock.LocationFunc: method is nil but timeEntryService.Location was just called")
	}
	mock.lockLocation.Lock()
	mock.calls.Location = append(mock.calls.Location, struct{}{})
	mock.lockLocation.Unlock()
	return mock.LocationFunc()
}

func (mock *timeEntryServiceMock) LocationCalls() []struct{} {
	var calls []struct{}
	mock.lockLocation.RLock()
	calls = mock.calls.Location
	mock.lockLocation.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) StartTimer(ctx context.Context, description string, projectID *int64) (*domain.TimeEntry, error) {
	if mock.StartTimerFunc == nil {
		panic("timeEntryServiceMock.StartTimerFunc: method is nil but timeEntryService.StartTimer was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Description string
		ProjectID   *int64
	}{
		Ctx:         ctx,
		Description: description,
		ProjectID:   projectID,
	}
	mock.lockStartTimer.Lock()
	mock.calls.StartTimer = append(mock.calls.StartTimer, callInfo)
	mock.lockStartTimer.Unlock()
	return mock.StartTimerFunc(ctx, description, projectID)
}

func (mock *timeEntryServiceMock) StartTimerCalls() []struct {
	Ctx         context.Context
	Description string
	ProjectID   *int64
} {
	var calls []struct {
		Ctx         context.Context
		Description string
		ProjectID   *int64
	}
	mock.lockStartTimer.RLock()
	calls = mock.calls.StartTimer
	mock.lockStartTimer.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) StopTimer(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if mock.StopTimerFunc == nil {
		panic("timeEntryServiceMock.StopTimerFunc: method is nil but timeEntryService.StopTimer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockStopTimer.Lock()
	mock.calls.StopTimer = append(mock.calls.StopTimer, callInfo)
	mock.lockStopTimer.Unlock()
	return mock.StopTimerFunc(ctx, id)
}

func (mock *timeEntryServiceMock) StopTimerCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockStopTimer.RLock()
	calls = mock.calls.StopTimer
	mock.lockStopTimer.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) UpdateTimeEntry(ctx context.Context, id int64, input timeentry.UpdateInput) (*domain.TimeEntry, error) {
	if mock.UpdateTimeEntryFunc == nil {
		panic("timeEntryServiceMock.UpdateTimeEntryFunc: method is nil but timeEntryService.UpdateTimeEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Input timeentry.UpdateInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdateTimeEntry.Lock()
	mock.calls.UpdateTimeEntry = append(mock.calls.UpdateTimeEntry, callInfo)
	mock.lockUpdateTimeEntry.Unlock()
	return mock.UpdateTimeEntryFunc(ctx, id, input)
}

func (mock *timeEntryServiceMock) UpdateTimeEntryCalls() []struct {
	Ctx   context.Context
	ID    int64
	Input timeentry.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		ID    int64
		Input timeentry.UpdateInput
	}
	mock.lockUpdateTimeEntry.RLock()
	calls = mock.calls.UpdateTimeEntry
	mock.lockUpdateTimeEntry.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) GetEntriesByProject(ctx context.Context, projectID int64) ([]domain.TimeEntry, error) {
	if mock.GetEntriesByProjectFunc == nil {
		panic("timeEntryServiceMock.GetEntriesByProjectFunc: method is nil but timeEntryService.GetEntriesByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID int64
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockGetEntriesByProject.Lock()
	mock.calls.GetEntriesByProject = append(mock.calls.GetEntriesByProject, callInfo)
	mock.lockGetEntriesByProject.Unlock()
	return mock.GetEntriesByProjectFunc(ctx, projectID)
}

func (mock *timeEntryServiceMock) GetEntriesByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID int64
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID int64
	}
	mock.lockGetEntriesByProject.RLock()
	calls = mock.calls.GetEntriesByProject
	mock.lockGetEntriesByProject.RUnlock()
	return calls
}
