package timeentry

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByIDFunc                      func(ctx context.Context, id int64) (*domain.TimeEntry, error)
	ListAllFunc                      func(ctx context.Context) ([]domain.TimeEntry, error)
	ListByDateRangeFunc              func(ctx context.Context, from time.Time, to time.Time) ([]domain.TimeEntry, error)
	ListStartedInFunc                func(ctx context.Context, from time.Time, to time.Time) ([]domain.TimeEntry, error)
	ListActiveFunc                   func(ctx context.Context) ([]domain.TimeEntry, error)
	ListByProjectFunc                func(ctx context.Context, projectID int64) ([]domain.TimeEntry, error)
	ListReportFunc                   func(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error)
	CreateFunc                       func(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	UpdateFunc                       func(ctx context.Context, id int64, params domain.TimeEntryUpdateParams) (*domain.TimeEntry, error)
	DeleteFunc                       func(ctx context.Context, id int64) (*domain.TimeEntry, error)
	SumDurationInRangeFunc           func(ctx context.Context, from time.Time, to time.Time) (int64, error)
	CountInRangeFunc                 func(ctx context.Context, from time.Time, to time.Time) (int, error)
	CountDistinctProjectsInRangeFunc func(ctx context.Context, from time.Time, to time.Time) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListAll []struct {
			Ctx context.Context
		}
		ListByDateRange []struct {
			Ctx  context.Context
			From time.Time
			To   time.Time
		}
		ListStartedIn []struct {
			Ctx  context.Context
			From time.Time
			To   time.Time
		}
		ListActive []struct {
			Ctx context.Context
		}
		ListByProject []struct {
			Ctx       context.Context
			ProjectID int64
		}
		ListReport []struct {
			Ctx    context.Context
			Filter domain.ReportFilter
		}
		Create []struct {
			Ctx   context.Context
			Entry *domain.TimeEntry
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Params domain.TimeEntryUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		SumDurationInRange []struct {
			Ctx  context.Context
			From time.Time
			To   time.Time
		}
		CountInRange []struct {
			Ctx  context.Context
			From time.Time
			To   time.Time
		}
		CountDistinctProjectsInRange []struct {
			Ctx  context.Context
			From time.Time
			To   time.Time
		}
	}
	lockGetByID                      sync.RWMutex
	lockListAll                      sync.RWMutex
	lockListByDateRange              sync.RWMutex
	lockListStartedIn                sync.RWMutex
	lockListActive                   sync.RWMutex
	lockListByProject                sync.RWMutex
	lockListReport                   sync.RWMutex
	lockCreate                       sync.RWMutex
	lockUpdate                       sync.RWMutex
	lockDelete                       sync.RWMutex
	lockSumDurationInRange           sync.RWMutex
	lockCountInRange                 sync.RWMutex
	lockCountDistinctProjectsInRange sync.RWMutex
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListAll(ctx context.Context) ([]domain.TimeEntry, error) {
	if mock.ListAllFunc == nil {
		panic("entryRepoMock.ListAllFunc: method is nil but entryRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *entryRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListByDateRange(ctx context.Context, from time.Time, to time.Time) ([]domain.TimeEntry, error) {
	if mock.ListByDateRangeFunc == nil {
		panic("entryRepoMock.ListByDateRangeFunc: method is nil but entryRepo.ListByDateRange was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockListByDateRange.Lock()
	mock.calls.ListByDateRange = append(mock.calls.ListByDateRange, callInfo)
	mock.lockListByDateRange.Unlock()
	return mock.ListByDateRangeFunc(ctx, from, to)
}

func (mock *entryRepoMock) ListByDateRangeCalls() []struct {
	Ctx  context.Context
	From time.Time
	To   time.Time
} {
	var calls []struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}
	mock.lockListByDateRange.RLock()
	calls = mock.calls.ListByDateRange
	mock.lockListByDateRange.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListStartedIn(ctx context.Context, from time.Time, to time.Time) ([]domain.TimeEntry, error) {
	if mock.ListStartedInFunc == nil {
		panic("entryRepoMock.ListStartedInFunc: method is nil but entryRepo.ListStartedIn was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockListStartedIn.Lock()
	mock.calls.ListStartedIn = append(mock.calls.ListStartedIn, callInfo)
	mock.lockListStartedIn.Unlock()
	return mock.ListStartedInFunc(ctx, from, to)
}

func (mock *entryRepoMock) ListStartedInCalls() []struct {
	Ctx  context.Context
	From time.Time
	To   time.Time
} {
	var calls []struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}
	mock.lockListStartedIn.RLock()
	calls = mock.calls.ListStartedIn
	mock.lockListStartedIn.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListActive(ctx context.Context) ([]domain.TimeEntry, error) {
	if mock.ListActiveFunc == nil {
		panic("entryRepoMock.ListActiveFunc: method is nil but entryRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *entryRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListActive.RLock()
	calls = mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListByProject(ctx context.Context, projectID int64) ([]domain.TimeEntry, error) {
	if mock.ListByProjectFunc == nil {
		panic("entryRepoMock.ListByProjectFunc: method is nil but entryRepo.ListByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID int64
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockListByProject.Lock()
	mock.calls.ListByProject = append(mock.calls.ListByProject, callInfo)
	mock.lockListByProject.Unlock()
	return mock.ListByProjectFunc(ctx, projectID)
}

func (mock *entryRepoMock) ListByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID int64
} {
	var calls []struct {
		Ctx       context.Context
		ProjectID int64
	}
	mock.lockListByProject.RLock()
	calls = mock.calls.ListByProject
	mock.lockListByProject.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListReport(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error) {
	if mock.ListReportFunc == nil {
		panic("entryRepoMock.ListReportFunc: method is nil but entryRepo.ListReport was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListReport.Lock()
	mock.calls.ListReport = append(mock.calls.ListReport, callInfo)
	mock.lockListReport.Unlock()
	return mock.ListReportFunc(ctx, filter)
}

func (mock *entryRepoMock) ListReportCalls() []struct {
	Ctx    context.Context
	Filter domain.ReportFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.ReportFilter
	}
	mock.lockListReport.RLock()
	calls = mock.calls.ListReport
	mock.lockListReport.RUnlock()
	return calls
}

func (mock *entryRepoMock) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.TimeEntry
	}{
		Ctx:   ctx,
		Entry: entry,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.TimeEntry
} {
	var calls []struct {
		Ctx   context.Context
		Entry *domain.TimeEntry
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Update(ctx context.Context, id int64, params domain.TimeEntryUpdateParams) (*domain.TimeEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Params domain.TimeEntryUpdateParams
	}{
		Ctx:    ctx,
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int64
	Params domain.TimeEntryUpdateParams
} {
	var calls []struct {
		Ctx    context.Context
		ID     int64
		Params domain.TimeEntryUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) SumDurationInRange(ctx context.Context, from time.Time, to time.Time) (int64, error) {
	if mock.SumDurationInRangeFunc == nil {
		panic("entryRepoMock.SumDurationInRangeFunc: method is nil but entryRepo.SumDurationInRange was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockSumDurationInRange.Lock()
	mock.calls.SumDurationInRange = append(mock.calls.SumDurationInRange, callInfo)
	mock.lockSumDurationInRange.Unlock()
	return mock.SumDurationInRangeFunc(ctx, from, to)
}

func (mock *entryRepoMock) SumDurationInRangeCalls() []struct {
	Ctx  context.Context
	From time.Time
	To   time.Time
} {
	var calls []struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}
	mock.lockSumDurationInRange.RLock()
	calls = mock.calls.SumDurationInRange
	mock.lockSumDurationInRange.RUnlock()
	return calls
}

func (mock *entryRepoMock) CountInRange(ctx context.Context, from time.Time, to time.Time) (int, error) {
	if mock.CountInRangeFunc == nil {
		panic("entryRepoMock.CountInRangeFunc: method is nil but entryRepo.CountInRange was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockCountInRange.Lock()
	mock.calls.CountInRange = append(mock.calls.CountInRange, callInfo)
	mock.lockCountInRange.Unlock()
	return mock.CountInRangeFunc(ctx, from, to)
}

func (mock *entryRepoMock) CountInRangeCalls() []struct {
	Ctx  context.Context
	From time.Time
	To   time.Time
} {
	var calls []struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}
	mock.lockCountInRange.RLock()
	calls = mock.calls.CountInRange
	mock.lockCountInRange.RUnlock()
	return calls
}

func (mock *entryRepoMock) CountDistinctProjectsInRange(ctx context.Context, from time.Time, to time.Time) (int, error) {
	if mock.CountDistinctProjectsInRangeFunc == nil {
		panic("entryRepoMock.CountDistinctProjectsInRangeFunc: method is nil but entryRepo.CountDistinctProjectsInRange was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
	}
	mock.lockCountDistinctProjectsInRange.Lock()
	mock.calls.CountDistinctProjectsInRange = append(mock.calls.CountDistinctProjectsInRange, callInfo)
	mock.lockCountDistinctProjectsInRange.Unlock()
	return mock.CountDistinctProjectsInRangeFunc(ctx, from, to)
}

func (mock *entryRepoMock) CountDistinctProjectsInRangeCalls() []struct {
	Ctx  context.Context
	From time.Time
	To   time.Time
} {
	var calls []struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}
	mock.lockCountDistinctProjectsInRange.RLock()
	calls = mock.calls.CountDistinctProjectsInRange
	mock.lockCountDistinctProjectsInRange.RUnlock()
	return calls
}
