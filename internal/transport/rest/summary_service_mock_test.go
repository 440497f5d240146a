package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

var _ summaryService = &summaryServiceMock{}

type summaryServiceMock struct {
	GetSummaryFunc                      func(ctx context.Context) (domain.Summary, error)
	GetSummaryDistinctProjectsCountFunc func(ctx context.Context, period domain.SummaryPeriod) (int, error)
	GetSummaryEntryCountFunc            func(ctx context.Context, period domain.SummaryPeriod) (int, error)
	GetSummaryStatsFunc                 func(ctx context.Context, period domain.SummaryPeriod) (int64, error)
	SummaryWindowFunc                   func(period domain.SummaryPeriod) (time.Time, time.Time, error)

	calls struct {
		GetSummary []struct {
			Ctx context.Context
		}
		GetSummaryDistinctProjectsCount []struct {
			Ctx    context.Context
			Period domain.SummaryPeriod
		}
		GetSummaryEntryCount []struct {
			Ctx    context.Context
			Period domain.SummaryPeriod
		}
		GetSummaryStats []struct {
			Ctx    context.Context
			Period domain.SummaryPeriod
		}
		SummaryWindow []struct {
			Period domain.SummaryPeriod
		}
	}
	lockGetSummary                      sync.RWMutex
	lockGetSummaryDistinctProjectsCount sync.RWMutex
	lockGetSummaryEntryCount            sync.RWMutex
	lockGetSummaryStats                 sync.RWMutex
	lockSummaryWindow                   sync.RWMutex
}

func (mock *summaryServiceMock) GetSummary(ctx context.Context) (domain.Summary, error) {
	if mock.GetSummaryFunc == nil {
		panic("summaryServiceMock.GetSummaryFunc: method is nil but summaryService.GetSummary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetSummary.Lock()
	mock.calls.GetSummary = append(mock.calls.GetSummary, callInfo)
	mock.lockGetSummary.Unlock()
	return mock.GetSummaryFunc(ctx)
}

func (mock *summaryServiceMock) GetSummaryCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetSummary.RLock()
	calls = mock.calls.GetSummary
	mock.lockGetSummary.RUnlock()
	return calls
}

func (mock *summaryServiceMock) GetSummaryDistinctProjectsCount(ctx context.Context, period domain.SummaryPeriod) (int, error) {
	if mock.GetSummaryDistinctProjectsCountFunc == nil {
		panic("summaryServiceMock.GetSummaryDistinctProjectsCountFunc: method is nil but summaryService.GetSummaryDistinctProjectsCount was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Period domain.SummaryPeriod
	}{
		Ctx:    ctx,
		Period: period,
	}
	mock.lockGetSummaryDistinctProjectsCount.Lock()
	mock.calls.GetSummaryDistinctProjectsCount = append(mock.calls.GetSummaryDistinctProjectsCount, callInfo)
	mock.lockGetSummaryDistinctProjectsCount.Unlock()
	return mock.GetSummaryDistinctProjectsCountFunc(ctx, period)
}

func (mock *summaryServiceMock) GetSummaryDistinctProjectsCountCalls() []struct {
	Ctx    context.Context
	Period domain.SummaryPeriod
} {
	var calls []struct {
		Ctx    context.Context
		Period domain.SummaryPeriod
	}
	mock.lockGetSummaryDistinctProjectsCount.RLock()
	calls = mock.calls.GetSummaryDistinctProjectsCount
	mock.lockGetSummaryDistinctProjectsCount.RUnlock()
	return calls
}

func (mock *summaryServiceMock) GetSummaryEntryCount(ctx context.Context, period domain.SummaryPeriod) (int, error) {
	if mock.GetSummaryEntryCountFunc == nil {
		panic("summaryServiceMock.GetSummaryEntryCountFunc: method is nil but summaryService.GetSummaryEntryCount was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Period domain.SummaryPeriod
	}{
		Ctx:    ctx,
		Period: period,
	}
	mock.lockGetSummaryEntryCount.Lock()
	mock.calls.GetSummaryEntryCount = append(mock.calls.GetSummaryEntryCount, callInfo)
	mock.lockGetSummaryEntryCount.Unlock()
	return mock.GetSummaryEntryCountFunc(ctx, period)
}

func (mock *summaryServiceMock) GetSummaryEntryCountCalls() []struct {
	Ctx    context.Context
	Period domain.SummaryPeriod
} {
	var calls []struct {
		Ctx    context.Context
		Period domain.SummaryPeriod
	}
	mock.lockGetSummaryEntryCount.RLock()
	calls = mock.calls.GetSummaryEntryCount
	mock.lockGetSummaryEntryCount.RUnlock()
	return calls
}

func (mock *summaryServiceMock) GetSummaryStats(ctx context.Context, period domain.SummaryPeriod) (int64, error) {
	if mock.GetSummaryStatsFunc == nil {
		panic("summaryServiceMock.GetSummaryStatsFunc: method is nil but summaryService.GetSummaryStats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Period domain.SummaryPeriod
	}{
		Ctx:    ctx,
		Period: period,
	}
	mock.lockGetSummaryStats.Lock()
	mock.calls.GetSummaryStats = append(mock.calls.GetSummaryStats, callInfo)
	mock.lockGetSummaryStats.Unlock()
	return mock.GetSummaryStatsFunc(ctx, period)
}

func (mock *summaryServiceMock) GetSummaryStatsCalls() []struct {
	Ctx    context.Context
	Period domain.SummaryPeriod
} {
	var calls []struct {
		Ctx    context.Context
		Period domain.SummaryPeriod
	}
	mock.lockGetSummaryStats.RLock()
	calls = mock.calls.GetSummaryStats
	mock.lockGetSummaryStats.RUnlock()
	return calls
}

func (mock *summaryServiceMock) SummaryWindow(period domain.SummaryPeriod) (time.Time, time.Time, error) {
	if mock.SummaryWindowFunc == nil {
		panic("summaryServiceMock.SummaryWindowFunc: method is nil but summaryService.SummaryWindow was just called")
	}
	callInfo := struct {
		Period domain.SummaryPeriod
	}{
		Period: period,
	}
	mock.lockSummaryWindow.Lock()
	mock.calls.SummaryWindow = append(mock.calls.SummaryWindow, callInfo)
	mock.lockSummaryWindow.Unlock()
	return mock.SummaryWindowFunc(period)
}

func (mock *summaryServiceMock) SummaryWindowCalls() []struct {
	Period domain.SummaryPeriod
} {
	var calls []struct {
		Period domain.SummaryPeriod
	}
	mock.lockSummaryWindow.RLock()
	calls = mock.calls.SummaryWindow
	mock.lockSummaryWindow.RUnlock()
	return calls
}
