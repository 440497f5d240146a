// Package timeentry owns the time-entry lifecycle: validation and derivation
// of entry fields, timer start/stop, list queries and the calendar-aligned
// summary windows used by the dashboard and reports.
package timeentry

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

type entryRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	ListAll(ctx context.Context) ([]domain.TimeEntry, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error)
	ListStartedIn(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error)
	ListActive(ctx context.Context) ([]domain.TimeEntry, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.TimeEntry, error)
	ListReport(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error)
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	Update(ctx context.Context, id int64, params domain.TimeEntryUpdateParams) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) (*domain.TimeEntry, error)
	SumDurationInRange(ctx context.Context, from, to time.Time) (int64, error)
	CountInRange(ctx context.Context, from, to time.Time) (int, error)
	CountDistinctProjectsInRange(ctx context.Context, from, to time.Time) (int, error)
}

type taskNameRegistry interface {
	FindOrCreate(ctx context.Context, name string) (*domain.TaskName, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the time-entry engine. It holds no mutable state; every
// call is a function of its input, the stored entries and the clock.
type Service struct {
	entries   entryRepo
	taskNames taskNameRegistry
	tx        txManager
	clock     clockwork.Clock
	loc       *time.Location
	log       *slog.Logger
}

// NewService creates a time-entry Service. loc is the calendar used for
// day/week/month windows; nil means time.Local. A nil clock uses wall time.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	taskNames taskNameRegistry,
	tx txManager,
	clock clockwork.Clock,
	loc *time.Location,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		entries:   entries,
		taskNames: taskNames,
		tx:        tx,
		clock:     clock,
		loc:       loc,
		log:       log.With("service", "timeentry"),
	}
}

// Location returns the calendar location used for summary windows.
func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) now() time.Time {
	return s.clock.Now().In(s.loc)
}

func ptr[T any](v T) *T { return &v }
