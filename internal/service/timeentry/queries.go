package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// GetTimeEntry returns a single entry with its project.
func (s *Service) GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get time entry: %w", err)
	}
	return entry, nil
}

// GetAllTimeEntries returns every entry, most recent start first.
func (s *Service) GetAllTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return entries, nil
}

// GetTodayEntries returns entries started within the current local day.
func (s *Service) GetTodayEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	from, to, _ := Window(domain.SummaryPeriodDay, s.now(), s.loc)

	entries, err := s.entries.ListStartedIn(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list today entries: %w", err)
	}
	return entries, nil
}

// GetActiveTimers returns entries without an end, most recent start first.
func (s *Service) GetActiveTimers(ctx context.Context) ([]domain.TimeEntry, error) {
	entries, err := s.entries.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active timers: %w", err)
	}
	return entries, nil
}

// GetReportData filters entries for reports. The date filter applies only
// when both bounds are set; an empty filter returns the full list.
func (s *Service) GetReportData(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error) {
	if !filter.HasDateRange() {
		filter.From, filter.To = nil, nil
	}
	if filter.IsEmpty() {
		return s.GetAllTimeEntries(ctx)
	}

	entries, err := s.entries.ListReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list report entries: %w", err)
	}
	return entries, nil
}

// GetEntriesByDateRange returns entries started within [from, to], both inclusive.
func (s *Service) GetEntriesByDateRange(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
	if to.Before(from) {
		return nil, domain.NewValidationError(FieldEnd, msgStartAfterEnd)
	}

	entries, err := s.entries.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list entries by date range: %w", err)
	}
	return entries, nil
}

// GetEntriesByProject returns the entries of one project.
func (s *Service) GetEntriesByProject(ctx context.Context, projectID int64) ([]domain.TimeEntry, error) {
	entries, err := s.entries.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list entries by project: %w", err)
	}
	return entries, nil
}

// GetTodayStats aggregates today's entries. Active entries count towards
// TotalEntries but contribute no time.
func (s *Service) GetTodayStats(ctx context.Context) (domain.TodayStats, error) {
	entries, err := s.GetTodayEntries(ctx)
	if err != nil {
		return domain.TodayStats{}, err
	}

	var total int64
	for _, e := range entries {
		total += e.DurationSeconds()
	}

	stats := domain.TodayStats{
		TotalEntries: len(entries),
		TotalHours:   float64(total) / 3600,
	}
	if len(entries) > 0 {
		stats.AverageEntryDuration = float64(total) / float64(len(entries))
	}
	return stats, nil
}
