package timeentry

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// SummaryWindow returns the [from, to) bounds of the period containing now.
func (s *Service) SummaryWindow(period domain.SummaryPeriod) (from, to time.Time, err error) {
	return Window(period, s.now(), s.loc)
}

// GetSummaryStats returns the tracked seconds of entries started in the period.
func (s *Service) GetSummaryStats(ctx context.Context, period domain.SummaryPeriod) (int64, error) {
	from, to, err := Window(period, s.now(), s.loc)
	if err != nil {
		return 0, err
	}

	total, err := s.entries.SumDurationInRange(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("sum %s duration: %w", period, err)
	}
	return total, nil
}

// GetSummaryEntryCount returns the number of entries started in the period.
func (s *Service) GetSummaryEntryCount(ctx context.Context, period domain.SummaryPeriod) (int, error) {
	from, to, err := Window(period, s.now(), s.loc)
	if err != nil {
		return 0, err
	}

	count, err := s.entries.CountInRange(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("count %s entries: %w", period, err)
	}
	return count, nil
}

// GetSummaryDistinctProjectsCount returns how many different projects have
// entries started in the period.
func (s *Service) GetSummaryDistinctProjectsCount(ctx context.Context, period domain.SummaryPeriod) (int, error) {
	from, to, err := Window(period, s.now(), s.loc)
	if err != nil {
		return 0, err
	}

	count, err := s.entries.CountDistinctProjectsInRange(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("count %s projects: %w", period, err)
	}
	return count, nil
}

// GetSummary computes the dashboard figures for the day, week and month that
// contain the current instant. The sub-queries run concurrently and may
// observe different snapshots.
func (s *Service) GetSummary(ctx context.Context) (domain.Summary, error) {
	now := s.now()

	var day, week, month timeRange
	for _, w := range []struct {
		period domain.SummaryPeriod
		dst    *timeRange
	}{
		{domain.SummaryPeriodDay, &day},
		{domain.SummaryPeriodWeek, &week},
		{domain.SummaryPeriodMonth, &month},
	} {
		from, to, err := Window(w.period, now, s.loc)
		if err != nil {
			return domain.Summary{}, err
		}
		*w.dst = timeRange{from: from, to: to}
	}

	var sum domain.Summary
	g, gctx := errgroup.WithContext(ctx)

	sumInto := func(dst *int64, r timeRange, label string) {
		g.Go(func() error {
			v, err := s.entries.SumDurationInRange(gctx, r.from, r.to)
			if err != nil {
				return fmt.Errorf("sum %s duration: %w", label, err)
			}
			*dst = v
			return nil
		})
	}
	countInto := func(dst *int, r timeRange, label string) {
		g.Go(func() error {
			v, err := s.entries.CountInRange(gctx, r.from, r.to)
			if err != nil {
				return fmt.Errorf("count %s entries: %w", label, err)
			}
			*dst = v
			return nil
		})
	}

	sumInto(&sum.DaySeconds, day, "day")
	sumInto(&sum.WeekSeconds, week, "week")
	sumInto(&sum.MonthSeconds, month, "month")
	countInto(&sum.DayEntries, day, "day")
	countInto(&sum.WeekEntries, week, "week")
	countInto(&sum.MonthEntries, month, "month")
	g.Go(func() error {
		v, err := s.entries.CountDistinctProjectsInRange(gctx, month.from, month.to)
		if err != nil {
			return fmt.Errorf("count month projects: %w", err)
		}
		sum.ActiveProjects = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Summary{}, err
	}
	return sum, nil
}

type timeRange struct {
	from, to time.Time
}
