package timeentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// UpdateTimeEntry applies a partial update. When only one of start/end changes
// the stored entry is loaded so ordering and duration are checked against the
// bound that stays.
func (s *Service) UpdateTimeEntry(ctx context.Context, id int64, input UpdateInput) (*domain.TimeEntry, error) {
	var stored *domain.TimeEntry
	if input.needsStoredEntry() {
		var err error
		stored, err = s.entries.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get time entry: %w", err)
		}
	}

	params, err := input.Validate(stored)
	if err != nil {
		return nil, err
	}

	var updated *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if params.Description != nil {
			if _, txErr := s.taskNames.FindOrCreate(ctx, *params.Description); txErr != nil {
				return fmt.Errorf("register task name: %w", txErr)
			}
		}

		var txErr error
		updated, txErr = s.entries.Update(ctx, id, params)
		if txErr != nil {
			return fmt.Errorf("update time entry: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "time entry updated",
		slog.Int64("entry_id", updated.ID),
		slog.Bool("active", updated.IsActive()),
	)

	return updated, nil
}

// StopTimer sets the entry's end to now. Duration is derived from the stored start.
func (s *Service) StopTimer(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	return s.UpdateTimeEntry(ctx, id, UpdateInput{End: ptr(s.now())})
}
