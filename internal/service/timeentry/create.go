package timeentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// CreateTimeEntry validates input, registers the description as a task name
// and stores the entry. Both writes share one transaction.
func (s *Service) CreateTimeEntry(ctx context.Context, input CreateInput) (*domain.TimeEntry, error) {
	entry, err := input.Validate()
	if err != nil {
		return nil, err
	}

	var created *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, txErr := s.taskNames.FindOrCreate(ctx, entry.Description); txErr != nil {
			return fmt.Errorf("register task name: %w", txErr)
		}

		var txErr error
		created, txErr = s.entries.Create(ctx, &entry)
		if txErr != nil {
			return fmt.Errorf("create time entry: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "time entry created",
		slog.Int64("entry_id", created.ID),
		slog.Bool("active", created.IsActive()),
	)

	return created, nil
}

// StartTimer creates an active entry that starts now.
func (s *Service) StartTimer(ctx context.Context, description string, projectID *int64) (*domain.TimeEntry, error) {
	return s.CreateTimeEntry(ctx, CreateInput{
		Description: description,
		Start:       ptr(s.now()),
		ProjectID:   projectID,
	})
}
