package timeentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// DeleteTimeEntry removes an entry and returns it as it was before deletion.
func (s *Service) DeleteTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	deleted, err := s.entries.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete time entry: %w", err)
	}

	s.log.InfoContext(ctx, "time entry deleted", slog.Int64("entry_id", id))

	return deleted, nil
}
