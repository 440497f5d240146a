// Package taskname keeps the registry of task descriptions used for autocomplete.
package taskname

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// FieldName is the field reported when a name fails validation.
const FieldName = "name"

const msgNameRequired = "Task name is required"

type taskNameRepo interface {
	Search(ctx context.Context, query string) ([]domain.TaskName, error)
	FindOrCreate(ctx context.Context, name string) (*domain.TaskName, error)
}

// Service implements task-name lookups.
type Service struct {
	names taskNameRepo
	log   *slog.Logger
}

// NewService creates a task-name Service.
func NewService(log *slog.Logger, names taskNameRepo) *Service {
	return &Service{
		names: names,
		log:   log.With("service", "taskname"),
	}
}

// Search returns the names containing query. A blank query matches nothing.
func (s *Service) Search(ctx context.Context, query string) ([]domain.TaskName, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []domain.TaskName{}, nil
	}

	names, err := s.names.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search task names: %w", err)
	}
	return names, nil
}

// FindOrCreate returns the registered name, creating it when unseen.
func (s *Service) FindOrCreate(ctx context.Context, name string) (*domain.TaskName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.NewValidationError(FieldName, msgNameRequired)
	}

	tn, err := s.names.FindOrCreate(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("find or create task name: %w", err)
	}

	s.log.DebugContext(ctx, "task name resolved", slog.Int64("task_name_id", tn.ID))
	return tn, nil
}
