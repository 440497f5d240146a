// Package project manages projects and their tracked-time rollups.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// Field names reported in validation errors.
const (
	FieldName  = "name"
	FieldColor = "color"
)

const (
	msgInvalidProject = "Invalid project"
	msgNameRequired   = "Project name is required"
	msgNameEmpty      = "Project name cannot be empty"
	msgColorRequired  = "Project color is required"
)

type projectRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListWithStats(ctx context.Context) ([]domain.ProjectWithStats, error)
	Create(ctx context.Context, name, color string) (*domain.Project, error)
	Update(ctx context.Context, id int64, params domain.ProjectUpdateParams) (*domain.Project, error)
	Delete(ctx context.Context, id int64) (*domain.Project, error)
}

// Service implements project operations.
type Service struct {
	projects projectRepo
	log      *slog.Logger
}

// NewService creates a project Service.
func NewService(log *slog.Logger, projects projectRepo) *Service {
	return &Service{
		projects: projects,
		log:      log.With("service", "project"),
	}
}

// CreateInput holds the parameters for creating a project.
type CreateInput struct {
	Name  string
	Color string
}

// Validate trims the name and checks required fields.
func (i CreateInput) Validate() (CreateInput, error) {
	var errs domain.FieldErrors

	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		errs.Set(FieldName, msgNameRequired)
	}
	if i.Color == "" {
		errs.Set(FieldColor, msgColorRequired)
	}

	if err := errs.Err(msgInvalidProject); err != nil {
		return CreateInput{}, err
	}
	return i, nil
}

// UpdateInput holds a partial update; nil fields stay untouched.
type UpdateInput struct {
	Name  *string
	Color *string
}

// Validate trims the name and returns the columns to update.
func (i UpdateInput) Validate() (domain.ProjectUpdateParams, error) {
	var params domain.ProjectUpdateParams

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			return params, &domain.ValidationError{
				Message: msgInvalidProject,
				Errors:  []domain.FieldError{{Field: FieldName, Message: msgNameEmpty}},
			}
		}
		params.Name = &name
	}
	params.Color = i.Color

	return params, nil
}

// GetAllProjects returns every project with its stats, newest first.
func (s *Service) GetAllProjects(ctx context.Context) ([]domain.ProjectWithStats, error) {
	projects, err := s.projects.ListWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project by id.
func (s *Service) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// CreateProject validates input and stores a new project.
func (s *Service) CreateProject(ctx context.Context, input CreateInput) (*domain.Project, error) {
	input, err := input.Validate()
	if err != nil {
		return nil, err
	}

	p, err := s.projects.Create(ctx, input.Name, input.Color)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created", slog.Int64("project_id", p.ID))
	return p, nil
}

// UpdateProject applies a partial update.
func (s *Service) UpdateProject(ctx context.Context, id int64, input UpdateInput) (*domain.Project, error) {
	params, err := input.Validate()
	if err != nil {
		return nil, err
	}

	p, err := s.projects.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.log.InfoContext(ctx, "project updated", slog.Int64("project_id", id))
	return p, nil
}

// DeleteProject removes a project. Its entries are kept and lose their
// project reference.
func (s *Service) DeleteProject(ctx context.Context, id int64) (*domain.Project, error) {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	p, err := s.projects.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted", slog.Int64("project_id", id))
	return p, nil
}

// GetProjectStats rolls the per-project stats up. Every project counts as
// active; there is no archived state.
func (s *Service) GetProjectStats(ctx context.Context) (domain.ProjectStats, error) {
	projects, err := s.GetAllProjects(ctx)
	if err != nil {
		return domain.ProjectStats{}, err
	}

	stats := domain.ProjectStats{
		TotalProjects:  len(projects),
		ActiveProjects: len(projects),
	}
	for _, p := range projects {
		stats.TotalHours += p.TrackedHours
	}
	return stats, nil
}
