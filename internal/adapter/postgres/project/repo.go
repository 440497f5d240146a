// Package project implements project persistence using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/timetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

const entity = "project"

var projectColumns = []string{"p.id", "p.name", "p.color", "p.created_at", "p.updated_at"}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a project by primary key.
// Returns domain.ErrNotFound if the project does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	sql, args, err := postgres.Builder().
		Select(projectColumns...).
		From("projects p").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	p := row.toDomain()
	return &p, nil
}

// ListWithStats returns every project with its tracked hours and entry count,
// newest first. Entries without a duration count but add no hours.
func (r *Repo) ListWithStats(ctx context.Context) ([]domain.ProjectWithStats, error) {
	columns := append(append([]string{}, projectColumns...),
		"COALESCE(SUM(e.duration), 0)::float8 / 3600 AS tracked_hours",
		"COUNT(e.id) AS entry_count",
	)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From("projects p").
		LeftJoin("time_entries e ON e.project_id = p.id").
		GroupBy("p.id").
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var rows []projectStatsRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s with stats: %w", entity, err)
	}

	result := make([]domain.ProjectWithStats, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain()
	}
	return result, nil
}

// Create inserts a new project.
func (r *Repo) Create(ctx context.Context, name, color string) (*domain.Project, error) {
	sql, args, err := postgres.Builder().
		Insert("projects").
		Columns("name", "color").
		Values(name, color).
		Suffix("RETURNING id, name, color, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s insert: %w", entity, err)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}

	p := row.toDomain()
	return &p, nil
}

// Update changes the non-nil columns of params.
// Returns domain.ErrNotFound if the project does not exist.
func (r *Repo) Update(ctx context.Context, id int64, params domain.ProjectUpdateParams) (*domain.Project, error) {
	if params.Name == nil && params.Color == nil {
		return r.GetByID(ctx, id)
	}

	update := postgres.Builder().
		Update("projects").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, color, created_at, updated_at")

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Color != nil {
		update = update.Set("color", *params.Color)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s update: %w", entity, err)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	p := row.toDomain()
	return &p, nil
}

// Delete removes a project and returns it as it was. Its entries keep
// existing without a project.
// Returns domain.ErrNotFound if the project does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) (*domain.Project, error) {
	sql, args, err := postgres.Builder().
		Delete("projects").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, color, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s delete: %w", entity, err)
	}

	var row projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	p := row.toDomain()
	return &p, nil
}
