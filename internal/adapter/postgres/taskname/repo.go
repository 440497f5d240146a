// Package taskname implements the task-name registry using PostgreSQL.
package taskname

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/timetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

const entity = "task_name"

// likeEscaper escapes LIKE wildcards so a search matches them literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo provides task-name persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task-name repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type taskNameRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r taskNameRow) toDomain() domain.TaskName {
	return domain.TaskName{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

func (r *Repo) selectNames() squirrel.SelectBuilder {
	return postgres.Builder().
		Select("id", "name", "created_at").
		From("task_names")
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.TaskName, error) {
	sql, args, err := query.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var rows []taskNameRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", entity, err)
	}

	names := make([]domain.TaskName, len(rows))
	for i, row := range rows {
		names[i] = row.toDomain()
	}
	return names, nil
}

// ListAll returns every task name in alphabetical order.
func (r *Repo) ListAll(ctx context.Context) ([]domain.TaskName, error) {
	return r.list(ctx, r.selectNames())
}

// Search returns task names containing query (case-insensitive), in
// alphabetical order.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.TaskName, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"
	return r.list(ctx, r.selectNames().Where(squirrel.ILike{"name": pattern}))
}

// GetByName returns the task name with exactly this name.
// Returns domain.ErrNotFound if it is not registered.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.TaskName, error) {
	sql, args, err := r.selectNames().Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var row taskNameRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}

	tn := row.toDomain()
	return &tn, nil
}

// FindOrCreate returns the task name, registering it first when needed.
// Concurrent calls with the same name resolve to the same row.
func (r *Repo) FindOrCreate(ctx context.Context, name string) (*domain.TaskName, error) {
	sql, args, err := postgres.Builder().
		Insert("task_names").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s upsert: %w", entity, err)
	}

	var row taskNameRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}

	tn := row.toDomain()
	return &tn, nil
}
