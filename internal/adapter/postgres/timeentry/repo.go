// Package timeentry implements time-entry persistence using PostgreSQL.
// Reads join the owning project so callers get it without a second query.
package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/timetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

const entity = "time_entry"

var entryColumns = []string{
	"e.id",
	"e.description",
	"e.start_time",
	"e.end_time",
	"e.duration",
	"e.project_id",
	"e.created_at",
	"e.updated_at",
	"p.name AS project_name",
	"p.color AS project_color",
	"p.created_at AS project_created_at",
	"p.updated_at AS project_updated_at",
}

// Repo provides time-entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new time-entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectEntries() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(entryColumns...).
		From("time_entries e").
		LeftJoin("projects p ON p.id = e.project_id")
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.TimeEntry, error) {
	sql, args, err := query.OrderBy("e.start_time DESC", "e.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", entity, err)
	}

	return toDomainEntries(rows), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	sql, args, err := r.selectEntries().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	entry := row.toDomain()
	return &entry, nil
}

// ListAll returns every entry, most recent start first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.TimeEntry, error) {
	return r.list(ctx, r.selectEntries())
}

// ListByDateRange returns entries whose start lies in [from, to], both inclusive.
func (r *Repo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
	return r.list(ctx, r.selectEntries().Where(squirrel.And{
		squirrel.GtOrEq{"e.start_time": from},
		squirrel.LtOrEq{"e.start_time": to},
	}))
}

// ListStartedIn returns entries whose start lies in [from, to).
func (r *Repo) ListStartedIn(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
	return r.list(ctx, r.selectEntries().Where(startedIn(from, to)))
}

// ListActive returns entries without an end.
func (r *Repo) ListActive(ctx context.Context) ([]domain.TimeEntry, error) {
	return r.list(ctx, r.selectEntries().Where(squirrel.Eq{"e.end_time": nil}))
}

// ListByProject returns the entries of one project.
func (r *Repo) ListByProject(ctx context.Context, projectID int64) ([]domain.TimeEntry, error) {
	return r.list(ctx, r.selectEntries().Where(squirrel.Eq{"e.project_id": projectID}))
}

// ListReport applies the report filter. The date range is inclusive and only
// applied when both bounds are set.
func (r *Repo) ListReport(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error) {
	query := r.selectEntries()
	if filter.HasDateRange() {
		query = query.Where(squirrel.And{
			squirrel.GtOrEq{"e.start_time": *filter.From},
			squirrel.LtOrEq{"e.start_time": *filter.To},
		})
	}
	if filter.ProjectID != nil {
		query = query.Where(squirrel.Eq{"e.project_id": *filter.ProjectID})
	}
	return r.list(ctx, query)
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

// SumDurationInRange returns the summed duration (seconds) of entries started
// in [from, to). Entries without a duration are ignored.
func (r *Repo) SumDurationInRange(ctx context.Context, from, to time.Time) (int64, error) {
	query := postgres.Builder().
		Select("COALESCE(SUM(e.duration), 0)").
		From("time_entries e").
		Where(startedIn(from, to)).
		Where(squirrel.NotEq{"e.duration": nil})

	var total int64
	if err := r.scalar(ctx, query, &total); err != nil {
		return 0, fmt.Errorf("sum %s duration: %w", entity, err)
	}
	return total, nil
}

// CountInRange returns how many entries started in [from, to).
func (r *Repo) CountInRange(ctx context.Context, from, to time.Time) (int, error) {
	query := postgres.Builder().
		Select("COUNT(*)").
		From("time_entries e").
		Where(startedIn(from, to))

	var count int64
	if err := r.scalar(ctx, query, &count); err != nil {
		return 0, fmt.Errorf("count %s: %w", entity, err)
	}
	return int(count), nil
}

// CountDistinctProjectsInRange returns how many different projects have
// entries started in [from, to).
func (r *Repo) CountDistinctProjectsInRange(ctx context.Context, from, to time.Time) (int, error) {
	query := postgres.Builder().
		Select("COUNT(DISTINCT e.project_id)").
		From("time_entries e").
		Where(startedIn(from, to))

	var count int64
	if err := r.scalar(ctx, query, &count); err != nil {
		return 0, fmt.Errorf("count %s projects: %w", entity, err)
	}
	return int(count), nil
}

func (r *Repo) scalar(ctx context.Context, query squirrel.SelectBuilder, dst any) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(dst)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns it with its project.
// Returns domain.ErrNotFound if the referenced project does not exist.
func (r *Repo) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	sql, args, err := postgres.Builder().
		Insert("time_entries").
		Columns("description", "start_time", "end_time", "duration", "project_id").
		Values(entry.Description, entry.Start, entry.End, entry.Duration, entry.ProjectID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s insert: %w", entity, err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}

	return r.GetByID(ctx, id)
}

// Update changes the non-nil columns of params and returns the updated entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Update(ctx context.Context, id int64, params domain.TimeEntryUpdateParams) (*domain.TimeEntry, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	update := postgres.Builder().
		Update("time_entries").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id")

	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}
	if params.Start != nil {
		update = update.Set("start_time", *params.Start)
	}
	if params.End != nil {
		update = update.Set("end_time", *params.End)
	}
	if params.Duration != nil {
		update = update.Set("duration", *params.Duration)
	}
	if params.ProjectID != nil {
		update = update.Set("project_id", *params.ProjectID)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s update: %w", entity, err)
	}

	var updatedID int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return r.GetByID(ctx, updatedID)
}

// Delete removes an entry and returns it as it was.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	entry, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sql, args, err := postgres.Builder().
		Delete("time_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s delete: %w", entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	return entry, nil
}

// startedIn matches entries whose start lies in [from, to).
func startedIn(from, to time.Time) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{"e.start_time": from},
		squirrel.Lt{"e.start_time": to},
	}
}
