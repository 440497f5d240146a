package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/timetracker-backend/internal/adapter/postgres"
	projectrepo "github.com/heartmarshall/timetracker-backend/internal/adapter/postgres/project"
	tasknamerepo "github.com/heartmarshall/timetracker-backend/internal/adapter/postgres/taskname"
	timeentryrepo "github.com/heartmarshall/timetracker-backend/internal/adapter/postgres/timeentry"
	"github.com/heartmarshall/timetracker-backend/internal/config"
	"github.com/heartmarshall/timetracker-backend/internal/service/project"
	"github.com/heartmarshall/timetracker-backend/internal/service/taskname"
	"github.com/heartmarshall/timetracker-backend/internal/service/timeentry"
)

// Engine bundles the database pool and the services built on top of it.
// Both the HTTP server and the CLI use it.
type Engine struct {
	Pool        *pgxpool.Pool
	TimeEntries *timeentry.Service
	Projects    *project.Service
	TaskNames   *taskname.Service
}

// NewEngine connects to the database, applies migrations when
// cfg.Database.AutoMigrate is set, and wires repositories into services.
// A nil clock uses wall time.
func NewEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*Engine, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	entries := timeentryrepo.New(pool)
	projects := projectrepo.New(pool)
	names := tasknamerepo.New(pool)
	tx := postgres.NewTxManager(pool)

	return &Engine{
		Pool:        pool,
		TimeEntries: timeentry.NewService(logger, entries, names, tx, clock, cfg.Tracker.Location),
		Projects:    project.NewService(logger, projects),
		TaskNames:   taskname.NewService(logger, names),
	}, nil
}

// Close releases the database pool.
func (e *Engine) Close() {
	if e.Pool != nil {
		e.Pool.Close()
	}
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	applied, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if len(applied) > 0 {
		logger.Info("migrations applied", slog.Any("versions", applied))
	}
	return nil
}
