package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/timetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timetracker-backend/internal/config"
)

const (
	pgImage    = "postgres:17-alpine"
	pgUser     = "tracker"
	pgPassword = "tracker"
	pgDatabase = "timetracker_test"
)

var (
	startOnce sync.Once
	sharedDSN string
	startErr  error
)

// SetupTestDB returns a pool on a PostgreSQL container that is started and
// migrated once per test binary. The pool is closed via t.Cleanup.
//
// Every test shares the same database: assert only on rows you created,
// and scope time-range queries with UniqueDay.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	startOnce.Do(func() {
		sharedDSN, startErr = startPostgres()
	})
	if startErr != nil {
		t.Fatalf("testhelper: start postgres: %v", startErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbConfig(sharedDSN))
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func dbConfig(dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        4,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
		ApplicationName: "timetracker-tests",
	}
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
				"TZ":                "UTC",
			},
			// The init script restarts the server once, hence two occurrences.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, endpoint, pgDatabase)

	pool, err := postgres.NewPool(ctx, dbConfig(dsn))
	if err != nil {
		return "", err
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return "", err
	}
	defer migrator.Close()

	if _, err := migrator.Up(ctx); err != nil {
		return "", err
	}

	return dsn, nil
}
