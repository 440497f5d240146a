package testhelper

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueDay returns midnight UTC of a day no other test is likely to use,
// so range aggregates over it only see rows the calling test seeded.
func UniqueDay() time.Time {
	id := uuid.New()
	offset := binary.BigEndian.Uint32(id[:4]) % (200 * 365)
	return time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(offset))
}

// SeedProject inserts a project with a unique name.
func SeedProject(t *testing.T, pool *pgxpool.Pool) domain.Project {
	t.Helper()

	p := domain.Project{
		Name:  "Project " + uniqueSuffix(),
		Color: "#3b82f6",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO projects (name, color) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Color,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}

// SeedEntry inserts a time entry. duration nil seeds a running timer;
// otherwise end is derived as start + duration.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, projectID *int64, start time.Time, duration *int64) domain.TimeEntry {
	t.Helper()

	e := domain.TimeEntry{
		Description: "Task " + uniqueSuffix(),
		Start:       start.UTC().Truncate(time.Microsecond),
		Duration:    duration,
		ProjectID:   projectID,
	}
	if duration != nil {
		end := e.Start.Add(time.Duration(*duration) * time.Second)
		e.End = &end
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO time_entries (description, start_time, end_time, duration, project_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		e.Description, e.Start, e.End, e.Duration, e.ProjectID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return e
}

// SeedTaskName inserts a task name with the given prefix and a unique suffix.
func SeedTaskName(t *testing.T, pool *pgxpool.Pool, prefix string) domain.TaskName {
	t.Helper()

	tn := domain.TaskName{Name: prefix + " " + uniqueSuffix()}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO task_names (name) VALUES ($1) RETURNING id, created_at`,
		tn.Name,
	).Scan(&tn.ID, &tn.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTaskName: %v", err)
	}

	return tn
}
