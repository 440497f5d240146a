package domain

import "time"

// Project groups time entries.
type Project struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectWithStats is a project with rollups over its time entries.
type ProjectWithStats struct {
	Project
	TrackedHours float64
	EntryCount   int
}

// ProjectUpdateParams holds the columns to change on a project.
type ProjectUpdateParams struct {
	Name  *string
	Color *string
}

// ProjectStats aggregates over all projects.
type ProjectStats struct {
	TotalProjects  int
	TotalHours     float64
	ActiveProjects int
}
