package project

import (
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

type projectRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r projectRow) toDomain() domain.Project {
	return domain.Project{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type projectStatsRow struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Color        string    `db:"color"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	TrackedHours float64   `db:"tracked_hours"`
	EntryCount   int64     `db:"entry_count"`
}

func (r projectStatsRow) toDomain() domain.ProjectWithStats {
	return domain.ProjectWithStats{
		Project: domain.Project{
			ID:        r.ID,
			Name:      r.Name,
			Color:     r.Color,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		TrackedHours: r.TrackedHours,
		EntryCount:   int(r.EntryCount),
	}
}
