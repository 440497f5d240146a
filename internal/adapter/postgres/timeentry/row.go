package timeentry

import (
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

// entryRow is a time_entries row joined with its (optional) project.
type entryRow struct {
	ID               int64      `db:"id"`
	Description      string     `db:"description"`
	StartTime        time.Time  `db:"start_time"`
	EndTime          *time.Time `db:"end_time"`
	Duration         *int64     `db:"duration"`
	ProjectID        *int64     `db:"project_id"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	ProjectName      *string    `db:"project_name"`
	ProjectColor     *string    `db:"project_color"`
	ProjectCreatedAt *time.Time `db:"project_created_at"`
	ProjectUpdatedAt *time.Time `db:"project_updated_at"`
}

func (r entryRow) toDomain() domain.TimeEntry {
	e := domain.TimeEntry{
		ID:          r.ID,
		Description: r.Description,
		Start:       r.StartTime,
		End:         r.EndTime,
		Duration:    r.Duration,
		ProjectID:   r.ProjectID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.ProjectID != nil && r.ProjectName != nil {
		p := &domain.Project{
			ID:    *r.ProjectID,
			Name:  *r.ProjectName,
			Color: deref(r.ProjectColor),
		}
		if r.ProjectCreatedAt != nil {
			p.CreatedAt = *r.ProjectCreatedAt
		}
		if r.ProjectUpdatedAt != nil {
			p.UpdatedAt = *r.ProjectUpdatedAt
		}
		e.Project = p
	}

	return e
}

func toDomainEntries(rows []entryRow) []domain.TimeEntry {
	entries := make([]domain.TimeEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
