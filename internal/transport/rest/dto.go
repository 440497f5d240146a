package rest

import (
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

type projectResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) *projectResponse {
	if p == nil {
		return nil
	}
	return &projectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type projectWithStatsResponse struct {
	projectResponse
	TrackedHours float64 `json:"trackedHours"`
	EntryCount   int     `json:"entryCount"`
}

type timeEntryResponse struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Start       time.Time        `json:"start"`
	End         *time.Time       `json:"end"`
	Duration    *int64           `json:"duration"`
	ProjectID   *int64           `json:"projectId"`
	Project     *projectResponse `json:"project"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toTimeEntryResponse(e *domain.TimeEntry) timeEntryResponse {
	return timeEntryResponse{
		ID:          e.ID,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		Duration:    e.Duration,
		ProjectID:   e.ProjectID,
		Project:     toProjectResponse(e.Project),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toTimeEntryResponses(entries []domain.TimeEntry) []timeEntryResponse {
	out := make([]timeEntryResponse, len(entries))
	for i := range entries {
		out[i] = toTimeEntryResponse(&entries[i])
	}
	return out
}

type todayStatsResponse struct {
	TotalEntries         int     `json:"totalEntries"`
	TotalHours           float64 `json:"totalHours"`
	AverageEntryDuration float64 `json:"averageEntryDuration"`
}

type summaryResponse struct {
	DaySeconds     int64 `json:"daySeconds"`
	WeekSeconds    int64 `json:"weekSeconds"`
	MonthSeconds   int64 `json:"monthSeconds"`
	DayEntries     int   `json:"dayEntries"`
	WeekEntries    int   `json:"weekEntries"`
	MonthEntries   int   `json:"monthEntries"`
	ActiveProjects int   `json:"activeProjects"`
}

type periodSummaryResponse struct {
	Period           string    `json:"period"`
	From             time.Time `json:"from"`
	To               time.Time `json:"to"`
	Seconds          int64     `json:"seconds"`
	Entries          int       `json:"entries"`
	DistinctProjects int       `json:"distinctProjects"`
}

type projectStatsResponse struct {
	TotalProjects  int     `json:"totalProjects"`
	TotalHours     float64 `json:"totalHours"`
	ActiveProjects int     `json:"activeProjects"`
}

type taskNameResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTaskNameResponses(names []domain.TaskName) []taskNameResponse {
	out := make([]taskNameResponse, len(names))
	for i, n := range names {
		out[i] = taskNameResponse{ID: n.ID, Name: n.Name, CreatedAt: n.CreatedAt}
	}
	return out
}
