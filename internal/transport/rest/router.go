package rest

import "net/http"

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Health    *HealthHandler
	TimeEntry *TimeEntryHandler
	Summary   *SummaryHandler
	Project   *ProjectHandler
	TaskName  *TaskNameHandler
}

// NewRouter registers all routes on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/time-entries", h.TimeEntry.List)
	mux.HandleFunc("POST /api/time-entries", h.TimeEntry.Create)
	mux.HandleFunc("POST /api/time-entries/start", h.TimeEntry.Start)
	mux.HandleFunc("GET /api/time-entries/today/stats", h.TimeEntry.TodayStats)
	mux.HandleFunc("GET /api/time-entries/{id}", h.TimeEntry.Get)
	mux.HandleFunc("PATCH /api/time-entries/{id}", h.TimeEntry.Update)
	mux.HandleFunc("DELETE /api/time-entries/{id}", h.TimeEntry.Delete)
	mux.HandleFunc("POST /api/time-entries/{id}/stop", h.TimeEntry.Stop)

	mux.HandleFunc("GET /api/summary-stats", h.Summary.Summary)
	mux.HandleFunc("GET /api/summary-stats/{period}", h.Summary.Period)

	mux.HandleFunc("GET /api/projects", h.Project.List)
	mux.HandleFunc("POST /api/projects", h.Project.Create)
	mux.HandleFunc("GET /api/projects/stats", h.Project.Stats)
	mux.HandleFunc("GET /api/projects/{id}", h.Project.Get)
	mux.HandleFunc("PATCH /api/projects/{id}", h.Project.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Project.Delete)
	mux.HandleFunc("GET /api/projects/{id}/time-entries", h.TimeEntry.ByProject)

	mux.HandleFunc("GET /api/task-names", h.TaskName.Search)
	mux.HandleFunc("POST /api/task-names", h.TaskName.Create)

	return mux
}
