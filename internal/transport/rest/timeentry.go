package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
	"github.com/heartmarshall/timetracker-backend/internal/service/timeentry"
)

// timeEntryService defines the subset of the engine used by TimeEntryHandler.
type timeEntryService interface {
	CreateTimeEntry(ctx context.Context, input timeentry.CreateInput) (*domain.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, id int64, input timeentry.UpdateInput) (*domain.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error)
	StartTimer(ctx context.Context, description string, projectID *int64) (*domain.TimeEntry, error)
	StopTimer(ctx context.Context, id int64) (*domain.TimeEntry, error)
	GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error)
	GetAllTimeEntries(ctx context.Context) ([]domain.TimeEntry, error)
	GetTodayEntries(ctx context.Context) ([]domain.TimeEntry, error)
	GetActiveTimers(ctx context.Context) ([]domain.TimeEntry, error)
	GetReportData(ctx context.Context, filter domain.ReportFilter) ([]domain.TimeEntry, error)
	GetEntriesByProject(ctx context.Context, projectID int64) ([]domain.TimeEntry, error)
	GetTodayStats(ctx context.Context) (domain.TodayStats, error)
	Location() *time.Location
}

// TimeEntryHandler serves /api/time-entries.
type TimeEntryHandler struct {
	svc timeEntryService
	log *slog.Logger
}

// NewTimeEntryHandler creates a TimeEntryHandler.
func NewTimeEntryHandler(svc timeEntryService, logger *slog.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{svc: svc, log: logger.With("handler", "time_entry")}
}

type timeEntryRequest struct {
	Description *string    `json:"description"`
	Start       *string    `json:"start"`
	End         *string    `json:"end"`
	Duration    *float64   `json:"duration"`
	ProjectID   optionalID `json:"projectId"`
}

type startTimerRequest struct {
	Description string     `json:"description"`
	ProjectID   optionalID `json:"projectId"`
}

// List handles GET /api/time-entries. Query flags are checked in order:
// today, active, report filters (start, end, projectId), then everything.
func (h *TimeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		entries []domain.TimeEntry
		err     error
	)
	switch {
	case isTrue(q.Get("today")):
		entries, err = h.svc.GetTodayEntries(r.Context())
	case isTrue(q.Get("active")):
		entries, err = h.svc.GetActiveTimers(r.Context())
	case q.Has("start") || q.Has("end") || q.Has("projectId"):
		filter, fieldErrs := h.reportFilter(q.Get("start"), q.Get("end"), q.Get("projectId"))
		if fieldErrs != nil {
			writeServiceError(w, r, h.log, fieldErrs)
			return
		}
		entries, err = h.svc.GetReportData(r.Context(), filter)
	default:
		entries, err = h.svc.GetAllTimeEntries(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponses(entries))
}

func (h *TimeEntryHandler) reportFilter(start, end, projectID string) (domain.ReportFilter, error) {
	var (
		filter domain.ReportFilter
		errs   domain.FieldErrors
	)
	loc := h.svc.Location()

	if start != "" {
		if t, ok := parseTime(start, loc); ok {
			filter.From = &t
		} else {
			errs.Set("start", "Start time is invalid")
		}
	}
	if end != "" {
		if t, ok := parseTime(end, loc); ok {
			filter.To = &t
		} else {
			errs.Set("end", "End time is invalid")
		}
	}
	if projectID != "" {
		if id, err := strconv.ParseInt(projectID, 10, 64); err == nil {
			filter.ProjectID = &id
		} else {
			errs.Set("projectId", "Project id is invalid")
		}
	}

	return filter, errs.Err("Invalid report filter")
}

// Create handles POST /api/time-entries.
func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req timeEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loc := h.svc.Location()
	input := timeentry.CreateInput{
		Start:     parseInstant(req.Start, loc),
		End:       parseInstant(req.End, loc),
		Duration:  req.Duration,
		ProjectID: req.ProjectID.ptr(),
	}
	if req.Description != nil {
		input.Description = *req.Description
	}

	entry, err := h.svc.CreateTimeEntry(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimeEntryResponse(entry))
}

// ByProject handles GET /api/projects/{id}/time-entries.
func (h *TimeEntryHandler) ByProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.svc.GetEntriesByProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponses(entries))
}

// Get handles GET /api/time-entries/{id}.
func (h *TimeEntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.svc.GetTimeEntry(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Update handles PATCH /api/time-entries/{id}.
func (h *TimeEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req timeEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loc := h.svc.Location()
	input := timeentry.UpdateInput{
		Description: req.Description,
		Start:       parseInstant(req.Start, loc),
		End:         parseInstant(req.End, loc),
		Duration:    req.Duration,
	}
	switch {
	case req.ProjectID.valid:
		input.ProjectID = timeentry.SomeID(req.ProjectID.id)
	case req.ProjectID.set:
		input.ProjectID = timeentry.NullID()
	}

	entry, err := h.svc.UpdateTimeEntry(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Delete handles DELETE /api/time-entries/{id} and returns the removed entry.
func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.svc.DeleteTimeEntry(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Start handles POST /api/time-entries/start.
func (h *TimeEntryHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startTimerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.StartTimer(r.Context(), req.Description, req.ProjectID.ptr())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimeEntryResponse(entry))
}

// Stop handles POST /api/time-entries/{id}/stop.
func (h *TimeEntryHandler) Stop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.svc.StopTimer(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// TodayStats handles GET /api/time-entries/today/stats.
func (h *TimeEntryHandler) TodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetTodayStats(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, todayStatsResponse{
		TotalEntries:         stats.TotalEntries,
		TotalHours:           stats.TotalHours,
		AverageEntryDuration: stats.AverageEntryDuration,
	})
}

func isTrue(v string) bool {
	return v == "1" || v == "true"
}
