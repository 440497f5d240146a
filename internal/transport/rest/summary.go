package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

type summaryService interface {
	GetSummary(ctx context.Context) (domain.Summary, error)
	GetSummaryStats(ctx context.Context, period domain.SummaryPeriod) (int64, error)
	GetSummaryEntryCount(ctx context.Context, period domain.SummaryPeriod) (int, error)
	GetSummaryDistinctProjectsCount(ctx context.Context, period domain.SummaryPeriod) (int, error)
	SummaryWindow(period domain.SummaryPeriod) (from, to time.Time, err error)
}

// SummaryHandler serves /api/summary-stats.
type SummaryHandler struct {
	svc summaryService
	log *slog.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(svc summaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, log: logger.With("handler", "summary")}
}

// Summary handles GET /api/summary-stats.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSummary(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		DaySeconds:     s.DaySeconds,
		WeekSeconds:    s.WeekSeconds,
		MonthSeconds:   s.MonthSeconds,
		DayEntries:     s.DayEntries,
		WeekEntries:    s.WeekEntries,
		MonthEntries:   s.MonthEntries,
		ActiveProjects: s.ActiveProjects,
	})
}

// Period handles GET /api/summary-stats/{period}.
func (h *SummaryHandler) Period(w http.ResponseWriter, r *http.Request) {
	period := domain.SummaryPeriod(r.PathValue("period"))

	from, to, err := h.svc.SummaryWindow(period)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	seconds, err := h.svc.GetSummaryStats(r.Context(), period)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	entries, err := h.svc.GetSummaryEntryCount(r.Context(), period)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	projects, err := h.svc.GetSummaryDistinctProjectsCount(r.Context(), period)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, periodSummaryResponse{
		Period:           period.String(),
		From:             from,
		To:               to,
		Seconds:          seconds,
		Entries:          entries,
		DistinctProjects: projects,
	})
}
