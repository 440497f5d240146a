package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
)

type taskNameService interface {
	Search(ctx context.Context, query string) ([]domain.TaskName, error)
	FindOrCreate(ctx context.Context, name string) (*domain.TaskName, error)
}

// TaskNameHandler serves /api/task-names.
type TaskNameHandler struct {
	svc taskNameService
	log *slog.Logger
}

// NewTaskNameHandler creates a TaskNameHandler.
func NewTaskNameHandler(svc taskNameService, logger *slog.Logger) *TaskNameHandler {
	return &TaskNameHandler{svc: svc, log: logger.With("handler", "task_name")}
}

// Search handles GET /api/task-names?q=.
func (h *TaskNameHandler) Search(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskNameResponses(names))
}

// Create handles POST /api/task-names.
func (h *TaskNameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tn, err := h.svc.FindOrCreate(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskNameResponses([]domain.TaskName{*tn})[0])
}
