package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timetracker-backend/internal/domain"
	"github.com/heartmarshall/timetracker-backend/internal/service/project"
)

type projectService interface {
	GetAllProjects(ctx context.Context) ([]domain.ProjectWithStats, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	CreateProject(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id int64, input project.UpdateInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int64) (*domain.Project, error)
	GetProjectStats(ctx context.Context) (domain.ProjectStats, error)
}

// ProjectHandler serves /api/projects.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type projectRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.GetAllProjects(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]projectWithStatsResponse, len(projects))
	for i := range projects {
		out[i] = projectWithStatsResponse{
			projectResponse: *toProjectResponse(&projects[i].Project),
			TrackedHours:    projects[i].TrackedHours,
			EntryCount:      projects[i].EntryCount,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Stats handles GET /api/projects/stats.
func (h *ProjectHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetProjectStats(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, projectStatsResponse{
		TotalProjects:  stats.TotalProjects,
		TotalHours:     stats.TotalHours,
		ActiveProjects: stats.ActiveProjects,
	})
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var input project.CreateInput
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Color != nil {
		input.Color = *req.Color
	}

	p, err := h.svc.CreateProject(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Update handles PATCH /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), id, project.UpdateInput{Name: req.Name, Color: req.Color})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/projects/{id} and returns the removed project.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.DeleteProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}
