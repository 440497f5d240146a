package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	db      dbPinger
	version string
	loc     *time.Location
	started time.Time
}

// NewHealthHandler creates a HealthHandler. loc is the tracker calendar; /health
// reports its name and the current date in it, which is the "today" window
// the entry list uses.
func NewHealthHandler(db dbPinger, version string, loc *time.Location) *HealthHandler {
	if loc == nil {
		loc = time.Local
	}
	return &HealthHandler{db: db, version: version, loc: loc, started: time.Now()}
}

// HealthResponse is the JSON body of every health endpoint. /live and /ready only
// fill Status and Timestamp.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Timezone   string                `json:"timezone,omitempty"`
	Today      string                `json:"today,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready returns 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	now := time.Now()

	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Timezone:   h.loc.String(),
		Today:      now.In(h.loc).Format(time.DateOnly),
		Uptime:     now.Sub(h.started).Round(time.Second).String(),
		Components: map[string]CompStatus{"database": db},
		Timestamp:  now,
	})
}

// checkDatabase pings with a bounded timeout. Latency is reported only for
// a successful ping.
func (h *HealthHandler) checkDatabase(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func httpStatus(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
