package handlers

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	version func() int64
	started time.Time
}

// NewHealthHandler reports liveness together with the current store version.
func NewHealthHandler(version func() int64) *HealthHandler {
	return &HealthHandler{version: version, started: time.Now()}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := jsonResponse{
		"status":         "ok",
		"store_version":  h.version(),
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
