package handlers

import (
	"context"
	"net/http"
	"time"

	"task-manager/backend/logging"
)

const healthTimeout = 2 * time.Second

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	check HealthCheck
}

func NewHealthHandler(check HealthCheck) *HealthHandler {
	return &HealthHandler{check: check}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.check(ctx); err != nil {
		logging.Logger.Errorf("Event ID: HEALTH_CHECK_FAILED, Description: Database ping failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
