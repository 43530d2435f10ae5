package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// HealthChecker reads the backend health endpoint.
type HealthChecker interface {
	Health(ctx context.Context) (models.Health, error)
}

// ServerHealthHandler reports the health of the upstream investment engine.
type ServerHealthHandler struct {
	logger  *common.Logger
	checker HealthChecker
}

// NewServerHealthHandler creates a new server health handler.
func NewServerHealthHandler(logger *common.Logger, checker HealthChecker) *ServerHealthHandler {
	return &ServerHealthHandler{logger: logger.OrSilent(), checker: checker}
}

// ServeHTTP handles GET /api/server-health.
func (h *ServerHealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	health, err := h.checker.Health(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Backend health check failed")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "down",
			"error":  err.Error(),
		})
		return
	}

	if !health.OK() {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": health.Status})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
