package handlers

import (
	"net/http"
	"time"

	"github.com/bobmcallan/invest-portal/internal/common"
)

// ServiceName identifies the portal in JSON status payloads.
const ServiceName = "invest-portal"

// HealthHandler reports the portal's own liveness, independent of the backend.
type HealthHandler struct {
	logger  *common.Logger
	started time.Time
}

// NewHealthHandler creates a health handler whose uptime starts now.
func NewHealthHandler(logger *common.Logger) *HealthHandler {
	return &HealthHandler{logger: logger.OrSilent(), started: time.Now()}
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
		"uptime":  time.Since(h.started).Truncate(time.Second).String(),
	})
}
