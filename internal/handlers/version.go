package handlers

import (
	"net/http"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/config"
)

// VersionHandler serves the portal build information.
type VersionHandler struct {
	logger *common.Logger
}

func NewVersionHandler(logger *common.Logger) *VersionHandler {
	return &VersionHandler{logger: logger.OrSilent()}
}

// ServeHTTP handles GET /api/version.
func (h *VersionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"service":      ServiceName,
		"version":      config.GetVersion(),
		"build":        config.GetBuild(),
		"git_commit":   config.GetGitCommit(),
		"full_version": config.GetFullVersion(),
	})
}
