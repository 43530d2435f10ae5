// Package mcp exposes the portal's read-only backend views as MCP tools.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/config"
	"github.com/bobmcallan/invest-portal/internal/dashboard"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
	tools      int
}

// NewHandler creates a stateless MCP handler serving read-only tools over backend and loader.
func NewHandler(backend dashboard.Backend, loader DashboardLoader, logger *common.Logger) *Handler {
	logger = logger.OrSilent()

	mcpSrv := mcpserver.NewMCPServer(
		"invest-portal",
		config.GetVersion(),
		mcpserver.WithToolCapabilities(false),
	)

	count := RegisterTools(mcpSrv, backend, loader)

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().Int("tools", count).Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		logger:     logger,
		tools:      count,
	}
}

// ToolCount returns the number of registered tools.
func (h *Handler) ToolCount() int {
	return h.tools
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
