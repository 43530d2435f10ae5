package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/invest-portal/internal/handlers"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	r := s.router

	// HTML pages
	r.Get("/", s.app.PageHandler.Dashboard)
	r.Get("/portfolio", s.app.PageHandler.Portfolio)
	r.Get("/decisions", s.app.PageHandler.Decisions)
	r.Get("/decisions/{id}", s.app.PageHandler.DecisionDetail)

	r.Get("/static/*", s.app.PageHandler.StaticFileHandler)

	// MCP endpoint (JSON-RPC over HTTP)
	if s.app.MCPHandler != nil {
		r.Handle("/mcp", s.app.MCPHandler)
	}

	// Portal API
	r.Get("/api/health", s.app.HealthHandler.ServeHTTP)
	r.Get("/api/version", s.app.VersionHandler.ServeHTTP)
	r.Get("/api/server-health", s.app.ServerHealthHandler.ServeHTTP)

	r.NotFound(s.handleNotFound)
}

// handleNotFound returns a JSON 404 for unmatched API routes and a plain 404 otherwise.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}
	handlers.WriteError(w, http.StatusNotFound, "endpoint "+r.URL.Path+" does not exist")
}
