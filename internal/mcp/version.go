package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/invest-portal/internal/config"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// healthChecker reads the backend health endpoint.
type healthChecker interface {
	Health(ctx context.Context) (models.Health, error)
}

// versionInfo holds version fields for the portal.
type versionInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Commit  string `json:"commit"`
}

// versionResult is the get_version payload.
type versionResult struct {
	Portal  versionInfo `json:"invest_portal"`
	Backend string      `json:"backend_status"`
}

// VersionTool returns the mcp.Tool definition for get_version.
func VersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get invest-portal version and backend status. Use this to verify connectivity."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// VersionToolHandler reports the portal version and the backend health status.
// An unreachable backend is reported as "down" rather than failing the tool.
func VersionToolHandler(checker healthChecker) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := versionResult{
			Portal: versionInfo{
				Version: config.GetVersion(),
				Build:   config.GetBuild(),
				Commit:  config.GetGitCommit(),
			},
			Backend: "down",
		}

		if health, err := checker.Health(ctx); err == nil && health.Status != "" {
			result.Backend = health.Status
		}

		out, err := json.Marshal(result)
		if err != nil {
			return errorResult("failed to marshal version info"), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(out))},
		}, nil
	}
}
