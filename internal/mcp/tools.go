package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/invest-portal/internal/client"
	"github.com/bobmcallan/invest-portal/internal/dashboard"
)

// DashboardLoader assembles the merged dashboard view.
type DashboardLoader interface {
	LoadDashboard(ctx context.Context) (*dashboard.DashboardView, error)
}

// RegisterTools adds every read-only tool to s and returns how many were registered.
func RegisterTools(s *server.MCPServer, backend dashboard.Backend, loader DashboardLoader) int {
	tools := []server.ServerTool{
		{
			Tool: mcp.NewTool("get_portfolio",
				mcp.WithDescription("Current portfolio state: value, cash, equity and positions."),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(backend.CurrentPortfolio(ctx))
			},
		},
		{
			Tool: mcp.NewTool("get_value_history",
				mcp.WithDescription("Daily portfolio value snapshots, oldest first."),
				mcp.WithNumber("days", mcp.Description("Number of days of history (default 30)")),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(backend.ValueHistory(ctx, r.GetInt("days", client.DefaultHistoryDays)))
			},
		},
		{
			Tool: mcp.NewTool("get_performance",
				mcp.WithDescription("Portfolio performance metrics: return, drawdown, best and worst day."),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(backend.PerformanceMetrics(ctx))
			},
		},
		{
			Tool: mcp.NewTool("get_recent_decisions",
				mcp.WithDescription("Most recent AI investment decisions."),
				mcp.WithNumber("limit", mcp.Description("Maximum decisions to return (default 10)")),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(backend.RecentDecisions(ctx, r.GetInt("limit", client.DefaultRecentDecisions)))
			},
		},
		{
			Tool: mcp.NewTool("get_decisions_with_outcomes",
				mcp.WithDescription("Decisions with their executed trade and outcome, if any."),
				mcp.WithNumber("limit", mcp.Description("Maximum decisions to return (default 20)")),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(backend.DecisionsWithOutcomes(ctx, r.GetInt("limit", client.DefaultDecisionsWithOutcome)))
			},
		},
		{
			Tool: mcp.NewTool("get_decision",
				mcp.WithDescription("Full decision record including reasoning and raw model output."),
				mcp.WithNumber("id", mcp.Required(), mcp.Description("Decision ID")),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				id, err := requireID(r)
				if err != nil {
					return errorResult(err.Error()), nil
				}
				return jsonResult(backend.Decision(ctx, id))
			},
		},
		{
			Tool: mcp.NewTool("get_recent_trades",
				mcp.WithDescription("Most recent executed trades and the total trade count."),
				mcp.WithNumber("limit", mcp.Description("Maximum trades to return (default 20)")),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(backend.RecentTrades(ctx, r.GetInt("limit", client.DefaultRecentTrades)))
			},
		},
		{
			Tool: mcp.NewTool("get_trades_for_decision",
				mcp.WithDescription("Trades executed as a result of a decision."),
				mcp.WithNumber("id", mcp.Required(), mcp.Description("Decision ID")),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				id, err := requireID(r)
				if err != nil {
					return errorResult(err.Error()), nil
				}
				return jsonResult(backend.TradesForDecision(ctx, id))
			},
		},
		{
			Tool: mcp.NewTool("get_dashboard",
				mcp.WithDescription("Merged dashboard view: portfolio, value history, performance, recent decisions and backend health."),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(loader.LoadDashboard(ctx))
			},
		},
		{
			Tool:    VersionTool(),
			Handler: VersionToolHandler(backend),
		},
	}

	s.AddTools(tools...)
	return len(tools)
}

// jsonResult marshals v as the tool's text content, or turns err into an error result.
func jsonResult[T any](v T, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return errorResult(err.Error()), nil
	}
	out, err := json.Marshal(v)
	if err != nil {
		return errorResult("failed to marshal response: " + err.Error()), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
	}, nil
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

var errInvalidID = errors.New("id must be a positive integer")

// requireID reads the mandatory positive "id" argument.
func requireID(r mcp.CallToolRequest) (int, error) {
	id, err := r.RequireInt("id")
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
