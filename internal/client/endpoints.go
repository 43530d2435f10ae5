package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bobmcallan/invest-portal/internal/models"
)

// Query defaults applied when a caller passes a non-positive window.
const (
	DefaultHistoryDays          = 30
	DefaultRecentDecisions      = 10
	DefaultDecisionsWithOutcome = 20
	DefaultRecentTrades         = 20
)

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func intQuery(key string, v int) url.Values {
	return url.Values{key: []string{strconv.Itoa(v)}}
}

// Health fetches GET /api/health.
func (c *Client) Health(ctx context.Context) (models.Health, error) {
	return Request[models.Health](ctx, c, "/api/health", nil)
}

// CurrentPortfolio fetches GET /api/portfolio/current.
func (c *Client) CurrentPortfolio(ctx context.Context) (models.PortfolioState, error) {
	return Request[models.PortfolioState](ctx, c, "/api/portfolio/current", nil)
}

// ValueHistory fetches GET /api/portfolio/value-history?days=N.
func (c *Client) ValueHistory(ctx context.Context, days int) (models.PortfolioValueHistory, error) {
	q := intQuery("days", positiveOr(days, DefaultHistoryDays))
	return Request[models.PortfolioValueHistory](ctx, c, "/api/portfolio/value-history", q)
}

// PerformanceMetrics fetches GET /api/portfolio/performance.
func (c *Client) PerformanceMetrics(ctx context.Context) (models.PerformanceMetrics, error) {
	return Request[models.PerformanceMetrics](ctx, c, "/api/portfolio/performance", nil)
}

// RecentDecisions fetches GET /api/decisions/recent?limit=N.
func (c *Client) RecentDecisions(ctx context.Context, limit int) ([]models.DecisionSummary, error) {
	q := intQuery("limit", positiveOr(limit, DefaultRecentDecisions))
	return Request[[]models.DecisionSummary](ctx, c, "/api/decisions/recent", q)
}

// DecisionsWithOutcomes fetches GET /api/decisions/with-outcomes?limit=N.
func (c *Client) DecisionsWithOutcomes(ctx context.Context, limit int) ([]models.DecisionWithOutcome, error) {
	q := intQuery("limit", positiveOr(limit, DefaultDecisionsWithOutcome))
	return Request[[]models.DecisionWithOutcome](ctx, c, "/api/decisions/with-outcomes", q)
}

// Decision fetches GET /api/decisions/{id}.
func (c *Client) Decision(ctx context.Context, id int) (models.DecisionDetail, error) {
	return Request[models.DecisionDetail](ctx, c, "/api/decisions/"+strconv.Itoa(id), nil)
}

// RecentTrades fetches GET /api/trades/recent?limit=N.
func (c *Client) RecentTrades(ctx context.Context, limit int) (models.RecentTrades, error) {
	q := intQuery("limit", positiveOr(limit, DefaultRecentTrades))
	return Request[models.RecentTrades](ctx, c, "/api/trades/recent", q)
}

// TradesForDecision fetches GET /api/trades/for-decision/{id}.
func (c *Client) TradesForDecision(ctx context.Context, id int) ([]models.TradeRecord, error) {
	return Request[[]models.TradeRecord](ctx, c, "/api/trades/for-decision/"+strconv.Itoa(id), nil)
}
