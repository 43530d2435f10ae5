// Package dashboard assembles page view-models from concurrent backend reads.
// Every load is all-or-nothing: a single failed read fails the whole page.
package dashboard

import (
	"context"
	"time"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// Backend is the read surface of the investment engine API.
type Backend interface {
	Health(ctx context.Context) (models.Health, error)
	CurrentPortfolio(ctx context.Context) (models.PortfolioState, error)
	ValueHistory(ctx context.Context, days int) (models.PortfolioValueHistory, error)
	PerformanceMetrics(ctx context.Context) (models.PerformanceMetrics, error)
	RecentDecisions(ctx context.Context, limit int) ([]models.DecisionSummary, error)
	DecisionsWithOutcomes(ctx context.Context, limit int) ([]models.DecisionWithOutcome, error)
	Decision(ctx context.Context, id int) (models.DecisionDetail, error)
	RecentTrades(ctx context.Context, limit int) (models.RecentTrades, error)
	TradesForDecision(ctx context.Context, id int) ([]models.TradeRecord, error)
}

// Windows sets how much history and how many records each page requests.
type Windows struct {
	HistoryDays          int
	PortfolioHistoryDays int
	RecentDecisions      int
	RecentTrades         int
	DecisionsPageLimit   int
}

// DefaultWindows returns the standard page windows.
func DefaultWindows() Windows {
	return Windows{
		HistoryDays:          30,
		PortfolioHistoryDays: 60,
		RecentDecisions:      5,
		RecentTrades:         20,
		DecisionsPageLimit:   50,
	}
}

// Page names used in AggregateError and logs.
const (
	PageDashboard      = "dashboard"
	PagePortfolio      = "portfolio"
	PageDecisions      = "decisions"
	PageDecisionDetail = "decision"
)

// DashboardView is the merged model of the overview page.
type DashboardView struct {
	Portfolio   models.PortfolioState        `json:"portfolio"`
	History     models.PortfolioValueHistory `json:"value_history"`
	Performance models.PerformanceMetrics    `json:"performance"`
	Decisions   []models.DecisionSummary     `json:"decisions"`
	Health      models.Health                `json:"health"`
}

// PortfolioView is the merged model of the portfolio page.
type PortfolioView struct {
	Portfolio   models.PortfolioState        `json:"portfolio"`
	History     models.PortfolioValueHistory `json:"value_history"`
	Performance models.PerformanceMetrics    `json:"performance"`
	Trades      models.RecentTrades          `json:"trades"`
	Health      models.Health                `json:"health"`
}

// DecisionsView is the merged model of the decisions page.
type DecisionsView struct {
	Decisions []models.DecisionWithOutcome `json:"decisions"`
	Health    models.Health                `json:"health"`
}

// DecisionDetailView is the merged model of a single decision page.
type DecisionDetailView struct {
	Decision models.DecisionDetail `json:"decision"`
	Trades   []models.TradeRecord  `json:"trades"`
}

// Aggregator loads page view-models from a Backend.
type Aggregator struct {
	backend Backend
	windows Windows
	logger  *common.Logger
}

// NewAggregator creates an aggregator. Zero windows fall back to DefaultWindows.
func NewAggregator(backend Backend, windows Windows, logger *common.Logger) *Aggregator {
	def := DefaultWindows()
	if windows.HistoryDays <= 0 {
		windows.HistoryDays = def.HistoryDays
	}
	if windows.PortfolioHistoryDays <= 0 {
		windows.PortfolioHistoryDays = def.PortfolioHistoryDays
	}
	if windows.RecentDecisions <= 0 {
		windows.RecentDecisions = def.RecentDecisions
	}
	if windows.RecentTrades <= 0 {
		windows.RecentTrades = def.RecentTrades
	}
	if windows.DecisionsPageLimit <= 0 {
		windows.DecisionsPageLimit = def.DecisionsPageLimit
	}
	return &Aggregator{backend: backend, windows: windows, logger: logger.OrSilent()}
}

// Windows returns the effective page windows.
func (a *Aggregator) Windows() Windows {
	return a.windows
}

// LoadDashboard fetches state, history, performance, recent decisions and health concurrently.
func (a *Aggregator) LoadDashboard(ctx context.Context) (*DashboardView, error) {
	var v DashboardView
	err := a.run(ctx, PageDashboard,
		Call{Name: "portfolio", Run: func(ctx context.Context) (err error) {
			v.Portfolio, err = a.backend.CurrentPortfolio(ctx)
			return err
		}},
		Call{Name: "value-history", Run: func(ctx context.Context) (err error) {
			v.History, err = a.backend.ValueHistory(ctx, a.windows.HistoryDays)
			return err
		}},
		Call{Name: "performance", Run: func(ctx context.Context) (err error) {
			v.Performance, err = a.backend.PerformanceMetrics(ctx)
			return err
		}},
		Call{Name: "recent-decisions", Run: func(ctx context.Context) (err error) {
			v.Decisions, err = a.backend.RecentDecisions(ctx, a.windows.RecentDecisions)
			return err
		}},
		Call{Name: "health", Run: func(ctx context.Context) (err error) {
			v.Health, err = a.backend.Health(ctx)
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// LoadPortfolioPage fetches state, the longer history window, performance, recent trades and health.
func (a *Aggregator) LoadPortfolioPage(ctx context.Context) (*PortfolioView, error) {
	var v PortfolioView
	err := a.run(ctx, PagePortfolio,
		Call{Name: "portfolio", Run: func(ctx context.Context) (err error) {
			v.Portfolio, err = a.backend.CurrentPortfolio(ctx)
			return err
		}},
		Call{Name: "value-history", Run: func(ctx context.Context) (err error) {
			v.History, err = a.backend.ValueHistory(ctx, a.windows.PortfolioHistoryDays)
			return err
		}},
		Call{Name: "performance", Run: func(ctx context.Context) (err error) {
			v.Performance, err = a.backend.PerformanceMetrics(ctx)
			return err
		}},
		Call{Name: "recent-trades", Run: func(ctx context.Context) (err error) {
			v.Trades, err = a.backend.RecentTrades(ctx, a.windows.RecentTrades)
			return err
		}},
		Call{Name: "health", Run: func(ctx context.Context) (err error) {
			v.Health, err = a.backend.Health(ctx)
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// LoadDecisionsPage fetches decisions with outcomes and health.
func (a *Aggregator) LoadDecisionsPage(ctx context.Context) (*DecisionsView, error) {
	var v DecisionsView
	err := a.run(ctx, PageDecisions,
		Call{Name: "decisions-with-outcomes", Run: func(ctx context.Context) (err error) {
			v.Decisions, err = a.backend.DecisionsWithOutcomes(ctx, a.windows.DecisionsPageLimit)
			return err
		}},
		Call{Name: "health", Run: func(ctx context.Context) (err error) {
			v.Health, err = a.backend.Health(ctx)
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// LoadDecisionDetail fetches one decision and the trades it produced.
func (a *Aggregator) LoadDecisionDetail(ctx context.Context, id int) (*DecisionDetailView, error) {
	var v DecisionDetailView
	err := a.run(ctx, PageDecisionDetail,
		Call{Name: "decision", Run: func(ctx context.Context) (err error) {
			v.Decision, err = a.backend.Decision(ctx, id)
			return err
		}},
		Call{Name: "trades-for-decision", Run: func(ctx context.Context) (err error) {
			v.Trades, err = a.backend.TradesForDecision(ctx, id)
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *Aggregator) run(ctx context.Context, page string, calls ...Call) error {
	start := time.Now()
	err := FanOut(ctx, page, calls...)
	if err != nil {
		a.logger.WithContext(ctx).Warn().Str("page", page).Err(err).Msg("Page load failed")
		return err
	}
	a.logger.WithContext(ctx).Debug().
		Str("page", page).
		Int("calls", len(calls)).
		Dur("duration", time.Since(start)).
		Msg("Page loaded")
	return nil
}
