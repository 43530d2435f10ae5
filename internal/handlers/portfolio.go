package handlers

import (
	"net/http"

	"github.com/bobmcallan/invest-portal/internal/components"
	"github.com/bobmcallan/invest-portal/internal/dashboard"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// portfolioPage is the data behind portfolio.html.
type portfolioPage struct {
	basePage
	Health      models.Health
	Snapshot    models.Timestamp
	Allocation  components.Allocation
	Chart       components.ValueChart
	Metrics     components.MetricsGrid
	Positions   []components.PositionCard
	Trades      []components.TradeRow
	TotalTrades int
}

// Portfolio renders holdings, allocation and trade history.
func (h *PageHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	result := dashboard.Settle(h.loader.LoadPortfolioPage(r.Context()))
	if result.State() == dashboard.StateError {
		h.renderError(w, r, StatusFor(result.Err), headingFor(result.Err), result.Err)
		return
	}
	v := result.Value

	positions := make([]components.PositionCard, 0, len(v.Portfolio.Positions))
	for _, p := range v.Portfolio.Positions {
		positions = append(positions, components.NewPositionCard(p, h.money))
	}

	data := portfolioPage{
		basePage:    h.base("portfolio", "Portfolio"),
		Health:      v.Health,
		Snapshot:    v.Portfolio.SnapshotDate,
		Allocation:  components.NewAllocation(v.Portfolio, h.money),
		Chart:       components.NewValueChart(v.History.Snapshots, h.money),
		Metrics:     components.NewMetricsGrid(v.Performance, h.money),
		Positions:   positions,
		Trades:      components.NewTradeRows(v.Trades.Trades, h.money),
		TotalTrades: v.Trades.TotalTrades,
	}
	h.render(w, r, http.StatusOK, "portfolio.html", data)
}
