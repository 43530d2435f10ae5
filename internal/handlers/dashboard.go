package handlers

import (
	"net/http"

	"github.com/bobmcallan/invest-portal/internal/components"
	"github.com/bobmcallan/invest-portal/internal/dashboard"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// dashboardPage is the data behind dashboard.html.
type dashboardPage struct {
	basePage
	Health     models.Health
	Snapshot   models.Timestamp
	MarketData *models.Timestamp
	Allocation components.Allocation
	Chart      components.ValueChart
	Metrics    components.MetricsGrid
	Positions  []components.PositionRow
	Decisions  []components.DecisionCard
}

// Dashboard renders the overview page.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	result := dashboard.Settle(h.loader.LoadDashboard(r.Context()))
	if result.State() == dashboard.StateError {
		h.renderError(w, r, StatusFor(result.Err), headingFor(result.Err), result.Err)
		return
	}
	v := result.Value

	decisions := make([]components.DecisionCard, 0, len(v.Decisions))
	for _, d := range v.Decisions {
		decisions = append(decisions, components.NewDecisionSummaryCard(d))
	}

	data := dashboardPage{
		basePage:   h.base("dashboard", "Dashboard"),
		Health:     v.Health,
		Snapshot:   v.Portfolio.SnapshotDate,
		MarketData: v.Portfolio.MarketDataTimestamp,
		Allocation: components.NewAllocation(v.Portfolio, h.money),
		Chart:      components.NewValueChart(v.History.Snapshots, h.money),
		Metrics:    components.NewMetricsGrid(v.Performance, h.money),
		Positions:  components.NewPositionRows(v.Portfolio.Positions, v.Portfolio.EquityValue, h.money),
		Decisions:  decisions,
	}
	h.render(w, r, http.StatusOK, "dashboard.html", data)
}
