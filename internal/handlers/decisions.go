package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bobmcallan/invest-portal/internal/components"
	"github.com/bobmcallan/invest-portal/internal/dashboard"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// decisionsPage is the data behind decisions.html.
type decisionsPage struct {
	basePage
	Health    models.Health
	Stats     components.DecisionStats
	Decisions []components.DecisionCard
}

// decisionPage is the data behind decision.html.
type decisionPage struct {
	basePage
	Decision components.DecisionCard
	Trades   []components.TradeRow
}

// Decisions renders the decision history with outcomes.
func (h *PageHandler) Decisions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	result := dashboard.Settle(h.loader.LoadDecisionsPage(r.Context()))
	if result.State() == dashboard.StateError {
		h.renderError(w, r, StatusFor(result.Err), headingFor(result.Err), result.Err)
		return
	}
	v := result.Value

	cards := make([]components.DecisionCard, 0, len(v.Decisions))
	for _, d := range v.Decisions {
		cards = append(cards, components.NewDecisionCard(d, h.money))
	}

	data := decisionsPage{
		basePage:  h.base("decisions", "Decisions"),
		Health:    v.Health,
		Stats:     components.NewDecisionStats(v.Decisions),
		Decisions: cards,
	}
	h.render(w, r, http.StatusOK, "decisions.html", data)
}

// DecisionDetail renders one decision and the trades it produced.
func (h *PageHandler) DecisionDetail(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		h.renderError(w, r, http.StatusBadRequest, "Invalid decision", fmt.Errorf("invalid decision id %q", raw))
		return
	}

	result := dashboard.Settle(h.loader.LoadDecisionDetail(r.Context(), id))
	if result.State() == dashboard.StateError {
		h.renderError(w, r, StatusFor(result.Err), headingFor(result.Err), result.Err)
		return
	}
	v := result.Value

	data := decisionPage{
		basePage: h.base("decisions", fmt.Sprintf("Decision #%d", id)),
		Decision: components.NewDecisionDetailCard(v.Decision, h.money),
		Trades:   components.NewTradeRows(v.Trades, h.money),
	}
	h.render(w, r, http.StatusOK, "decision.html", data)
}
