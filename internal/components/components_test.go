package components

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func TestDerivePosition_WithCurrentPrice(t *testing.T) {
	p := models.Position{Symbol: "TCS", Quantity: 10, AvgPrice: 3500, CurrentPrice: f64(3800)}
	v := DerivePosition(p)

	assert.Equal(t, "38000", v.CurrentValue.String(), "value is quantity * current price")
	assert.Equal(t, "35000", v.CostBasis.String(), "cost basis defaults to quantity * avg price")
	assert.True(t, v.UnrealizedPnL.Equal(v.CurrentValue.Sub(v.CostBasis)))
	assert.Equal(t, "3000", v.UnrealizedPnL.String())
}

func TestDerivePosition_ExplicitCostBasis(t *testing.T) {
	p := models.Position{Quantity: 10, AvgPrice: 3500, CurrentPrice: f64(3400), CostBasis: f64(35100)}
	v := DerivePosition(p)
	assert.Equal(t, "35100", v.CostBasis.String())
	assert.Equal(t, "-1100", v.UnrealizedPnL.String())
}

func TestDerivePosition_NoPriceUsesBackendValue(t *testing.T) {
	p := models.Position{Quantity: 10, AvgPrice: 100, CurrentValue: f64(1200)}
	v := DerivePosition(p)
	assert.Equal(t, "1200", v.CurrentValue.String())
	assert.Equal(t, "200", v.UnrealizedPnL.String())
	assert.Equal(t, "20", v.PnLPct.String())
}

func TestDerivePosition_MinimalFallsBackToCost(t *testing.T) {
	v := DerivePosition(models.Position{Quantity: 4, AvgPrice: 250})
	assert.Equal(t, "1000", v.CurrentValue.String())
	assert.True(t, v.UnrealizedPnL.IsZero())
}

func TestNewPositionCard(t *testing.T) {
	card := NewPositionCard(models.Position{
		Symbol: "INFY", Quantity: 20, AvgPrice: 1500, CurrentPrice: f64(1450), DaysHeld: intp(7),
	}, rupees)

	assert.Equal(t, "INFY", card.Symbol)
	assert.Equal(t, "20", card.Quantity)
	assert.Equal(t, "₹29,000", card.CurrentValue)
	assert.Equal(t, "₹30,000", card.CostBasis)
	assert.Equal(t, "-₹1,000", card.PnL)
	assert.Equal(t, common.ClassNegative, card.PnLClass)
	assert.Equal(t, "₹1,450", card.CurrentPrice)
	assert.Equal(t, "7", card.DaysHeld)
}

func TestNewPositionRows_WeightOfEquity(t *testing.T) {
	positions := []models.Position{
		{Symbol: "TCS", Quantity: 10, AvgPrice: 300},
		{Symbol: "INFY", Quantity: 10, AvgPrice: 700},
	}
	rows := NewPositionRows(positions, 10000, rupees)
	require.Len(t, rows, 2)
	assert.Equal(t, "30.0%", rows[0].Weight)
	assert.Equal(t, "70.0%", rows[1].Weight)
}

func TestNewPositionRows_ZeroEquity(t *testing.T) {
	rows := NewPositionRows([]models.Position{{Symbol: "TCS", Quantity: 1, AvgPrice: 1}}, 0, rupees)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].WeightPct)
}

func TestNewAllocation(t *testing.T) {
	state := models.PortfolioState{CurrentValue: 1000000, CashBalance: 250000, EquityValue: 750000}
	alloc := NewAllocation(state, rupees)

	assert.Equal(t, "₹1,000,000", alloc.Total)
	assert.Equal(t, "25.0%", alloc.Cash.Share)
	assert.Equal(t, "75.0%", alloc.Equity.Share)
	assert.Equal(t, "₹250,000", alloc.Cash.Amount)
}

func TestNewAllocation_ZeroTotal(t *testing.T) {
	alloc := NewAllocation(models.PortfolioState{}, rupees)
	assert.Equal(t, 0.0, alloc.Cash.SharePct)
	assert.Equal(t, 0.0, alloc.Equity.SharePct)
	assert.Equal(t, "0.0%", alloc.Cash.Share)
}

func TestNewMetricsGrid_PassesValuesThrough(t *testing.T) {
	grid := NewMetricsGrid(models.PerformanceMetrics{
		TotalReturnPct:    -3.456,
		TotalReturnAmount: -34560,
		MaxDrawdownPct:    8.2,
		DaysTracked:       45,
		StartingValue:     1000000,
		CurrentValue:      965440,
		BestDayReturn:     2.1,
		WorstDayReturn:    -1.75,
	}, rupees)

	assert.Equal(t, "-3.46%", grid.TotalReturn.Value)
	assert.Equal(t, common.ClassNegative, grid.TotalReturn.Class)
	assert.Equal(t, "-₹34,560", grid.TotalReturn.Note)
	assert.Equal(t, "-8.20%", grid.MaxDrawdown.Value)
	assert.Equal(t, "+2.10%", grid.BestDay.Value)
	assert.Equal(t, "-1.75%", grid.WorstDay.Value)
	assert.Equal(t, "₹1,000,000", grid.StartValue)
	assert.Equal(t, "₹965,440", grid.EndValue)
	assert.Equal(t, "45 days", grid.DaysTracked)
}

func TestActionClass(t *testing.T) {
	assert.Equal(t, ActionBuy, ActionClass("Buy 10 TCS"))
	assert.Equal(t, ActionSell, ActionClass("SELL 5 INFY"))
	assert.Equal(t, ActionNeutral, ActionClass("Hold all positions"))
}

func TestConfidenceClass(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.95, ConfidenceHigh},
		{0.8, ConfidenceHigh},
		{0.79, ConfidenceMedium},
		{0.6, ConfidenceMedium},
		{0.59, ConfidenceLow},
		{0, ConfidenceLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceClass(tt.confidence), "confidence %v", tt.confidence)
	}
}

func TestNewDecisionCard_WithTradeAndOutcome(t *testing.T) {
	d := models.DecisionWithOutcome{
		DecisionID:    7,
		ActionSummary: "BUY 10 TCS",
		Confidence:    0.853,
		Reasoning:     "Momentum",
		ModelUsed:     "gpt-4",
		Trade:         &models.TradeExecution{Side: "BUY", Symbol: "TCS", Quantity: 10, Price: 3500, TotalValue: 35000},
		Outcome:       &models.TradeOutcome{PositionChange: "opened", OutcomeStatus: "profitable", DaysHeld: intp(3), UnrealizedPnL: f64(1200)},
	}
	card := NewDecisionCard(d, rupees)

	assert.Equal(t, "/decisions/7", card.Href)
	assert.Equal(t, ActionBuy, card.ActionClass)
	assert.Equal(t, "85.3%", card.Confidence)
	assert.Equal(t, ConfidenceHigh, card.ConfidenceClass)
	require.NotNil(t, card.Trade)
	assert.Equal(t, ActionBuy, card.Trade.SideClass)
	assert.Equal(t, "₹35,000", card.Trade.Total)
	require.NotNil(t, card.Outcome)
	assert.Equal(t, "3", card.Outcome.DaysHeld)
	assert.Equal(t, "+₹1,200", card.Outcome.PnL)
}

func TestNewDecisionCard_WithoutTrade(t *testing.T) {
	card := NewDecisionCard(models.DecisionWithOutcome{DecisionID: 2, ActionSummary: "HOLD", Confidence: 0.4}, rupees)
	assert.Nil(t, card.Trade)
	assert.Nil(t, card.Outcome)
	assert.Equal(t, ConfidenceLow, card.ConfidenceClass)
}

func TestNewDecisionDetailCard_KeepsRawOutput(t *testing.T) {
	card := NewDecisionDetailCard(models.DecisionDetail{DecisionID: 3, RawLLMOutput: `{"action":"hold"}`}, rupees)
	assert.Equal(t, `{"action":"hold"}`, card.RawOutput)
}

func TestNewDecisionStats(t *testing.T) {
	decisions := []models.DecisionWithOutcome{
		{Confidence: 0.9, Trade: &models.TradeExecution{}},
		{Confidence: 0.7, Trade: &models.TradeExecution{}},
		{Confidence: 0.5},
		{Confidence: 0.8},
	}
	stats := NewDecisionStats(decisions)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Executed)
	assert.Equal(t, 2, stats.HighConfidence)
	assert.Equal(t, "72.5%", stats.AvgConfidence)
}

func TestNewDecisionStats_Empty(t *testing.T) {
	stats := NewDecisionStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, "0.0%", stats.AvgConfidence)
}

func TestNewTradeRows(t *testing.T) {
	rows := NewTradeRows([]models.TradeRecord{
		{TradeID: 1, Symbol: "TCS", Side: "SELL", Quantity: 5, Price: 3900, TotalValue: 19500, DecisionID: intp(9)},
		{TradeID: 2, Symbol: "INFY", Side: "BUY", Quantity: 2, Price: 1500, TotalValue: 3000},
	}, rupees)
	require.Len(t, rows, 2)
	assert.Equal(t, ActionSell, rows[0].SideClass)
	assert.Equal(t, "₹19,500", rows[0].Total)
	assert.Equal(t, "/decisions/9", rows[0].DecisionHref)
	assert.Empty(t, rows[1].DecisionHref)
}

func TestNewMetricsGrid_NegativeZeroReturn(t *testing.T) {
	var m models.PerformanceMetrics
	require.NoError(t, json.Unmarshal([]byte(`{"total_return_pct": -0.0, "best_day_return": -0.0}`), &m))

	grid := NewMetricsGrid(m, rupees)
	assert.Equal(t, "+0.00%", grid.TotalReturn.Value)
	assert.Equal(t, "+0.00%", grid.BestDay.Value)
}
