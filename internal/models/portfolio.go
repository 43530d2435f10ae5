// Package models defines the read-only records returned by the investment engine API.
package models

// Position is one holding within a PortfolioState.
// Optional fields are pointers so an absent value is distinguishable from zero.
type Position struct {
	Symbol           string   `json:"symbol"`
	Quantity         float64  `json:"quantity"`
	AvgPrice         float64  `json:"avg_price"`
	CurrentPrice     *float64 `json:"current_price,omitempty"`
	CurrentValue     *float64 `json:"current_value,omitempty"`
	CostBasis        *float64 `json:"cost_basis,omitempty"`
	UnrealizedPnL    *float64 `json:"unrealized_pnl,omitempty"`
	UnrealizedPnLPct *float64 `json:"unrealized_pnl_pct,omitempty"`
	DaysHeld         *int     `json:"days_held,omitempty"`
}

// PortfolioState is the current portfolio snapshot.
// The backend guarantees CashBalance + EquityValue == CurrentValue.
type PortfolioState struct {
	PortfolioID         int        `json:"portfolio_id"`
	CurrentValue        float64    `json:"current_value"`
	CashBalance         float64    `json:"cash_balance"`
	EquityValue         float64    `json:"equity_value"`
	SnapshotDate        Timestamp  `json:"snapshot_date"`
	MarketDataTimestamp *Timestamp `json:"market_data_timestamp,omitempty"`
	Positions           []Position `json:"positions"`
}

// PortfolioSnapshot is one point of the value history.
type PortfolioSnapshot struct {
	Date        string  `json:"date"`
	TotalValue  float64 `json:"total_value"`
	CashBalance float64 `json:"cash_balance"`
	EquityValue float64 `json:"equity_value"`
}

// PortfolioValueHistory holds snapshots in ascending date order.
type PortfolioValueHistory struct {
	Snapshots          []PortfolioSnapshot `json:"snapshots"`
	LatestSnapshotDate Timestamp           `json:"latest_snapshot_date"`
	TotalReturnPct     float64             `json:"total_return_pct"`
	DaysTracked        int                 `json:"days_tracked"`
}

// PerformanceMetrics is the backend-computed performance summary.
type PerformanceMetrics struct {
	TotalReturnPct    float64 `json:"total_return_pct"`
	TotalReturnAmount float64 `json:"total_return_amount"`
	MaxDrawdownPct    float64 `json:"max_drawdown_pct"`
	DaysTracked       int     `json:"days_tracked"`
	StartingValue     float64 `json:"starting_value"`
	CurrentValue      float64 `json:"current_value"`
	BestDayReturn     float64 `json:"best_day_return"`
	WorstDayReturn    float64 `json:"worst_day_return"`
}

// Health is the backend health status.
type Health struct {
	Status string `json:"status"`
}

// OK reports whether the backend declared itself healthy.
func (h Health) OK() bool {
	return h.Status == "ok"
}
