package models

// TradeRecord is an executed trade. TotalValue == Quantity * Price.
type TradeRecord struct {
	TradeID     int       `json:"trade_id"`
	PortfolioID int       `json:"portfolio_id"`
	Symbol      string    `json:"symbol"`
	Side        string    `json:"side"`
	Quantity    float64   `json:"quantity"`
	Price       float64   `json:"price"`
	TotalValue  float64   `json:"total_value"`
	ExecutedAt  Timestamp `json:"executed_at"`
	DecisionID  *int      `json:"decision_id,omitempty"`
}

// RecentTrades is a page of recent trades plus the overall trade count.
type RecentTrades struct {
	Trades      []TradeRecord `json:"trades"`
	TotalTrades int           `json:"total_trades"`
}
