package models

// Trade sides.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// TradeExecution is the trade a decision produced.
type TradeExecution struct {
	TradeID    int       `json:"trade_id"`
	Symbol     string    `json:"symbol"`
	Side       string    `json:"side"`
	Quantity   float64   `json:"quantity"`
	Price      float64   `json:"price"`
	TotalValue float64   `json:"total_value"`
	ExecutedAt Timestamp `json:"executed_at"`
}

// TradeOutcome describes how a decision's trade has played out.
type TradeOutcome struct {
	PositionChange string   `json:"position_change"`
	UnrealizedPnL  *float64 `json:"unrealized_pnl,omitempty"`
	DaysHeld       *int     `json:"days_held,omitempty"`
	OutcomeStatus  string   `json:"outcome_status"`
}

// DecisionSummary is a compact decision for lists.
type DecisionSummary struct {
	DecisionID    int       `json:"decision_id"`
	ActionSummary string    `json:"action_summary"`
	Confidence    float64   `json:"confidence"`
	ModelUsed     string    `json:"model_used"`
	CreatedAt     Timestamp `json:"created_at"`
}

// DecisionWithOutcome is a decision with its optional trade and outcome.
type DecisionWithOutcome struct {
	DecisionID    int             `json:"decision_id"`
	ActionSummary string          `json:"action_summary"`
	Confidence    float64         `json:"confidence"`
	Reasoning     string          `json:"reasoning"`
	ModelUsed     string          `json:"model_used"`
	CreatedAt     Timestamp       `json:"created_at"`
	Trade         *TradeExecution `json:"trade,omitempty"`
	Outcome       *TradeOutcome   `json:"outcome,omitempty"`
}

// DecisionDetail is the full decision record including the raw model output.
type DecisionDetail struct {
	DecisionID    int             `json:"decision_id"`
	PortfolioID   int             `json:"portfolio_id"`
	ActionSummary string          `json:"action_summary"`
	Confidence    float64         `json:"confidence"`
	Reasoning     string          `json:"reasoning"`
	RawLLMOutput  string          `json:"raw_llm_output"`
	ModelUsed     string          `json:"model_used"`
	CreatedAt     Timestamp       `json:"created_at"`
	Trade         *TradeExecution `json:"trade,omitempty"`
}
