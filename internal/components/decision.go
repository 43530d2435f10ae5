package components

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// Confidence thresholds.
const (
	HighConfidence   = 0.8
	MediumConfidence = 0.6
)

// Action and confidence classes.
const (
	ActionBuy        = "buy"
	ActionSell       = "sell"
	ActionNeutral    = "neutral"
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ActionClass classifies a decision summary by whether it mentions BUY or SELL.
func ActionClass(summary string) string {
	upper := strings.ToUpper(summary)
	switch {
	case strings.Contains(upper, models.SideBuy):
		return ActionBuy
	case strings.Contains(upper, models.SideSell):
		return ActionSell
	default:
		return ActionNeutral
	}
}

// ConfidenceClass buckets a confidence in [0,1].
func ConfidenceClass(confidence float64) string {
	switch {
	case confidence >= HighConfidence:
		return ConfidenceHigh
	case confidence >= MediumConfidence:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// FormatConfidence renders 0.853 as "85.3%".
func FormatConfidence(confidence float64) string {
	return fmt.Sprintf("%.1f%%", confidence*100)
}

// TradeLine is the execution summary inside a decision card.
type TradeLine struct {
	Side       string
	SideClass  string
	Quantity   string
	Symbol     string
	Price      string
	Total      string
	ExecutedAt string
}

func newTradeLine(t models.TradeExecution, money common.Money) *TradeLine {
	return &TradeLine{
		Side:       t.Side,
		SideClass:  sideClass(t.Side),
		Quantity:   common.FormatQuantity(t.Quantity),
		Symbol:     t.Symbol,
		Price:      money.Format(t.Price),
		Total:      money.Format(t.TotalValue),
		ExecutedAt: t.ExecutedAt.Short(),
	}
}

// OutcomeLine is the outcome summary inside a decision card.
type OutcomeLine struct {
	PositionChange string
	Status         string
	DaysHeld       string
	PnL            string
	PnLClass       string
}

// DecisionCard is a decision formatted for lists and the detail page.
type DecisionCard struct {
	ID              int
	Href            string
	CreatedAt       string
	ModelUsed       string
	ActionSummary   string
	ActionClass     string
	Confidence      string
	ConfidencePct   float64
	ConfidenceClass string
	Reasoning       string
	RawOutput       string
	Trade           *TradeLine
	Outcome         *OutcomeLine
}

func newDecisionCard(id int, summary string, confidence float64, model string, created models.Timestamp) DecisionCard {
	return DecisionCard{
		ID:              id,
		Href:            "/decisions/" + strconv.Itoa(id),
		CreatedAt:       created.Short(),
		ModelUsed:       model,
		ActionSummary:   summary,
		ActionClass:     ActionClass(summary),
		Confidence:      FormatConfidence(confidence),
		ConfidencePct:   confidence * 100,
		ConfidenceClass: ConfidenceClass(confidence),
	}
}

// NewDecisionSummaryCard formats a compact decision.
func NewDecisionSummaryCard(d models.DecisionSummary) DecisionCard {
	return newDecisionCard(d.DecisionID, d.ActionSummary, d.Confidence, d.ModelUsed, d.CreatedAt)
}

// NewDecisionCard formats a decision with its trade and outcome.
func NewDecisionCard(d models.DecisionWithOutcome, money common.Money) DecisionCard {
	card := newDecisionCard(d.DecisionID, d.ActionSummary, d.Confidence, d.ModelUsed, d.CreatedAt)
	card.Reasoning = d.Reasoning
	if d.Trade != nil {
		card.Trade = newTradeLine(*d.Trade, money)
	}
	if o := d.Outcome; o != nil {
		line := &OutcomeLine{PositionChange: o.PositionChange, Status: o.OutcomeStatus}
		if o.DaysHeld != nil {
			line.DaysHeld = strconv.Itoa(*o.DaysHeld)
		}
		if o.UnrealizedPnL != nil {
			line.PnL = money.FormatSigned(*o.UnrealizedPnL)
			line.PnLClass = common.SignClass(*o.UnrealizedPnL)
		}
		card.Outcome = line
	}
	return card
}

// NewDecisionDetailCard formats the full decision record including the raw model output.
func NewDecisionDetailCard(d models.DecisionDetail, money common.Money) DecisionCard {
	card := newDecisionCard(d.DecisionID, d.ActionSummary, d.Confidence, d.ModelUsed, d.CreatedAt)
	card.Reasoning = d.Reasoning
	card.RawOutput = d.RawLLMOutput
	if d.Trade != nil {
		card.Trade = newTradeLine(*d.Trade, money)
	}
	return card
}

// DecisionStats summarises a list of decisions.
type DecisionStats struct {
	Total          int
	Executed       int
	AvgConfidence  string
	HighConfidence int
}

// NewDecisionStats counts executed and high-confidence decisions and averages confidence.
// An empty list averages to 0%.
func NewDecisionStats(decisions []models.DecisionWithOutcome) DecisionStats {
	stats := DecisionStats{Total: len(decisions)}
	confidences := make([]float64, 0, len(decisions))
	for _, d := range decisions {
		confidences = append(confidences, d.Confidence)
		if d.Trade != nil {
			stats.Executed++
		}
		if d.Confidence >= HighConfidence {
			stats.HighConfidence++
		}
	}

	avg := 0.0
	if len(confidences) > 0 {
		avg = stat.Mean(confidences, nil)
	}
	stats.AvgConfidence = FormatConfidence(avg)
	return stats
}
