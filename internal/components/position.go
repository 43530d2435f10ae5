package components

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// PositionValues are the derived amounts for a holding.
type PositionValues struct {
	CurrentValue  decimal.Decimal
	CostBasis     decimal.Decimal
	UnrealizedPnL decimal.Decimal
	PnLPct        decimal.Decimal
}

// DerivePosition computes display amounts for p.
// Cost basis defaults to quantity * avg_price. With a current price the value is
// quantity * current_price; otherwise the backend value is used, falling back to cost basis.
// Unrealized P&L is always value minus cost basis.
func DerivePosition(p models.Position) PositionValues {
	qty := decimal.NewFromFloat(p.Quantity)

	cost := qty.Mul(decimal.NewFromFloat(p.AvgPrice))
	if p.CostBasis != nil {
		cost = decimal.NewFromFloat(*p.CostBasis)
	}

	value := cost
	switch {
	case p.CurrentPrice != nil:
		value = qty.Mul(decimal.NewFromFloat(*p.CurrentPrice))
	case p.CurrentValue != nil:
		value = decimal.NewFromFloat(*p.CurrentValue)
	}

	pnl := value.Sub(cost)
	pct := decimal.Zero
	if !cost.IsZero() {
		pct = pnl.Div(cost).Mul(decimal.NewFromInt(100))
	}

	return PositionValues{CurrentValue: value, CostBasis: cost, UnrealizedPnL: pnl, PnLPct: pct}
}

// PositionCard is the detailed holding card.
type PositionCard struct {
	Symbol       string
	Quantity     string
	DaysHeld     string
	AvgPrice     string
	CurrentPrice string
	CurrentValue string
	CostBasis    string
	PnL          string
	PnLPct       string
	PnLClass     string
}

// NewPositionCard formats a holding for the card layout.
func NewPositionCard(p models.Position, money common.Money) PositionCard {
	v := DerivePosition(p)
	pnl := v.UnrealizedPnL.InexactFloat64()

	card := PositionCard{
		Symbol:       p.Symbol,
		Quantity:     common.FormatQuantity(p.Quantity),
		AvgPrice:     money.Format(p.AvgPrice),
		CurrentValue: money.Format(v.CurrentValue.InexactFloat64()),
		CostBasis:    money.Format(v.CostBasis.InexactFloat64()),
		PnL:          money.FormatSigned(pnl),
		PnLPct:       common.FormatPercent(v.PnLPct.InexactFloat64()),
		PnLClass:     common.SignClass(pnl),
	}
	if p.CurrentPrice != nil {
		card.CurrentPrice = money.Format(*p.CurrentPrice)
	}
	if p.DaysHeld != nil {
		card.DaysHeld = strconv.Itoa(*p.DaysHeld)
	}
	return card
}

// PositionRow is one line of the holdings table.
type PositionRow struct {
	Symbol       string
	Quantity     string
	AvgPrice     string
	CurrentValue string
	Weight       string
	WeightPct    float64
}

// NewPositionRows formats holdings with each position's share of equity value.
// A zero equity value yields 0% weights.
func NewPositionRows(positions []models.Position, equityValue float64, money common.Money) []PositionRow {
	equity := decimal.NewFromFloat(equityValue)
	rows := make([]PositionRow, 0, len(positions))
	for _, p := range positions {
		v := DerivePosition(p)
		weight := decimal.Zero
		if !equity.IsZero() {
			weight = v.CurrentValue.Div(equity).Mul(decimal.NewFromInt(100))
		}
		w := weight.InexactFloat64()
		rows = append(rows, PositionRow{
			Symbol:       p.Symbol,
			Quantity:     common.FormatQuantity(p.Quantity),
			AvgPrice:     money.Format(p.AvgPrice),
			CurrentValue: money.Format(v.CurrentValue.InexactFloat64()),
			Weight:       common.FormatShare(w),
			WeightPct:    w,
		})
	}
	return rows
}
