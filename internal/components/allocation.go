package components

import (
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// AllocationBar is one segment of the cash/equity split.
type AllocationBar struct {
	Label    string
	Amount   string
	Share    string
	SharePct float64
}

// Allocation is the cash versus equity breakdown of a portfolio.
type Allocation struct {
	Total     string
	Cash      AllocationBar
	Equity    AllocationBar
	Positions int
}

// NewAllocation computes each side's share of current value. A zero total yields 0% shares.
func NewAllocation(state models.PortfolioState, money common.Money) Allocation {
	return Allocation{
		Total:     money.Format(state.CurrentValue),
		Cash:      allocationBar("Cash", state.CashBalance, state.CurrentValue, money),
		Equity:    allocationBar("Equity", state.EquityValue, state.CurrentValue, money),
		Positions: len(state.Positions),
	}
}

func allocationBar(label string, amount, total float64, money common.Money) AllocationBar {
	share := decimal.Zero
	if t := decimal.NewFromFloat(total); !t.IsZero() {
		share = decimal.NewFromFloat(amount).Div(t).Mul(decimal.NewFromInt(100))
	}
	pct := share.InexactFloat64()
	return AllocationBar{
		Label:    label,
		Amount:   money.Format(amount),
		Share:    common.FormatShare(pct),
		SharePct: pct,
	}
}
