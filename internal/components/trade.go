package components

import (
	"strconv"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// TradeRow is one line of the trade history table.
type TradeRow struct {
	ID           int
	Symbol       string
	Side         string
	SideClass    string
	Quantity     string
	Price        string
	Total        string
	ExecutedAt   string
	DecisionHref string
}

func sideClass(side string) string {
	switch side {
	case models.SideBuy:
		return ActionBuy
	case models.SideSell:
		return ActionSell
	default:
		return ActionNeutral
	}
}

// NewTradeRows formats executed trades.
func NewTradeRows(trades []models.TradeRecord, money common.Money) []TradeRow {
	rows := make([]TradeRow, 0, len(trades))
	for _, t := range trades {
		row := TradeRow{
			ID:         t.TradeID,
			Symbol:     t.Symbol,
			Side:       t.Side,
			SideClass:  sideClass(t.Side),
			Quantity:   common.FormatQuantity(t.Quantity),
			Price:      money.Format(t.Price),
			Total:      money.Format(t.TotalValue),
			ExecutedAt: t.ExecutedAt.Short(),
		}
		if t.DecisionID != nil {
			row.DecisionHref = "/decisions/" + strconv.Itoa(*t.DecisionID)
		}
		rows = append(rows, row)
	}
	return rows
}
