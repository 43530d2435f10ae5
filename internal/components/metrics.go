package components

import (
	"fmt"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// Metric is one tile of the metrics grid.
type Metric struct {
	Label string
	Value string
	Note  string
	Class string
}

// MetricsGrid is the performance summary shown on the dashboard and portfolio pages.
type MetricsGrid struct {
	TotalReturn Metric
	MaxDrawdown Metric
	BestDay     Metric
	WorstDay    Metric
	StartValue  string
	EndValue    string
	DaysTracked string
}

// NewMetricsGrid formats backend performance metrics. Values are passed through unchanged.
func NewMetricsGrid(m models.PerformanceMetrics, money common.Money) MetricsGrid {
	return MetricsGrid{
		TotalReturn: Metric{
			Label: "Total Return",
			Value: common.FormatPercent(m.TotalReturnPct),
			Note:  money.FormatSigned(m.TotalReturnAmount),
			Class: common.SignClass(m.TotalReturnPct),
		},
		MaxDrawdown: Metric{
			Label: "Max Drawdown",
			Value: fmt.Sprintf("-%.2f%%", m.MaxDrawdownPct),
			Note:  "Peak to trough",
			Class: common.ClassNegative,
		},
		BestDay: Metric{
			Label: "Best Day",
			Value: common.FormatPercent(m.BestDayReturn),
			Note:  "Single day gain",
			Class: common.SignClass(m.BestDayReturn),
		},
		WorstDay: Metric{
			Label: "Worst Day",
			Value: common.FormatPercent(m.WorstDayReturn),
			Note:  "Single day loss",
			Class: common.SignClass(m.WorstDayReturn),
		},
		StartValue:  money.Format(m.StartingValue),
		EndValue:    money.Format(m.CurrentValue),
		DaysTracked: fmt.Sprintf("%d days", m.DaysTracked),
	}
}
