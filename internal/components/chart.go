// Package components turns decoded backend records into display-ready view structs.
// Every constructor is a total function: no I/O and no error return.
package components

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/models"
)

// Chart geometry in SVG user units.
const (
	ChartWidth   = 400.0
	ChartHeight  = 200.0
	ChartPadding = 40.0
	ChartGrid    = 40.0
)

// Trend stroke colours.
const (
	StrokePositive = "#10b981"
	StrokeNegative = "#ef4444"
)

// ChartPoint is one plotted snapshot.
type ChartPoint struct {
	X     float64
	Y     float64
	Date  string
	Value float64
}

// ValueChart is the SVG line chart of portfolio value over time.
type ValueChart struct {
	Empty     bool
	Width     float64
	Height    float64
	Grid      float64
	Points    []ChartPoint
	Polyline  string
	MinValue  float64
	MaxValue  float64
	ReturnPct float64
	Positive  bool
	Class     string
	Stroke    string

	CurrentValue string
	Return       string
	FirstDate    string
	LastDate     string
}

// NewValueChart scales snapshots into the chart area. The first snapshot sits at the left
// padding, the last at the right; the minimum value sits on the bottom padding line and the
// maximum on the top one. A flat series is drawn along the bottom line.
func NewValueChart(snapshots []models.PortfolioSnapshot, money common.Money) ValueChart {
	chart := ValueChart{Width: ChartWidth, Height: ChartHeight, Grid: ChartGrid}
	n := len(snapshots)
	if n == 0 {
		chart.Empty = true
		return chart
	}

	values := make([]float64, n)
	for i, s := range snapshots {
		values[i] = s.TotalValue
	}
	chart.MinValue = floats.Min(values)
	chart.MaxValue = floats.Max(values)
	valueRange := chart.MaxValue - chart.MinValue
	if valueRange == 0 {
		valueRange = 1
	}

	plotW := ChartWidth - 2*ChartPadding
	plotH := ChartHeight - 2*ChartPadding
	coords := make([]string, n)
	chart.Points = make([]ChartPoint, n)
	for i, s := range snapshots {
		x := ChartPadding + plotW/2
		if n > 1 {
			x = ChartPadding + (float64(i)/float64(n-1))*plotW
		}
		y := ChartHeight - ChartPadding - ((s.TotalValue-chart.MinValue)/valueRange)*plotH
		chart.Points[i] = ChartPoint{X: x, Y: y, Date: s.Date, Value: s.TotalValue}
		coords[i] = formatCoord(x) + "," + formatCoord(y)
	}
	chart.Polyline = strings.Join(coords, " ")

	first, last := values[0], values[n-1]
	if first != 0 {
		chart.ReturnPct = (last - first) / first * 100
	}
	chart.Positive = chart.ReturnPct >= 0
	chart.Class = common.SignClass(chart.ReturnPct)
	chart.Stroke = StrokeNegative
	if chart.Positive {
		chart.Stroke = StrokePositive
	}

	chart.CurrentValue = money.Format(last)
	chart.Return = common.FormatPercent(chart.ReturnPct)
	chart.FirstDate = snapshots[0].Date
	chart.LastDate = snapshots[n-1].Date
	return chart
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
