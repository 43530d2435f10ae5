package common

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Sign classes used by templates to colour values.
const (
	ClassPositive = "positive"
	ClassNegative = "negative"
)

// Money formats amounts with a fixed symbol prefix and locale digit grouping.
type Money struct {
	Symbol  string
	printer *message.Printer
}

// NewMoney builds a Money formatter. Unknown locales fall back to en-US.
func NewMoney(symbol, locale string) Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return Money{Symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format renders v as e.g. "₹1,234,567" or "-₹1,234.5" (at most two fraction digits).
func (m Money) Format(v float64) string {
	rounded := decimal.NewFromFloat(v).Round(2)
	negative := rounded.IsNegative()
	if negative {
		rounded = rounded.Neg()
	}

	p := m.printer
	if p == nil {
		p = message.NewPrinter(language.AmericanEnglish)
	}
	grouped := p.Sprintf("%v", number.Decimal(rounded.InexactFloat64(), number.MaxFractionDigits(2)))

	if negative {
		return "-" + m.Symbol + grouped
	}
	return m.Symbol + grouped
}

// FormatSigned renders v with an explicit "+" for non-negative amounts.
func (m Money) FormatSigned(v float64) string {
	if v >= 0 {
		return "+" + m.Format(v)
	}
	return m.Format(v)
}

// FormatCurrency formats v with the given symbol and locale.
func FormatCurrency(v float64, symbol, locale string) string {
	return NewMoney(symbol, locale).Format(v)
}

// FormatPercent formats a percentage with an explicit "+" for non-negative values
// and two decimals: -3.456 -> "-3.46%", 0 and -0 -> "+0.00%".
func FormatPercent(v float64) string {
	v = unsignedZero(v)
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// FormatShare formats an unsigned share with one decimal: 12.345 -> "12.3%".
func FormatShare(v float64) string {
	return fmt.Sprintf("%.1f%%", unsignedZero(v))
}

// unsignedZero maps -0 to +0 so fmt never prints "-0".
func unsignedZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// FormatQuantity formats share counts without trailing zeros: 10 -> "10", 2.5 -> "2.5".
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SignClass returns "positive" for v >= 0 and "negative" otherwise.
func SignClass(v float64) string {
	if v >= 0 {
		return ClassPositive
	}
	return ClassNegative
}
