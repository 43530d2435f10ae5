package handlers

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"width":  widthStyle,
		"lower":  strings.ToLower,
		"svgnum": svgNum,
	}
}

// widthStyle renders a CSS width clamped to [0, 100] percent.
func widthStyle(pct float64) template.CSS {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return template.CSS(fmt.Sprintf("width: %.1f%%", pct))
}

// svgNum trims SVG coordinates to two decimals.
func svgNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
