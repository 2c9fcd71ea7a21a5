package kpichart

import (
	"math"

	"github.com/vdobler/kpichart/data"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer groups thousands with ",".
var printer = message.NewPrinter(language.English)

// FormatY formats the y value v for the primary or secondary y axis of c.
// Percent axes print v as a whole percentage, all other axes divide v by
// the exponent c.YFormat selects and print the rounded result.
func FormatY(v float64, c *Config, secondary bool) string {
	if axisType(c, secondary) == YPercent {
		return formatPercent(v)
	}
	return formatInt(applyExponent(v, c.YFormat))
}

// FormatTooltipY is like FormatY but skips the exponent if
// c.TooltipNoFormat is set.
func FormatTooltipY(v float64, c *Config, secondary bool) string {
	if axisType(c, secondary) == YPercent {
		return formatPercent(v)
	}
	if !c.TooltipNoFormat {
		v = applyExponent(v, c.YFormat)
	}
	return formatInt(v)
}

// FormatX formats an x tick label: the abbreviated month on date axes,
// the grouped number otherwise.
func FormatX(x float64, c *Config) string {
	if c.IsDate() {
		return data.XToTime(x, c.location()).Format("Jan")
	}
	return formatDecimal(x)
}

// FormatTooltipX formats the header of a tooltip, e.g. "January, 2024".
func FormatTooltipX(x float64, c *Config) string {
	if c.IsDate() {
		return data.XToTime(x, c.location()).Format("January, 2006")
	}
	return formatDecimal(x)
}

func axisType(c *Config, secondary bool) YAxisType {
	if secondary {
		return c.YSecondaryAxisType
	}
	return c.YPrimaryAxisType
}

func applyExponent(v float64, f ValueFormat) float64 {
	switch f {
	case FormatK:
		return v / 1e3
	case FormatM:
		return v / 1e6
	}
	return v
}

// round rounds half up and never returns -0.
func round(v float64) float64 {
	r := math.Floor(v + 0.5)
	if r == 0 {
		return 0
	}
	return r
}

func formatInt(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return printer.Sprint(number.Decimal(round(v), number.MaxFractionDigits(0)))
}

func formatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return printer.Sprint(number.Percent(round(v*100)/100, number.MaxFractionDigits(0)))
}

func formatDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	if v == 0 {
		v = 0 // no "-0"
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(6)))
}
