package data

import (
	"fmt"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// darker is the channel factor d3 uses for one step of darkening.
const darker = 0.7

// ParseColor parses a CSS hex color like "#9bd2cb" or "#abc".
// It reports false for anything else, e.g. named colors.
func ParseColor(s string) (drawing.Color, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.Color{}, false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return drawing.Color{}, false
		}
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return drawing.ColorFromHex(strings.ToLower(hex)), true
}

// Brighter returns color brightened by k steps, formatted as "rgb(r, g, b)".
// Colors ParseColor does not understand are returned unchanged.
func Brighter(color string, k float64) string {
	c, ok := ParseColor(color)
	if !ok {
		return color
	}
	f := math.Pow(1/darker, k)
	return fmt.Sprintf("rgb(%d, %d, %d)", channel(c.R, f), channel(c.G, f), channel(c.B, f))
}

func channel(v uint8, f float64) int {
	x := math.Round(float64(v) * f)
	return int(math.Max(0, math.Min(255, x)))
}
