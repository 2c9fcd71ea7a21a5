package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/vdobler/kpichart/data"
	"golang.org/x/image/colornames"
)

// Color converts a CSS colour of the chart geometry into a color.Color of
// the given opacity. It understands "#rgb", "#rrggbb", "rgb(r, g, b)" and
// the SVG colour names. Anything else yields def, or black if def is nil.
func Color(css string, opacity float64, def color.Color) color.Color {
	c, ok := parseCSS(css)
	if !ok {
		if def == nil {
			def = color.Black
		}
		c = color.NRGBAModel.Convert(def).(color.NRGBA)
	}
	if opacity >= 0 && opacity < 1 {
		c.A = uint8(math.Round(float64(c.A) * opacity))
	}
	return c
}

func parseCSS(css string) (color.NRGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(css))
	if s == "" {
		return color.NRGBA{}, false
	}
	if hex, ok := data.ParseColor(s); ok {
		return color.NRGBA{R: hex.R, G: hex.G, B: hex.B, A: 0xff}, true
	}
	var r, g, b int
	if n, err := fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b); err == nil && n == 3 {
		return color.NRGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: 0xff}, true
	}
	if named, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, true
	}
	return color.NRGBA{}, false
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
