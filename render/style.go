package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a chart geometry is drawn.
type Style struct {
	Background color.Color

	Panel struct {
		Background color.Color
	}

	Grid draw.LineStyle

	XAxis struct {
		Line draw.LineStyle
		Tick struct {
			draw.LineStyle
			Length vg.Length
			Label  draw.TextStyle
		}
		Year draw.TextStyle
	}

	YAxis struct {
		Tick struct {
			draw.LineStyle
			Length vg.Length
			Label  draw.TextStyle
		}
	}

	Column struct {
		Stroke draw.LineStyle
	}
	Line struct {
		Width vg.Length
	}
	Area struct {
		Opacity float64
	}
	Marker draw.GlyphStyle

	// Value is the style of the value labels above bars and points. Its
	// colour is taken from the label.
	Value draw.TextStyle

	Band struct {
		Color   color.Color
		Opacity float64
	}

	Legend struct {
		Label    draw.TextStyle
		Size     vg.Length // of the icon
		Pad      vg.Length
		Inactive color.Color
	}
}

// DefaultStyle returns the style of the KPI charts. The baseFontSize is
// the font size of the legend, tick labels are a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}
	yearFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White
	s.Panel.Background = color.Transparent

	s.Grid.Color = color.Gray16{0xe0e0}
	s.Grid.Width = vg.Length(1)

	s.XAxis.Line.Color = color.Gray16{0x9999}
	s.XAxis.Line.Width = vg.Length(1)
	s.XAxis.Tick.Color = color.Gray16{0x9999}
	s.XAxis.Tick.Width = vg.Length(1)
	s.XAxis.Tick.Length = vg.Length(5)
	s.XAxis.Tick.Label.Color = color.Gray16{0x4444}
	s.XAxis.Tick.Label.Font = tickFont
	s.XAxis.Tick.Label.XAlign = draw.XCenter
	s.XAxis.Tick.Label.YAlign = draw.YTop
	s.XAxis.Year.Color = color.Gray16{0x4444}
	s.XAxis.Year.Font = yearFont
	s.XAxis.Year.XAlign = draw.XCenter
	s.XAxis.Year.YAlign = draw.YTop

	s.YAxis.Tick.Color = nil
	s.YAxis.Tick.Width = 0
	s.YAxis.Tick.Length = vg.Length(5)
	s.YAxis.Tick.Label.Color = color.Gray16{0x4444}
	s.YAxis.Tick.Label.Font = tickFont
	s.YAxis.Tick.Label.XAlign = draw.XRight
	s.YAxis.Tick.Label.YAlign = -0.3 // draw.YCenter

	s.Column.Stroke.Color = color.RGBA{0x38, 0x38, 0x38, 0xff}
	s.Column.Stroke.Width = vg.Length(0.5)
	s.Line.Width = vg.Length(2)
	s.Area.Opacity = 0.6
	s.Marker.Radius = vg.Length(3)
	s.Marker.Shape = draw.CircleGlyph{}

	s.Value.Font = tickFont
	s.Value.XAlign = draw.XCenter
	s.Value.YAlign = draw.YBottom

	s.Band.Color = color.Gray16{0xcccc}
	s.Band.Opacity = 0.3

	s.Legend.Label.Color = color.Black
	s.Legend.Label.Font = baseFont
	s.Legend.Label.XAlign = draw.XLeft
	s.Legend.Label.YAlign = -0.3 // draw.YCenter
	s.Legend.Size = scale(baseFontSize, 1)
	s.Legend.Pad = scale(baseFontSize, 1.5)
	s.Legend.Inactive = color.Gray16{0xbbbb}

	return s
}
