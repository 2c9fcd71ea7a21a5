// Package render draws the geometry snapshot of a kpichart.Chart onto a
// gonum canvas and writes it as SVG, PNG, PDF or EPS.
//
// Geometry coordinates are pixels of the plot area with y growing
// downwards; the renderer offsets them by the margins and flips y for the
// canvas.
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vdobler/kpichart"
	"github.com/vdobler/kpichart/geom"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var (
	// ErrUnknownFormat is returned for an output format other than svg,
	// png, pdf or eps.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrEmptyCanvas is returned if the container has no area.
	ErrEmptyCanvas = errors.New("container has zero size")
)

// Format is an output file format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
	PDF Format = "pdf"
	EPS Format = "eps"
)

// ParseFormat returns the Format named s, case insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case SVG, PNG, PDF, EPS:
		return f, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// FormatOf returns the Format of the file extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Write draws g in its container size and writes it to w in format f.
func Write(w io.Writer, g *kpichart.Geometry, f Format, sty Style) error {
	width := vg.Length(g.Dimensions.ContainerWidth)
	height := vg.Length(g.Dimensions.ContainerHeight)
	if width <= 0 || height <= 0 {
		return ErrEmptyCanvas
	}

	var err error
	switch f {
	case SVG:
		c := vgsvg.New(width, height)
		Draw(draw.New(c), g, sty)
		_, err = c.WriteTo(w)
	case PNG:
		c := vgimg.New(width, height)
		Draw(draw.New(c), g, sty)
		_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	case PDF:
		c := vgpdf.New(width, height)
		Draw(draw.New(c), g, sty)
		_, err = c.WriteTo(w)
	case EPS:
		c := vgeps.New(width, height)
		Draw(draw.New(c), g, sty)
		_, err = c.WriteTo(w)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	return err
}

// ----------------------------------------------------------------------------
// Drawing

// plotArea maps geometry coordinates onto the canvas.
type plotArea struct {
	draw.Canvas
	dims kpichart.Dimensions
}

// pt maps the plot area pixel q to the canvas.
func (p plotArea) pt(q vg.Point) vg.Point {
	return vg.Point{
		X: p.Min.X + vg.Length(p.dims.Margin.Left) + q.X,
		Y: p.Max.Y - vg.Length(p.dims.Margin.Top) - q.Y,
	}
}

func (p plotArea) xy(x, y float64) vg.Point {
	return p.pt(vg.Point{X: vg.Length(x), Y: vg.Length(y)})
}

func (p plotArea) rect(r vg.Rectangle) vg.Rectangle {
	return geom.CanonicRectangle(vg.Rectangle{Min: p.pt(r.Min), Max: p.pt(r.Max)})
}

func (p plotArea) polyline(pl geom.Polyline) []vg.Point {
	pts := make([]vg.Point, len(pl))
	for i, q := range pl {
		pts[i] = p.pt(q)
	}
	return pts
}

// Draw draws g onto c.
func Draw(c draw.Canvas, g *kpichart.Geometry, sty Style) {
	p := plotArea{Canvas: c, dims: g.Dimensions}
	plot := p.rect(vg.Rectangle{Max: vg.Point{X: vg.Length(g.Dimensions.Width), Y: vg.Length(g.Dimensions.Height)}})

	if sty.Background != nil {
		c.SetColor(sty.Background)
		c.Fill(c.Rectangle.Path())
	}
	if sty.Panel.Background != nil {
		c.SetColor(sty.Panel.Background)
		c.Fill(plot.Path())
	}

	drawBand(p, g.Band, sty)
	drawGrid(p, g, sty)

	// Areas first so that bars and lines stay visible.
	for _, t := range []kpichart.GroupType{kpichart.Area, kpichart.Column, kpichart.Line} {
		for _, l := range g.Series {
			if l.Type == t {
				drawSeries(p, l, sty)
			}
		}
	}
	for _, l := range g.Series {
		drawLabels(p, l, sty)
	}

	drawXAxis(p, g.XAxis, sty)
	drawYAxis(p, g.YPrimaryAxis, false, sty)
	if g.YSecondaryAxis != nil {
		drawYAxis(p, *g.YSecondaryAxis, true, sty)
	}
	if g.Legend != nil {
		drawLegend(p, g.Legend, sty)
	}
}

func drawBand(p plotArea, b kpichart.BandGeometry, sty Style) {
	if b.State != kpichart.BandDrawn {
		return
	}
	opacity := b.Opacity
	if opacity <= 0 {
		opacity = sty.Band.Opacity
	}
	p.SetColor(Color(b.Color, opacity, sty.Band.Color))
	p.Fill(p.rect(b.Rect).Path())
}

func drawGrid(p plotArea, g *kpichart.Geometry, sty Style) {
	if sty.Grid.Color == nil {
		return
	}
	h := g.Dimensions.Height
	for _, t := range g.XAxis.Ticks {
		if t.Grid {
			p.StrokeLines(sty.Grid, []vg.Point{p.xy(t.Pos, 0), p.xy(t.Pos, h)})
		}
	}
	for _, t := range g.YPrimaryAxis.Ticks {
		if t.Grid {
			p.StrokeLines(sty.Grid, []vg.Point{p.xy(0, t.Pos), p.xy(g.Dimensions.Width, t.Pos)})
		}
	}
}

// seriesColor is the colour of the first marker or bar of l.
func seriesColor(l kpichart.Layout) string {
	switch {
	case len(l.Markers) > 0:
		return l.Markers[0].Fill
	case len(l.Bars) > 0:
		return l.Bars[0].Fill
	}
	return ""
}

func drawSeries(p plotArea, l kpichart.Layout, sty Style) {
	col := seriesColor(l)
	switch l.Type {
	case kpichart.Area:
		if poly := l.Area.Polygon(); len(poly) > 0 {
			p.FillPolygon(Color(col, sty.Area.Opacity, nil), p.polyline(poly))
		}
		if len(l.Area.Top) > 1 {
			line := draw.LineStyle{Color: Color(col, 1, nil), Width: sty.Line.Width / 2}
			p.StrokeLines(line, p.polyline(l.Area.Top))
		}
	case kpichart.Column:
		for _, b := range l.Bars {
			r := p.rect(b.Rect)
			p.SetColor(Color(b.Fill, 1, nil))
			p.Fill(r.Path())
			if sty.Column.Stroke.Color != nil && sty.Column.Stroke.Width > 0 {
				p.SetLineStyle(sty.Column.Stroke)
				p.Stroke(r.Path())
			}
		}
	case kpichart.Line:
		if len(l.Line) > 1 {
			line := draw.LineStyle{Color: Color(col, 1, nil), Width: sty.Line.Width}
			p.StrokeLines(line, p.polyline(l.Line))
		}
	}

	if l.Type == kpichart.Area || l.Type == kpichart.Line {
		for _, m := range l.Markers {
			glyph := sty.Marker
			glyph.Color = Color(m.Fill, 1, nil)
			p.DrawGlyph(glyph, p.pt(m.Point))
		}
	}
}

func drawLabels(p plotArea, l kpichart.Layout, sty Style) {
	for _, lb := range l.Labels {
		ts := sty.Value
		ts.Color = Color(lb.Color, 1, ts.Color)
		p.FillText(ts, p.pt(lb.Point), lb.Text)
	}
}

func drawXAxis(p plotArea, ax kpichart.Axis, sty Style) {
	h := p.dims.Height
	if sty.XAxis.Line.Color != nil {
		p.StrokeLines(sty.XAxis.Line, []vg.Point{p.xy(0, h), p.xy(p.dims.Width, h)})
	}
	length := float64(sty.XAxis.Tick.Length)
	for _, t := range ax.Ticks {
		if sty.XAxis.Tick.Color != nil {
			p.StrokeLines(sty.XAxis.Tick.LineStyle, []vg.Point{p.xy(t.Pos, h), p.xy(t.Pos, h+length)})
		}
		if t.Label != "" {
			p.FillText(sty.XAxis.Tick.Label, p.xy(t.Pos, h+length+2), t.Label)
		}
	}
	for _, y := range ax.Years {
		p.FillText(sty.XAxis.Year, p.xy(y.Pos, h+length+20), y.Text)
	}
}

func drawYAxis(p plotArea, ax kpichart.Axis, secondary bool, sty Style) {
	length := float64(sty.YAxis.Tick.Length)
	x0, x1 := 0.0, -length
	label := sty.YAxis.Tick.Label
	if secondary {
		x0, x1 = p.dims.Width, p.dims.Width+length
		label.XAlign = draw.XLeft
	}
	for _, t := range ax.Ticks {
		if sty.YAxis.Tick.Color != nil {
			p.StrokeLines(sty.YAxis.Tick.LineStyle, []vg.Point{p.xy(x0, t.Pos), p.xy(x1, t.Pos)})
		}
		p.FillText(label, p.xy(x1, t.Pos), t.Label)
	}
}

// drawLegend draws the entries from left to right on the legend baseline.
func drawLegend(p plotArea, l *kpichart.Legend, sty Style) {
	size := sty.Legend.Size
	x := p.Min.X + vg.Length(p.dims.Margin.Left)
	y := p.Max.Y - vg.Length(l.Baseline)
	for _, e := range l.Entries {
		col := Color(e.Color, 1, nil)
		if !e.Active {
			col = sty.Legend.Inactive
		}
		switch e.Icon {
		case kpichart.Line:
			p.StrokeLines(draw.LineStyle{Color: col, Width: sty.Line.Width},
				[]vg.Point{{X: x, Y: y}, {X: x + size, Y: y}})
		case kpichart.Area:
			p.SetColor(Color(e.Color, sty.Area.Opacity, sty.Legend.Inactive))
			if !e.Active {
				p.SetColor(col)
			}
			p.Fill(square(x, y, size).Path())
		default:
			p.SetColor(col)
			p.Fill(square(x, y, size).Path())
		}
		x += size + sty.Legend.Pad/3

		ts := sty.Legend.Label
		if !e.Active {
			ts.Color = sty.Legend.Inactive
		}
		p.FillText(ts, vg.Point{X: x, Y: y}, e.Name)
		x += ts.Width(e.Name) + sty.Legend.Pad
	}
}

// square is the size x size square with its left edge centred on (x,y).
func square(x, y, size vg.Length) vg.Rectangle {
	return vg.Rectangle{
		Min: vg.Point{X: x, Y: y - size/2},
		Max: vg.Point{X: x + size, Y: y + size/2},
	}
}
