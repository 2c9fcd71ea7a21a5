// Package geom provides the basic geometric objects a KPI chart is made of.
//
// All coordinates are pixels relative to the top-left corner of the plot
// area, i.e. the container minus its margins, with y growing downwards.
// The types reuse gonum's vg.Point and vg.Rectangle so that a host can hand
// them to a vg/draw canvas after flipping the y axis.
//
// A column series is drawn as Bars, a line series as a Polyline and an area
// series as an Area; both plus Markers and Labels are empty for inactive or
// dataless series.
package geom

import (
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Bar

// Bar is a single column. Rect.Min is the top-left corner.
type Bar struct {
	Index int
	Rect  vg.Rectangle
	Fill  string
	Hover string
}

// NewBar returns the bar at data index i with top-left corner (x,y).
func NewBar(i int, x, y, width, height float64) Bar {
	return Bar{
		Index: i,
		Rect: CanonicRectangle(vg.Rectangle{
			Min: vg.Point{X: vg.Length(x), Y: vg.Length(y)},
			Max: vg.Point{X: vg.Length(x + width), Y: vg.Length(y + height)},
		}),
	}
}

// Width of the bar.
func (b Bar) Width() vg.Length { return b.Rect.Max.X - b.Rect.Min.X }

// Height of the bar.
func (b Bar) Height() vg.Length { return b.Rect.Max.Y - b.Rect.Min.Y }

// ----------------------------------------------------------------------------
// Marker and Label

// Marker is the hover reference point of a line or area at data index Index.
type Marker struct {
	Index int
	vg.Point
	Fill string
}

// Label is a value label drawn centered on its point.
type Label struct {
	Index int
	vg.Point
	Text  string
	Color string
}

// ----------------------------------------------------------------------------
// Line and Area

// Polyline connects its points by straight line segments.
type Polyline []vg.Point

// Area is the region between an upper and a lower boundary which share
// their x coordinates.
type Area struct {
	Top    Polyline
	Bottom Polyline
}

// Polygon returns the closed outline of a: Top left to right, then Bottom
// right to left.
func (a Area) Polygon() []vg.Point {
	if len(a.Top) == 0 {
		return nil
	}
	poly := make([]vg.Point, 0, len(a.Top)+len(a.Bottom))
	poly = append(poly, a.Top...)
	for i := len(a.Bottom) - 1; i >= 0; i-- {
		poly = append(poly, a.Bottom[i])
	}
	return poly
}

// ----------------------------------------------------------------------------
// Region

// Region is a pointer hit-region [Min, Max) along x for the data point at
// Index. It spans the full plot height.
type Region struct {
	Index    int
	Center   vg.Length
	Min, Max vg.Length
}

// Width of the region.
func (r Region) Width() vg.Length { return r.Max - r.Min }

// Contains reports whether x lies in r.
func (r Region) Contains(x vg.Length) bool { return x >= r.Min && x < r.Max }
