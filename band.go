package kpichart

import (
	"time"

	"github.com/vdobler/kpichart/data"
	"gonum.org/v1/plot/vg"
)

// Band is a highlighted x interval. A nil bound means the edge of the x
// domain. On date axes bounds are Unix seconds, see TimeBound.
type Band struct {
	X0      *float64 `json:"x0,omitempty" yaml:"x0,omitempty"`
	X1      *float64 `json:"x1,omitempty" yaml:"x1,omitempty"`
	Color   string   `json:"color,omitempty" yaml:"color,omitempty"`
	Opacity float64  `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// Bound returns a band bound at x.
func Bound(x float64) *float64 { return &x }

// TimeBound returns a band bound at t for date axes.
func TimeBound(t time.Time) *float64 { return Bound(data.TimeToX(t)) }

// BandState tells why a band is drawn or not.
type BandState int

const (
	BandNone      BandState = iota // no band requested
	BandCollapsed                  // requested, but empty after clipping
	BandDrawn
)

// String returns a short description of bs.
func (bs BandState) String() string {
	return []string{"none", "collapsed", "drawn"}[int(bs)]
}

// BandGeometry is the clipped band. Rect is only set for BandDrawn and
// spans the full plot height.
type BandGeometry struct {
	State   BandState
	Rect    vg.Rectangle
	Color   string
	Opacity float64
}

// Layout clips b to the domain of x and returns its rectangle in a plot
// area of the given height. A nil band yields BandNone.
func (b *Band) Layout(x *Scale, height float64) BandGeometry {
	if b == nil || (b.X0 == nil && b.X1 == nil) {
		return BandGeometry{State: BandNone}
	}
	g := BandGeometry{State: BandCollapsed, Color: b.Color, Opacity: b.Opacity}

	x0, x1 := x.Min, x.Max
	if b.X0 != nil {
		x0 = x.Interval.Clamp(*b.X0)
	}
	if b.X1 != nil {
		x1 = x.Interval.Clamp(*b.X1)
	}
	px0, px1 := x.Map(x0), x.Map(x1)
	if !(px1 > px0) {
		return g
	}

	g.State = BandDrawn
	g.Rect = vg.Rectangle{
		Min: vg.Point{X: vg.Length(px0), Y: 0},
		Max: vg.Point{X: vg.Length(px1), Y: vg.Length(height)},
	}
	return g
}
