package kpichart

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

// niceTicks is the number of ticks domains are niced for.
const niceTicks = 10

// ----------------------------------------------------------------------------
// Scale

// Scale maps its domain, the embedded Interval, linearly onto the pixel
// interval Range.
type Scale struct {
	// Title is the scale's title.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Interval captures the domain of this scale. It may be larger than
	// the actual Data range.
	Interval

	// Range is the pixel interval the domain is mapped to.
	Range Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Ticker is responsible for generating the ticks.
	Ticker plot.Ticker
}

// NewScale returns a new scale of the given type mapping onto rng.
func NewScale(title string, st ScaleType, rng Interval) *Scale {
	return &Scale{
		Title:     title,
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		Range:     rng,
		ScaleType: st,
	}
}

// Map maps x from the domain of s to its pixel range. Values outside the
// domain map outside the range. A degenerate domain maps everything to the
// middle of the range.
func (s *Scale) Map(x float64) float64 {
	if s.Degenerate() {
		return (s.Range.Min + s.Range.Max) / 2
	}
	return LinearTrans.Trans(s.Interval, s.Range, x)
}

// Invert is the inverse of Map. It returns NaN for a degenerate domain.
func (s *Scale) Invert(px float64) float64 {
	if s.Degenerate() || s.Range.Min == s.Range.Max {
		return math.NaN()
	}
	return LinearTrans.Inverse(s.Interval, s.Range, px)
}

// Degenerate reports whether the domain of s is unset or a single point.
func (s *Scale) Degenerate() bool {
	return math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max
}

// UpdateData updates s to cover x.
func (s *Scale) UpdateData(x ...float64) {
	s.Data.Update(x...)
}

// HasData reports whether the Data intervall of s is valid.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

// InRange reports whether x lies in the domain of s.
func (s *Scale) InRange(x float64) bool {
	return x >= s.Min && x <= s.Max
}

// Nice extends the domain of s outwards to round tick values.
// Degenerate and reversed domains are left alone.
func (s *Scale) Nice() {
	if s.Degenerate() || s.Min > s.Max {
		return
	}
	lin := scale.Linear{Min: s.Min, Max: s.Max}
	lin.Nice(scale.TickOptions{Max: niceTicks})
	s.Min, s.Max = lin.Min, lin.Max
}

// Ticks returns the ticks of s's Ticker on its domain.
func (s *Scale) Ticks() []plot.Tick {
	if s.Ticker == nil || math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return nil
	}
	return s.Ticker.Ticks(s.Min, s.Max)
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Domain=[%.2f:%.2f] Data=[%.2f:%.2f] Range=[%.1f:%.1f] %s %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.Range.Min, s.Range.Max, s.ScaleType, s.Title)
}

// deDegenerate replaces unset edges: a missing Min becomes 0, a missing Max
// becomes Min+1.
func (s *Scale) deDegenerate() {
	if math.IsNaN(s.Min) {
		s.Min = 0
	}
	if math.IsNaN(s.Max) {
		s.Max = s.Min + 1
	}
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges, NaN equal to NaN.
func (i *Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// Clamp returns x limited to i.
func (i Interval) Clamp(x float64) float64 {
	return math.Max(i.Min, math.Min(i.Max, x))
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful know scale types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "time"}[int(st)]
}

const (
	Linear ScaleType = iota
	Time
)
