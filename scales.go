package kpichart

import (
	"math"

	"github.com/vdobler/kpichart/data"
)

// Scales is the snapshot of all scales of one recompute.
// YSecondary is nil without a secondary axis, Z is nil without a z axis.
type Scales struct {
	X          *Scale
	YPrimary   *Scale
	YSecondary *Scale
	Z          *Scale
}

// ComputeScales computes the domains of all scales from the active data
// of agg and maps them onto the plot area dims.
func ComputeScales(c *Config, agg *Aggregator, dims Dimensions) (*Scales, error) {
	if c.XAxisType == "" {
		return nil, ErrNoXAxisType
	}
	if c.YPrimaryAxisType == "" {
		return nil, ErrNoPrimaryAxis
	}

	all := agg.AllPool()
	sc := &Scales{}
	if c.IsDate() {
		sc.X = dateScale(c, all, dims.Width)
	} else {
		sc.X = numericScale(c, all, dims.Width)
	}

	sc.YPrimary = yScale("yPrimary", c, agg.PrimaryPool, agg.LargestPrimary, dims.Height)
	if c.HasSecondaryAxis() {
		sc.YSecondary = yScale("ySecondary", c, agg.SecondaryPool, agg.LargestSecondary, dims.Height)
	}

	if c.ZAxisType != "" {
		z := NewScale("z", Linear, Interval{0, 1})
		z.UpdateData(all.Zs()...)
		z.Interval = z.Data
		z.deDegenerate()
		sc.Z = z
	}
	return sc, nil
}

// dateScale pads the data by one month on each side. A configured minimum
// replaces the lower padding.
func dateScale(c *Config, pool data.Datums, width float64) *Scale {
	s := NewScale("x", Time, Interval{0, width})
	for _, d := range pool {
		s.UpdateData(d.X)
	}
	if !s.HasData() {
		var base float64
		if c.XAxisMinDateValue != nil {
			base = data.TimeToX(*c.XAxisMinDateValue)
		}
		s.Data = Interval{base, base}
	}

	loc := c.location()
	if c.XAxisMinDateValue != nil {
		s.Min = data.TimeToX(*c.XAxisMinDateValue)
	} else {
		s.Min = data.TimeToX(data.XToTime(s.Data.Min, loc).AddDate(0, -1, 0))
	}
	s.Max = data.TimeToX(data.XToTime(s.Data.Max, loc).AddDate(0, 1, 0))
	return s
}

func numericScale(c *Config, pool data.Datums, width float64) *Scale {
	s := NewScale("x", Linear, Interval{0, width})
	for _, d := range pool {
		s.UpdateData(d.X)
	}
	s.Interval = s.Data
	if c.XAxisMinNumberValue != nil {
		s.Min = *c.XAxisMinNumberValue
	}
	s.deDegenerate()
	s.Nice()
	return s
}

// yScale computes the domain of a y axis. The minimum includes 0 unless
// the largest series of the axis is a line. The maximum covers the stacked
// tops.
func yScale(title string, c *Config, pool data.Datums, largest *Series, height float64) *Scale {
	s := NewScale(title, Linear, Interval{height, 0})
	for _, d := range pool {
		s.UpdateData(d.Y, d.Top())
	}

	s.Min = math.NaN()
	for _, d := range pool {
		if !(s.Min <= d.Y) {
			s.Min = d.Y
		}
	}
	if c.YAxisMinValue != nil {
		s.Min = *c.YAxisMinValue
	}
	if largest != nil && largest.Info.Type != Line && s.Min > 0 {
		s.Min = 0
	}

	s.Max = math.NaN()
	for _, d := range pool {
		if !(s.Max >= d.Top()) {
			s.Max = d.Top()
		}
	}
	s.deDegenerate()
	s.Nice()
	return s
}
