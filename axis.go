package kpichart

import (
	"strconv"
	"time"

	"github.com/aclements/go-moremath/scale"
	"github.com/vdobler/kpichart/data"
	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Tickers

// NiceTicks is a plot.Ticker placing at most Max ticks at round values.
type NiceTicks struct {
	Max    int
	Format func(float64) string
}

var _ plot.Ticker = NiceTicks{}

// Ticks implements plot.Ticker.
func (nt NiceTicks) Ticks(min, max float64) []plot.Tick {
	if min > max {
		min, max = max, min
	}
	var values []float64
	if min == max {
		values = []float64{min}
	} else {
		n := nt.Max
		if n <= 0 {
			n = niceTicks
		}
		values, _ = scale.Linear{Min: min, Max: max}.Ticks(scale.TickOptions{Max: n})
	}

	ticks := make([]plot.Tick, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: nt.label(v)}
	}
	return ticks
}

func (nt NiceTicks) label(v float64) string {
	if nt.Format == nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return nt.Format(v)
}

// calendar units of CalendarTicks
const (
	day = iota
	week
	month
	year
)

type calendarInterval struct {
	unit, n int
	approx  float64 // seconds
}

const secondsPerDay = 24 * 60 * 60

var calendarIntervals = []calendarInterval{
	{day, 1, secondsPerDay},
	{day, 2, 2 * secondsPerDay},
	{week, 1, 7 * secondsPerDay},
	{month, 1, 30 * secondsPerDay},
	{month, 3, 90 * secondsPerDay},
	{year, 1, 365 * secondsPerDay},
}

// CalendarTicks is a plot.Ticker for date axes where values are Unix
// seconds. It places about Count ticks on day, week, month, quarter or year
// boundaries in Location.
type CalendarTicks struct {
	Count    int
	Location *time.Location
	Format   func(float64) string
}

var _ plot.Ticker = CalendarTicks{}

// Ticks implements plot.Ticker.
func (ct CalendarTicks) Ticks(min, max float64) []plot.Tick {
	if min > max {
		min, max = max, min
	}
	loc := ct.Location
	if loc == nil {
		loc = time.UTC
	}
	count := ct.Count
	if count < 1 {
		count = 1
	}

	iv := pickInterval((max - min) / float64(count))
	var ticks []plot.Tick
	t := iv.floor(data.XToTime(min, loc))
	for ; data.TimeToX(t) <= max; t = iv.next(t) {
		x := data.TimeToX(t)
		if x < min {
			continue
		}
		lbl := ""
		if ct.Format != nil {
			lbl = ct.Format(x)
		}
		ticks = append(ticks, plot.Tick{Value: x, Label: lbl})
	}
	return ticks
}

// pickInterval returns the calendar interval closest to target seconds.
// Beyond one year multiples of 1, 2, 5 and 10 years are used.
func pickInterval(target float64) calendarInterval {
	last := calendarIntervals[len(calendarIntervals)-1]
	if target > last.approx {
		years := target / last.approx
		n := 1
		for _, m := range []int{1, 2, 5, 10, 20, 50, 100} {
			n = m
			if float64(m) >= years {
				break
			}
		}
		return calendarInterval{year, n, float64(n) * last.approx}
	}
	for i, iv := range calendarIntervals {
		if iv.approx < target {
			continue
		}
		if i == 0 {
			return iv
		}
		prev := calendarIntervals[i-1]
		if target/prev.approx < iv.approx/target {
			return prev
		}
		return iv
	}
	return last
}

func (iv calendarInterval) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch iv.unit {
	case week:
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case month:
		m0 := int(m) - 1
		return time.Date(y, time.Month(m0-m0%iv.n+1), 1, 0, 0, 0, 0, loc)
	case year:
		return time.Date(y-y%iv.n, time.January, 1, 0, 0, 0, 0, loc)
	}
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (iv calendarInterval) next(t time.Time) time.Time {
	switch iv.unit {
	case week:
		return t.AddDate(0, 0, 7*iv.n)
	case month:
		return t.AddDate(0, iv.n, 0)
	case year:
		return t.AddDate(iv.n, 0, 0)
	}
	return t.AddDate(0, 0, iv.n)
}

// ----------------------------------------------------------------------------
// Axis

// AxisTick is a tick at pixel position Pos along its axis. Grid reports
// whether a grid line is drawn across the plot area.
type AxisTick struct {
	plot.Tick
	Pos  float64
	Grid bool
}

// YearLabel is a caption below the x axis of a date chart grouped by year.
type YearLabel struct {
	Text string
	Pos  float64
}

// Axis is the drawable geometry of one axis.
type Axis struct {
	Ticks []AxisTick
	Years []YearLabel
}

// setTickers equips the scales in sc with tickers fitting c.
func setTickers(sc *Scales, c *Config, largest *Series) {
	if c.IsDate() {
		n := 0
		if largest != nil {
			n = largest.Size()
		}
		sc.X.Ticker = CalendarTicks{
			Count:    n + 2,
			Location: c.location(),
			Format:   func(x float64) string { return FormatX(x, c) },
		}
	} else {
		sc.X.Ticker = NiceTicks{Max: niceTicks, Format: func(x float64) string { return FormatX(x, c) }}
	}
	sc.YPrimary.Ticker = NiceTicks{Max: niceTicks, Format: func(v float64) string { return FormatY(v, c, false) }}
	if sc.YSecondary != nil {
		sc.YSecondary.Ticker = NiceTicks{Max: niceTicks, Format: func(v float64) string { return FormatY(v, c, true) }}
	}
}

// xAxis builds the x axis. Labels at multiples of XAxisStep are blanked
// when the stride exceeds 1, and date axes drop the first and last label.
func xAxis(p *Panel, largest *Series) Axis {
	c := p.Config
	ticks := p.Scales.X.Ticks()
	ax := Axis{Ticks: make([]AxisTick, len(ticks))}
	for i, t := range ticks {
		if c.XAxisStep > 1 && i%c.XAxisStep == 0 {
			t.Label = ""
		}
		ax.Ticks[i] = AxisTick{Tick: t, Pos: p.Scales.X.Map(t.Value), Grid: !c.XTicksOff}
	}
	if c.IsDate() && len(ax.Ticks) > 0 {
		ax.Ticks[0].Label = ""
		ax.Ticks[len(ax.Ticks)-1].Label = ""
	}
	if c.IsDate() && c.GroupByYear && largest != nil {
		ax.Years = yearLabels(p, largest)
	}
	return ax
}

// yearLabels centres one caption under the points of each year of the
// largest series, separated by "|" half a tick step left of each year's
// first point.
func yearLabels(p *Panel, largest *Series) []YearLabel {
	x := p.Scales.X
	half := p.Dims.Width / float64(largest.Size()+1) / 2
	loc := p.Config.location()

	var labels []YearLabel
	for _, g := range groupByYear(largest.Data, loc) {
		if len(g.data) > 1 {
			labels = append(labels, YearLabel{Text: "|", Pos: x.Map(g.data[0].X) - half})
		}
		var sum float64
		for _, d := range g.data {
			sum += x.Map(d.X)
		}
		labels = append(labels, YearLabel{
			Text: strconv.Itoa(g.year),
			Pos:  sum / float64(len(g.data)),
		})
	}
	return append(labels, YearLabel{Text: "|", Pos: p.Dims.Width - half})
}

type yearGroup struct {
	year int
	data data.Datums
}

// groupByYear splits ds, which is sorted by x, into runs of equal years.
func groupByYear(ds data.Datums, loc *time.Location) []yearGroup {
	var groups []yearGroup
	for _, d := range ds {
		y := data.XToTime(d.X, loc).Year()
		if n := len(groups); n > 0 && groups[n-1].year == y {
			groups[n-1].data = append(groups[n-1].data, d)
			continue
		}
		groups = append(groups, yearGroup{year: y, data: data.Datums{d}})
	}
	return groups
}

// yAxis builds the primary or secondary y axis.
func yAxis(p *Panel, secondary bool) Axis {
	s := p.YScale(secondary)
	ticks := s.Ticks()
	ax := Axis{Ticks: make([]AxisTick, len(ticks))}
	for i, t := range ticks {
		ax.Ticks[i] = AxisTick{Tick: t, Pos: s.Map(t.Value), Grid: !p.Config.YTicksOff}
	}
	return ax
}
