package kpichart

import (
	"errors"
	"fmt"
	"math"

	"github.com/vdobler/kpichart/data"
	"github.com/vdobler/kpichart/geom"
	"gonum.org/v1/plot/vg"
)

// ErrUnknownGroupType is returned for a series type other than area, column
// or line.
var ErrUnknownGroupType = errors.New("unknown group type")

// Label colours of line series.
const (
	positiveLabelColor = "#22a98e"
	negativeLabelColor = "red"
)

// ----------------------------------------------------------------------------
// GroupType

// GroupType selects how a series is stacked and drawn.
type GroupType int

const (
	Area GroupType = iota
	Column
	Line
	numGroupTypes
)

var groupTypeNames = [numGroupTypes]string{"area", "column", "line"}

// String returns the config name of t.
func (t GroupType) String() string {
	if t < 0 || t >= numGroupTypes {
		return fmt.Sprintf("GroupType(%d)", int(t))
	}
	return groupTypeNames[t]
}

// ParseGroupType is the inverse of String.
func ParseGroupType(s string) (GroupType, error) {
	for i, n := range groupTypeNames {
		if n == s {
			return GroupType(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownGroupType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t GroupType) MarshalText() ([]byte, error) {
	if t < 0 || t >= numGroupTypes {
		return nil, fmt.Errorf("%w %d", ErrUnknownGroupType, int(t))
	}
	return []byte(groupTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *GroupType) UnmarshalText(text []byte) error {
	gt, err := ParseGroupType(string(text))
	if err != nil {
		return err
	}
	*t = gt
	return nil
}

// ----------------------------------------------------------------------------
// GroupInfo

// GroupInfo is the metadata of one series.
type GroupInfo struct {
	ID                int       `json:"groupId" yaml:"groupId"`
	Name              string    `json:"groupName" yaml:"groupName"`
	Type              GroupType `json:"groupType" yaml:"groupType"`
	Order             int       `json:"groupOrder" yaml:"groupOrder"`
	UseSecondaryYAxis bool      `json:"useSecondaryYAxis,omitempty" yaml:"useSecondaryYAxis,omitempty"`
	StackedGroupID    *int      `json:"stackedGroupId,omitempty" yaml:"stackedGroupId,omitempty"`
	Shift             float64   `json:"shift,omitempty" yaml:"shift,omitempty"` // horizontal offset in quarter bar widths
	ShowYValues       bool      `json:"showYValues,omitempty" yaml:"showYValues,omitempty"`
	LabelType         string    `json:"labelType,omitempty" yaml:"labelType,omitempty"`
	Currency          string    `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// Stacked reports whether g stacks on top of another series.
func (g GroupInfo) Stacked() bool { return g.StackedGroupID != nil }

// ----------------------------------------------------------------------------
// Series

// Series is one group of datums together with its metadata.
// Data is sorted by x.
type Series struct {
	Info   GroupInfo
	Data   data.Datums
	Active bool
}

// NewSeries creates an active series of the type info.Type.
func NewSeries(info GroupInfo, ds data.Datums) (*Series, error) {
	if info.Type < 0 || info.Type >= numGroupTypes {
		return nil, fmt.Errorf("group %d (%s): %w %d", info.ID, info.Name, ErrUnknownGroupType, int(info.Type))
	}
	return &Series{Info: info, Data: ds, Active: true}, nil
}

// Size is the number of datums in s.
func (s *Series) Size() int { return len(s.Data) }

// Color is the colour of the first datum of s, used for legend and tooltip.
func (s *Series) Color() string {
	if len(s.Data) == 0 {
		return data.DefaultColor
	}
	return s.Data[0].Color
}

// CalculateStackedValues resolves the baselines Y0 of s against base.
// A nil base leaves s untouched.
func (s *Series) CalculateStackedValues(base *Series) {
	if base == nil || len(s.Data) == 0 {
		return
	}
	variants[s.Info.Type].stack(s, base)
}

// Layout lays out s in the pixel frame f. Inactive or empty series yield an
// empty layout.
func (s *Series) Layout(f Frame) Layout {
	l := Layout{GroupID: s.Info.ID, Type: s.Info.Type}
	if !s.Active || len(s.Data) == 0 {
		return l
	}
	variants[s.Info.Type].layout(s, f, &l)
	return l
}

func (s *Series) clone() *Series {
	c := *s
	c.Data = append(data.Datums(nil), s.Data...)
	return &c
}

// ----------------------------------------------------------------------------
// Frame and Layout

// Frame is what a series needs to lay itself out: the mappings from data
// to pixel coordinates of its axes, the bar width and the label formatter.
type Frame struct {
	X        func(float64) float64
	Y        func(float64) float64
	BarWidth float64
	Label    func(float64) string
}

// Layout is the pixel geometry of one series.
type Layout struct {
	GroupID int
	Type    GroupType
	Bars    []geom.Bar
	Line    geom.Polyline
	Area    geom.Area
	Markers []geom.Marker
	Labels  []geom.Label
}

// Empty reports whether l draws nothing.
func (l Layout) Empty() bool {
	return len(l.Bars) == 0 && len(l.Line) == 0 && len(l.Area.Top) == 0
}

// ----------------------------------------------------------------------------
// Variants

// A variant bundles the type specific behaviour of a series.
type variant struct {
	stack  func(s, base *Series)
	layout func(s *Series, f Frame, l *Layout)
}

var variants = [numGroupTypes]variant{
	Area:   {stack: stackArea, layout: layoutArea},
	Column: {stack: stackColumn, layout: layoutColumn},
	Line:   {stack: func(s, base *Series) {}, layout: layoutLine},
}

// stackArea stacks on the raw y of the base at the same index.
func stackArea(s, base *Series) {
	for i := range s.Data {
		if !base.Active || i >= len(base.Data) {
			s.Data[i].Y0 = math.NaN()
			continue
		}
		s.Data[i].Y0 = base.Data[i].Y
	}
}

// stackColumn stacks only on base bars of the same sign.
func stackColumn(s, base *Series) {
	for i := range s.Data {
		d := &s.Data[i]
		switch {
		case !base.Active:
			d.Y0 = math.NaN()
		case i >= len(base.Data):
			d.Y0 = 0
		case base.Data[i].Y*d.Y > 0:
			d.Y0 = base.Data[i].Y
		default:
			d.Y0 = 0
		}
	}
}

func pt(x, y float64) vg.Point { return vg.Point{X: vg.Length(x), Y: vg.Length(y)} }

func layoutArea(s *Series, f Frame, l *Layout) {
	n := len(s.Data)
	l.Area.Top = make(geom.Polyline, n)
	l.Area.Bottom = make(geom.Polyline, n)
	l.Markers = make([]geom.Marker, n)
	for i, d := range s.Data {
		x := f.X(d.X)
		top := pt(x, f.Y(d.Top()))
		l.Area.Top[i] = top
		l.Area.Bottom[i] = pt(x, f.Y(d.Base()))
		l.Markers[i] = geom.Marker{Index: i, Point: top, Fill: d.Color}
	}
}

func layoutColumn(s *Series, f Frame, l *Layout) {
	n := len(s.Data)
	bw := f.BarWidth
	offset := (s.Info.Shift - 2) * bw / 4
	l.Bars = make([]geom.Bar, n)
	if s.Info.ShowYValues {
		l.Labels = make([]geom.Label, n)
	}
	for i, d := range s.Data {
		x := f.X(d.X)
		y := f.Y(math.Max(0, d.Top()))
		h := math.Abs(f.Y(d.Y) - f.Y(0))
		b := geom.NewBar(i, x+offset, y, bw, h)
		b.Fill, b.Hover = d.Color, d.Brighter
		l.Bars[i] = b

		if !s.Info.ShowYValues {
			continue
		}
		ly := y - 6
		if d.Y < 0 {
			ly = y + h + 14
		}
		l.Labels[i] = geom.Label{
			Index: i,
			Point: pt(x+s.Info.Shift*bw/4, ly),
			Text:  f.Label(d.Y),
			Color: d.Color,
		}
	}
}

func layoutLine(s *Series, f Frame, l *Layout) {
	n := len(s.Data)
	l.Line = make(geom.Polyline, n)
	l.Markers = make([]geom.Marker, n)
	if s.Info.ShowYValues {
		l.Labels = make([]geom.Label, n)
	}
	for i, d := range s.Data {
		p := pt(f.X(d.X), f.Y(d.Y))
		l.Line[i] = p
		l.Markers[i] = geom.Marker{Index: i, Point: p, Fill: d.Color}
		if !s.Info.ShowYValues {
			continue
		}
		color := negativeLabelColor
		if d.Y > 0 {
			color = positiveLabelColor
		}
		l.Labels[i] = geom.Label{
			Index: i,
			Point: pt(float64(p.X), float64(p.Y)-6),
			Text:  f.Label(d.Y),
			Color: color,
		}
	}
}
