package kpichart

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/vdobler/kpichart/data"
)

// datums returns the datums of group id at x = 1, 2, ... with the given ys.
func datums(id int, ys ...float64) data.Datums {
	ds := make(data.Datums, len(ys))
	for i, y := range ys {
		ds[i] = data.Datum{
			GroupID: id, X: float64(i + 1), Y: y,
			Y0: math.NaN(), Z: math.NaN(),
			Color: data.DefaultColor, Brighter: data.Brighter(data.DefaultColor, 0.4),
		}
	}
	return ds
}

func mustSeries(t *testing.T, info GroupInfo, ds data.Datums) *Series {
	t.Helper()
	s, err := NewSeries(info, ds)
	if err != nil {
		t.Fatalf("NewSeries(%+v) failed: %v", info, err)
	}
	return s
}

// sameFloat is equal64 which also treats two NaNs as equal.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return equal64(a, b)
}

func y0s(s *Series) []float64 {
	r := make([]float64, len(s.Data))
	for i, d := range s.Data {
		r[i] = d.Y0
	}
	return r
}

var stackTests = []struct {
	typ        GroupType
	base, ys   []float64
	baseActive bool
	want       []float64
}{
	// Columns stack only on bars of the same sign.
	{Column, []float64{10, -5}, []float64{3, 2}, true, []float64{10, 0}},
	{Column, []float64{-4, -5}, []float64{-1, 2}, true, []float64{-4, 0}},
	{Column, []float64{0, 5}, []float64{3, 0}, true, []float64{0, 0}},
	{Column, []float64{10}, []float64{3, 2}, true, []float64{10, 0}},
	{Column, []float64{10, -5}, []float64{3, 2}, false, []float64{math.NaN(), math.NaN()}},

	// Areas stack on the raw base value.
	{Area, []float64{10, -5}, []float64{3, 2}, true, []float64{10, -5}},
	{Area, []float64{10}, []float64{3, 2}, true, []float64{10, math.NaN()}},
	{Area, []float64{10, -5}, []float64{3, 2}, false, []float64{math.NaN(), math.NaN()}},

	// Lines never stack.
	{Line, []float64{10, -5}, []float64{3, 2}, true, []float64{math.NaN(), math.NaN()}},
}

func TestCalculateStackedValues(t *testing.T) {
	for i, tc := range stackTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			base := mustSeries(t, GroupInfo{ID: 1, Type: tc.typ}, datums(1, tc.base...))
			base.Active = tc.baseActive
			s := mustSeries(t, GroupInfo{ID: 2, Type: tc.typ, StackedGroupID: Ptr(1)}, datums(2, tc.ys...))
			s.CalculateStackedValues(base)
			got := y0s(s)
			for j := range tc.want {
				if !sameFloat(got[j], tc.want[j]) {
					t.Errorf("Y0 = %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func TestCalculateStackedValuesNoop(t *testing.T) {
	s := mustSeries(t, GroupInfo{ID: 2, Type: Column}, datums(2, 3))
	s.CalculateStackedValues(nil)
	if s.Data[0].HasY0() {
		t.Errorf("nil base set Y0 to %v", s.Data[0].Y0)
	}

	empty := mustSeries(t, GroupInfo{ID: 3, Type: Column}, nil)
	empty.CalculateStackedValues(s)
	if empty.Size() != 0 {
		t.Errorf("empty series got %d datums", empty.Size())
	}
}

func TestNewSeriesUnknownType(t *testing.T) {
	_, err := NewSeries(GroupInfo{ID: 1, Type: GroupType(7)}, datums(1, 1))
	if !errors.Is(err, ErrUnknownGroupType) {
		t.Errorf("NewSeries error = %v, want ErrUnknownGroupType", err)
	}

	var gt GroupType
	if err := gt.UnmarshalText([]byte("column")); err != nil || gt != Column {
		t.Errorf("UnmarshalText(column) = %v, %v", gt, err)
	}
	if err := gt.UnmarshalText([]byte("pie")); !errors.Is(err, ErrUnknownGroupType) {
		t.Errorf("UnmarshalText(pie) error = %v", err)
	}
	if b, err := Line.MarshalText(); err != nil || string(b) != "line" {
		t.Errorf("MarshalText(Line) = %q, %v", b, err)
	}
}

// testFrame maps x to 10*x and y in [0, 100] to [100, 0].
var testFrame = Frame{
	X:        func(x float64) float64 { return 10 * x },
	Y:        func(y float64) float64 { return 100 - y },
	BarWidth: 20,
	Label:    func(y float64) string { return strconv.FormatFloat(y, 'f', -1, 64) },
}

func TestLayoutColumn(t *testing.T) {
	info := GroupInfo{ID: 1, Type: Column, ShowYValues: true}
	s := mustSeries(t, info, datums(1, 10, -5))
	l := s.Layout(testFrame)
	if len(l.Bars) != 2 || len(l.Labels) != 2 {
		t.Fatalf("got %d bars and %d labels", len(l.Bars), len(l.Labels))
	}

	// Positive bar at x=10, shifted left by half a bar.
	b := l.Bars[0]
	if b.Rect.Min.X != 0 || b.Rect.Min.Y != 90 || b.Width() != 20 || b.Height() != 10 {
		t.Errorf("positive bar = %+v", b.Rect)
	}
	if lb := l.Labels[0]; lb.X != 10 || lb.Y != 84 || lb.Text != "10" {
		t.Errorf("positive label = %+v", lb)
	}

	// Negative bar hangs from the zero line, its label below it.
	b = l.Bars[1]
	if b.Rect.Min.X != 10 || b.Rect.Min.Y != 100 || b.Height() != 5 {
		t.Errorf("negative bar = %+v", b.Rect)
	}
	if lb := l.Labels[1]; lb.Y != 119 || lb.Text != "-5" {
		t.Errorf("negative label = %+v", lb)
	}
	if b.Fill != data.DefaultColor || b.Hover == "" {
		t.Errorf("bar colours %q / %q", b.Fill, b.Hover)
	}
}

func TestLayoutColumnStackedShifted(t *testing.T) {
	info := GroupInfo{ID: 2, Type: Column, Shift: 2, StackedGroupID: Ptr(1)}
	s := mustSeries(t, info, datums(2, 3))
	s.Data[0].Y0 = 10
	l := s.Layout(testFrame)
	b := l.Bars[0]
	if b.Rect.Min.X != 10 || b.Rect.Min.Y != 87 || b.Height() != 3 {
		t.Errorf("stacked bar = %+v", b.Rect)
	}
	if l.Labels != nil {
		t.Errorf("labels without ShowYValues: %v", l.Labels)
	}
}

func TestLayoutLine(t *testing.T) {
	info := GroupInfo{ID: 1, Type: Line, ShowYValues: true}
	l := mustSeries(t, info, datums(1, 20, -10)).Layout(testFrame)
	if len(l.Line) != 2 || len(l.Markers) != 2 {
		t.Fatalf("line has %d points and %d markers", len(l.Line), len(l.Markers))
	}
	if p := l.Line[0]; p.X != 10 || p.Y != 80 {
		t.Errorf("first point = %v", p)
	}
	if lb := l.Labels[0]; lb.Y != 74 || lb.Color != positiveLabelColor {
		t.Errorf("positive label = %+v", lb)
	}
	if lb := l.Labels[1]; lb.Color != negativeLabelColor {
		t.Errorf("negative label colour = %q", lb.Color)
	}
}

func TestLayoutArea(t *testing.T) {
	s := mustSeries(t, GroupInfo{ID: 2, Type: Area}, datums(2, 5, 5))
	s.Data[1].Y0 = 20
	l := s.Layout(testFrame)
	if l.Area.Top[0].Y != 95 || l.Area.Bottom[0].Y != 100 {
		t.Errorf("unstacked point: top %v bottom %v", l.Area.Top[0], l.Area.Bottom[0])
	}
	if l.Area.Top[1].Y != 75 || l.Area.Bottom[1].Y != 80 {
		t.Errorf("stacked point: top %v bottom %v", l.Area.Top[1], l.Area.Bottom[1])
	}
	if len(l.Area.Polygon()) != 4 {
		t.Errorf("polygon has %d points", len(l.Area.Polygon()))
	}
}

func TestLayoutInactive(t *testing.T) {
	s := mustSeries(t, GroupInfo{ID: 1, Type: Line}, datums(1, 1, 2))
	s.Active = false
	if l := s.Layout(testFrame); !l.Empty() || l.GroupID != 1 {
		t.Errorf("inactive series laid out as %+v", l)
	}
	empty := mustSeries(t, GroupInfo{ID: 2, Type: Column}, nil)
	if l := empty.Layout(testFrame); !l.Empty() {
		t.Errorf("empty series laid out as %+v", l)
	}
}
