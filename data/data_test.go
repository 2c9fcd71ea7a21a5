package data

import (
	"errors"
	"math"
	"strconv"
	"testing"
	"time"
)

func num(x float64) *float64 { return &x }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNormalize(t *testing.T) {
	d, err := Normalize(Row{GroupID: 3, XNumber: num(7), Y: -2}, Numeric)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if d.X != 7 || d.Y != -2 || d.GroupID != 3 {
		t.Errorf("got %+v", d)
	}
	if d.Color != DefaultColor {
		t.Errorf("Color = %q, want %q", d.Color, DefaultColor)
	}
	if d.Brighter != "rgb(179, 242, 234)" {
		t.Errorf("Brighter = %q", d.Brighter)
	}
	if d.HasY0() || d.HasZ() {
		t.Errorf("Y0=%v Z=%v, want both unset", d.Y0, d.Z)
	}
	if d.Top() != -2 {
		t.Errorf("Top = %v, want -2", d.Top())
	}
}

func TestNormalizeDate(t *testing.T) {
	when := date(2024, time.March, 1)
	d, err := Normalize(Row{XDate: when, XNumber: num(99), Y: 1, Z: num(4), Color: "#000"}, Date)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !d.T.Equal(*when) {
		t.Errorf("T = %v, want %v", d.T, *when)
	}
	if got := XToTime(d.X, time.UTC); !got.Equal(*when) {
		t.Errorf("XToTime(X) = %v, want %v", got, *when)
	}
	if d.Z != 4 {
		t.Errorf("Z = %v, want 4", d.Z)
	}
	if d.Color != "#000" || d.Brighter != "rgb(0, 0, 0)" {
		t.Errorf("Color=%q Brighter=%q", d.Color, d.Brighter)
	}
}

var missingXTests = []struct {
	row  Row
	kind XKind
}{
	{Row{XDate: date(2024, 1, 1)}, Numeric},
	{Row{XNumber: num(1)}, Date},
	{Row{}, Numeric},
}

func TestNormalizeMissingX(t *testing.T) {
	for i, tc := range missingXTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if _, err := Normalize(tc.row, tc.kind); !errors.Is(err, ErrMissingX) {
				t.Errorf("got error %v, want ErrMissingX", err)
			}
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	rows := []Row{
		{GroupID: 1, XNumber: num(3), Y: 30},
		{GroupID: 2, XNumber: num(1), Y: 10},
		{GroupID: 1, XNumber: num(1), Y: 11},
	}
	all, err := NormalizeAll(rows, Numeric)
	if err != nil {
		t.Fatalf("NormalizeAll failed: %v", err)
	}
	want := []float64{10, 11, 30}
	for i, d := range all {
		if d.Y != want[i] {
			t.Errorf("all[%d].Y = %v, want %v", i, d.Y, want[i])
		}
	}

	rows = append(rows, Row{GroupID: 9})
	all, err = NormalizeAll(rows, Numeric)
	var rerr *RowError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want *RowError", err)
	}
	if rerr.Index != 3 || rerr.GroupID != 9 || all != nil {
		t.Errorf("RowError = %+v, all = %v", rerr, all)
	}
}

var brighterTests = []struct {
	color string
	k     float64
	want  string
}{
	{"#9bd2cb", 0.4, "rgb(179, 242, 234)"},
	{"#ffffff", 1, "rgb(255, 255, 255)"},
	{"#646464", 1, "rgb(143, 143, 143)"},
	{"#646464", 0, "rgb(100, 100, 100)"},
	{"steelblue", 0.4, "steelblue"},
	{"#12345", 0.4, "#12345"},
}

func TestBrighter(t *testing.T) {
	for i, tc := range brighterTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := Brighter(tc.color, tc.k); got != tc.want {
				t.Errorf("Brighter(%q, %v) = %q, want %q", tc.color, tc.k, got, tc.want)
			}
		})
	}
}

func TestTops(t *testing.T) {
	ds := Datums{{X: 1, Y: 2, Y0: 3}, {X: 2, Y: 5, Y0: math.NaN()}}
	tops := Tops(ds)
	if _, y := tops.XY(0); y != 5 {
		t.Errorf("Tops.XY(0) y = %v, want 5", y)
	}
	if _, y := tops.XY(1); y != 5 {
		t.Errorf("Tops.XY(1) y = %v, want 5", y)
	}
	if _, ok := ds.At(2); ok {
		t.Errorf("At(2) reported ok")
	}
}
