package render

import (
	"bytes"
	"errors"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/vdobler/kpichart"
	"github.com/vdobler/kpichart/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var colorTests = []struct {
	css     string
	opacity float64
	want    color.NRGBA
}{
	{"#9bd2cb", 1, color.NRGBA{0x9b, 0xd2, 0xcb, 0xff}},
	{"#ABC", 1, color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}},
	{"rgb(10, 20, 300)", 1, color.NRGBA{10, 20, 255, 0xff}},
	{"red", 1, color.NRGBA{0xff, 0, 0, 0xff}},
	{"Red", 0.5, color.NRGBA{0xff, 0, 0, 0x80}},
	{"no-such-colour", 1, color.NRGBA{0, 0, 0, 0xff}},
	{"", 0, color.NRGBA{0, 0, 0, 0}},
}

func TestColor(t *testing.T) {
	for i, tc := range colorTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := Color(tc.css, tc.opacity, nil)
			if got != color.Color(tc.want) {
				t.Errorf("Color(%q, %v) = %v, want %v", tc.css, tc.opacity, got, tc.want)
			}
		})
	}
	if got := Color("bogus", 1, color.White); got != color.Color(color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("fallback colour = %v", got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"svg", ".PNG", "pdf", "eps"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", s, err)
		}
	}
	if f, err := FormatOf("out/chart.svg"); err != nil || f != SVG {
		t.Errorf("FormatOf = %q, %v", f, err)
	}
	if _, err := FormatOf("chart.gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FormatOf(gif) error = %v", err)
	}
}

func TestPlotAreaFlipsY(t *testing.T) {
	p := plotArea{
		Canvas: draw.Canvas{Rectangle: vg.Rectangle{Max: vg.Point{X: 800, Y: 400}}},
		dims:   kpichart.Dimensions{Margin: kpichart.Margin{Top: 10, Left: 60}},
	}
	if got := p.xy(0, 0); got.X != 60 || got.Y != 390 {
		t.Errorf("origin maps to %v", got)
	}
	r := p.rect(vg.Rectangle{Min: vg.Point{X: 10, Y: 20}, Max: vg.Point{X: 30, Y: 50}})
	if r.Min.X != 70 || r.Max.X != 90 || r.Min.Y != 340 || r.Max.Y != 370 {
		t.Errorf("rect maps to %v", r)
	}
}

func sampleGeometry(t *testing.T) *kpichart.Geometry {
	t.Helper()
	c := kpichart.New(nil)
	_, err := c.UpdateConfig(kpichart.PartialConfig{
		ContainerWidth:     kpichart.Ptr(640.0),
		ContainerHeight:    kpichart.Ptr(320.0),
		XAxisType:          kpichart.Ptr(kpichart.XNumeric),
		YPrimaryAxisType:   kpichart.Ptr(kpichart.YNumeric),
		YSecondaryAxisType: kpichart.Ptr(kpichart.YPercent),
		HasLegend:          kpichart.Ptr(true),
	})
	if err != nil {
		t.Fatalf("UpdateConfig failed: %v", err)
	}
	c.SetBand(&kpichart.Band{X0: kpichart.Bound(2), X1: kpichart.Bound(3), Color: "#ffe0e0"})

	infos := []kpichart.GroupInfo{
		{ID: 1, Name: "orders", Type: kpichart.Column, ShowYValues: true},
		{ID: 2, Name: "backlog", Type: kpichart.Area},
		{ID: 3, Name: "conversion", Type: kpichart.Line, UseSecondaryYAxis: true},
	}
	var rows []data.Row
	for i := 1; i <= 4; i++ {
		x := float64(i)
		rows = append(rows,
			data.Row{GroupID: 1, XNumber: kpichart.Ptr(x), Y: 100 * x, Color: "#4e79a7"},
			data.Row{GroupID: 2, XNumber: kpichart.Ptr(x), Y: 50 * x},
			data.Row{GroupID: 3, XNumber: kpichart.Ptr(x), Y: 0.1 * x, Color: "orange"})
	}
	g, err := c.UpdateData(infos, rows)
	if err != nil {
		t.Fatalf("UpdateData failed: %v", err)
	}
	return g
}

func TestWrite(t *testing.T) {
	g := sampleGeometry(t)
	sty := DefaultStyle(12)
	for _, tc := range []struct {
		f      Format
		prefix string
	}{
		{SVG, "<?xml"},
		{PNG, "\x89PNG"},
		{PDF, "%PDF"},
		{EPS, "%%!PS-Adobe"},
	} {
		var buf bytes.Buffer
		if err := Write(&buf, g, tc.f, sty); err != nil {
			t.Errorf("Write(%s) failed: %v", tc.f, err)
			continue
		}
		if !strings.HasPrefix(buf.String(), tc.prefix) {
			t.Errorf("%s output starts with %q", tc.f, buf.String()[:min(8, buf.Len())])
		}
	}

	var svg bytes.Buffer
	Write(&svg, g, SVG, sty)
	for _, name := range []string{"orders", "backlog", "conversion"} {
		if !strings.Contains(svg.String(), name) {
			t.Errorf("SVG lacks legend entry %q", name)
		}
	}
}

func TestWriteErrors(t *testing.T) {
	g := sampleGeometry(t)
	if err := Write(&bytes.Buffer{}, g, Format("gif"), DefaultStyle(12)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write(gif) error = %v", err)
	}
	empty := *g
	empty.Dimensions.ContainerWidth = 0
	if err := Write(&bytes.Buffer{}, &empty, SVG, DefaultStyle(12)); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Write(empty) error = %v", err)
	}
}
