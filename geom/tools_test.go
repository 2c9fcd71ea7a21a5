package geom

import (
	"strconv"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestCanonicRectangle(t *testing.T) {
	r := CanonicRectangle(vg.Rectangle{
		Min: vg.Point{X: 10, Y: 5},
		Max: vg.Point{X: 2, Y: 8},
	})
	if r.Min.X != 2 || r.Max.X != 10 || r.Min.Y != 5 || r.Max.Y != 8 {
		t.Errorf("got %v", r)
	}
}

func TestNewBar(t *testing.T) {
	b := NewBar(3, 10, 20, 12, 30)
	if b.Index != 3 || b.Width() != 12 || b.Height() != 30 {
		t.Errorf("got %+v", b)
	}
	if b.Rect.Min.X != 10 || b.Rect.Min.Y != 20 {
		t.Errorf("top-left = %v", b.Rect.Min)
	}
}

var hitRegionTests = []struct {
	xs    []vg.Length
	width vg.Length
	want  [][2]vg.Length
}{
	{nil, 100, nil},
	{[]vg.Length{40}, 100, [][2]vg.Length{{0, 100}}},
	{[]vg.Length{0, 100}, 100, [][2]vg.Length{{-50, 50}, {50, 150}}},
	{
		[]vg.Length{0, 10, 40, 50},
		50,
		[][2]vg.Length{{-5, 5}, {5, 15}, {35, 45}, {45, 55}},
	},
	{
		[]vg.Length{0, 20, 40, 60},
		60,
		[][2]vg.Length{{-10, 10}, {10, 30}, {30, 50}, {50, 70}},
	},
}

func TestHitRegions(t *testing.T) {
	for i, tc := range hitRegionTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := HitRegions(tc.xs, tc.width)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d regions, want %d", len(got), len(tc.want))
			}
			for j, r := range got {
				if r.Min != tc.want[j][0] || r.Max != tc.want[j][1] {
					t.Errorf("region %d = [%v, %v), want %v", j, r.Min, r.Max, tc.want[j])
				}
				if r.Index != j {
					t.Errorf("region %d has index %d", j, r.Index)
				}
			}
		})
	}
}

func TestHitRegionsCoverPlottedRange(t *testing.T) {
	for _, n := range []int{2, 3, 7, 12} {
		step := vg.Length(40)
		xs := make([]vg.Length, n)
		for i := range xs {
			xs[i] = 20 + vg.Length(i)*step
		}
		regions := HitRegions(xs, 500)

		var sum vg.Length
		for _, r := range regions {
			sum += r.Max - r.Min
		}
		first, last := regions[0], regions[n-1]
		want := (xs[n-1] - xs[0]) + first.Width()/2 + last.Width()/2
		if sum != want {
			t.Errorf("n=%d: sum of widths %v, want %v", n, sum, want)
		}
		if first.Min != xs[0]-step/2 || last.Max != xs[n-1]+step/2 {
			t.Errorf("n=%d: covered [%v, %v)", n, first.Min, last.Max)
		}
	}
}

func TestHitRegionsDoNotOverlap(t *testing.T) {
	xs := []vg.Length{0, 3, 10, 11, 30, 31, 32, 80}
	regions := HitRegions(xs, 80)
	for i := 1; i < len(regions); i++ {
		if regions[i].Min < regions[i-1].Max {
			t.Errorf("region %d [%v,%v) overlaps region %d [%v,%v)",
				i, regions[i].Min, regions[i].Max,
				i-1, regions[i-1].Min, regions[i-1].Max)
		}
		if c := regions[i].Center; c != xs[i] || !regions[i].Contains(c) {
			t.Errorf("region %d not centered on %v", i, xs[i])
		}
	}
}

func TestLookup(t *testing.T) {
	regions := HitRegions([]vg.Length{0, 20, 40}, 40)
	for _, tc := range []struct {
		x    vg.Length
		want int
	}{{-10, 0}, {9, 0}, {10, 1}, {29.9, 1}, {30, 2}, {49, 2}, {50, -1}} {
		if got := Lookup(regions, tc.x); got != tc.want {
			t.Errorf("Lookup(%v) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestAreaPolygon(t *testing.T) {
	a := Area{
		Top:    Polyline{{X: 0, Y: 1}, {X: 1, Y: 2}},
		Bottom: Polyline{{X: 0, Y: 5}, {X: 1, Y: 5}},
	}
	poly := a.Polygon()
	want := []vg.Point{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 5}, {X: 0, Y: 5}}
	if len(poly) != len(want) {
		t.Fatalf("got %v", poly)
	}
	for i := range want {
		if poly[i] != want[i] {
			t.Errorf("poly[%d] = %v, want %v", i, poly[i], want[i])
		}
	}
	if (Area{}).Polygon() != nil {
		t.Errorf("empty area has a polygon")
	}
}
