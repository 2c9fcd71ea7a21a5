package kpichart

import (
	"testing"
)

func tooltipAggregator(t *testing.T) *Aggregator {
	a := NewAggregator()
	mustUpdate(t, a, []GroupInfo{
		{ID: 1, Name: "orders", Type: Column, Order: 1},
		{ID: 2, Name: "returns", Type: Line, Order: 2},
	}, pool(datums(1, 1200, 1500, 1800), datums(2, 30, 40)))
	return a
}

func TestTooltipAt(t *testing.T) {
	c := &Config{XAxisType: XNumeric, YPrimaryAxisType: YNumeric, YFormat: FormatK}
	a := tooltipAggregator(t)

	tt, ok := tooltipAt(c, a, 2)
	if !ok {
		t.Fatalf("no tooltip at index 2")
	}
	if tt.Header != "3" || len(tt.Rows) != 2 {
		t.Fatalf("tooltip = %+v", tt)
	}
	if r := tt.Rows[0]; r.GroupID != 1 || r.Name != "orders" || r.Value != "2" {
		t.Errorf("first row = %+v", r)
	}
	if r := tt.Rows[1]; r.GroupID != 2 || r.Value != "-" {
		t.Errorf("row of the shorter series = %+v", r)
	}

	c.TooltipNoFormat = true
	tt, _ = tooltipAt(c, a, 0)
	if tt.Rows[0].Value != "1,200" || tt.Rows[1].Value != "30" {
		t.Errorf("unformatted rows = %+v", tt.Rows)
	}

	if _, ok := tooltipAt(c, a, 3); ok {
		t.Errorf("tooltip beyond the largest series")
	}
	a.SetActive(2, false)
	if tt, _ := tooltipAt(c, a, 0); len(tt.Rows) != 1 {
		t.Errorf("inactive series in tooltip: %+v", tt.Rows)
	}
}

func TestHitRegions(t *testing.T) {
	c := &Config{XAxisType: XNumeric, YPrimaryAxisType: YNumeric}
	a := tooltipAggregator(t)
	p := numericPanel(c, 0, 4, 400)
	regions := hitRegions(p, a.Largest)
	if len(regions) != 3 {
		t.Fatalf("%d regions, want 3", len(regions))
	}
	for i, r := range regions {
		if want := float64(100 * (i + 1)); float64(r.Center) != want || r.Width() != 100 {
			t.Errorf("region %d = %+v", i, r)
		}
	}
	if hitRegions(p, nil) != nil {
		t.Errorf("regions without a largest series")
	}
}

func TestLegend(t *testing.T) {
	c := &Config{HasLegend: true}
	a := tooltipAggregator(t)
	a.SetActive(2, false)
	dims := Dimensions{Height: 200, Margin: Margin{Top: 10}}

	l := legend(c, a, dims)
	if l.Baseline != 255 || len(l.Entries) != 2 {
		t.Fatalf("legend = %+v", l)
	}
	if e := l.Entries[1]; e.GroupID != 2 || e.Active || e.Icon != Line || e.Name != "returns" {
		t.Errorf("second entry = %+v", e)
	}

	c.GroupByYear = true
	if l := legend(c, a, dims); l.Baseline != 275 {
		t.Errorf("baseline with year labels = %v", l.Baseline)
	}
}
