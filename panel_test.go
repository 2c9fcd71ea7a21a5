package kpichart

import (
	"testing"
)

func TestComputeDimensions(t *testing.T) {
	c := &Config{ContainerWidth: 800, ContainerHeight: 400, YPrimaryAxisType: YNumeric}
	d := ComputeDimensions(c, nil, 12345)
	if d.Margin.Left != 6*8+20 {
		t.Errorf("left margin = %v, want %v", d.Margin.Left, 6*8+20)
	}
	if d.Margin.Top != 10 || d.Margin.Right != 10 || d.Margin.Bottom != 40 {
		t.Errorf("margin = %+v", d.Margin)
	}
	if d.Width != 800-68-10 || d.Height != 400-10-40 {
		t.Errorf("plot area = %vx%v", d.Width, d.Height)
	}

	c.HasLegend = true
	c.YFormat = FormatK
	d = ComputeDimensions(c, nil, 12345)
	if d.Margin.Bottom != 70 || d.Height != 320 {
		t.Errorf("with legend: bottom=%v height=%v", d.Margin.Bottom, d.Height)
	}
	if d.Margin.Left != 2*8+20 {
		t.Errorf("left margin with K format = %v", d.Margin.Left)
	}
}

func TestComputeDimensionsContainer(t *testing.T) {
	c := &Config{ContainerHeight: 300, YPrimaryAxisType: YNumeric}
	d := ComputeDimensions(c, FixedSize{Width: 500, Height: 999}, 5)
	if d.ContainerWidth != 500 || d.ContainerHeight != 300 {
		t.Errorf("container = %vx%v, want 500x300", d.ContainerWidth, d.ContainerHeight)
	}

	d = ComputeDimensions(&Config{YPrimaryAxisType: YNumeric}, FixedSize{Width: 20, Height: 20}, 5)
	if d.Width != 0 || d.Height != 0 {
		t.Errorf("tiny container gives plot area %vx%v", d.Width, d.Height)
	}
}

func TestPanelMapXY(t *testing.T) {
	x := NewScale("x", Linear, Interval{0, 200})
	x.Interval = Interval{0, 10}
	yp := NewScale("yPrimary", Linear, Interval{100, 0})
	yp.Interval = Interval{0, 50}
	ys := NewScale("ySecondary", Linear, Interval{100, 0})
	ys.Interval = Interval{0, 1}
	p := &Panel{Scales: &Scales{X: x, YPrimary: yp, YSecondary: ys}}

	if pt := p.MapXY(5, 25, false); pt.X != 100 || pt.Y != 50 {
		t.Errorf("primary MapXY = %v", pt)
	}
	if pt := p.MapXY(5, 0.25, true); pt.X != 100 || pt.Y != 75 {
		t.Errorf("secondary MapXY = %v", pt)
	}
	p.Scales.YSecondary = nil
	if p.YScale(true) != yp {
		t.Errorf("YScale(true) without secondary axis is not the primary scale")
	}
}
