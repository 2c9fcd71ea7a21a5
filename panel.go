package kpichart

import (
	"unicode/utf8"

	"gonum.org/v1/plot/vg"
)

// Margins around the plot area in pixels.
const (
	marginTop    = 10
	marginRight  = 10
	marginBottom = 40
	legendHeight = 30
)

// Container is the element hosting a chart. Its size is used whenever the
// configuration does not fix the container size.
type Container interface {
	Size() (width, height float64)
}

// FixedSize is a Container of constant size.
type FixedSize struct{ Width, Height float64 }

func (f FixedSize) Size() (float64, float64) { return f.Width, f.Height }

// ----------------------------------------------------------------------------
// Dimensions

// Margin is the space between the container border and the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Dimensions describes the container and the plot area inside its margins.
type Dimensions struct {
	ContainerWidth  float64
	ContainerHeight float64
	Margin          Margin
	Width           float64 // of the plot area
	Height          float64 // of the plot area
}

// ComputeDimensions lays out the plot area. The left margin makes room for
// the formatted maxY label.
func ComputeDimensions(c *Config, container Container, maxY float64) Dimensions {
	d := Dimensions{ContainerWidth: c.ContainerWidth, ContainerHeight: c.ContainerHeight}
	if (d.ContainerWidth <= 0 || d.ContainerHeight <= 0) && container != nil {
		w, h := container.Size()
		if d.ContainerWidth <= 0 {
			d.ContainerWidth = w
		}
		if d.ContainerHeight <= 0 {
			d.ContainerHeight = h
		}
	}

	d.Margin = Margin{Top: marginTop, Right: marginRight, Bottom: marginBottom}
	if c.HasLegend {
		d.Margin.Bottom += legendHeight
	}
	d.Margin.Left = float64(utf8.RuneCountInString(FormatY(maxY, c, false)))*8 + 20

	d.Width = d.ContainerWidth - d.Margin.Left - d.Margin.Right
	d.Height = d.ContainerHeight - d.Margin.Top - d.Margin.Bottom
	if d.Width < 0 {
		d.Width = 0
	}
	if d.Height < 0 {
		d.Height = 0
	}
	return d
}

// ----------------------------------------------------------------------------
// Panel

// A Panel is the plot area of a chart together with the scales mapping
// data into it.
type Panel struct {
	Dims   Dimensions
	Scales *Scales
	Config *Config
}

// YScale returns the y scale of the primary or secondary axis.
// Without a secondary axis the primary scale is used.
func (p *Panel) YScale(secondary bool) *Scale {
	if secondary && p.Scales.YSecondary != nil {
		return p.Scales.YSecondary
	}
	return p.Scales.YPrimary
}

// MapXY maps the data coordinate (x,y) to a point in the plot area.
func (p *Panel) MapXY(x, y float64, secondary bool) vg.Point {
	return vg.Point{
		X: vg.Length(p.Scales.X.Map(x)),
		Y: vg.Length(p.YScale(secondary).Map(y)),
	}
}

// Frame returns the frame series s is laid out in.
func (p *Panel) Frame(s *Series, barWidth float64) Frame {
	secondary := s.Info.UseSecondaryYAxis
	return Frame{
		X:        p.Scales.X.Map,
		Y:        p.YScale(secondary).Map,
		BarWidth: barWidth,
		Label:    func(v float64) string { return FormatY(v, p.Config, secondary) },
	}
}
