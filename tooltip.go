package kpichart

import (
	"github.com/vdobler/kpichart/geom"
	"gonum.org/v1/plot/vg"
)

// Tooltip is the content shown when the pointer rests on a data point.
type Tooltip struct {
	Index  int
	Header string
	Rows   []TooltipRow
}

// TooltipRow is the line of one active series. Value is "-" if the series
// has no point at the tooltip's index.
type TooltipRow struct {
	GroupID int
	Name    string
	Color   string
	Value   string
}

// hitRegions returns the pointer regions of the points of largest.
func hitRegions(p *Panel, largest *Series) []geom.Region {
	if largest == nil || largest.Size() == 0 {
		return nil
	}
	xs := make([]vg.Length, largest.Size())
	for i, d := range largest.Data {
		xs[i] = p.MapXY(d.X, d.Y, largest.Info.UseSecondaryYAxis).X
	}
	return geom.HitRegions(xs, vg.Length(p.Dims.Width))
}

// tooltipAt builds the tooltip for point index of the largest active
// series. It reports false if there is no such point.
func tooltipAt(c *Config, agg *Aggregator, index int) (Tooltip, bool) {
	if agg.Largest == nil {
		return Tooltip{}, false
	}
	d, ok := agg.Largest.Data.At(index)
	if !ok {
		return Tooltip{}, false
	}

	tt := Tooltip{Index: index, Header: FormatTooltipX(d.X, c)}
	for _, s := range agg.ActiveGroups {
		row := TooltipRow{GroupID: s.Info.ID, Name: s.Info.Name, Color: s.Color(), Value: "-"}
		if d, ok := s.Data.At(index); ok {
			row.Value = FormatTooltipY(d.Y, c, s.Info.UseSecondaryYAxis)
		}
		tt.Rows = append(tt.Rows, row)
	}
	return tt, true
}
