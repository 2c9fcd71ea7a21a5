package kpichart

// Legend offsets below the plot area in pixels.
const (
	legendOffset       = 45
	legendOffsetByYear = 65
)

// LegendEntry is the legend item of one series. Its icon depends on Icon,
// the type of the series.
type LegendEntry struct {
	GroupID int
	Name    string
	Icon    GroupType
	Color   string
	Active  bool
}

// Legend lists all series in group order. Baseline is the y position of
// the legend row in container coordinates.
type Legend struct {
	Entries  []LegendEntry
	Baseline float64
}

func legend(c *Config, agg *Aggregator, dims Dimensions) *Legend {
	offset := legendOffset
	if c.GroupByYear {
		offset = legendOffsetByYear
	}
	l := &Legend{Baseline: dims.Height + dims.Margin.Top + float64(offset)}
	for _, s := range agg.Groups() {
		l.Entries = append(l.Entries, LegendEntry{
			GroupID: s.Info.ID,
			Name:    s.Info.Name,
			Icon:    s.Info.Type,
			Color:   s.Color(),
			Active:  s.Active,
		})
	}
	return l
}
