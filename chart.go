package kpichart

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/vdobler/kpichart/data"
	"github.com/vdobler/kpichart/geom"
	"gonum.org/v1/plot/vg"
)

// ErrUnknownGroup is returned when toggling a group id the chart lacks.
var ErrUnknownGroup = errors.New("unknown group")

// Geometry is the complete drawable state of a chart after a recompute.
// It is never modified once returned.
type Geometry struct {
	Dimensions Dimensions
	Scales     *Scales

	// BarWidth is the pixel width of columns, NaN if unset.
	BarWidth float64

	// Series holds one layout per series in group order.
	Series []Layout

	XAxis          Axis
	YPrimaryAxis   Axis
	YSecondaryAxis *Axis

	// Regions are the tooltip hit-regions, nil without tooltips.
	Regions []geom.Region

	Band   BandGeometry
	Legend *Legend // nil without legend
}

// Layout returns the layout of the series id.
func (g *Geometry) Layout(id int) (Layout, bool) {
	for _, l := range g.Series {
		if l.GroupID == id {
			return l, true
		}
	}
	return Layout{}, false
}

// ----------------------------------------------------------------------------
// Chart

// Chart is the engine of one chart. Each operation recomputes the geometry
// synchronously, returns the new snapshot and keeps the previous one on
// error. A Chart must not be used concurrently.
type Chart struct {
	container Container
	config    *Config

	infos []GroupInfo
	rows  []data.Row
	agg   *Aggregator
	band  *Band

	geometry *Geometry
	log      *log.Logger
}

// New returns a chart hosted in container which may be nil if the
// configuration fixes the container size.
func New(container Container) *Chart {
	return &Chart{container: container, agg: NewAggregator()}
}

// SetLogger enables debug output of the recompute steps to l.
// A nil l disables it.
func (c *Chart) SetLogger(l *log.Logger) { c.log = l }

// Geometry returns the current snapshot, nil before data is loaded.
func (c *Chart) Geometry() *Geometry { return c.geometry }

// Config returns a copy of the effective configuration.
func (c *Chart) Config() Config {
	if c.config == nil {
		return Config{XAxisStep: 1}
	}
	return *c.config
}

// Groups returns the series of the chart in group order. Every operation
// works on a copy of the series and commits it on success, so the pointers
// are only valid until the next operation. Refer to series by group id.
func (c *Chart) Groups() []*Series { return c.agg.Groups() }

// UpdateConfig merges p into the configuration. With data loaded the data
// is normalized again, as the x axis type may have changed.
func (c *Chart) UpdateConfig(p PartialConfig) (*Geometry, error) {
	cfg := Config{XAxisStep: 1}
	if c.config != nil {
		cfg = *c.config
	}
	if err := cfg.Merge(p); err != nil {
		return c.geometry, err
	}
	if c.geometry == nil {
		c.config = &cfg
		return nil, nil
	}

	agg := c.agg.Clone()
	if err := load(&cfg, agg, c.infos, c.rows); err != nil {
		return c.geometry, err
	}
	return c.commit(&cfg, agg, c.band)
}

// UpdateData replaces the data of the chart. Known group ids keep their
// active state.
func (c *Chart) UpdateData(infos []GroupInfo, rows []data.Row) (*Geometry, error) {
	if c.config == nil {
		return c.geometry, ErrNoXAxisType
	}
	agg := c.agg.Clone()
	if err := load(c.config, agg, infos, rows); err != nil {
		return c.geometry, err
	}
	g, err := c.commit(c.config, agg, c.band)
	if err != nil {
		return g, err
	}
	c.infos = append([]GroupInfo(nil), infos...)
	c.rows = append([]data.Row(nil), rows...)
	return g, nil
}

func load(cfg *Config, agg *Aggregator, infos []GroupInfo, rows []data.Row) error {
	if cfg.XAxisType == "" {
		return ErrNoXAxisType
	}
	all, err := data.NormalizeAll(rows, cfg.XKind())
	if err != nil {
		return err
	}
	return agg.Update(infos, all)
}

// SetBand replaces the highlighted band; nil removes it.
func (c *Chart) SetBand(b *Band) (*Geometry, error) {
	if c.geometry == nil {
		c.band = b
		return nil, nil
	}
	return c.commit(c.config, c.agg, b)
}

// ToggleGroupActive flips the active state of group id like a legend
// click. Switching off the last active group switches all groups on.
func (c *Chart) ToggleGroupActive(id int) (*Geometry, error) {
	agg := c.agg.Clone()
	if !agg.Toggle(id) {
		return c.geometry, fmt.Errorf("%w %d", ErrUnknownGroup, id)
	}
	return c.commit(c.config, agg, c.band)
}

// SetGroupActive sets the active state of group id.
func (c *Chart) SetGroupActive(id int, active bool) (*Geometry, error) {
	agg := c.agg.Clone()
	if !agg.SetActive(id, active) {
		return c.geometry, fmt.Errorf("%w %d", ErrUnknownGroup, id)
	}
	return c.commit(c.config, agg, c.band)
}

// OnResize recomputes the geometry for the current container size.
func (c *Chart) OnResize() (*Geometry, error) {
	if c.geometry == nil {
		return nil, nil
	}
	return c.commit(c.config, c.agg, c.band)
}

// TooltipAt returns the tooltip of point index of the largest active
// series. It reports false without tooltips or without such a point.
func (c *Chart) TooltipAt(index int) (Tooltip, bool) {
	if c.geometry == nil || !c.config.HasTooltips {
		return Tooltip{}, false
	}
	return tooltipAt(c.config, c.agg, index)
}

// TooltipAtPixel is TooltipAt for the point whose hit-region contains the
// pixel x of the plot area.
func (c *Chart) TooltipAtPixel(x float64) (Tooltip, bool) {
	if c.geometry == nil {
		return Tooltip{}, false
	}
	i := geom.Lookup(c.geometry.Regions, vg.Length(x))
	if i < 0 {
		return Tooltip{}, false
	}
	return c.TooltipAt(i)
}

// commit recomputes the geometry and makes cfg, agg and band the state of
// c if that succeeds.
func (c *Chart) commit(cfg *Config, agg *Aggregator, band *Band) (*Geometry, error) {
	if cfg == nil {
		return c.geometry, ErrEmptyConfig
	}
	g, err := c.recompute(cfg, agg, band)
	if err != nil {
		return c.geometry, err
	}
	c.config, c.agg, c.band, c.geometry = cfg, agg, band, g
	return g, nil
}

// recompute runs the layout pipeline on already aggregated data.
func (c *Chart) recompute(cfg *Config, agg *Aggregator, band *Band) (*Geometry, error) {
	dims := ComputeDimensions(cfg, c.container, agg.MaxY)
	c.debugf("Dimensions: container=%.0fx%.0f plot=%.0fx%.0f margin=%+v",
		dims.ContainerWidth, dims.ContainerHeight, dims.Width, dims.Height, dims.Margin)

	agg.AdjustBarWidth(dims.Width, cfg.IsDate())
	c.debugGroups("After partitioning groups", agg)

	scales, err := ComputeScales(cfg, agg, dims)
	if err != nil {
		return nil, err
	}
	setTickers(scales, cfg, agg.Largest)
	c.debugScales("After computing scales", scales)

	p := &Panel{Dims: dims, Scales: scales, Config: cfg}
	g := &Geometry{
		Dimensions: dims,
		Scales:     scales,
		BarWidth:   agg.BarWidth,
	}

	barWidth := agg.BarWidth
	if math.IsNaN(barWidth) {
		barWidth = MaxBarWidth
	}
	for _, s := range agg.Groups() {
		g.Series = append(g.Series, s.Layout(p.Frame(s, barWidth)))
	}

	g.XAxis = xAxis(p, agg.Largest)
	g.YPrimaryAxis = yAxis(p, false)
	if scales.YSecondary != nil {
		ax := yAxis(p, true)
		g.YSecondaryAxis = &ax
	}
	if cfg.HasTooltips {
		g.Regions = hitRegions(p, agg.Largest)
	}
	g.Band = band.Layout(scales.X, dims.Height)
	if cfg.HasLegend {
		g.Legend = legend(cfg, agg, dims)
	}
	return g, nil
}

// ----------------------------------------------------------------------------
// Debugging

func (c *Chart) debugf(format string, args ...interface{}) {
	if c.log == nil {
		return
	}
	c.log.Printf(format, args...)
}

func (c *Chart) debugScales(info string, sc *Scales) {
	if c.log == nil {
		return
	}
	c.log.Println(info)
	c.log.Println("    X:         ", sc.X)
	c.log.Println("    YPrimary:  ", sc.YPrimary)
	if sc.YSecondary != nil {
		c.log.Println("    YSecondary:", sc.YSecondary)
	}
	if sc.Z != nil {
		c.log.Println("    Z:         ", sc.Z)
	}
}

func (c *Chart) debugGroups(info string, agg *Aggregator) {
	if c.log == nil {
		return
	}
	c.log.Println(info)
	for _, s := range agg.Groups() {
		c.log.Printf("    %d %-8s %-6s active=%t size=%d secondary=%t",
			s.Info.ID, s.Info.Name, s.Info.Type, s.Active, s.Size(), s.Info.UseSecondaryYAxis)
	}
	c.log.Printf("    primary pool=%d secondary pool=%d bar width=%.1f",
		len(agg.PrimaryPool), len(agg.SecondaryPool), agg.BarWidth)
}
