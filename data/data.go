// Package data contains the raw and the normalized data points of a KPI
// chart and the normalizer turning the former into the latter.
package data

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// DefaultColor is the fill color of a datum which comes without one.
const DefaultColor = "#9bd2cb"

// XKind selects how the x coordinate of a row is interpreted.
// All data of one chart share the same XKind.
type XKind int

const (
	Numeric XKind = iota
	Date
)

// String returns the config name of k.
func (k XKind) String() string {
	return []string{"numeric", "date"}[int(k)]
}

// ErrMissingX is reported if a row lacks the x field its XKind needs.
var ErrMissingX = errors.New("missing x value")

// RowError reports a row which could not be normalized.
type RowError struct {
	Index   int // position of the row in the payload
	GroupID int
	Kind    XKind
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (group %d): %s axis: %v", e.Index, e.GroupID, e.Kind, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ----------------------------------------------------------------------------
// Row

// Row is one raw observation as delivered by the host.
// Exactly one of XNumber and XDate is used, depending on the x axis type.
type Row struct {
	GroupID      int        `json:"groupId" yaml:"groupId"`
	XNumber      *float64   `json:"xNumberValue,omitempty" yaml:"xNumberValue,omitempty"`
	XDate        *time.Time `json:"xDateValue,omitempty" yaml:"xDateValue,omitempty"`
	Y            float64    `json:"yValue" yaml:"yValue"`
	Z            *float64   `json:"zValue,omitempty" yaml:"zValue,omitempty"`
	Color        string     `json:"color,omitempty" yaml:"color,omitempty"`
	TextLabel    string     `json:"textLabel,omitempty" yaml:"textLabel,omitempty"`
	NumericLabel *float64   `json:"numericLabel,omitempty" yaml:"numericLabel,omitempty"`
}

// ----------------------------------------------------------------------------
// Datum

// Datum is a normalized observation.
//
// X is the resolved x coordinate: the number itself on a numeric axis, the
// Unix time in seconds on a date axis (T then holds the time). Y0 is the
// stacking baseline and Z the secondary metric; both are NaN when unset.
type Datum struct {
	GroupID   int
	X         float64
	T         time.Time
	Y         float64
	Y0        float64
	Z         float64
	Color     string
	Brighter  string
	TextLabel string
}

// Base returns the stacking baseline of d, 0 if unset.
func (d Datum) Base() float64 {
	if math.IsNaN(d.Y0) {
		return 0
	}
	return d.Y0
}

// Top returns the upper end of d, i.e. Y shifted by its baseline.
func (d Datum) Top() float64 {
	return d.Y + d.Base()
}

// HasY0 reports whether a stacking baseline is set on d.
func (d Datum) HasY0() bool { return !math.IsNaN(d.Y0) }

// HasZ reports whether d carries a secondary metric.
func (d Datum) HasZ() bool { return !math.IsNaN(d.Z) }

// TimeToX converts t into the x coordinate used on date axes.
func TimeToX(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// XToTime is the inverse of TimeToX in location loc.
func XToTime(x float64, loc *time.Location) time.Time {
	sec, frac := math.Modf(x)
	t := time.Unix(int64(sec), int64(math.Round(frac*1e9)))
	if loc != nil {
		t = t.In(loc)
	}
	return t
}

// Normalize turns the raw row r into a Datum for an x axis of the given kind.
// It fails if r lacks the x field kind requires; no partial Datum is returned.
func Normalize(r Row, kind XKind) (Datum, error) {
	d := Datum{
		GroupID:   r.GroupID,
		Y:         r.Y,
		Y0:        math.NaN(),
		Z:         math.NaN(),
		Color:     r.Color,
		TextLabel: r.TextLabel,
	}

	switch kind {
	case Numeric:
		if r.XNumber == nil {
			return Datum{}, ErrMissingX
		}
		d.X = *r.XNumber
	case Date:
		if r.XDate == nil {
			return Datum{}, ErrMissingX
		}
		d.T = *r.XDate
		d.X = TimeToX(d.T)
	default:
		return Datum{}, fmt.Errorf("unknown x axis kind %d", int(kind))
	}

	if r.Z != nil {
		d.Z = *r.Z
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
	d.Brighter = Brighter(d.Color, 0.4)

	return d, nil
}

// NormalizeAll normalizes all rows and returns them sorted ascending by x.
// Rows with equal x keep their payload order. The first failing row aborts
// the conversion.
func NormalizeAll(rows []Row, kind XKind) (Datums, error) {
	all := make(Datums, len(rows))
	for i, r := range rows {
		d, err := Normalize(r, kind)
		if err != nil {
			return nil, &RowError{Index: i, GroupID: r.GroupID, Kind: kind, Err: err}
		}
		all[i] = d
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].X < all[j].X })
	return all, nil
}

// ----------------------------------------------------------------------------
// Datums

// Datums implements gonum's plotter.XYer on the resolved (x, y) coordinates.
type Datums []Datum

func (ds Datums) Len() int                { return len(ds) }
func (ds Datums) XY(i int) (x, y float64) { return ds[i].X, ds[i].Y }

// At returns the datum at index i and whether i is within ds.
func (ds Datums) At(i int) (Datum, bool) {
	if i < 0 || i >= len(ds) {
		return Datum{}, false
	}
	return ds[i], true
}

// Zs returns the secondary metrics of all datums which carry one.
func (ds Datums) Zs() []float64 {
	var zs []float64
	for _, d := range ds {
		if d.HasZ() {
			zs = append(zs, d.Z)
		}
	}
	return zs
}

// Tops implements plotter.XYer on the stacked upper ends (x, y+y0).
type Tops []Datum

func (ts Tops) Len() int                { return len(ts) }
func (ts Tops) XY(i int) (x, y float64) { return ts[i].X, ts[i].Top() }
