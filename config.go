package kpichart

import (
	"errors"
	"fmt"
	"time"

	"github.com/vdobler/kpichart/data"
)

var (
	// ErrEmptyConfig is returned when a configuration update sets nothing.
	ErrEmptyConfig = errors.New("empty configuration")

	// ErrNoPrimaryAxis is returned if yPrimaryAxisType is unset when
	// scales are computed.
	ErrNoPrimaryAxis = errors.New("yPrimaryAxisType must be set")

	// ErrNoXAxisType is returned if xAxisType is unset when data arrives.
	ErrNoXAxisType = errors.New("xAxisType must be set")

	// ErrBadOption is wrapped by errors reporting an unknown option value.
	ErrBadOption = errors.New("bad option value")
)

// XAxisType is the kind of the shared x axis.
type XAxisType string

const (
	XNumeric XAxisType = "numeric"
	XDate    XAxisType = "date"
)

// YAxisType is the kind of a y axis.
type YAxisType string

const (
	YNumeric YAxisType = "numeric"
	YPercent YAxisType = "percent"
)

// ValueFormat selects the exponent applied to y values before they are
// printed.
type ValueFormat string

const (
	FormatNone ValueFormat = "none"
	FormatK    ValueFormat = "K"
	FormatM    ValueFormat = "M"
)

// ZAxisType is the kind of the optional z scale.
type ZAxisType string

const ZNumeric ZAxisType = "numeric"

// ----------------------------------------------------------------------------
// Config

// Config is the effective configuration of a chart.
// Zero values mean "not configured".
type Config struct {
	ContainerWidth  float64
	ContainerHeight float64

	XAxisType           XAxisType
	XAxisMinNumberValue *float64
	XAxisMinDateValue   *time.Time
	XAxisStep           int // label thinning stride, at least 1
	GroupByYear         bool

	YPrimaryAxisType   YAxisType
	YSecondaryAxisType YAxisType
	YAxisMinValue      *float64
	YFormat            ValueFormat
	ZAxisType          ZAxisType

	HasLegend       bool
	HasTooltips     bool
	TooltipNoFormat bool // tooltips ignore YFormat
	XTicksOff       bool
	YTicksOff       bool

	// Location is used to interpret dates on a date axis. Nil means UTC.
	Location *time.Location
}

// NewConfig returns the configuration p describes.
func NewConfig(p PartialConfig) (Config, error) {
	c := Config{XAxisStep: 1}
	if err := c.Merge(p); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Merge overwrites all fields of c which are set in p. It fails with
// ErrEmptyConfig if p sets nothing or with ErrBadOption on invalid values;
// c is left unchanged on error.
func (c *Config) Merge(p PartialConfig) error {
	if p.IsEmpty() {
		return ErrEmptyConfig
	}
	if err := p.validate(); err != nil {
		return err
	}

	n := *c
	setf := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setb := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setf(&n.ContainerWidth, p.ContainerWidth)
	setf(&n.ContainerHeight, p.ContainerHeight)
	if p.XAxisType != nil {
		n.XAxisType = *p.XAxisType
	}
	if p.XAxisMinNumberValue != nil {
		v := *p.XAxisMinNumberValue
		n.XAxisMinNumberValue = &v
	}
	if p.XAxisMinDateValue != nil {
		t := *p.XAxisMinDateValue
		n.XAxisMinDateValue = &t
	}
	if p.XAxisStep != nil {
		n.XAxisStep = *p.XAxisStep
	}
	if n.XAxisStep < 1 {
		n.XAxisStep = 1
	}
	setb(&n.GroupByYear, p.GroupByYear)
	if p.YPrimaryAxisType != nil {
		n.YPrimaryAxisType = *p.YPrimaryAxisType
	}
	if p.YSecondaryAxisType != nil {
		n.YSecondaryAxisType = *p.YSecondaryAxisType
	}
	if p.YAxisMinValue != nil {
		v := *p.YAxisMinValue
		n.YAxisMinValue = &v
	}
	if p.YFormat != nil {
		n.YFormat = *p.YFormat
	}
	if p.ZAxisType != nil {
		n.ZAxisType = *p.ZAxisType
	}
	setb(&n.HasLegend, p.HasLegend)
	setb(&n.HasTooltips, p.HasTooltips)
	setb(&n.TooltipNoFormat, p.TooltipNoFormat)
	setb(&n.XTicksOff, p.XTicksOff)
	setb(&n.YTicksOff, p.YTicksOff)

	*c = n
	return nil
}

// XKind maps the x axis type to the kind of datum x coordinate.
func (c *Config) XKind() data.XKind {
	if c.XAxisType == XDate {
		return data.Date
	}
	return data.Numeric
}

// IsDate reports whether the x axis is a date axis.
func (c *Config) IsDate() bool { return c.XAxisType == XDate }

// HasSecondaryAxis reports whether a secondary y axis is configured.
func (c *Config) HasSecondaryAxis() bool { return c.YSecondaryAxisType != "" }

func (c *Config) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// ----------------------------------------------------------------------------
// PartialConfig

// PartialConfig is a configuration update; nil fields are left untouched.
// It is the wire form of a configuration as read from JSON or YAML.
type PartialConfig struct {
	ContainerWidth      *float64     `json:"containerWidth,omitempty" yaml:"containerWidth,omitempty"`
	ContainerHeight     *float64     `json:"containerHeight,omitempty" yaml:"containerHeight,omitempty"`
	XAxisType           *XAxisType   `json:"xAxisType,omitempty" yaml:"xAxisType,omitempty"`
	XAxisMinNumberValue *float64     `json:"xAxisMinNumberValue,omitempty" yaml:"xAxisMinNumberValue,omitempty"`
	XAxisMinDateValue   *time.Time   `json:"xAxisMinDateValue,omitempty" yaml:"xAxisMinDateValue,omitempty"`
	XAxisStep           *int         `json:"xAxisStep,omitempty" yaml:"xAxisStep,omitempty"`
	GroupByYear         *bool        `json:"groupByYear,omitempty" yaml:"groupByYear,omitempty"`
	YPrimaryAxisType    *YAxisType   `json:"yPrimaryAxisType,omitempty" yaml:"yPrimaryAxisType,omitempty"`
	YSecondaryAxisType  *YAxisType   `json:"ySecondaryAxisType,omitempty" yaml:"ySecondaryAxisType,omitempty"`
	YAxisMinValue       *float64     `json:"yAxisMinValue,omitempty" yaml:"yAxisMinValue,omitempty"`
	YFormat             *ValueFormat `json:"yFormat,omitempty" yaml:"yFormat,omitempty"`
	ZAxisType           *ZAxisType   `json:"zAxisType,omitempty" yaml:"zAxisType,omitempty"`
	HasLegend           *bool        `json:"hasLegend,omitempty" yaml:"hasLegend,omitempty"`
	HasTooltips         *bool        `json:"hasTooltips,omitempty" yaml:"hasTooltips,omitempty"`
	TooltipNoFormat     *bool        `json:"tooltipNoFormat,omitempty" yaml:"tooltipNoFormat,omitempty"`
	XTicksOff           *bool        `json:"xTicksOff,omitempty" yaml:"xTicksOff,omitempty"`
	YTicksOff           *bool        `json:"yTicksOff,omitempty" yaml:"yTicksOff,omitempty"`
}

// IsEmpty reports whether p sets no field at all.
func (p PartialConfig) IsEmpty() bool {
	return p == PartialConfig{}
}

func (p PartialConfig) validate() error {
	if p.XAxisType != nil {
		switch *p.XAxisType {
		case XNumeric, XDate:
		default:
			return fmt.Errorf("%w: xAxisType %q", ErrBadOption, *p.XAxisType)
		}
	}
	for name, t := range map[string]*YAxisType{
		"yPrimaryAxisType":   p.YPrimaryAxisType,
		"ySecondaryAxisType": p.YSecondaryAxisType,
	} {
		if t == nil {
			continue
		}
		switch *t {
		case YNumeric, YPercent, "":
		default:
			return fmt.Errorf("%w: %s %q", ErrBadOption, name, *t)
		}
	}
	if p.YFormat != nil {
		switch *p.YFormat {
		case FormatNone, FormatK, FormatM, "":
		default:
			return fmt.Errorf("%w: yFormat %q", ErrBadOption, *p.YFormat)
		}
	}
	if p.ZAxisType != nil {
		switch *p.ZAxisType {
		case ZNumeric, "":
		default:
			return fmt.Errorf("%w: zAxisType %q", ErrBadOption, *p.ZAxisType)
		}
	}
	return nil
}

// Ptr returns a pointer to v. It eases building a PartialConfig.
func Ptr[T any](v T) *T { return &v }
