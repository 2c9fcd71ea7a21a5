package kpichart

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vdobler/kpichart/data"
)

var (
	// ErrNoGroupData is wrapped by GroupDataError.
	ErrNoGroupData = errors.New("no data for group")

	// ErrUnknownStackBase is returned if a series stacks on an unknown id.
	ErrUnknownStackBase = errors.New("stacked group does not exist")

	// ErrStackCycle is returned if stacking references form a cycle.
	ErrStackCycle = errors.New("stacking cycle")
)

// Bar widths are clamped to [MinBarWidth, MaxBarWidth] pixels.
const (
	MinBarWidth = 10
	MaxBarWidth = 25
)

// GroupDataError reports a declared group without rows.
type GroupDataError struct {
	ID   int
	Name string
}

func (e *GroupDataError) Error() string {
	return fmt.Sprintf("group %q (id %d): %v", e.Name, e.ID, ErrNoGroupData)
}

func (e *GroupDataError) Unwrap() error { return ErrNoGroupData }

// ----------------------------------------------------------------------------
// Aggregator

// Aggregator owns all series of a chart. Series live in an arena slice
// sorted by group order; index maps a group id to its slot.
//
// The fields below the arena are derived by RecomputeActive.
type Aggregator struct {
	series []*Series
	index  map[int]int

	// MaxY is the largest raw y of all rows, NaN without data.
	MaxY float64

	// BarWidth is the pixel width of columns, NaN if there are no
	// unstacked column series.
	BarWidth float64

	ActiveGroups     []*Series
	LargestPrimary   *Series
	LargestSecondary *Series
	Largest          *Series
	PrimaryPool      data.Datums
	SecondaryPool    data.Datums
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		index:    make(map[int]int),
		MaxY:     math.NaN(),
		BarWidth: math.NaN(),
	}
}

// Clone returns a deep copy of a which can be modified without affecting a.
func (a *Aggregator) Clone() *Aggregator {
	c := *a
	c.series = make([]*Series, len(a.series))
	c.index = make(map[int]int, len(a.index))
	for i, s := range a.series {
		c.series[i] = s.clone()
		c.index[s.Info.ID] = i
	}
	c.RecomputeActive()
	return &c
}

// Update replaces the data of a. Datums are sorted by x and bucketed by
// group id. Known ids keep their *Series, updated in place, and their
// active state. New ids become active series. Series are kept sorted by
// group order.
//
// On error a is left unchanged.
func (a *Aggregator) Update(infos []GroupInfo, all data.Datums) error {
	sorted := append(data.Datums(nil), all...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	buckets := make(map[int]data.Datums)
	maxY := math.NaN()
	for _, d := range sorted {
		buckets[d.GroupID] = append(buckets[d.GroupID], d)
		if !(maxY >= d.Y) {
			maxY = d.Y
		}
	}

	if err := validateStacking(infos); err != nil {
		return err
	}

	next := make([]*Series, 0, len(infos))
	for _, info := range infos {
		ds := buckets[info.ID]
		if len(ds) == 0 {
			return &GroupDataError{ID: info.ID, Name: info.Name}
		}
		s, err := NewSeries(info, ds)
		if err != nil {
			return err
		}
		if slot, ok := a.index[info.ID]; ok {
			s.Active = a.series[slot].Active
		}
		next = append(next, s)
	}
	for i, s := range next {
		if slot, ok := a.index[s.Info.ID]; ok {
			*a.series[slot] = *s
			next[i] = a.series[slot]
		}
	}
	sort.SliceStable(next, func(i, j int) bool { return next[i].Info.Order < next[j].Info.Order })

	a.series = next
	a.index = make(map[int]int, len(next))
	for i, s := range next {
		a.index[s.Info.ID] = i
	}
	a.MaxY = maxY
	a.RecomputeActive()
	return nil
}

// validateStacking checks that every stacking reference names a declared
// group and that no reference chain is circular.
func validateStacking(infos []GroupInfo) error {
	base := make(map[int]*int, len(infos))
	for _, info := range infos {
		base[info.ID] = info.StackedGroupID
	}
	for _, info := range infos {
		if info.StackedGroupID == nil {
			continue
		}
		if _, ok := base[*info.StackedGroupID]; !ok {
			return fmt.Errorf("group %q (id %d) stacks on %d: %w",
				info.Name, info.ID, *info.StackedGroupID, ErrUnknownStackBase)
		}
	}

	acyclic := make(map[int]bool, len(infos))
	for _, info := range infos {
		if !stackChainEnds(info.ID, base, acyclic) {
			return fmt.Errorf("group %q (id %d): %w", info.Name, info.ID, ErrStackCycle)
		}
	}
	return nil
}

// stackChainEnds follows the stacking chain starting at id and reports
// whether it ends in an unstacked group. Groups of chains found to end are
// recorded in acyclic and not walked again.
func stackChainEnds(id int, base map[int]*int, acyclic map[int]bool) bool {
	var chain []int
	onChain := make(map[int]bool)
	for cur := &id; cur != nil && !acyclic[*cur]; cur = base[*cur] {
		if onChain[*cur] {
			return false
		}
		onChain[*cur] = true
		chain = append(chain, *cur)
	}
	for _, c := range chain {
		acyclic[c] = true
	}
	return true
}

// Series returns the series with the given group id or nil.
func (a *Aggregator) Series(id int) *Series {
	slot, ok := a.index[id]
	if !ok {
		return nil
	}
	return a.series[slot]
}

// Groups returns all series in group order.
func (a *Aggregator) Groups() []*Series { return a.series }

// Len is the number of series.
func (a *Aggregator) Len() int { return len(a.series) }

// SetActive sets the active flag of series id and recomputes the derived
// state. It reports whether id is known.
func (a *Aggregator) SetActive(id int, active bool) bool {
	s := a.Series(id)
	if s == nil {
		return false
	}
	s.Active = active
	a.RecomputeActive()
	return true
}

// Toggle flips the active flag of series id like a click on its legend
// entry. Switching off the last active series switches all series on.
func (a *Aggregator) Toggle(id int) bool {
	s := a.Series(id)
	if s == nil {
		return false
	}
	s.Active = !s.Active
	if !s.Active && !a.anyActive() {
		for _, s := range a.series {
			s.Active = true
		}
	}
	a.RecomputeActive()
	return true
}

func (a *Aggregator) anyActive() bool {
	for _, s := range a.series {
		if s.Active {
			return true
		}
	}
	return false
}

// RecomputeActive resolves stacking for all series and rebuilds the
// partition of active series per y axis.
func (a *Aggregator) RecomputeActive() {
	for _, s := range a.series {
		for i := range s.Data {
			s.Data[i].Y0 = math.NaN()
		}
	}
	for _, s := range a.series {
		if s.Info.StackedGroupID != nil {
			s.CalculateStackedValues(a.Series(*s.Info.StackedGroupID))
		}
	}

	a.ActiveGroups = nil
	a.LargestPrimary, a.LargestSecondary, a.Largest = nil, nil, nil
	a.PrimaryPool, a.SecondaryPool = nil, nil
	for _, s := range a.series {
		if !s.Active {
			continue
		}
		a.ActiveGroups = append(a.ActiveGroups, s)
		if s.Info.UseSecondaryYAxis {
			if a.LargestSecondary == nil || s.Size() > a.LargestSecondary.Size() {
				a.LargestSecondary = s
			}
			a.SecondaryPool = append(a.SecondaryPool, s.Data...)
		} else {
			if a.LargestPrimary == nil || s.Size() > a.LargestPrimary.Size() {
				a.LargestPrimary = s
			}
			a.PrimaryPool = append(a.PrimaryPool, s.Data...)
		}
	}

	switch {
	case a.LargestSecondary == nil:
		a.Largest = a.LargestPrimary
	case a.LargestPrimary == nil:
		a.Largest = a.LargestSecondary
	case a.LargestSecondary.Size() > a.LargestPrimary.Size():
		a.Largest = a.LargestSecondary
	default:
		a.Largest = a.LargestPrimary
	}
}

// AllPool returns the active datums of both axes.
func (a *Aggregator) AllPool() data.Datums {
	all := make(data.Datums, 0, len(a.PrimaryPool)+len(a.SecondaryPool))
	all = append(all, a.PrimaryPool...)
	return append(all, a.SecondaryPool...)
}

// AdjustBarWidth computes BarWidth for a plot area plotWidth pixels wide.
// The x axis of a date chart carries two extra padding intervals.
func (a *Aggregator) AdjustBarWidth(plotWidth float64, dateAxis bool) {
	columns := 0
	for _, s := range a.series {
		if s.Info.Type == Column && !s.Info.Stacked() {
			columns++
		}
	}
	if columns == 0 {
		a.BarWidth = math.NaN()
		return
	}

	size := 0
	if a.Largest != nil {
		size = a.Largest.Size()
	}
	intervals := size - 1
	if dateAxis {
		intervals += 2
	}
	if intervals <= 0 {
		a.BarWidth = MaxBarWidth
		return
	}
	w := 0.7 * plotWidth / float64(intervals) / float64(columns)
	a.BarWidth = math.Max(MinBarWidth, math.Min(MaxBarWidth, w))
}

// HasBarWidth reports whether BarWidth is set.
func (a *Aggregator) HasBarWidth() bool { return !math.IsNaN(a.BarWidth) }
