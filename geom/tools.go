package geom

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// HitRegions computes the pointer hit-regions for points at the ascending
// pixel positions xs. Each region is centered on its point. Its width is the
// smaller of the gaps to both neighbours; the first and the last point use
// the gap to their only neighbour. Regions never overlap.
//
// A single point gets the whole plot [0, width].
func HitRegions(xs []vg.Length, width vg.Length) []Region {
	switch len(xs) {
	case 0:
		return nil
	case 1:
		return []Region{{Index: 0, Center: xs[0], Min: 0, Max: width}}
	}

	regions := make([]Region, len(xs))
	last := len(xs) - 1
	for i, x := range xs {
		var w vg.Length
		switch i {
		case 0:
			w = xs[1] - x
		case last:
			w = x - xs[last-1]
		default:
			w = vg.Length(math.Min(float64(x-xs[i-1]), float64(xs[i+1]-x)))
		}
		regions[i] = Region{Index: i, Center: x, Min: x - w/2, Max: x + w/2}
	}
	return regions
}

// Lookup returns the index of the region containing x or -1.
func Lookup(regions []Region, x vg.Length) int {
	for _, r := range regions {
		if r.Contains(x) {
			return r.Index
		}
	}
	return -1
}
