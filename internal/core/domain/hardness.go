package domain

import (
	"math"
	"sort"
)

// HardnessPoint is one (thickness, requirement) pair from a hardness
// matrix column. Requirement is nil when the source cell was blank.
type HardnessPoint struct {
	Thickness   float64
	Requirement *string
}

// HardnessSeries is the ordered sequence of points for one composite
// key. Duplicated thicknesses are preserved; SortByThickness keeps
// their encounter order.
type HardnessSeries []HardnessPoint

// SortByThickness stable-sorts the series ascending by thickness.
// A series is always sorted before it is queried.
func (s HardnessSeries) SortByThickness() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Thickness < s[j].Thickness
	})
}

// Nearest returns the requirement at the series point nearest to the
// query thickness. Within ThicknessTolerance of the query, the first
// point with a present requirement wins; if every tolerance match is
// blank, the first tolerance match's (nil) value is returned. With no
// tolerance match the globally closest point wins, ties going to the
// first encountered in series order. An empty series yields nil.
func (s HardnessSeries) Nearest(thickness float64) *string {
	if len(s) == 0 {
		return nil
	}

	firstExact := -1
	for i, p := range s {
		if math.Abs(p.Thickness-thickness) <= ThicknessTolerance {
			if p.Requirement != nil {
				return p.Requirement
			}
			if firstExact < 0 {
				firstExact = i
			}
		}
	}
	if firstExact >= 0 {
		return s[firstExact].Requirement
	}

	axis := make([]float64, len(s))
	for i, p := range s {
		axis[i] = p.Thickness
	}
	return s[NearestIndex(axis, thickness)].Requirement
}

// Thicknesses returns the distinct thickness points of the series in
// ascending order.
func (s HardnessSeries) Thicknesses() []float64 {
	seen := make(map[float64]struct{}, len(s))
	out := make([]float64, 0, len(s))
	for _, p := range s {
		if _, ok := seen[p.Thickness]; ok {
			continue
		}
		seen[p.Thickness] = struct{}{}
		out = append(out, p.Thickness)
	}
	sort.Float64s(out)
	return out
}
