package domain

import "math"

// ThicknessTolerance is the absolute tolerance within which a stored
// thickness point is treated as an exact match for a query thickness.
const ThicknessTolerance = 1e-6

// NearestIndex returns the index of the axis value closest to x by
// absolute distance. Scanning is linear and only a strictly smaller
// distance advances the candidate, so equidistant points resolve to the
// first encountered. Returns -1 for an empty axis.
//
// This is the single nearest-value rule shared by the hardness lookup
// and both correction-table axis lookups. The axis is not assumed to be
// sorted; correction files are typically monotonic but not required to be.
func NearestIndex(axis []float64, x float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, v := range axis {
		if d := math.Abs(v - x); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
