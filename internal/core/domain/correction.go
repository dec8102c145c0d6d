package domain

// CorrectionTable is a two-axis grid of corrected conductivity values.
// Rows are indexed by the uncorrected-value axis, columns by the
// thickness axis. Grid cells may be blank (nil). Construction drops
// rows whose value count does not match the thickness axis, so
// len(Values) == len(Uncorrected) and len(Values[i]) == len(Thickness)
// always hold.
type CorrectionTable struct {
	// Number is the table identifier referenced by tabcode entries (1..8).
	Number int

	// Uncorrected is the row axis of uncorrected conductivity values.
	Uncorrected []float64

	// Thickness is the column axis of thickness points.
	Thickness []float64

	// Values is the grid, [len(Uncorrected)][len(Thickness)].
	Values [][]*float64
}

// Correct returns the grid cell nearest to (base, thickness) on the two
// axes, using the shared nearest-index rule with no tolerance snapping.
// Returns nil when either axis is empty or the cell is blank; callers
// fall back to the uncorrected bound.
func (t *CorrectionTable) Correct(base, thickness float64) *float64 {
	ri := NearestIndex(t.Uncorrected, base)
	ci := NearestIndex(t.Thickness, thickness)
	if ri < 0 || ci < 0 {
		return nil
	}
	return t.Values[ri][ci]
}
