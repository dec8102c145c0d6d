package domain

// ReferenceSet bundles the five immutable indices built from the
// reference files. It is assembled once by a loader and never mutated
// afterwards; concurrent readers need no locking.
type ReferenceSet struct {
	// Conductivity is the exact-match index keyed by MaterialKey.
	Conductivity map[MaterialKey]ConductivityRange

	// BareMin, BareMax, CladMin and CladMax are the four hardness
	// series families, keyed by composite key.
	BareMin map[string]HardnessSeries
	BareMax map[string]HardnessSeries
	CladMin map[string]HardnessSeries
	CladMax map[string]HardnessSeries

	// TabCodes maps composite keys to correction-table numbers.
	TabCodes map[string]TabCode

	// Corrections holds the correction tables that exist, by number.
	Corrections map[int]*CorrectionTable
}

// HardnessFor returns the (min, max) series families for a surface.
func (r *ReferenceSet) HardnessFor(s Surface) (min, max map[string]HardnessSeries) {
	if s == SurfaceBare {
		return r.BareMin, r.BareMax
	}
	return r.CladMin, r.CladMax
}
