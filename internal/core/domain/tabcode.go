package domain

// TabCode maps one composite key to its optional correction-table
// numbers. A nil entry means the raw conductivity bound is used
// unmodified for that surface.
type TabCode struct {
	Bare *int
	Clad *int
}

// ForSurface returns the correction-table number for the given surface,
// or nil when no correction applies.
func (t TabCode) ForSurface(s Surface) *int {
	if s == SurfaceBare {
		return t.Bare
	}
	return t.Clad
}
