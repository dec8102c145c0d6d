package domain

// Query is one point lookup against the reference indices.
type Query struct {
	Spec      string
	Material  string
	Temper    string
	Thickness float64

	// Surface is the raw surface token; anything other than "BARE"
	// resolves to CLAD (see ParseSurface).
	Surface string
}

// Key returns the normalized MaterialKey for the query.
func (q Query) Key() MaterialKey {
	return NewMaterialKey(q.Spec, q.Material, q.Temper)
}

// QueryResult is the structured answer to a Query. Any field may be
// absent; an unknown material yields all four absent, which is a valid
// result rather than an error.
type QueryResult struct {
	// CorrectedMin and CorrectedMax are the conductivity bounds in
	// %IACS after correction-table lookup, or the base bounds when no
	// correction applies.
	CorrectedMin *float64
	CorrectedMax *float64

	// HardnessMin and HardnessMax are the requirement texts from the
	// nearest hardness series points.
	HardnessMin *string
	HardnessMax *string
}
