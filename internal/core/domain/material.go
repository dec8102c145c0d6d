package domain

import "strings"

// Normalize trims surrounding whitespace and uppercases a key token.
// Every key comparison, storage operation and composite-key construction
// goes through this, so case and whitespace in source files or user
// input never affect matching.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// MaterialKey identifies one specification/material/temper combination.
// All three tokens are stored normalized.
type MaterialKey struct {
	// Spec is the governing specification, e.g. "XXX2".
	Spec string

	// Material is the alloy designation, e.g. "7075".
	Material string

	// Temper is the temper designation, e.g. "T6XX".
	Temper string
}

// NewMaterialKey builds a MaterialKey from raw tokens, normalizing each.
func NewMaterialKey(spec, material, temper string) MaterialKey {
	return MaterialKey{
		Spec:     Normalize(spec),
		Material: Normalize(material),
		Temper:   Normalize(temper),
	}
}

// Composite renders the key as the hyphen-joined form used as the join
// key between the hardness matrices, the tabcode table and the
// conductivity index, e.g. "XXX2-7075-T6XX".
func (k MaterialKey) Composite() string {
	return k.Spec + "-" + k.Material + "-" + k.Temper
}

// Complete reports whether all three tokens are non-empty after
// normalization. Incomplete keys are dropped during ingestion.
func (k MaterialKey) Complete() bool {
	return k.Spec != "" && k.Material != "" && k.Temper != ""
}

// ConductivityRange is the electrical conductivity band for one
// MaterialKey, in %IACS. Either bound may be absent in the source data.
type ConductivityRange struct {
	Min *float64
	Max *float64
}

// Surface selects between the bare and clad hardness families.
type Surface string

const (
	SurfaceBare Surface = "BARE"
	SurfaceClad Surface = "CLAD"
)

// ParseSurface maps a raw surface token to a Surface. Anything other
// than "BARE" after normalization resolves to CLAD; there is no
// rejection path for unrecognized values.
func ParseSurface(s string) Surface {
	if Normalize(s) == string(SurfaceBare) {
		return SurfaceBare
	}
	return SurfaceClad
}
