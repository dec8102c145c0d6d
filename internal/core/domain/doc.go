// Package domain defines the core business entities for matprop.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - MaterialKey: A normalized (spec, material, temper) identity
//   - HardnessSeries: Thickness-ordered hardness requirements
//   - CorrectionTable: A conductivity correction grid
//   - ReferenceSet: The immutable indices built from the data files
//   - Query / QueryResult: A point lookup and its structured answer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
