package driving

import (
	"context"

	"github.com/alloytools/matprop-cli/internal/core/domain"
)

// QueryService answers point queries and enumeration requests against
// the reference indices. Queries are pure reads over immutable indices;
// an unknown key yields a result with all fields absent, not an error.
type QueryService interface {
	// SearchAll resolves the conductivity range (with correction-table
	// lookup where a tabcode applies) and the hardness min/max
	// requirements for one material at one thickness.
	SearchAll(ctx context.Context, q domain.Query) (domain.QueryResult, error)

	// Specs lists the distinct known specifications.
	Specs(ctx context.Context) ([]string, error)

	// Materials lists the distinct materials for a spec.
	Materials(ctx context.Context, spec string) ([]string, error)

	// Tempers lists the distinct tempers for a (spec, material).
	Tempers(ctx context.Context, spec, material string) ([]string, error)

	// Thicknesses lists the thickness points available for a material
	// and surface, as the union of the min and max series points.
	Thicknesses(ctx context.Context, spec, material, temper, surface string) ([]float64, error)
}
