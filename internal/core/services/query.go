package services

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/core/ports/driven"
	"github.com/alloytools/matprop-cli/internal/core/ports/driving"
	"github.com/alloytools/matprop-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService answers point queries against the reference indices.
// The indices are built eagerly by NewQueryService and swapped
// atomically on Reload, so readers never observe a partial set.
type QueryService struct {
	loader driven.ReferenceLoader
	set    atomic.Pointer[domain.ReferenceSet]
}

// NewQueryService builds the indices from the loader and returns a
// ready service. A structurally broken reference file aborts here;
// queries issued against a service that failed construction are not
// supported.
func NewQueryService(ctx context.Context, loader driven.ReferenceLoader) (*QueryService, error) {
	s := &QueryService{loader: loader}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the indices from the reference files and swaps them
// in atomically. In-flight queries keep reading the previous set.
func (s *QueryService) Reload(ctx context.Context) error {
	set, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("build reference indices: %w", err)
	}
	s.set.Store(set)
	logger.Info("Reference indices ready: %d conductivity entries, %d tabcodes, %d correction tables",
		len(set.Conductivity), len(set.TabCodes), len(set.Corrections))
	return nil
}

// Snapshot returns the active reference set, for export.
func (s *QueryService) Snapshot() (*domain.ReferenceSet, error) {
	return s.current()
}

// current returns the active reference set.
func (s *QueryService) current() (*domain.ReferenceSet, error) {
	set := s.set.Load()
	if set == nil {
		return nil, domain.ErrNotReady
	}
	return set, nil
}

// SearchAll resolves conductivity and hardness for one material at one
// thickness. All four result fields may be absent; an unknown key is a
// valid all-absent result, never an error.
func (s *QueryService) SearchAll(ctx context.Context, q domain.Query) (domain.QueryResult, error) {
	set, err := s.current()
	if err != nil {
		return domain.QueryResult{}, err
	}

	key := q.Key()
	composite := key.Composite()
	surface := domain.ParseSurface(q.Surface)

	logger.Section("Query")
	logger.Debug("Key: %s, thickness: %g, surface: %s", composite, q.Thickness, surface)

	rng := set.Conductivity[key]

	minSeries, maxSeries := set.HardnessFor(surface)
	result := domain.QueryResult{
		HardnessMin: minSeries[composite].Nearest(q.Thickness),
		HardnessMax: maxSeries[composite].Nearest(q.Thickness),
	}

	code := set.TabCodes[composite].ForSurface(surface)
	result.CorrectedMin = s.correct(set, code, rng.Min, q.Thickness)
	result.CorrectedMax = s.correct(set, code, rng.Max, q.Thickness)

	logger.Debug("Result: corrected=[%s, %s] hardness=[%s, %s]",
		fmtFloat(result.CorrectedMin), fmtFloat(result.CorrectedMax),
		fmtString(result.HardnessMin), fmtString(result.HardnessMax))

	return result, nil
}

// correct applies the correction-table lookup to one conductivity
// bound. The base bound passes through unchanged when it is absent,
// when no tabcode applies, when the numbered table does not exist, or
// when the grid cell is blank.
func (s *QueryService) correct(set *domain.ReferenceSet, code *int, base *float64, thickness float64) *float64 {
	if base == nil || code == nil {
		return base
	}
	table, ok := set.Corrections[*code]
	if !ok {
		logger.Debug("Correction table %d not loaded, using base value", *code)
		return base
	}
	if corrected := table.Correct(*base, thickness); corrected != nil {
		return corrected
	}
	return base
}

// Specs lists the distinct known specifications, sorted.
func (s *QueryService) Specs(ctx context.Context) ([]string, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for key := range set.Conductivity {
		seen[key.Spec] = struct{}{}
	}
	return sortedKeys(seen), nil
}

// Materials lists the distinct materials for a spec, sorted.
func (s *QueryService) Materials(ctx context.Context, spec string) ([]string, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	specU := domain.Normalize(spec)
	seen := make(map[string]struct{})
	for key := range set.Conductivity {
		if key.Spec == specU {
			seen[key.Material] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

// Tempers lists the distinct tempers for a (spec, material), sorted.
func (s *QueryService) Tempers(ctx context.Context, spec, material string) ([]string, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	specU := domain.Normalize(spec)
	matU := domain.Normalize(material)
	seen := make(map[string]struct{})
	for key := range set.Conductivity {
		if key.Spec == specU && key.Material == matU {
			seen[key.Temper] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

// Thicknesses lists the thickness points for a material and surface as
// the sorted union of the min and max series points.
func (s *QueryService) Thicknesses(ctx context.Context, spec, material, temper, surface string) ([]float64, error) {
	set, err := s.current()
	if err != nil {
		return nil, err
	}

	composite := domain.NewMaterialKey(spec, material, temper).Composite()
	minSeries, maxSeries := set.HardnessFor(domain.ParseSurface(surface))

	seen := make(map[float64]struct{})
	for _, t := range minSeries[composite].Thicknesses() {
		seen[t] = struct{}{}
	}
	for _, t := range maxSeries[composite].Thicknesses() {
		seen[t] = struct{}{}
	}

	out := make([]float64, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Float64s(out)
	return out, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func fmtFloat(f *float64) string {
	if f == nil {
		return "absent"
	}
	return fmt.Sprintf("%.2f", *f)
}

func fmtString(s *string) string {
	if s == nil {
		return "absent"
	}
	return *s
}
