package tabfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alloytools/matprop-cli/internal/core/domain"
)

// TestParseConductivity_BasicIndex tests exact-match index construction
func TestParseConductivity_BasicIndex(t *testing.T) {
	rows := [][]string{
		{"spec", "material", "temper", "min", "max"},
		{"XXX2", "7075", "T6XX", "30.0", "45.0"},
	}

	idx, err := parseConductivity(rows)

	require.NoError(t, err)
	require.Len(t, idx, 1)
	rng := idx[domain.NewMaterialKey("XXX2", "7075", "T6XX")]
	require.NotNil(t, rng.Min)
	assert.Equal(t, 30.0, *rng.Min)
	require.NotNil(t, rng.Max)
	assert.Equal(t, 45.0, *rng.Max)
}

// TestParseConductivity_HeaderAnyCaseAnyOrder tests header flexibility
func TestParseConductivity_HeaderAnyCaseAnyOrder(t *testing.T) {
	rows := [][]string{
		{"Max", " MIN ", "Temper", "Material", "Spec"},
		{"45.0", "30.0", "T6XX", "7075", "XXX2"},
	}

	idx, err := parseConductivity(rows)

	require.NoError(t, err)
	rng, ok := idx[domain.NewMaterialKey("XXX2", "7075", "T6XX")]
	require.True(t, ok)
	assert.Equal(t, 30.0, *rng.Min)
	assert.Equal(t, 45.0, *rng.Max)
}

// TestParseConductivity_MissingColumnFatal tests the fatal column check
func TestParseConductivity_MissingColumnFatal(t *testing.T) {
	rows := [][]string{
		{"spec", "material", "min", "max"},
		{"XXX2", "7075", "30.0", "45.0"},
	}

	_, err := parseConductivity(rows)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), "temper")
}

// TestParseConductivity_SkipsIncompleteKeys tests that rows with empty
// key tokens are silently dropped
func TestParseConductivity_SkipsIncompleteKeys(t *testing.T) {
	rows := [][]string{
		{"spec", "material", "temper", "min", "max"},
		{"XXX2", "  ", "T6XX", "30.0", "45.0"},
		{"", "7075", "T6XX", "30.0", "45.0"},
		{"XXX2", "7075", "T6XX", "30.0", "45.0"},
	}

	idx, err := parseConductivity(rows)

	require.NoError(t, err)
	assert.Len(t, idx, 1)
}

// TestParseConductivity_UnparseableBoundsAbsent tests per-cell tolerance
func TestParseConductivity_UnparseableBoundsAbsent(t *testing.T) {
	rows := [][]string{
		{"spec", "material", "temper", "min", "max"},
		{"XXX2", "7075", "T6XX", "n/a", "45.0"},
	}

	idx, err := parseConductivity(rows)

	require.NoError(t, err)
	rng := idx[domain.NewMaterialKey("XXX2", "7075", "T6XX")]
	assert.Nil(t, rng.Min)
	require.NotNil(t, rng.Max)
	assert.Equal(t, 45.0, *rng.Max)
}

// TestParseConductivity_DuplicateKeyLastWins tests overwrite semantics
func TestParseConductivity_DuplicateKeyLastWins(t *testing.T) {
	rows := [][]string{
		{"spec", "material", "temper", "min", "max"},
		{"XXX2", "7075", "T6XX", "30.0", "45.0"},
		{"xxx2", " 7075", "t6xx", "31.0", "46.0"},
	}

	idx, err := parseConductivity(rows)

	require.NoError(t, err)
	require.Len(t, idx, 1)
	rng := idx[domain.NewMaterialKey("XXX2", "7075", "T6XX")]
	assert.Equal(t, 31.0, *rng.Min)
	assert.Equal(t, 46.0, *rng.Max)
}

// TestParseConductivity_ShortRows tests rows with fewer cells than the
// header
func TestParseConductivity_ShortRows(t *testing.T) {
	rows := [][]string{
		{"spec", "material", "temper", "min", "max"},
		{"XXX2", "7075", "T6XX"},
	}

	idx, err := parseConductivity(rows)

	require.NoError(t, err)
	rng, ok := idx[domain.NewMaterialKey("XXX2", "7075", "T6XX")]
	require.True(t, ok)
	assert.Nil(t, rng.Min)
	assert.Nil(t, rng.Max)
}

// TestParseConductivity_EmptyInput tests the degenerate file
func TestParseConductivity_EmptyInput(t *testing.T) {
	idx, err := parseConductivity(nil)

	require.NoError(t, err)
	assert.Empty(t, idx)
}
