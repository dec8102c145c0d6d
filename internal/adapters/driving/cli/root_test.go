package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/core/ports/driven"
)

// stubQueryService returns fixed answers for command tests.
type stubQueryService struct{}

func (stubQueryService) SearchAll(_ context.Context, q domain.Query) (domain.QueryResult, error) {
	if domain.Normalize(q.Spec) != "QQ-A-250/4" {
		return domain.QueryResult{}, nil
	}
	minC, maxC := 28.5, 32.0
	minH := "70 HRB"
	return domain.QueryResult{
		CorrectedMin: &minC,
		CorrectedMax: &maxC,
		HardnessMin:  &minH,
	}, nil
}

func (stubQueryService) Specs(_ context.Context) ([]string, error) {
	return []string{"AMS4037", "QQ-A-250/4"}, nil
}

func (stubQueryService) Materials(_ context.Context, _ string) ([]string, error) {
	return []string{"2024"}, nil
}

func (stubQueryService) Tempers(_ context.Context, _, _ string) ([]string, error) {
	return []string{"O", "T3"}, nil
}

func (stubQueryService) Thicknesses(_ context.Context, _, _, _, _ string) ([]float64, error) {
	return []float64{0.032, 0.125}, nil
}

// stubReferenceSource yields an empty set for export tests.
type stubReferenceSource struct{}

func (stubReferenceSource) Snapshot() (*domain.ReferenceSet, error) {
	return &domain.ReferenceSet{}, nil
}

// recordingSnapshotStore records the Write call for export tests.
type recordingSnapshotStore struct {
	wrote  bool
	closed bool
}

func (s *recordingSnapshotStore) Write(_ context.Context, _ *domain.ReferenceSet) (string, error) {
	s.wrote = true
	return "test-snapshot-id", nil
}

func (s *recordingSnapshotStore) Close() error {
	s.closed = true
	return nil
}

// setupTestServices wires stub services and returns a cleanup func.
func setupTestServices() func() {
	SetQueryService(stubQueryService{})
	SetReferenceSource(stubReferenceSource{})
	return func() {
		queryService = nil
		refSource = nil
		newSnapshotStore = nil
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "matprop", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "export")
	assert.Contains(t, commandNames, "tui")
	assert.Contains(t, commandNames, "version")
}

func TestSetQueryService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.NotNil(t, queryService)
}

func TestSetSnapshotStoreFactory(t *testing.T) {
	defer func() { newSnapshotStore = nil }()

	SetSnapshotStoreFactory(func(_ string) (driven.SnapshotStore, error) {
		return &recordingSnapshotStore{}, nil
	})

	assert.NotNil(t, newSnapshotStore)
}
