package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alloytools/matprop-cli/internal/core/ports/driven"
)

func TestExportCmd_Use(t *testing.T) {
	assert.Equal(t, "export", exportCmd.Use)
}

func TestExportCmd_HasOutputFlag(t *testing.T) {
	flag := exportCmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "matprop.db", flag.DefValue)
}

func TestExportCmd_WritesSnapshot(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	store := &recordingSnapshotStore{}
	SetSnapshotStoreFactory(func(_ string) (driven.SnapshotStore, error) {
		return store, nil
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"export", "--output", filepath.Join(t.TempDir(), "out.db")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, store.wrote)
	assert.True(t, store.closed)
	assert.Contains(t, buf.String(), "test-snapshot-id")
}

func TestExportCmd_NotConfigured(t *testing.T) {
	refSource = nil
	newSnapshotStore = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"export"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
