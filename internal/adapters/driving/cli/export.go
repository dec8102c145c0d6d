package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alloytools/matprop-cli/internal/core/domain"
)

// referenceSource yields the active reference set for export.
type referenceSource interface {
	Snapshot() (*domain.ReferenceSet, error)
}

var (
	refSource  referenceSource
	exportPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the reference indices to a SQLite database",
	Long: `Writes the parsed reference indices as a snapshot into a SQLite
database, for inspection with standard SQL tools or for diffing two
revisions of the reference files.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "matprop.db", "snapshot database path")
	rootCmd.AddCommand(exportCmd)
}

// SetReferenceSource wires the provider of the active reference set.
func SetReferenceSource(src referenceSource) {
	refSource = src
}

func runExport(cmd *cobra.Command, _ []string) error {
	if refSource == nil || newSnapshotStore == nil {
		return errors.New("export not configured")
	}

	set, err := refSource.Snapshot()
	if err != nil {
		return err
	}

	store, err := newSnapshotStore(exportPath)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer store.Close()

	id, err := store.Write(cmd.Context(), set)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	cmd.Printf("Snapshot %s written to %s\n", id, exportPath)
	return nil
}
