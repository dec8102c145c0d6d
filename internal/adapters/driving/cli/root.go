// Package cli implements the matprop command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alloytools/matprop-cli/internal/core/ports/driven"
	"github.com/alloytools/matprop-cli/internal/core/ports/driving"
	"github.com/alloytools/matprop-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by main before Execute.
var (
	queryService driving.QueryService

	// newSnapshotStore opens the snapshot database for the export
	// command. Injected so tests can substitute a fake.
	newSnapshotStore func(path string) (driven.SnapshotStore, error)
)

var (
	verbose bool
	dataDir string

	// initServices builds the query engine once flags are parsed.
	// Set by main; commands that need no services run without it.
	initServices func(dataDir string) error
)

var rootCmd = &cobra.Command{
	Use:   "matprop",
	Short: "Material property lookup from reference data files",
	Long: `Matprop answers electrical-conductivity and hardness queries for
aluminum alloys from a directory of tab-delimited reference files.

Point it at a data directory containing the conductivity index, the
four hardness matrices, the tabcode map and any correction tables,
then query by specification, material, temper, thickness and surface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if initServices == nil || queryService != nil {
			return nil
		}
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}
		return initServices(dataDir)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "reference data directory (overrides config)")
}

// SetServiceInitializer wires the lazy service constructor called
// before the first command that needs the query engine.
func SetServiceInitializer(f func(dataDir string) error) {
	initServices = f
}

// SetQueryService wires the query engine into the commands.
func SetQueryService(svc driving.QueryService) {
	queryService = svc
}

// SetSnapshotStoreFactory wires the snapshot database opener used by
// the export command.
func SetSnapshotStoreFactory(f func(path string) (driven.SnapshotStore, error)) {
	newSnapshotStore = f
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
