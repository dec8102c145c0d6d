// Command matprop looks up material properties from a directory of
// tab-delimited reference files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alloytools/matprop-cli/internal/adapters/driven/config/file"
	"github.com/alloytools/matprop-cli/internal/adapters/driven/snapshot/sqlite"
	"github.com/alloytools/matprop-cli/internal/adapters/driven/tabfile"
	"github.com/alloytools/matprop-cli/internal/adapters/driven/watch"
	"github.com/alloytools/matprop-cli/internal/adapters/driving/cli"
	"github.com/alloytools/matprop-cli/internal/core/ports/driven"
	"github.com/alloytools/matprop-cli/internal/core/services"
	"github.com/alloytools/matprop-cli/internal/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load configuration: %v\n", err)
		os.Exit(1)
	}

	cli.SetServiceInitializer(func(dataDir string) error {
		if dataDir == "" {
			dataDir = cfg.DataDir()
		}

		loader := tabfile.NewDirLoader(dataDir, cfg.SniffDelimiters())
		svc, err := services.NewQueryService(ctx, loader)
		if err != nil {
			return err
		}

		cli.SetQueryService(svc)
		cli.SetReferenceSource(svc)
		cli.SetSnapshotStoreFactory(func(path string) (driven.SnapshotStore, error) {
			return sqlite.NewStore(path)
		})

		if cfg.Watch() {
			startWatcher(ctx, dataDir, svc)
		}
		return nil
	})

	cli.Execute(ctx)
}

// startWatcher rebuilds the indices whenever a reference file changes.
// Watch failures are logged and the process keeps serving the current
// indices.
func startWatcher(ctx context.Context, dataDir string, svc *services.QueryService) {
	watcher, err := watch.NewDirWatcher(dataDir)
	if err != nil {
		logger.Warn("File watching disabled: %v", err)
		return
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-watcher.Events():
				if !ok {
					return
				}
				logger.Info("Reference file changed, rebuilding: %s", path)
				if err := svc.Reload(ctx); err != nil {
					logger.Warn("Rebuild failed, keeping previous indices: %v", err)
				}
			}
		}
	}()
}
