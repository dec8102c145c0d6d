package driven

import (
	"context"

	"github.com/alloytools/matprop-cli/internal/core/domain"
)

// SnapshotStore materializes a built ReferenceSet for offline
// inspection. It never touches the reference files themselves.
type SnapshotStore interface {
	// Write stores the full set and returns the snapshot identifier.
	Write(ctx context.Context, set *domain.ReferenceSet) (string, error)

	// Close releases the underlying storage.
	Close() error
}
