package driven

import (
	"context"

	"github.com/alloytools/matprop-cli/internal/core/domain"
)

// ReferenceLoader builds the immutable reference indices from the
// fixed set of source files. Load runs once at startup (and again on a
// watch-triggered rebuild); a structurally broken file is a fatal
// error, while individual malformed rows are dropped silently.
type ReferenceLoader interface {
	// Load parses every reference file and returns the assembled set.
	Load(ctx context.Context) (*domain.ReferenceSet, error)
}
