package tabfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/logger"
)

// conductivityColumns are the logical columns the conductivity file
// must declare in its header row, in any order and any case.
var conductivityColumns = []string{"spec", "material", "temper", "min", "max"}

// parseConductivity builds the exact-match conductivity index. The
// first row is the header; a missing required column is fatal. Rows
// with an empty key token after normalization are dropped, numeric
// cells that fail to parse become absent bounds, and a duplicated key
// overwrites the earlier entry.
func parseConductivity(rows [][]string) (map[domain.MaterialKey]domain.ConductivityRange, error) {
	if len(rows) == 0 {
		return map[domain.MaterialKey]domain.ConductivityRange{}, nil
	}

	cols, err := requireColumns(rows[0], conductivityColumns)
	if err != nil {
		return nil, fmt.Errorf("conductivity file: %w", err)
	}

	idx := make(map[domain.MaterialKey]domain.ConductivityRange)
	for _, row := range rows[1:] {
		key := domain.NewMaterialKey(
			cellAt(row, cols["spec"]),
			cellAt(row, cols["material"]),
			cellAt(row, cols["temper"]),
		)
		if !key.Complete() {
			continue
		}

		idx[key] = domain.ConductivityRange{
			Min: parseOptFloat(cellAt(row, cols["min"])),
			Max: parseOptFloat(cellAt(row, cols["max"])),
		}
	}

	logger.Debug("Conductivity index: %d entries from %d data rows", len(idx), len(rows)-1)
	return idx, nil
}

// requireColumns maps lowercased trimmed header names to positions and
// fails with ErrMissingColumn when a required name is absent.
func requireColumns(header []string, required []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, name)
		}
	}
	return cols, nil
}

// cellAt returns the cell at position i, or "" when the row is short.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseOptFloat parses a cell as an optional float: unparseable cells
// yield absent rather than an error.
func parseOptFloat(cell string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return nil
	}
	return &f
}
