package tabfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/logger"
)

// tabcodeColumns are the required columns of the tabcode file.
var tabcodeColumns = []string{"concat", "bare", "clad"}

// parseTabCodes builds the composite-key to correction-table-number
// map. A missing required column is fatal; everything else degrades to
// an absent code.
func parseTabCodes(rows [][]string) (map[string]domain.TabCode, error) {
	if len(rows) == 0 {
		return map[string]domain.TabCode{}, nil
	}

	cols, err := requireColumns(rows[0], tabcodeColumns)
	if err != nil {
		return nil, fmt.Errorf("tabcode file: %w", err)
	}

	codes := make(map[string]domain.TabCode)
	for _, row := range rows[1:] {
		key := domain.Normalize(cellAt(row, cols["concat"]))
		if key == "" {
			continue
		}

		codes[key] = domain.TabCode{
			Bare: parseTableNumber(cellAt(row, cols["bare"])),
			Clad: parseTableNumber(cellAt(row, cols["clad"])),
		}
	}

	logger.Debug("Tabcode index: %d entries", len(codes))
	return codes, nil
}

// parseTableNumber reads an optional correction-table number. Empty
// cells and cells beginning with "not" (as in "NOT APPLICABLE") are
// absent. The value is parsed as a float and truncated so inputs like
// "6.0" are tolerated; anything unparseable is also absent.
func parseTableNumber(cell string) *int {
	s := strings.TrimSpace(cell)
	if s == "" || strings.HasPrefix(strings.ToLower(s), "not") {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}
