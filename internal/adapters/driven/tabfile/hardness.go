package tabfile

import (
	"strconv"
	"strings"

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/logger"
)

// The hardness matrices carry no declared schema; their structure is
// recovered by an ordered sequence of detection rules, each a pure
// function over the row matrix returning an optional position. The
// rules and their priority order are the contract for handling the
// irregular real-world files and must not be reordered.
const (
	// headerScanLimit is how many leading rows the header detection
	// inspects.
	headerScanLimit = 10

	// headerKeyThreshold is the minimum number of composite-key-
	// looking cells that makes a row the header.
	headerKeyThreshold = 5

	// compositeMinHyphens marks a cell as a composite key
	// ("SPEC-MATERIAL-TEMPER" carries at least two hyphens).
	compositeMinHyphens = 2
)

// parseHardness recovers one hardness matrix into per-composite-key
// series, sorted ascending by thickness.
func parseHardness(rows [][]string) map[string]domain.HardnessSeries {
	table := make(map[string]domain.HardnessSeries)
	if len(rows) == 0 {
		return table
	}

	headerIdx := detectHeaderRow(rows)
	keyCols := compositeColumns(rows[headerIdx])
	for _, key := range keyCols {
		table[key] = nil
	}

	thicknessRow, haveThicknessRow := detectThicknessRow(rows)

	thicknessCol := -1
	if haveThicknessRow && thicknessRow+1 < len(rows) {
		thicknessCol = detectThicknessColumn(rows[thicknessRow+1])
	}

	dataStart := headerIdx + 1
	if haveThicknessRow {
		dataStart = thicknessRow + 1
	}

	for _, row := range rows[dataStart:] {
		if thicknessCol < 0 || thicknessCol >= len(row) {
			continue
		}
		thickness, err := strconv.ParseFloat(strings.TrimSpace(row[thicknessCol]), 64)
		if err != nil {
			continue
		}

		for col, key := range keyCols {
			var req *string
			if cell := strings.TrimSpace(cellAt(row, col)); cell != "" {
				req = &cell
			}
			table[key] = append(table[key], domain.HardnessPoint{
				Thickness:   thickness,
				Requirement: req,
			})
		}
	}

	for key := range table {
		table[key].SortByThickness()
	}

	logger.Debug("Hardness matrix: header row %d, thickness row %d col %d, %d composite keys",
		headerIdx, thicknessRow, thicknessCol, len(table))
	return table
}

// detectHeaderRow returns the first of the leading rows in which at
// least headerKeyThreshold cells look like composite keys, defaulting
// to row 0 when none qualifies.
func detectHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for i := 0; i < limit; i++ {
		score := 0
		for _, cell := range rows[i] {
			if strings.Count(cell, "-") >= compositeMinHyphens {
				score++
			}
		}
		if score >= headerKeyThreshold {
			return i
		}
	}
	return 0
}

// detectThicknessRow returns the first row containing a cell whose
// normalized text is exactly "thickness". Data begins immediately
// after this row.
func detectThicknessRow(rows [][]string) (int, bool) {
	for i, row := range rows {
		for _, cell := range row {
			if strings.EqualFold(strings.TrimSpace(cell), "thickness") {
				return i, true
			}
		}
	}
	return -1, false
}

// detectThicknessColumn probes the first data row for the thickness
// column: the first cell that parses as a float and contains a decimal
// point wins (a bare integer is more likely a count), falling back to
// the first float at all. Returns -1 when the row has no numeric cell.
func detectThicknessColumn(row []string) int {
	for i, cell := range row {
		s := strings.TrimSpace(cell)
		if _, err := strconv.ParseFloat(s, 64); err == nil && strings.Contains(s, ".") {
			return i
		}
	}
	for i, cell := range row {
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			return i
		}
	}
	return -1
}

// compositeColumns maps column positions to normalized composite keys
// for every header cell that looks like one.
func compositeColumns(header []string) map[int]string {
	cols := make(map[int]string)
	for i, cell := range header {
		key := strings.TrimSpace(cell)
		if key != "" && strings.Count(key, "-") >= compositeMinHyphens {
			cols[i] = domain.Normalize(key)
		}
	}
	return cols
}
