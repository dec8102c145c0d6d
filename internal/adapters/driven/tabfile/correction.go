package tabfile

import (
	"strconv"
	"strings"

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/logger"
)

// parseCorrection builds one numbered correction table from its grid
// file. Fully-blank rows are dropped; the first remaining row is the
// header whose cells after the first form the thickness axis
// (non-numeric header cells are skipped outright, not kept as
// placeholders). Each body row contributes its first cell to the
// uncorrected axis and up to axis-length optional values to the grid;
// rows whose first cell does not parse, or whose value count does not
// equal the thickness-axis length, are dropped whole.
func parseCorrection(number int, rows [][]string) *domain.CorrectionTable {
	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return &domain.CorrectionTable{Number: number}
	}

	var thicknessAxis []float64
	for _, cell := range rows[0][1:] {
		if f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			thicknessAxis = append(thicknessAxis, f)
		}
	}

	table := &domain.CorrectionTable{
		Number:    number,
		Thickness: thicknessAxis,
	}

	for _, row := range rows[1:] {
		uncorrected, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			continue
		}

		cells := row[1:]
		if len(cells) > len(thicknessAxis) {
			cells = cells[:len(thicknessAxis)]
		}
		values := make([]*float64, 0, len(thicknessAxis))
		for _, cell := range cells {
			values = append(values, parseOptFloat(cell))
		}
		if len(values) != len(thicknessAxis) {
			continue
		}

		table.Uncorrected = append(table.Uncorrected, uncorrected)
		table.Values = append(table.Values, values)
	}

	logger.Debug("Correction table %d: %d x %d grid", number, len(table.Uncorrected), len(thicknessAxis))
	return table
}

// dropBlankRows removes rows whose every cell is blank.
func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}
