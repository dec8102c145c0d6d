package tabfile

import "strings"

// sniffSampleSize bounds how much of the file the delimiter sniffer
// inspects.
const sniffSampleSize = 8192

// splitRows turns file text into rows of cells on a fixed delimiter.
// Empty cells and blank rows are preserved; downstream parsers decide
// what to drop. Line endings are normalized (CRLF and lone CR to LF)
// and a single trailing newline does not produce a phantom row.
func splitRows(text string, delim byte) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, string(delim))
	}
	return rows
}

// readRows parses file text in the primary mode: strict tab delimiter.
func readRows(text string) [][]string {
	return splitRows(text, '\t')
}

// sniffRows parses file text in the legacy compatibility mode, choosing
// between tab, comma and semicolon by counting occurrences in a leading
// sample. Tab wins all ties, including the no-delimiter case.
func sniffRows(text string) [][]string {
	sample := text
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}

	best := byte('\t')
	bestCount := strings.Count(sample, "\t")
	for _, d := range []byte{',', ';'} {
		if c := strings.Count(sample, string(d)); c > bestCount {
			best = d
			bestCount = c
		}
	}
	return splitRows(text, best)
}
