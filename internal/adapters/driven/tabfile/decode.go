// Package tabfile parses the tab-delimited reference files (base
// conductivity, the four hardness matrices, tabcodes and the numbered
// correction grids) into the domain indices. Individual malformed rows
// are tolerated and dropped; a structurally broken file (unreadable
// under both encodings, missing required column) aborts the load.
package tabfile

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/alloytools/matprop-cli/internal/core/domain"
)

// utf8BOM is the byte-order mark some Windows tools prepend.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readFileText reads a reference file as text. UTF-8 is the primary
// encoding, with the BOM stripped when present; byte sequences that are
// not valid UTF-8 are re-decoded as Windows-1252, the single-byte
// encoding legacy exports were written in. An unreadable file is fatal.
func readFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrUnreadableFile, path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrUnreadableFile, path, err)
	}
	return string(decoded), nil
}
