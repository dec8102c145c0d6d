package tabfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/core/ports/driven"
	"github.com/alloytools/matprop-cli/internal/logger"
)

// Ensure DirLoader implements the interface.
var _ driven.ReferenceLoader = (*DirLoader)(nil)

// Fixed reference file names within the data directory.
const (
	FileConductivity = "baseconductivity.txt"
	FileBareMin      = "barehardnessmin.txt"
	FileBareMax      = "barehardnessmax.txt"
	FileCladMin      = "cladhardnessmin.txt"
	FileCladMax      = "cladhardnessmax.txt"
	FileTabCodes     = "tabcodes.txt"

	// correctionFilePattern names the numbered grid files,
	// correctiontable1.txt through correctiontable8.txt.
	correctionFilePattern = "correctiontable%d.txt"

	// MaxCorrectionTables bounds the numbered correction files probed.
	MaxCorrectionTables = 8
)

// DirLoader reads the fixed set of reference files from one directory.
type DirLoader struct {
	dir   string
	sniff bool
}

// NewDirLoader creates a loader for the given data directory. With
// sniff enabled, the column-oriented files (conductivity, tabcodes) go
// through delimiter sniffing for legacy comma/semicolon exports; the
// matrix files are always strict tab.
func NewDirLoader(dir string, sniff bool) *DirLoader {
	return &DirLoader{dir: dir, sniff: sniff}
}

// Dir returns the data directory the loader reads from.
func (l *DirLoader) Dir() string {
	return l.dir
}

// Load parses every reference file and assembles the index set. The
// conductivity, hardness and tabcode files are required; correction
// grid files that do not exist are skipped silently.
func (l *DirLoader) Load(ctx context.Context) (*domain.ReferenceSet, error) {
	logger.Section("Reference Load")
	logger.Debug("Data directory: %s", l.dir)

	cond, err := l.loadConductivity()
	if err != nil {
		return nil, err
	}

	set := &domain.ReferenceSet{Conductivity: cond}
	if set.BareMin, err = l.loadHardness(FileBareMin); err != nil {
		return nil, err
	}
	if set.BareMax, err = l.loadHardness(FileBareMax); err != nil {
		return nil, err
	}
	if set.CladMin, err = l.loadHardness(FileCladMin); err != nil {
		return nil, err
	}
	if set.CladMax, err = l.loadHardness(FileCladMax); err != nil {
		return nil, err
	}

	if set.TabCodes, err = l.loadTabCodes(); err != nil {
		return nil, err
	}
	if set.Corrections, err = l.loadCorrections(); err != nil {
		return nil, err
	}

	return set, nil
}

func (l *DirLoader) loadConductivity() (map[domain.MaterialKey]domain.ConductivityRange, error) {
	text, err := readFileText(filepath.Join(l.dir, FileConductivity))
	if err != nil {
		return nil, err
	}
	return parseConductivity(l.columnRows(text))
}

func (l *DirLoader) loadHardness(name string) (map[string]domain.HardnessSeries, error) {
	text, err := readFileText(filepath.Join(l.dir, name))
	if err != nil {
		return nil, err
	}
	return parseHardness(readRows(text)), nil
}

func (l *DirLoader) loadTabCodes() (map[string]domain.TabCode, error) {
	text, err := readFileText(filepath.Join(l.dir, FileTabCodes))
	if err != nil {
		return nil, err
	}
	return parseTabCodes(l.columnRows(text))
}

func (l *DirLoader) loadCorrections() (map[int]*domain.CorrectionTable, error) {
	tables := make(map[int]*domain.CorrectionTable)
	for n := 1; n <= MaxCorrectionTables; n++ {
		path := filepath.Join(l.dir, fmt.Sprintf(correctionFilePattern, n))
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		text, err := readFileText(path)
		if err != nil {
			return nil, err
		}
		tables[n] = parseCorrection(n, readRows(text))
	}
	return tables, nil
}

// columnRows applies the configured reader mode for the
// column-oriented files.
func (l *DirLoader) columnRows(text string) [][]string {
	if l.sniff {
		return sniffRows(text)
	}
	return readRows(text)
}
