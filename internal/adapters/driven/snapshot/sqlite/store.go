// Package sqlite materializes a built reference set into a SQLite
// database for offline inspection and diffing. The export is derived
// from the in-memory indices and never touches the reference files.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS conductivity (
	snapshot_id TEXT NOT NULL,
	spec TEXT NOT NULL,
	material TEXT NOT NULL,
	temper TEXT NOT NULL,
	min REAL,
	max REAL
);
CREATE TABLE IF NOT EXISTS hardness (
	snapshot_id TEXT NOT NULL,
	surface TEXT NOT NULL,
	bound TEXT NOT NULL,
	composite_key TEXT NOT NULL,
	thickness REAL NOT NULL,
	requirement TEXT
);
CREATE TABLE IF NOT EXISTS tabcodes (
	snapshot_id TEXT NOT NULL,
	composite_key TEXT NOT NULL,
	bare INTEGER,
	clad INTEGER
);
CREATE TABLE IF NOT EXISTS corrections (
	snapshot_id TEXT NOT NULL,
	table_number INTEGER NOT NULL,
	uncorrected REAL NOT NULL,
	thickness REAL NOT NULL,
	value REAL
);
CREATE INDEX IF NOT EXISTS idx_hardness_key ON hardness (snapshot_id, composite_key);
`

// Store writes reference-set snapshots to one SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the snapshot database at the
// given path. The parent directory is created when missing.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshot schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Write stores the full set in one transaction and returns the
// snapshot identifier.
func (s *Store) Write(ctx context.Context, set *domain.ReferenceSet) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO snapshots (id, created_at) VALUES (?, ?)",
		id, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("insert snapshot row: %w", err)
	}

	for key, rng := range set.Conductivity {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO conductivity (snapshot_id, spec, material, temper, min, max) VALUES (?, ?, ?, ?, ?, ?)",
			id, key.Spec, key.Material, key.Temper, nullFloat(rng.Min), nullFloat(rng.Max)); err != nil {
			return "", fmt.Errorf("insert conductivity row: %w", err)
		}
	}

	families := []struct {
		surface domain.Surface
		bound   string
		series  map[string]domain.HardnessSeries
	}{
		{domain.SurfaceBare, "min", set.BareMin},
		{domain.SurfaceBare, "max", set.BareMax},
		{domain.SurfaceClad, "min", set.CladMin},
		{domain.SurfaceClad, "max", set.CladMax},
	}
	for _, fam := range families {
		for composite, series := range fam.series {
			for _, p := range series {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO hardness (snapshot_id, surface, bound, composite_key, thickness, requirement) VALUES (?, ?, ?, ?, ?, ?)",
					id, string(fam.surface), fam.bound, composite, p.Thickness, nullString(p.Requirement)); err != nil {
					return "", fmt.Errorf("insert hardness row: %w", err)
				}
			}
		}
	}

	for composite, tc := range set.TabCodes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tabcodes (snapshot_id, composite_key, bare, clad) VALUES (?, ?, ?, ?)",
			id, composite, nullInt(tc.Bare), nullInt(tc.Clad)); err != nil {
			return "", fmt.Errorf("insert tabcode row: %w", err)
		}
	}

	for number, table := range set.Corrections {
		for ri, uncorrected := range table.Uncorrected {
			for ci, thickness := range table.Thickness {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO corrections (snapshot_id, table_number, uncorrected, thickness, value) VALUES (?, ?, ?, ?, ?)",
					id, number, uncorrected, thickness, nullFloat(table.Values[ri][ci])); err != nil {
					return "", fmt.Errorf("insert correction row: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit snapshot: %w", err)
	}
	return id, nil
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}
