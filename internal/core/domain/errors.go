package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Ingestion errors. Both are fatal: the reference data is
	// structurally incompatible and no query can be trusted.

	// ErrUnreadableFile indicates a required reference file could not
	// be read under either supported encoding.
	ErrUnreadableFile = errors.New("unreadable reference file")

	// ErrMissingColumn indicates a required column is absent from the
	// conductivity or tabcode file.
	ErrMissingColumn = errors.New("missing required column")

	// ErrNotReady indicates the engine was queried before its indices
	// finished building.
	ErrNotReady = errors.New("reference indices not ready")
)
