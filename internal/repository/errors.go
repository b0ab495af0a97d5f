package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity or slot doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when a persisted document fails to parse
	ErrCorrupt = errors.New("stored data is corrupt")
)
