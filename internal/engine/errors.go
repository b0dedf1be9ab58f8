package engine

import "errors"

var (
	// ErrNotFound indicates a referenced path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidName indicates a folder name without a version part.
	ErrInvalidName = errors.New("invalid installation folder name")

	// ErrNotOpen indicates the registry has not been loaded.
	ErrNotOpen = errors.New("registry not open")
)
