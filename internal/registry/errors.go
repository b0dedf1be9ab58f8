package registry

import "errors"

var (
	// ErrOutOfRange indicates an index outside the current record list.
	ErrOutOfRange = errors.New("index out of range")

	// ErrMalformed indicates a section or entry of the persisted document
	// that could not be read. It is recovered locally and only reported.
	ErrMalformed = errors.New("malformed registry document")
)
