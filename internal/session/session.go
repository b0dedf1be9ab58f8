// Package session brackets engine launches with a platform session.
//
// A Session is initialized right before the engine process starts and
// finalized after it exits. With the session flag off, Noop is used.
package session

import "errors"

// ErrUnavailable indicates the platform session runtime could not be loaded.
var ErrUnavailable = errors.New("session runtime unavailable")

// Session is a platform session wrapped around one engine launch.
type Session interface {
	// Initialize starts the session.
	Initialize() error

	// Finalize ends a session that was successfully initialized.
	Finalize() error
}

// Noop is a Session that does nothing.
type Noop struct{}

func (Noop) Initialize() error { return nil }
func (Noop) Finalize() error   { return nil }
