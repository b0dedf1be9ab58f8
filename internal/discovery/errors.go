package discovery

import "errors"

var (
	// ErrNotFound indicates the scan root does not exist.
	ErrNotFound = errors.New("scan root not found")

	// ErrUnimplemented indicates the host platform has no discovery strategy.
	ErrUnimplemented = errors.New("discovery not implemented for this platform")

	// ErrNotEngine indicates a file that is not an engine executable.
	ErrNotEngine = errors.New("not an engine executable")

	// ErrNoExecutable indicates a directory without a valid engine executable.
	ErrNoExecutable = errors.New("no engine executable found")
)
