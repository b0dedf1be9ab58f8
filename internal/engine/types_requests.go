package engine

// ScanRequest represents a request to scan for installations.
type ScanRequest struct {
	// Root is the directory to scan (default: the stored scan path)
	Root string

	// Clear drops previously discovered versions before merging
	Clear bool
}

// AddManualRequest represents a request to register an installation by hand.
type AddManualRequest struct {
	// Path is the installation directory
	Path string

	// Executable is the entry point file name (default: folder name + platform suffix)
	Executable string

	// Nickname is an optional label
	Nickname string
}

// SetScanPathRequest represents a request to change the scan path.
type SetScanPathRequest struct {
	// Path is the new scan root; it must exist
	Path string

	// Rescan scans the new path after saving it
	Rescan bool

	// Clear drops previously discovered versions before the rescan
	Clear bool
}
