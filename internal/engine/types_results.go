package engine

import (
	"github.com/danieljhkim/gdvm/internal/discovery"
	"github.com/danieljhkim/gdvm/internal/registry"
)

// ReconcileResult represents the outcome of merging candidates.
type ReconcileResult struct {
	// Added are candidates that were new to the registry
	Added []registry.Version

	// Known are candidates whose path was already registered
	Known []registry.Version

	// Cleared is the number of discovered versions dropped before merging
	Cleared int
}

// ScanResult represents the outcome of a scan.
type ScanResult struct {
	ReconcileResult

	// Root is the directory that was scanned
	Root string

	// Skipped lists directories that are not installations
	Skipped []discovery.Skipped
}

// AddManualResult represents the outcome of a manual registration.
type AddManualResult struct {
	// Version is the record that was built
	Version registry.Version

	// Added is false when the path was already registered
	Added bool
}

// StatusResult represents the registry settings and contents.
type StatusResult struct {
	// RegistryPath is the location of the persisted document
	RegistryPath string

	// UseSession indicates whether launches are wrapped in a platform session
	UseSession bool

	// ScanPath is the default scan root
	ScanPath string

	// Versions are the registered versions in display order
	Versions []registry.Version
}
