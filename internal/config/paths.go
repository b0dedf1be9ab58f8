// Package config manages gdvm configuration and filesystem paths.
//
// The default root is ~/.gdvm/ containing the registry document
// (config.toml) and the default scan root (Versions/). The root can be
// moved with the GDVM_ROOT environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// RegistryFileName is the name of the persisted registry document.
	RegistryFileName = "config.toml"

	// VersionsDirName is the conventional scan root below the gdvm root.
	VersionsDirName = "Versions"
)

// Paths contains all the filesystem paths used by gdvm.
type Paths struct {
	// Root is the base directory for all gdvm data (default: ~/.gdvm)
	Root string

	// Registry is the path to the persisted registry document
	Registry string

	// Versions is the default directory scanned for engine installations
	Versions string
}

// DefaultPaths returns the default paths for gdvm.
// Paths can be overridden with environment variables:
// - GDVM_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("GDVM_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".gdvm")
	}

	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Registry: filepath.Join(root, RegistryFileName),
		Versions: filepath.Join(root, VersionsDirName),
	}
}

// EnsureDirectories creates the root directory if it doesn't exist.
// The scan root is left alone; a missing scan root is reported by scans.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
