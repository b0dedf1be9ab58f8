package discovery

import (
	"fmt"
	"runtime"
	"strings"
)

// EngineProductName is the product name embedded in engine executables.
const EngineProductName = "Godot Engine"

// Strategy holds the platform-specific parts of discovery.
type Strategy interface {
	// Name identifies the platform, e.g. "windows".
	Name() string

	// ExecutableSuffix is the file suffix of launchable executables.
	ExecutableSuffix() string

	// IsExecutable reports whether a file name matches the executable convention.
	IsExecutable(fileName string) bool

	// IsCompanion reports whether a file is the console companion binary,
	// which is never a launch target.
	IsCompanion(fileName string) bool

	// ProductName is the identity an executable must declare.
	ProductName() string

	// ReadVersionInfo reads the embedded version metadata of an executable.
	ReadVersionInfo(path string) (VersionInfo, error)
}

// MetadataReader reads version metadata from an executable file.
type MetadataReader func(path string) (VersionInfo, error)

// ForOS returns the strategy for the given GOOS value.
func ForOS(goos string) (Strategy, error) {
	switch goos {
	case "windows":
		return NewWindowsStrategy(ReadPEVersionInfo), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnimplemented, goos)
	}
}

// Default returns the strategy for the running host.
func Default() (Strategy, error) {
	return ForOS(runtime.GOOS)
}

// WindowsStrategy discovers PE executables carrying a version resource.
type WindowsStrategy struct {
	read MetadataReader
}

// NewWindowsStrategy creates a WindowsStrategy reading metadata with read.
func NewWindowsStrategy(read MetadataReader) *WindowsStrategy {
	return &WindowsStrategy{read: read}
}

// Name returns "windows".
func (w *WindowsStrategy) Name() string { return "windows" }

// ExecutableSuffix returns ".exe".
func (w *WindowsStrategy) ExecutableSuffix() string { return ".exe" }

// ProductName returns EngineProductName.
func (w *WindowsStrategy) ProductName() string { return EngineProductName }

// IsExecutable matches the .exe suffix without regard to case.
func (w *WindowsStrategy) IsExecutable(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), ".exe")
}

// IsCompanion matches the "*console.exe" wrapper shipped next to the editor.
func (w *WindowsStrategy) IsCompanion(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), "console.exe")
}

// ReadVersionInfo reads the PE version resource of path.
func (w *WindowsStrategy) ReadVersionInfo(path string) (VersionInfo, error) {
	return w.read(path)
}
