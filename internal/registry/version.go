package registry

import (
	"path/filepath"
	"strings"
)

// RuntimeVariantMarker marks executables built with the managed runtime.
const RuntimeVariantMarker = "mono"

// Version describes one engine installation.
// Only the nickname may change after construction.
type Version struct {
	// Version is the engine release identifier, e.g. "4.2.1.stable".
	Version string `json:"version"`

	// Path is the directory holding the installation. It is the merge key.
	Path string `json:"path"`

	// Executable is the file name of the entry point inside Path.
	Executable string `json:"executable"`

	// IsManual is true when the user registered the entry explicitly.
	IsManual bool `json:"isManual"`

	nickname string
}

// NewVersion creates a Version. An empty nickname means no nickname.
func NewVersion(version, path, executable string, isManual bool, nickname string) Version {
	return Version{
		Version:    version,
		Path:       filepath.Clean(path),
		Executable: executable,
		IsManual:   isManual,
		nickname:   nickname,
	}
}

// Nickname returns the user label, or "" when none is set.
func (v Version) Nickname() string {
	return v.nickname
}

// HasNickname reports whether a nickname is set.
func (v Version) HasNickname() bool {
	return v.nickname != ""
}

// SetNickname replaces the nickname. An empty value clears it.
func (v *Version) SetNickname(nickname string) {
	v.nickname = nickname
}

// FullPath is the path of the executable to launch.
func (v Version) FullPath() string {
	return filepath.Join(v.Path, v.Executable)
}

// IsRuntimeVariant reports whether the executable is a managed-runtime build.
func (v Version) IsRuntimeVariant() bool {
	return strings.Contains(v.Executable, RuntimeVariantMarker)
}

// DisplayName is the version followed by the optional variant and nickname suffixes.
func (v Version) DisplayName() string {
	var b strings.Builder
	b.WriteString(v.Version)
	if v.IsRuntimeVariant() {
		b.WriteString(" (Runtime)")
	}
	if v.HasNickname() {
		b.WriteString(" - ")
		b.WriteString(v.nickname)
	}
	return b.String()
}
