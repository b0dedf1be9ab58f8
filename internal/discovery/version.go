package discovery

import "fmt"

// UnknownVersion is used when no version metadata is available.
const UnknownVersion = "Unknown"

// VersionInfo is the version metadata embedded in an executable.
type VersionInfo struct {
	ProductName    string
	ProductVersion string
	FileVersion    string

	// HasFixedInfo reports whether the numeric parts below were present.
	HasFixedInfo bool
	FileMajor    uint16
	FileMinor    uint16
	FileBuild    uint16
	FilePrivate  uint16
}

// DeriveVersion picks the version string for an installation, in order:
// the product version string, the numeric major.minor.build, the file
// version string, and finally UnknownVersion.
func DeriveVersion(info VersionInfo) string {
	if info.ProductVersion != "" {
		return info.ProductVersion
	}
	if info.HasFixedInfo {
		return fmt.Sprintf("%d.%d.%d", info.FileMajor, info.FileMinor, info.FileBuild)
	}
	if info.FileVersion != "" {
		return info.FileVersion
	}
	return UnknownVersion
}
