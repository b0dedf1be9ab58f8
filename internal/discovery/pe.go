package discovery

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"

	peparser "github.com/saferwall/pe"
)

const (
	rtVersion              = 16
	versionInfoKey         = "VS_VERSION_INFO"
	fixedFileInfoSignature = 0xFEEF04BD
)

var errNoVersionResource = errors.New("no version resource")

// ReadPEVersionInfo reads the version resource of a PE executable.
func ReadPEVersionInfo(path string) (VersionInfo, error) {
	f, err := peparser.New(path, &peparser.Options{})
	if err != nil {
		return VersionInfo{}, fmt.Errorf("failed to open PE file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.Parse(); err != nil {
		return VersionInfo{}, fmt.Errorf("failed to parse PE file: %w", err)
	}

	strs, err := f.ParseVersionResources()
	if err != nil {
		return VersionInfo{}, fmt.Errorf("failed to read version strings: %w", err)
	}

	// The fixed part is optional; a missing or odd data entry leaves only the strings.
	blob, _ := versionResourceData(f)
	info := decodeVersionInfo(strs, blob)
	if len(strs) == 0 && !info.HasFixedInfo {
		return VersionInfo{}, errNoVersionResource
	}
	return info, nil
}

// versionResourceData returns the first RT_VERSION data entry of f.
func versionResourceData(f *peparser.File) ([]byte, error) {
	for _, typ := range f.Resources.Entries {
		if typ.ID != rtVersion || !typ.IsResourceDir {
			continue
		}
		for _, name := range typ.Directory.Entries {
			for _, lang := range name.Directory.Entries {
				if lang.IsResourceDir {
					continue
				}
				entry := lang.Data.Struct
				return f.GetData(entry.OffsetToData, entry.Size)
			}
		}
	}
	return nil, errNoVersionResource
}

// decodeVersionInfo combines the StringFileInfo strings with the
// VS_FIXEDFILEINFO found at the head of blob.
func decodeVersionInfo(strs map[string]string, blob []byte) VersionInfo {
	info := VersionInfo{
		ProductName:    strs["ProductName"],
		ProductVersion: strs["ProductVersion"],
		FileVersion:    strs["FileVersion"],
	}

	fixed, err := parseFixedInfo(blob)
	if err != nil {
		return info
	}
	info.HasFixedInfo = true
	info.FileMajor = uint16(fixed.FileVersionMS >> 16)
	info.FileMinor = uint16(fixed.FileVersionMS)
	info.FileBuild = uint16(fixed.FileVersionLS >> 16)
	info.FilePrivate = uint16(fixed.FileVersionLS)
	return info
}

// parseFixedInfo reads the fixed file info value of a VS_VERSIONINFO blob:
// a 6-byte header, the UTF-16 key, padding to 4 bytes, then the value.
func parseFixedInfo(blob []byte) (peparser.VsFixedFileInfo, error) {
	var fixed peparser.VsFixedFileInfo
	le := binary.LittleEndian

	key := utf16.Encode([]rune(versionInfoKey + "\x00"))
	valueOff := (6 + 2*len(key) + 3) &^ 3
	size := binary.Size(fixed)

	if len(blob) < valueOff+size {
		return fixed, fmt.Errorf("version resource truncated at %d bytes", len(blob))
	}
	for i, u := range key {
		if le.Uint16(blob[6+2*i:]) != u {
			return fixed, fmt.Errorf("version resource key is not %s", versionInfoKey)
		}
	}
	if int(le.Uint16(blob[2:])) < size {
		return fixed, errors.New("version resource has no fixed file info")
	}

	if err := binary.Read(bytes.NewReader(blob[valueOff:valueOff+size]), le, &fixed); err != nil {
		return fixed, fmt.Errorf("failed to decode fixed file info: %w", err)
	}
	if fixed.Signature != fixedFileInfoSignature {
		return fixed, fmt.Errorf("unexpected fixed file info signature %#x", fixed.Signature)
	}
	return fixed, nil
}
