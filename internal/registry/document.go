package registry

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const (
	settingsTable = "VersionManager"
	versionsTable = "CachedVersions"
)

// document is the TOML layout of config.toml.
// Versions are keyed "0", "1", ... so each entry stays a table with typed
// fields instead of collapsing into an array.
type document struct {
	VersionManager settingsDoc           `toml:"VersionManager"`
	CachedVersions map[string]versionDoc `toml:"CachedVersions"`
}

type settingsDoc struct {
	UseSteam bool   `toml:"useSteam"`
	ScanPath string `toml:"scanPath"`
}

type versionDoc struct {
	Version    string `toml:"version"`
	Path       string `toml:"path"`
	Executable string `toml:"executable"`
	IsManual   bool   `toml:"isManual"`
	Nickname   string `toml:"nickname"`
}

// Encode serializes the store to its TOML document.
func Encode(s *Store) ([]byte, error) {
	doc := document{
		VersionManager: settingsDoc{
			UseSteam: s.UseSession,
			ScanPath: s.ScanPath,
		},
		CachedVersions: make(map[string]versionDoc, len(s.versions)),
	}
	for i, v := range s.versions {
		doc.CachedVersions[strconv.Itoa(i)] = versionDoc{
			Version:    v.Version,
			Path:       v.Path,
			Executable: v.Executable,
			IsManual:   v.IsManual,
			Nickname:   v.nickname,
		}
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode registry: %w", err)
	}
	return data, nil
}

// Decode parses a TOML document into a Store.
//
// Text that is not TOML fails. Missing or ill-typed sections and entries
// are recovered: settings fall back to defaults, bad entries are dropped.
// Each recovery is returned as a problem wrapping ErrMalformed.
func Decode(data []byte, defaults *Store) (*Store, []error, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse registry document: %w", err)
	}

	var problems []error
	malformed := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...)))
	}

	s := NewStore(defaults.UseSession, defaults.ScanPath)

	settings, ok := raw[settingsTable].(map[string]any)
	if !ok {
		malformed("missing [%s] section", settingsTable)
	} else {
		if b, ok := settings["useSteam"].(bool); ok {
			s.UseSession = b
		} else {
			malformed("[%s].useSteam is not a boolean", settingsTable)
		}
		if p, ok := settings["scanPath"].(string); ok {
			s.ScanPath = p
		} else {
			malformed("[%s].scanPath is not a string", settingsTable)
		}
	}

	section, present := raw[versionsTable]
	if !present {
		return s, problems, nil
	}
	entries, ok := section.(map[string]any)
	if !ok {
		malformed("[%s] is not a table", versionsTable)
		return s, problems, nil
	}

	for _, key := range sortedEntryKeys(entries) {
		fields, ok := entries[key].(map[string]any)
		if !ok {
			malformed("[%s.%s] is not a table", versionsTable, key)
			continue
		}
		v, err := decodeVersion(fields)
		if err != nil {
			malformed("[%s.%s]: %v", versionsTable, key, err)
			continue
		}
		if !s.Add(v) {
			malformed("[%s.%s]: duplicate path %s", versionsTable, key, v.Path)
		}
	}

	return s, problems, nil
}

func decodeVersion(fields map[string]any) (Version, error) {
	str := func(name string, required bool) (string, error) {
		val, ok := fields[name]
		if !ok {
			if required {
				return "", fmt.Errorf("missing %s", name)
			}
			return "", nil
		}
		s, ok := val.(string)
		if !ok {
			return "", fmt.Errorf("%s is not a string", name)
		}
		return s, nil
	}

	version, err := str("version", true)
	if err != nil {
		return Version{}, err
	}
	path, err := str("path", true)
	if err != nil {
		return Version{}, err
	}
	if path == "" {
		return Version{}, fmt.Errorf("empty path")
	}
	executable, err := str("executable", true)
	if err != nil {
		return Version{}, err
	}
	nickname, err := str("nickname", false)
	if err != nil {
		return Version{}, err
	}

	isManual := false
	if val, ok := fields["isManual"]; ok {
		b, ok := val.(bool)
		if !ok {
			return Version{}, fmt.Errorf("isManual is not a boolean")
		}
		isManual = b
	}

	return NewVersion(version, path, executable, isManual, nickname), nil
}

// sortedEntryKeys orders numeric keys numerically, then any others lexically.
func sortedEntryKeys(entries map[string]any) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
