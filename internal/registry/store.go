package registry

import (
	"fmt"
	"path/filepath"
)

// Store is the in-memory registry: an ordered list of versions unique by path,
// plus the global settings.
type Store struct {
	// UseSession controls whether the platform session wrapper brackets launches.
	UseSession bool

	// ScanPath is the default discovery root.
	ScanPath string

	versions []Version
}

// NewStore creates an empty Store with the given settings.
func NewStore(useSession bool, scanPath string) *Store {
	return &Store{
		UseSession: useSession,
		ScanPath:   scanPath,
		versions:   []Version{},
	}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.versions)
}

// Versions returns a copy of the records in display order.
func (s *Store) Versions() []Version {
	out := make([]Version, len(s.versions))
	copy(out, s.versions)
	return out
}

// At returns the record at index.
func (s *Store) At(index int) (Version, error) {
	if index < 0 || index >= len(s.versions) {
		return Version{}, fmt.Errorf("%w: %d (have %d versions)", ErrOutOfRange, index, len(s.versions))
	}
	return s.versions[index], nil
}

// Add appends v unless a record with the same path exists.
// It reports whether v was added.
func (s *Store) Add(v Version) bool {
	if _, ok := s.FindByPath(v.Path); ok {
		return false
	}
	s.versions = append(s.versions, v)
	return true
}

// FindByPath returns the record installed at path.
func (s *Store) FindByPath(path string) (Version, bool) {
	path = filepath.Clean(path)
	for _, v := range s.versions {
		if v.Path == path {
			return v, true
		}
	}
	return Version{}, false
}

// SetNickname changes the nickname of the record at index.
// An empty nickname clears it.
func (s *Store) SetNickname(index int, nickname string) error {
	if index < 0 || index >= len(s.versions) {
		return fmt.Errorf("%w: %d (have %d versions)", ErrOutOfRange, index, len(s.versions))
	}
	s.versions[index].SetNickname(nickname)
	return nil
}

// ClearDiscovered drops every record that was not added manually.
// Manual records keep their relative order.
func (s *Store) ClearDiscovered() {
	kept := make([]Version, 0, len(s.versions))
	for _, v := range s.versions {
		if v.IsManual {
			kept = append(kept, v)
		}
	}
	s.versions = kept
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	c := *s
	c.versions = s.Versions()
	return &c
}

// restore replaces the contents of s with those of snapshot.
func (s *Store) restore(snapshot *Store) {
	s.UseSession = snapshot.UseSession
	s.ScanPath = snapshot.ScanPath
	s.versions = snapshot.Versions()
}
