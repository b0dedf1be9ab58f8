package registry

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/gdvm/internal/fsops"
)

// FileRepo loads and saves a Store as a TOML document on disk.
type FileRepo struct {
	fs       fsops.FS
	path     string
	defaults *Store
	logger   *log.Logger
}

// NewFileRepo creates a FileRepo for the document at path.
// defaultScanPath is written into a freshly generated document.
func NewFileRepo(fs fsops.FS, path, defaultScanPath string, logger *log.Logger) *FileRepo {
	return &FileRepo{
		fs:       fs,
		path:     path,
		defaults: NewStore(true, defaultScanPath),
		logger:   logger,
	}
}

// Path returns the document location.
func (r *FileRepo) Path() string {
	return r.path
}

// Load reads the store from disk. A missing or empty document is first
// replaced by a default one (session enabled, default scan path).
func (r *FileRepo) Load() (*Store, error) {
	data, err := r.readOrInit()
	if err != nil {
		return nil, err
	}

	s, problems, err := Decode(data, r.defaults)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	for _, p := range problems {
		r.logger.Warn("Recovered from registry problem", "path", r.path, "err", p)
	}
	r.logger.Debug("Loaded registry", "path", r.path, "versions", s.Len())
	return s, nil
}

func (r *FileRepo) readOrInit() ([]byte, error) {
	exists, err := r.fs.Exists(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check registry document: %w", err)
	}
	if exists {
		data, err := r.fs.ReadFile(r.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read registry document: %w", err)
		}
		if len(data) > 0 {
			return data, nil
		}
	}

	r.logger.Info("Registry document not found, generating", "path", r.path)
	data, err := Encode(r.defaults)
	if err != nil {
		return nil, err
	}
	if err := r.fs.AtomicWrite(r.path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write default registry document: %w", err)
	}
	return data, nil
}

// Save atomically replaces the document with the contents of s.
func (r *FileRepo) Save(s *Store) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := r.fs.AtomicWrite(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	r.logger.Debug("Saved registry", "path", r.path, "versions", s.Len())
	return nil
}

// Update applies mutate to s and saves it.
// If mutate or Save fails, s is rolled back to its previous contents.
func (r *FileRepo) Update(s *Store, mutate func(*Store) error) error {
	snapshot := s.Clone()
	if err := mutate(s); err != nil {
		s.restore(snapshot)
		return err
	}
	if err := r.Save(s); err != nil {
		s.restore(snapshot)
		return fmt.Errorf("persist failed: %w", err)
	}
	return nil
}
