// Package engine provides the core business logic for gdvm operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level operations. It owns the loaded registry and coordinates
// discovery, reconciliation, persistence and launches.
//
// Key components:
//   - Engine: Main orchestrator holding the registry store
//   - Scan/Reconcile: Merges discovered installations into the registry
//   - AddManual: Registers an installation without scanning
//   - Run: Launches an installation inside the optional platform session
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/gdvm/internal/discovery"
	"github.com/danieljhkim/gdvm/internal/fsops"
	"github.com/danieljhkim/gdvm/internal/registry"
	"github.com/danieljhkim/gdvm/internal/session"
)

// StoreRepo persists the registry store.
type StoreRepo interface {
	// Load reads the store, creating a default document if needed.
	Load() (*registry.Store, error)

	// Update applies mutate and saves, rolling back on failure.
	Update(s *registry.Store, mutate func(*registry.Store) error) error

	// Path returns the document location.
	Path() string
}

// Discoverer scans a root directory for installations.
type Discoverer interface {
	Scan(ctx context.Context, root string) (*discovery.Result, error)
}

// Launcher runs an installation inside a session.
type Launcher interface {
	Launch(v registry.Version, sess session.Session) error
}

// SessionFactory returns the session for a launch given the session flag.
type SessionFactory func(enabled bool) session.Session

// Engine orchestrates all gdvm operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs        fsops.FS
	repo      StoreRepo
	scanner   Discoverer
	launcher  Launcher
	sessions  SessionFactory
	exeSuffix string
	logger    *log.Logger

	store *registry.Store
}

// New creates a new Engine with the given dependencies.
// exeSuffix is appended to folder names to derive default executable names.
func New(
	fs fsops.FS,
	repo StoreRepo,
	scanner Discoverer,
	launcher Launcher,
	sessions SessionFactory,
	exeSuffix string,
	logger *log.Logger,
) *Engine {
	if sessions == nil {
		sessions = func(bool) session.Session { return session.Noop{} }
	}
	return &Engine{
		fs:        fs,
		repo:      repo,
		scanner:   scanner,
		launcher:  launcher,
		sessions:  sessions,
		exeSuffix: exeSuffix,
		logger:    logger,
	}
}

// Open loads the registry. An empty registry triggers an automatic scan of
// the stored scan path; a missing scan root or unsupported platform during
// that scan is only reported.
func (e *Engine) Open(ctx context.Context) error {
	s, err := e.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	e.store = s

	if s.Len() > 0 {
		return nil
	}

	e.logger.Info("No versions known yet, scanning", "path", s.ScanPath)
	_, err = e.Scan(ctx, &ScanRequest{})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		e.logger.Warn("Scan path doesn't exist, create it or change it in settings", "path", s.ScanPath)
		return nil
	case errors.Is(err, discovery.ErrUnimplemented):
		e.logger.Warn("Automatic discovery is not supported on this platform", "err", err)
		return nil
	default:
		return err
	}
}

// loaded returns the open store.
func (e *Engine) loaded() (*registry.Store, error) {
	if e.store == nil {
		return nil, ErrNotOpen
	}
	return e.store, nil
}

// Versions returns the registered versions in display order.
func (e *Engine) Versions() ([]registry.Version, error) {
	s, err := e.loaded()
	if err != nil {
		return nil, err
	}
	return s.Versions(), nil
}

// Status returns the registry settings and contents.
func (e *Engine) Status() (*StatusResult, error) {
	s, err := e.loaded()
	if err != nil {
		return nil, err
	}
	return &StatusResult{
		RegistryPath: e.repo.Path(),
		UseSession:   s.UseSession,
		ScanPath:     s.ScanPath,
		Versions:     s.Versions(),
	}, nil
}

// ScanPathExists reports whether the stored scan path is a directory.
func (e *Engine) ScanPathExists() bool {
	if e.store == nil {
		return false
	}
	ok, err := e.fs.IsDir(e.store.ScanPath)
	return err == nil && ok
}

// requireDir returns ErrNotFound unless path is an existing directory.
func (e *Engine) requireDir(path string) error {
	ok, err := e.fs.IsDir(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}
