package engine

import (
	"context"
	"path/filepath"

	"github.com/danieljhkim/gdvm/internal/registry"
)

// Rename sets the nickname of the version at index (0-based).
// An empty nickname removes it.
func (e *Engine) Rename(index int, nickname string) (registry.Version, error) {
	s, err := e.loaded()
	if err != nil {
		return registry.Version{}, err
	}

	err = e.repo.Update(s, func(s *registry.Store) error {
		return s.SetNickname(index, nickname)
	})
	if err != nil {
		return registry.Version{}, err
	}
	return s.At(index)
}

// ToggleSession flips the session flag and returns its new value.
func (e *Engine) ToggleSession() (bool, error) {
	s, err := e.loaded()
	if err != nil {
		return false, err
	}

	err = e.repo.Update(s, func(s *registry.Store) error {
		s.UseSession = !s.UseSession
		return nil
	})
	if err != nil {
		return s.UseSession, err
	}
	return s.UseSession, nil
}

// SetScanPath stores a new scan root and optionally rescans it.
// The result is nil unless a rescan ran.
func (e *Engine) SetScanPath(ctx context.Context, req *SetScanPathRequest) (*ScanResult, error) {
	s, err := e.loaded()
	if err != nil {
		return nil, err
	}

	path := filepath.Clean(req.Path)
	if err := e.requireDir(path); err != nil {
		return nil, err
	}

	err = e.repo.Update(s, func(s *registry.Store) error {
		s.ScanPath = path
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !req.Rescan {
		return nil, nil
	}
	return e.Scan(ctx, &ScanRequest{Root: path, Clear: req.Clear})
}
