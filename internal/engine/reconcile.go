package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/gdvm/internal/discovery"
	"github.com/danieljhkim/gdvm/internal/registry"
)

// merge applies candidates to s. Stores are unique by path, so a candidate
// whose path is registered is reported as known.
func merge(s *registry.Store, candidates []registry.Version, clearFirst bool, logger *log.Logger) ReconcileResult {
	var res ReconcileResult
	if clearFirst {
		before := s.Len()
		s.ClearDiscovered()
		res.Cleared = before - s.Len()
	}

	for _, c := range candidates {
		if !s.Add(c) {
			logger.Info("Version already known", "version", c.Version, "path", c.Path)
			res.Known = append(res.Known, c)
			continue
		}
		logger.Info("Successfully added version", "version", c.Version, "path", c.Path)
		res.Added = append(res.Added, c)
	}
	return res
}

// Reconcile merges candidates into the registry and saves it once.
func (e *Engine) Reconcile(candidates []registry.Version, clearFirst bool) (*ReconcileResult, error) {
	s, err := e.loaded()
	if err != nil {
		return nil, err
	}

	var res ReconcileResult
	err = e.repo.Update(s, func(s *registry.Store) error {
		res = merge(s, candidates, clearFirst, e.logger)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Scan discovers installations under the scan root and reconciles them.
// A missing root aborts before anything is cleared.
func (e *Engine) Scan(ctx context.Context, req *ScanRequest) (*ScanResult, error) {
	s, err := e.loaded()
	if err != nil {
		return nil, err
	}

	root := req.Root
	if root == "" {
		root = s.ScanPath
	}

	found, err := e.scanner.Scan(ctx, root)
	if err != nil {
		if errors.Is(err, discovery.ErrNotFound) {
			return nil, fmt.Errorf("%w: scan path %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	merged, err := e.Reconcile(found.Candidates, req.Clear)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		ReconcileResult: *merged,
		Root:            root,
		Skipped:         found.Skipped,
	}, nil
}
