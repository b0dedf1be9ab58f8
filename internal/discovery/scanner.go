package discovery

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/gdvm/internal/fsops"
	"github.com/danieljhkim/gdvm/internal/registry"
)

// SentinelName is the marker file that keeps the engine's settings local
// to its install directory.
const SentinelName = "._sc_"

// Skipped describes a directory that did not yield a candidate.
type Skipped struct {
	Dir    string
	Reason error
}

// Result is the outcome of a scan.
type Result struct {
	// Candidates are the discovered installations in directory order.
	Candidates []registry.Version

	// Skipped lists directories that are not installations.
	Skipped []Skipped
}

// Scanner walks a scan root for engine installations.
type Scanner struct {
	fs       fsops.FS
	strategy Strategy
	logger   *log.Logger
}

// NewScanner creates a Scanner. A nil strategy makes every scan fail with
// ErrUnimplemented.
func NewScanner(fs fsops.FS, strategy Strategy, logger *log.Logger) *Scanner {
	return &Scanner{fs: fs, strategy: strategy, logger: logger}
}

// Scan classifies each immediate subdirectory of root.
func (s *Scanner) Scan(ctx context.Context, root string) (*Result, error) {
	ok, err := s.fs.IsDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to check scan root: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
	}
	if s.strategy == nil {
		return nil, ErrUnimplemented
	}
	s.logger.Debug("Scanning for installations", "root", root, "platform", s.strategy.Name())

	entries, err := s.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan root: %w", err)
	}

	res := &Result{Candidates: []registry.Version{}}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := filepath.Join(root, entry.Name())
		candidate, err := s.inspect(dir)
		if err != nil {
			s.logger.Warn("Skipping directory, might not be an engine install", "dir", dir, "err", err)
			res.Skipped = append(res.Skipped, Skipped{Dir: dir, Reason: err})
			continue
		}

		created, err := s.fs.TouchIfAbsent(filepath.Join(dir, SentinelName))
		if err != nil {
			s.logger.Warn("Failed to create self-contained marker", "dir", dir, "err", err)
		} else if created {
			s.logger.Debug("Created self-contained marker", "dir", dir)
		}

		res.Candidates = append(res.Candidates, candidate)
	}
	return res, nil
}

// inspect returns the candidate for the first valid executable in dir.
func (s *Scanner) inspect(dir string) (registry.Version, error) {
	files, err := s.fs.ReadDir(dir)
	if err != nil {
		return registry.Version{}, fmt.Errorf("failed to read directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		if !s.strategy.IsExecutable(name) || s.strategy.IsCompanion(name) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := s.strategy.ReadVersionInfo(path)
		if err != nil {
			s.logger.Warn("Failed to read version metadata", "file", path, "err", err)
			continue
		}
		if info.ProductName != s.strategy.ProductName() {
			s.logger.Warn("File doesn't seem to be an engine executable", "file", path,
				"err", fmt.Errorf("%w: product %q", ErrNotEngine, info.ProductName))
			continue
		}

		return registry.NewVersion(DeriveVersion(info), dir, name, false, ""), nil
	}
	return registry.Version{}, fmt.Errorf("%w in %s", ErrNoExecutable, dir)
}
