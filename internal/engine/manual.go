package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/gdvm/internal/registry"
)

// AddManual registers an installation directory without discovery.
// The version is the second underscore-separated part of the folder name,
// so "Godot_v4.2-stable_win64" yields "v4.2-stable".
func (e *Engine) AddManual(ctx context.Context, req *AddManualRequest) (*AddManualResult, error) {
	s, err := e.loaded()
	if err != nil {
		return nil, err
	}

	path := filepath.Clean(req.Path)
	if err := e.requireDir(path); err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	version, err := versionFromFolder(name)
	if err != nil {
		return nil, err
	}

	executable := req.Executable
	if executable == "" {
		executable = e.defaultExecutable(name)
	}

	v := registry.NewVersion(version, path, executable, true, req.Nickname)
	if _, ok := s.FindByPath(path); ok {
		e.logger.Info("Version already known", "version", v.Version, "path", v.Path)
		return &AddManualResult{Version: v, Added: false}, nil
	}

	err = e.repo.Update(s, func(s *registry.Store) error {
		s.Add(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Successfully added version", "version", v.Version, "path", v.Path)
	return &AddManualResult{Version: v, Added: true}, nil
}

func versionFromFolder(name string) (string, error) {
	parts := strings.Split(name, "_")
	if len(parts) < 2 || parts[1] == "" {
		return "", fmt.Errorf("%w: %q has no _<version> part", ErrInvalidName, name)
	}
	return parts[1], nil
}

func (e *Engine) defaultExecutable(folder string) string {
	if e.exeSuffix == "" || strings.HasSuffix(strings.ToLower(folder), strings.ToLower(e.exeSuffix)) {
		return folder
	}
	return folder + e.exeSuffix
}
