package engine

import (
	"context"

	"github.com/danieljhkim/gdvm/internal/registry"
)

// Run launches the version at index (0-based) and waits for it to exit.
func (e *Engine) Run(ctx context.Context, index int) (registry.Version, error) {
	s, err := e.loaded()
	if err != nil {
		return registry.Version{}, err
	}

	v, err := s.At(index)
	if err != nil {
		return registry.Version{}, err
	}
	if err := ctx.Err(); err != nil {
		return v, err
	}

	e.logger.Info("Launching", "version", v.DisplayName(), "path", v.FullPath(), "session", s.UseSession)
	return v, e.launcher.Launch(v, e.sessions(s.UseSession))
}
