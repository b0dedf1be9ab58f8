package launch

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/gdvm/internal/registry"
	"github.com/danieljhkim/gdvm/internal/session"
)

// Launcher runs an installation inside a session.
type Launcher struct {
	runner ProcessRunner
	logger *log.Logger
	now    func() time.Time
}

// NewLauncher creates a Launcher.
func NewLauncher(runner ProcessRunner, logger *log.Logger) *Launcher {
	return &Launcher{runner: runner, logger: logger, now: time.Now}
}

// Launch starts v from its install directory and waits for it to exit.
//
// sess is initialized right before the spawn and finalized after the wait,
// only if initialization succeeded. Session failures are logged and never
// prevent the launch.
func (l *Launcher) Launch(v registry.Version, sess session.Session) error {
	if sess == nil {
		sess = session.Noop{}
	}

	active := true
	if err := sess.Initialize(); err != nil {
		l.logger.Warn("Session could not be initialized, launching without it", "err", err)
		active = false
	}

	l.logger.Info("Starting", "version", v.DisplayName(), "path", v.FullPath())
	start := l.now()
	runErr := l.runner.Run(v.Path, v.FullPath(), Args)
	if runErr == nil {
		l.logger.Info("Exited", "version", v.DisplayName(), "elapsed", l.now().Sub(start).Round(time.Second))
	}

	if active {
		if err := sess.Finalize(); err != nil {
			l.logger.Warn("Session could not be finalized", "err", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("failed to launch %s: %w", v.DisplayName(), runErr)
	}
	return nil
}
