package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/gdvm/internal/config"
	"github.com/danieljhkim/gdvm/internal/discovery"
	"github.com/danieljhkim/gdvm/internal/engine"
	"github.com/danieljhkim/gdvm/internal/fsops"
	"github.com/danieljhkim/gdvm/internal/launch"
	"github.com/danieljhkim/gdvm/internal/registry"
	"github.com/danieljhkim/gdvm/internal/session"
)

// newLogger builds the diagnostics logger for the given level name.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(stderr, log.Options{
		Prefix: "gdvm",
		Level:  lvl,
	}), nil
}

// newEngine creates and opens an engine with real implementations of all dependencies.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(settings.LogLevel)
	if err != nil {
		return nil, err
	}

	// Get default paths
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	// Ensure directories exist
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	// Create real implementations
	fs := fsops.NewRealFS()
	repo := registry.NewFileRepo(fs, settings.ResolveRegistryPath(paths), paths.Versions, logger)

	suffix := ""
	strategy, err := discovery.Default()
	if err != nil {
		logger.Debug("No discovery strategy for this platform", "err", err)
	} else {
		suffix = strategy.ExecutableSuffix()
	}
	scanner := discovery.NewScanner(fs, strategy, logger)
	launcher := launch.NewLauncher(launch.NewExecRunner(), logger)

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	sessions := func(enabled bool) session.Session {
		if enabled {
			return session.NewSteam(fs, wd, nil)
		}
		return session.Noop{}
	}

	eng := engine.New(fs, repo, scanner, launcher, sessions, suffix, logger)
	if err := eng.Open(cmd.Context()); err != nil {
		return nil, err
	}
	return eng, nil
}

// parseIndex converts a 1-based version number to a 0-based index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid version number %q", s)
	}
	return n - 1, nil
}

// describeError adds operator hints to known failures.
func describeError(err error) string {
	switch {
	case errors.Is(err, registry.ErrOutOfRange):
		return "Invalid version number."
	case errors.Is(err, discovery.ErrUnimplemented):
		return "Scanning is not supported on this platform, add versions with 'gdvm add'."
	default:
		return err.Error()
	}
}

// versionView is the JSON shape of a registered version.
type versionView struct {
	Number     int    `json:"number,omitempty"`
	Version    string `json:"version"`
	Path       string `json:"path"`
	Executable string `json:"executable"`
	IsManual   bool   `json:"isManual"`
	Nickname   string `json:"nickname,omitempty"`
}

// toViews converts versions; numbered views carry their 1-based list number.
func toViews(versions []registry.Version, numbered bool) []versionView {
	views := make([]versionView, 0, len(versions))
	for i, v := range versions {
		n := 0
		if numbered {
			n = i + 1
		}
		views = append(views, versionView{
			Number:     n,
			Version:    v.Version,
			Path:       v.Path,
			Executable: v.Executable,
			IsManual:   v.IsManual,
			Nickname:   v.Nickname(),
		})
	}
	return views
}

func displayNames(versions []registry.Version) []string {
	names := make([]string, len(versions))
	for i, v := range versions {
		names[i] = v.DisplayName()
	}
	return names
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
