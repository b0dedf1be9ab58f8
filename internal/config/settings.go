package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables read by gdvm.
const EnvPrefix = "GDVM"

// Settings holds process-level options resolved from flags and environment.
// They are distinct from the registry document, which gdvm owns and rewrites.
type Settings struct {
	// RegistryPath overrides Paths.Registry when non-empty.
	RegistryPath string `mapstructure:"config"`

	// LogLevel is the minimum diagnostic level (debug, info, warn, error).
	LogLevel string `mapstructure:"log-level"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{LogLevel: "info"}
}

// LoadSettings resolves settings with flag > environment > default precedence.
// Flags that are absent from the set are ignored.
func LoadSettings(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("config", defaults.RegistryPath)
	v.SetDefault("log-level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, name := range []string{"config", "log-level"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// ResolveRegistryPath returns the registry document path for these settings.
func (s *Settings) ResolveRegistryPath(p *Paths) string {
	if s.RegistryPath != "" {
		return s.RegistryPath
	}
	return p.Registry
}
