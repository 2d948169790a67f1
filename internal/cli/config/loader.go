package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yndnr/perfconf/internal/infra/confloader"
)

// SettingsEnv overrides the settings file path.
const SettingsEnv = "PERFCONF_SETTINGS"

// DefaultConfigPath returns the default CLI settings file path. It
// returns "" when no user config directory can be determined.
func DefaultConfigPath() string {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "perfconf", "cli.yaml")
}

// Load loads CLI configuration. An empty path means DefaultConfigPath.
// A missing file is not an error.
func Load(path string) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	opts := []confloader.Option{
		confloader.WithEnvPrefix(confloader.DefaultEnvPrefix),
		confloader.WithDefaults(defaultsMap()),
	}
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			opts = append(opts, confloader.WithConfigFile(path))
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("stat settings %s: %w", path, err)
		}
	}

	cfg := &CLIConfig{}
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overrides are command-line values that take precedence over settings.
// Empty fields leave the setting untouched.
type Overrides struct {
	Output   string
	LogLevel string
	Verbose  bool
}

// Merge applies flag overrides to cfg and returns it.
func Merge(cfg *CLIConfig, o Overrides) *CLIConfig {
	if o.Output != "" {
		cfg.Output = o.Output
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
	}
	return cfg
}
