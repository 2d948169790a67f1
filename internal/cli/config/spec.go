package config

import "github.com/yndnr/perfconf/internal/infra/perfconfig"

// CLIConfig is the configuration for the perfconf command.
type CLIConfig struct {
	Files  FilesConfig `koanf:"files"`
	Output string      `koanf:"output"` // text, table, json, yaml
	Log    LogConfig   `koanf:"log"`
}

// FilesConfig locates the perfconfig files.
type FilesConfig struct {
	System   string `koanf:"system"`
	User     string `koanf:"user"` // relative names resolve against $HOME
	NoSystem bool   `koanf:"nosystem"`
}

// LogConfig configures diagnostics on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Files: FilesConfig{
			System: perfconfig.DefaultSystemPath,
			User:   perfconfig.DefaultUserName,
		},
		Output: "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// defaultsMap mirrors Default as a nested map for the koanf loader.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"files": map[string]any{
			"system":   d.Files.System,
			"user":     d.Files.User,
			"nosystem": d.Files.NoSystem,
		},
		"output": d.Output,
		"log": map[string]any{
			"level":  d.Log.Level,
			"format": d.Log.Format,
		},
	}
}

// Locations converts the file settings into reader locations. file is
// the explicit --file path, if any.
func (c *CLIConfig) Locations(file string) perfconfig.Locations {
	return perfconfig.Locations{
		System:   c.Files.System,
		User:     perfconfig.UserPath(c.Files.User),
		File:     file,
		NoSystem: c.Files.NoSystem || perfconfig.SystemDisabled(),
	}
}
