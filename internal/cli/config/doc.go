// Package config holds the perfconf command's own settings.
//
//   - spec.go: CLIConfig struct and defaults
//   - loader.go: settings path resolution, loading and flag overrides
//
// Settings come from built-in defaults, an optional YAML file
// ($XDG_CONFIG_HOME/perfconf/cli.yaml or $PERFCONF_SETTINGS) and
// PERFCONF_* environment variables, in increasing priority.
package config
