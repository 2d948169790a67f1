// Package confloader loads layered settings with koanf.
//
// Sources are merged in order, later ones winning:
//
//  1. Defaults (a nested map)
//  2. A YAML settings file
//  3. Environment variables with the configured prefix
//
// Environment names map to keys by dropping the prefix, lowercasing and
// turning '_' into '.', so PERFCONF_LOG_LEVEL sets log.level.
package confloader
