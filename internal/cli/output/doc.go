// Package output renders resolved configuration lines.
//
//   - formatter.go: Formatter interface, format parsing and factory
//   - text.go: section.key=value lines, the default
//   - table.go: aligned SECTION/KEY/VALUE/SOURCE columns
//   - json.go: JSON array output
//   - yaml.go: YAML sequence output
//
// Structured formats carry each line's source and drop the text-only
// " (default)" marker.
package output
