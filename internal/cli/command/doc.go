// Package command provides the perfconf command line.
//
// This package defines the application using urfave/cli/v2:
//
//   - root.go: App, flags, error reporting and exit codes
//   - config.go: the config action (read files, resolve, print)
//
// The action parses flags into a perfconfig.Scope and a service.Query,
// reads the selected files into an overlay store, resolves the query
// against the default table and writes the result with an output
// formatter.
package command
