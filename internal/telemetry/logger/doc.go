// Package logger provides structured logging for perfconf.
//
// It wraps log/slog. Log records always go to stderr (or a writer the
// caller supplies) so they never mix with command output on stdout.
//
//   - logger.go: Logger interface, configuration and the Default fallback
//   - context.go: carrying a Logger through context.Context
package logger
