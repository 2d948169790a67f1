// Package domain defines the core domain models for perfconf.
//
// Domain models are pure values without any IO dependencies.
// This package contains:
//
//   - Value: tagged scalar with one case per default kind
//   - DefaultEntry: compiled-in fallback for a section.key
//   - Defaults: the static, ordered default table
//   - Errors: domain-specific error definitions
//
// The default table is read-only and shared across the process.
package domain
