// Package buildinfo provides build information for perfconf.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/perfconf/internal/infra/buildinfo.Version=v1.0.0"
//
// Values not set by ldflags fall back to the module build info embedded
// by the Go toolchain.
package buildinfo
