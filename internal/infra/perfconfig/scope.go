package perfconfig

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yndnr/perfconf/internal/core/domain"
)

// Default file locations.
const (
	DefaultSystemPath = "/etc/perfconfig"
	DefaultUserName   = ".perfconfig"

	// NoSystemEnv disables the system file in ScopeDefault when true.
	NoSystemEnv = "PERF_CONFIG_NOSYSTEM"
)

// Scope selects which files are read.
type Scope int

const (
	ScopeDefault Scope = iota
	ScopeSystem
	ScopeUser
	ScopeFile
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeSystem:
		return "system"
	case ScopeUser:
		return "user"
	case ScopeFile:
		return "file"
	default:
		return "default"
	}
}

// NewScope turns the file selection flags into a Scope. At most one of
// system, user and file may be set.
func NewScope(system, user bool, file string) (Scope, error) {
	n := 0
	scope := ScopeDefault
	if system {
		n++
		scope = ScopeSystem
	}
	if user {
		n++
		scope = ScopeUser
	}
	if file != "" {
		n++
		scope = ScopeFile
	}
	if n > 1 {
		return ScopeDefault, domain.ErrUsage.WithDetails("only one config file at a time")
	}
	return scope, nil
}

// Locations holds the candidate file paths.
type Locations struct {
	System   string
	User     string
	File     string
	NoSystem bool
}

// Paths returns the files to read for scope, in read order. Later files
// override earlier ones key by key.
func (l Locations) Paths(scope Scope) []string {
	var paths []string
	add := func(p string) {
		if p != "" {
			paths = append(paths, p)
		}
	}

	switch scope {
	case ScopeSystem:
		add(l.System)
	case ScopeUser:
		add(l.User)
	case ScopeFile:
		add(l.File)
	default:
		if !l.NoSystem {
			add(l.System)
		}
		add(l.User)
	}
	return paths
}

// UserPath resolves name against the home directory unless it is
// already absolute. It returns "" when there is no home directory.
func UserPath(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, name)
}

// SystemDisabled reports whether PERF_CONFIG_NOSYSTEM is set to a true
// value.
func SystemDisabled() bool {
	return envBool(os.Getenv(NoSystemEnv))
}

func envBool(v string) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	switch v {
	case "yes", "on":
		return true
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n != 0
	}
	return false
}
