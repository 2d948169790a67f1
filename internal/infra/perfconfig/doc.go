// Package perfconfig reads perfconfig files and streams their entries.
//
// A perfconfig file is git-config style INI:
//
//	[colors]
//		top = red, default
//	[report "children"]
//		enabled = true
//
// Each key is handed to a CollectFunc as a dotted name
// ("colors.top", "report.children.enabled") with its text value. An
// unquoted value ends at the first '#' or ';'. A key without '=' makes the
// file unparsable.
//
// File discovery follows three scopes:
//
//   - ScopeDefault: the system file, then the user file
//   - ScopeSystem / ScopeUser: only that file
//   - ScopeFile: only an explicitly named file
//
// Missing files are skipped; unreadable or unparsable files are errors.
package perfconfig
