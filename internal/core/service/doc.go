// Package service provides the resolver for perfconf.
//
// The resolver merges the collected overlay with the compiled-in default
// table and produces display lines. It knows three query modes:
//
//   - ModeListAll: every default, then overlay keys without a default
//   - ModeList: overlay keys only
//   - ModeQuery: the section.key terms named on the command line
//
// The overlay is reached through the OverlayReader interface so the
// resolver does not depend on a storage implementation.
package service
