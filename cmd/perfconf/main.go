// Package main provides the entry point for perfconf.
//
// perfconf lists the effective perf configuration, or queries single
// section.name variables, from the system and user perfconfig files
// overlaid on the built-in defaults.
package main

import (
	"context"
	"os"

	"github.com/yndnr/perfconf/internal/cli/command"
)

func main() {
	os.Exit(command.Run(context.Background(), command.App(), os.Args))
}
