package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/perfconf/internal/core/domain"
)

// Completer suggests section.name terms for shell completion.
type Completer struct {
	names []string
}

// NewCompleter creates a Completer over the default table.
func NewCompleter() *Completer {
	defaults := domain.Defaults()
	names := make([]string, len(defaults))
	for i, d := range defaults {
		names[i] = d.Name()
	}
	return &Completer{names: names}
}

// Complete returns the names starting with prefix, in table order.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, name := range c.names {
		if strings.HasPrefix(name, prefix) {
			suggestions = append(suggestions, name)
		}
	}
	return suggestions
}

// completeTerms prints the names not already on the command line. No
// names are offered once an action flag is set.
func completeTerms(c *cli.Context) {
	if c.Bool("list") || c.Bool("list-all") {
		return
	}

	given := make(map[string]bool, c.NArg())
	for _, arg := range c.Args().Slice() {
		given[arg] = true
	}
	for _, name := range NewCompleter().Complete("") {
		if !given[name] {
			fmt.Fprintln(c.App.Writer, name)
		}
	}
}
