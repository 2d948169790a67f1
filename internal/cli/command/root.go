package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/perfconf/internal/cli/output"
	"github.com/yndnr/perfconf/internal/core/domain"
	"github.com/yndnr/perfconf/internal/infra/buildinfo"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 129
)

const usageText = "perfconf [<file-option>] [options] [section.name ...]"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                 "perfconf",
		Usage:                "Get and list perf configuration variables",
		UsageText:            usageText,
		Version:              buildinfo.String(),
		Flags:                globalFlags(),
		Action:               ConfigAction,
		EnableBashCompletion: true,
		BashComplete:         completeTerms,
		HideHelpCommand:      true,
		Writer:               os.Stdout,
		ErrWriter:            os.Stderr,
		OnUsageError:         onUsageError,
		ExitErrHandler:       func(*cli.Context, error) {},
	}
}

// globalFlags returns the CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     "list",
			Aliases:  []string{"l"},
			Usage:    "show current config variables",
			Category: "Actions",
		},
		&cli.BoolFlag{
			Name:     "list-all",
			Aliases:  []string{"a"},
			Usage:    "show current and all possible config variables with default values",
			Category: "Actions",
		},
		&cli.BoolFlag{
			Name:     "system",
			Usage:    "use system config file",
			Category: "Config file",
		},
		&cli.BoolFlag{
			Name:     "user",
			Usage:    "use user config file",
			Category: "Config file",
		},
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "use the given config `FILE`",
			Category: "Config file",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: " + formatNames(),
		},
		&cli.BoolFlag{
			Name:  "no-headers",
			Usage: "omit the header row in table output",
		},
		&cli.StringFlag{
			Name:  "settings",
			Usage: "perfconf settings `FILE` (default $XDG_CONFIG_HOME/perfconf/cli.yaml)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "enable debug logging",
		},
	}
}

func formatNames() string {
	names := make([]string, len(output.Formats))
	for i, f := range output.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// GlobalFlags holds the parsed flags.
type GlobalFlags struct {
	// Actions
	List    bool
	ListAll bool

	// File selection
	System bool
	User   bool
	File   string

	// Output and settings
	Output    string
	NoHeaders bool
	Settings  string
	LogLevel  string
	Verbose   bool
}

// ParseGlobalFlags extracts flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		List:      c.Bool("list"),
		ListAll:   c.Bool("list-all"),
		System:    c.Bool("system"),
		User:      c.Bool("user"),
		File:      c.String("file"),
		Output:    c.String("output"),
		NoHeaders: c.Bool("no-headers"),
		Settings:  c.String("settings"),
		LogLevel:  c.String("log-level"),
		Verbose:   c.Bool("verbose"),
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return domain.ErrUsage.WithDetails(err.Error())
}

// Run runs app with args, reports any error on the app's ErrWriter and
// returns the process exit code.
func Run(ctx context.Context, app *cli.App, args []string) int {
	err := app.RunContext(ctx, args)
	if err == nil {
		return ExitOK
	}

	code := ExitCode(err)
	PrintError(app.ErrWriter, err)
	if code == ExitUsage {
		fmt.Fprintf(app.ErrWriter, "\n usage: %s\n\n", app.UsageText)
		fmt.Fprintf(app.ErrWriter, "Run '%s --help' for the list of options.\n", app.Name)
	}
	return code
}

// ExitCode maps an error to a process exit code by its domain error code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch domain.GetErrorCode(err) {
	case domain.ErrUsage.Code, domain.ErrMalformedTerm.Code:
		return ExitUsage
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitError
}

// PrintError writes err to w, one "error:" line per joined error.
func PrintError(w io.Writer, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			PrintError(w, e)
		}
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
