package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/perfconf/internal/cli/config"
	"github.com/yndnr/perfconf/internal/cli/output"
	"github.com/yndnr/perfconf/internal/core/domain"
	"github.com/yndnr/perfconf/internal/core/service"
	"github.com/yndnr/perfconf/internal/infra/perfconfig"
	"github.com/yndnr/perfconf/internal/storage/memory"
	"github.com/yndnr/perfconf/internal/telemetry/logger"
)

// ConfigAction lists or queries the effective configuration.
//
// Flags and terms are validated before any file is read, so a usage
// error never touches the filesystem.
func ConfigAction(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	scope, err := perfconfig.NewScope(flags.System, flags.User, flags.File)
	if err != nil {
		return err
	}

	query, err := service.NewQuery(service.QueryFlags{
		List:    flags.List,
		ListAll: flags.ListAll,
	}, c.Args().Slice())
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.Settings)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	cfg = config.Merge(cfg, config.Overrides{
		Output:   flags.Output,
		LogLevel: flags.LogLevel,
		Verbose:  flags.Verbose,
	})

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	ctx := logger.WithLogger(c.Context, log)
	log.Debug("running", "mode", query.Mode.String(), "scope", scope.String(), "output", string(format))

	store, err := collect(ctx, cfg.Locations(flags.File), scope)
	if err != nil {
		return err
	}

	lines, resolveErr := service.NewResolver(store).Resolve(query)
	if resolveErr != nil && !errors.Is(resolveErr, domain.ErrKeyNotFound) {
		return resolveErr
	}

	formatter := output.NewFormatter(format, flags.NoHeaders)
	if err := write(ctx, c.App.Writer, formatter, lines); err != nil {
		return err
	}
	return resolveErr
}

// collect reads the files selected by scope into a new store. Entries
// the store rejects are logged and skipped.
func collect(ctx context.Context, locs perfconfig.Locations, scope perfconfig.Scope) (*memory.Store, error) {
	log := logger.FromContext(ctx)
	store := memory.New()
	reader := perfconfig.NewReader(log)

	err := reader.Read(locs, scope, func(name string, value *string) error {
		if err := store.CollectVar(name, value); err != nil {
			if errors.Is(err, domain.ErrMalformedEntry) {
				log.Warn("skipping config entry", "name", name, "error", err)
				return nil
			}
			return err
		}
		log.Debug("collected", "name", name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func write(ctx context.Context, w io.Writer, formatter output.Formatter, lines []service.Line) error {
	if err := formatter.Format(w, lines); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.FromContext(ctx).Debug("wrote output", "lines", len(lines))
	return nil
}
