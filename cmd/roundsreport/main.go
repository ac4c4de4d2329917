// Command roundsreport writes the filtered round advancement table as CSV.
//
//	roundsreport --seed 1 --seed 2 --region East --out east.csv
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"bracketboard/internal/config"
	"bracketboard/internal/exporter"
	"bracketboard/internal/infrastructure"
	"bracketboard/internal/predictions"
	"bracketboard/internal/services"
	"bracketboard/pkg/contracts"
)

type options struct {
	Config  string   `short:"c" long:"config" description:"Path to a YAML config file"`
	Seeds   []string `short:"s" long:"seed" description:"Seed to include (repeatable, default All)"`
	Regions []string `short:"r" long:"region" description:"Region to include (repeatable, default All)"`
	Out     string   `short:"o" long:"out" description:"Output CSV file (default stdout)"`
	BOM     bool     `long:"bom" description:"Prefix the CSV with a UTF-8 byte order mark"`
	Options bool     `long:"options" description:"Print the seed and region choices and exit"`
	Version bool     `short:"v" long:"version" description:"Print version and exit"`
}

// Exit codes
const (
	exitOK              = 0
	exitFailure         = 1
	exitDataUnavailable = 2
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		code := exitCode(err)
		if code != exitOK {
			fmt.Fprintln(os.Stderr, "roundsreport:", err)
		}
		os.Exit(code)
	}
}

// exitCode maps a run error to the process exit status. Prediction data
// that cannot be loaded gets its own status so scripts can tell it apart
// from bad flags or write failures.
func exitCode(err error) int {
	var ferr *flags.Error
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ferr) && ferr.Type == flags.ErrHelp:
		return exitOK
	case predictions.IsDataLoadError(err):
		return exitDataUnavailable
	default:
		return exitFailure
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}

	if opts.Version {
		_, err := fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return err
	}

	cfg, err := config.LoadFrom(opts.Config)
	if err != nil {
		return err
	}
	paths, err := cfg.GetPaths()
	if err != nil {
		return err
	}

	// logs go to stderr so stdout stays a clean CSV stream
	logCfg := cfg.Logging
	logCfg.Output = "console"
	base, err := infrastructure.NewLogger(logCfg, os.Stderr)
	if err != nil {
		return err
	}
	logger := infrastructure.WithComponent(base, "roundsreport")
	ctx = infrastructure.EnsureTraceID(ctx)

	loader := predictions.NewLoader(predictions.Sources{
		RoundsPath:   paths.RoundsFile,
		MatchupsPath: paths.MatchupsFile,
		RatingsPath:  paths.RatingsFile,
	}, logger)
	ds, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load prediction data: %w", err)
	}

	dashboard, err := services.NewDashboardService(ds, nil, logger)
	if err != nil {
		return err
	}

	if opts.Options {
		choices := dashboard.Options(ctx)
		_, err := fmt.Fprintf(stdout, "seeds: %s\nregions: %s\n",
			strings.Join(choices.Seeds, ", "), strings.Join(choices.Regions, ", "))
		return err
	}

	sel := predictions.Selection{Seeds: opts.Seeds, Regions: opts.Regions}

	if opts.Out == "" {
		_, err := dashboard.ExportRounds(ctx, stdout, sel, opts.BOM)
		return err
	}

	view, err := dashboard.Rounds(ctx, sel)
	if err != nil {
		return err
	}
	if len(view.Unknown) > 0 {
		logger.WarnContext(ctx, "unknown filter values", slog.Any("values", view.Unknown))
	}

	n, err := exporter.NewCSVWriter(paths.BaseDir, logger).WriteFile(opts.Out, view.Display, exporter.WriteOptions{BOMPrefix: opts.BOM})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "wrote %d rows to %s\n", n, opts.Out)
	return err
}
