// Command convert extracts the first sheet of a spreadsheet into a CSV file
// for the aggregation pipeline. When the input workbook is missing it still
// writes a minimally valid empty table (header row only) so the downstream
// aggregator has something well-formed to read.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tabcli/internal/config"
	"tabcli/internal/dataprocessing"
	apperrors "tabcli/internal/errors"
	"tabcli/internal/exporter"
	"tabcli/internal/infrastructure"
)

// fallbackHeaders is the header row written when no input exists.
var fallbackHeaders = []string{"Date", "Value"}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "input spreadsheet (.xlsx or .xls)")
	out := fs.String("out", "", "output CSV path (defaults to the configured data file)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to load config, using defaults: %v\n", err)
		cfg = config.Default()
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to initialize logger: %v\n", err)
		logger = slog.Default()
	}

	if *in == "" {
		fmt.Fprintln(stderr, "usage: convert -in <spreadsheet> [-out <csv>]")
		return 2
	}
	if *out == "" {
		*out = cfg.Paths.DataFile
	}

	logger.Info("converting spreadsheet",
		slog.String("input", *in),
		slog.String("output", *out))

	table, err := dataprocessing.LoadTable(*in)
	if err != nil {
		var perr *apperrors.ProcessingError
		if errors.As(err, &perr) && perr.Kind == apperrors.KindFileNotFound {
			logger.Warn("input file missing, writing empty table",
				slog.String("input", *in))
			table = &dataprocessing.Table{Headers: fallbackHeaders}
		} else {
			logger.Error("failed to load spreadsheet",
				slog.String("input", *in),
				slog.String("error", err.Error()))
			return 1
		}
	}

	writer := exporter.NewCSVWriter(logger)
	if err := writer.WriteCSV(*out, table.Headers, table.Rows); err != nil {
		logger.Error("failed to write CSV",
			slog.String("output", *out),
			slog.String("error", err.Error()))
		return 1
	}

	logger.Info("conversion complete",
		slog.String("output", *out),
		slog.Int("rows", len(table.Rows)))
	return 0
}
