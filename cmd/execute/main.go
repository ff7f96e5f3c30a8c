// Command execute runs the tabular aggregation pipeline over a single file
// and writes the JSON result document to standard output.
//
//	execute [flags] [path]
//
// With no path argument the configured default (data.csv) is used and a
// usage diagnostic is written to standard error. The process exits 0
// whenever a JSON document was emitted, including the {"error": ...} shape;
// a nonzero exit means the document itself could not be written.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"tabcli/internal/config"
	"tabcli/internal/dataprocessing"
	"tabcli/internal/exporter"
	"tabcli/internal/infrastructure"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("execute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "also write the JSON document to this file")
	quiet := fs.Bool("quiet", false, "suppress diagnostics below error level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to load config, using defaults: %v\n", err)
		cfg = config.Default()
	}
	if *quiet {
		cfg.Logging.Level = "error"
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to initialize logger: %v\n", err)
		logger = slog.Default()
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	path := resolveInputPath(fs.Args(), cfg.Paths.DataFile, stderr)
	logger.Info("starting aggregation", slog.String("path", path))

	result := dataprocessing.NewProcessor(logger).Process(path)

	if err := exporter.WriteDocument(stdout, result); err != nil {
		logger.Error("failed to write result document", slog.String("error", err.Error()))
		return 1
	}
	if *out != "" {
		if err := exporter.WriteDocumentFile(*out, result); err != nil {
			logger.Error("failed to publish result document",
				slog.String("path", *out),
				slog.String("error", err.Error()))
			return 1
		}
		logger.Info("published result document", slog.String("path", *out))
	}
	return 0
}

// resolveInputPath picks the positional argument, or falls back to the
// configured default with a usage diagnostic. The fallback is a CLI
// convenience; the pipeline itself takes whatever path it is given.
func resolveInputPath(args []string, fallback string, stderr io.Writer) string {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "usage: execute [flags] <path>; no path given, defaulting to %s\n", fallback)
		return fallback
	}
	return args[0]
}
