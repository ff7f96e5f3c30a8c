// Command serve publishes the aggregation result document over HTTP at a
// stable URL. It serves whatever JSON document the execute step last wrote;
// the document's schema is not enforced beyond being valid JSON.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tabcli/internal/config"
	"tabcli/internal/infrastructure"
	transport "tabcli/internal/transport/http"
)

func main() {
	doc := flag.String("doc", "", "path of the published JSON document (defaults to the configured output file)")
	addr := flag.String("addr", "", "listen address (defaults to the configured server address)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *doc == "" {
		*doc = cfg.Paths.OutputFile
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	srv := transport.NewServer(cfg.Server, *doc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
