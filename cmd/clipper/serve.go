package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/famomatic/clipper/client"
	"github.com/famomatic/clipper/internal/config"
	"github.com/famomatic/clipper/internal/httpserver"
	"github.com/famomatic/clipper/internal/logger"
	"github.com/famomatic/clipper/internal/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the preview/clip HTTP service",
	RunE:  serveRun,
}

func serveRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	clipClient := client.New(client.Config{
		RequestTimeout:   cfg.RequestTimeout,
		MaxDownloadBytes: cfg.MaxDownloadBytes,
		FFmpegPath:       cfg.FFmpegPath,
		ProxyURL:         cfg.ProxyURL,
		Logger:           zerologWarnAdapter{log},
	})

	server := httpserver.New(cfg, log, clipClient)
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return err
	}

	log.Info().Msg("server exited cleanly")
	return nil
}

// zerologWarnAdapter lets the pipeline client emit warnings through zerolog.
type zerologWarnAdapter struct {
	log zerolog.Logger
}

func (a zerologWarnAdapter) Warnf(format string, args ...any) {
	a.log.Warn().Msgf(format, args...)
}
