// Package logger constructs the service-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/famomatic/clipper/internal/config"
)

// New builds a logger from the service configuration. Production gets JSON
// output; everything else gets the console writer.
func New(cfg *config.Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if cfg.IsProduction() {
		return zerolog.New(os.Stdout).With().
			Timestamp().
			Str("service", cfg.ServiceName).
			Logger().Level(lvl)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(consoleWriter).With().Timestamp().Logger().Level(lvl)
}
