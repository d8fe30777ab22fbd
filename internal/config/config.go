// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the clip service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"clipper"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"CLIPPER_PORT" envDefault:"8290"`
	LogLevel        string        `env:"CLIPPER_LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Pipeline Configuration
	RequestTimeout   time.Duration `env:"CLIPPER_REQUEST_TIMEOUT" envDefault:"10m"`
	MaxDownloadBytes int64         `env:"CLIPPER_MAX_DOWNLOAD_BYTES" envDefault:"2147483648"`
	FFmpegPath       string        `env:"CLIPPER_FFMPEG_PATH" envDefault:"ffmpeg"`
	ProxyURL         string        `env:"CLIPPER_PROXY_URL"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.FFmpegPath = strings.TrimSpace(cfg.FFmpegPath)
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = "ffmpeg"
	}
	if cfg.MaxDownloadBytes <= 0 {
		cfg.MaxDownloadBytes = 2 << 30
	}
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("CLIPPER_PORT out of range: %d", cfg.HTTPPort)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("CLIPPER_REQUEST_TIMEOUT must be positive")
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsProduction reports whether the service runs in a production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}
