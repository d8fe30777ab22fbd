package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPPort != 8290 {
		t.Errorf("port = %d, want 8290", cfg.HTTPPort)
	}
	if cfg.Addr() != ":8290" {
		t.Errorf("addr = %q", cfg.Addr())
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("ffmpeg path = %q", cfg.FFmpegPath)
	}
	if cfg.MaxDownloadBytes != 2<<30 {
		t.Errorf("max download bytes = %d", cfg.MaxDownloadBytes)
	}
	if cfg.RequestTimeout != 10*time.Minute {
		t.Errorf("request timeout = %v", cfg.RequestTimeout)
	}
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CLIPPER_PORT", "9000")
	t.Setenv("CLIPPER_LOG_LEVEL", "debug")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CLIPPER_MAX_DOWNLOAD_BYTES", "1048576")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPPort != 9000 {
		t.Errorf("port = %d, want 9000", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if !cfg.IsProduction() {
		t.Error("production environment not detected")
	}
	if cfg.MaxDownloadBytes != 1048576 {
		t.Errorf("max download bytes = %d", cfg.MaxDownloadBytes)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("CLIPPER_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("CLIPPER_REQUEST_TIMEOUT", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}
