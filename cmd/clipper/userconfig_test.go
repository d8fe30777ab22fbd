package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUserConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig: %v", err)
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("ffmpeg path = %q", cfg.FFmpegPath)
	}
	if cfg.OutputDir != "." {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
}

func TestLoadUserConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "clipper")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
cookies_file = "/home/user/cookies.txt"
ffmpeg_path = "/opt/ffmpeg/bin/ffmpeg"
output_dir = "/tmp/clips"
timeout = "5m"
max_download_bytes = 1073741824
`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig: %v", err)
	}
	if cfg.CookiesFile != "/home/user/cookies.txt" {
		t.Errorf("cookies file = %q", cfg.CookiesFile)
	}
	if cfg.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("ffmpeg path = %q", cfg.FFmpegPath)
	}
	if cfg.Timeout != 5*time.Minute {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.MaxDownloadBytes != 1<<30 {
		t.Errorf("max bytes = %d", cfg.MaxDownloadBytes)
	}
}

func TestLoadUserConfigBadTimeout(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "clipper")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(`timeout = "soon"`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadUserConfig(); err == nil {
		t.Fatal("expected error for unparsable timeout")
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{45, "0:45"},
		{212, "3:32"},
		{3723, "1:02:03"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.seconds); got != tc.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
