package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// UserConfig holds the CLI configuration. TOML is parsed as data only.
type UserConfig struct {
	CookiesFile      string        `toml:"cookies_file"`
	FFmpegPath       string        `toml:"ffmpeg_path"`
	OutputDir        string        `toml:"output_dir"`
	Timeout          time.Duration `toml:"-"`
	TimeoutString    string        `toml:"timeout"`
	MaxDownloadBytes int64         `toml:"max_download_bytes"`
}

// DefaultUserConfig returns the default CLI configuration.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		FFmpegPath: "ffmpeg",
		OutputDir:  ".",
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clipper"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "clipper"), nil
}

// UserConfigPath returns the path to the config file.
func UserConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadUserConfig reads the config file and merges with defaults. A missing
// file is not an error.
func LoadUserConfig() (*UserConfig, error) {
	cfg := DefaultUserConfig()

	path, err := UserConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TimeoutString != "" {
		d, err := time.ParseDuration(cfg.TimeoutString)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout in %s: %w", path, err)
		}
		cfg.Timeout = d
	}
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = "ffmpeg"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}
