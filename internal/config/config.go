package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultFolder  string   `koanf:"default_folder"`
	LibrarySources []string `koanf:"library_sources"` // folders scanned at startup
	IconStyle      string   `koanf:"icon_style"`      // "nerd", "unicode", "none"

	Visualizer VisualizerConfig `koanf:"visualizer"`

	// Spotify metadata enrichment (enabled when both credentials are set)
	Spotify SpotifyConfig `koanf:"spotify"`
}

// VisualizerConfig holds visualizer tuning knobs.
type VisualizerConfig struct {
	Style   string `koanf:"style"`    // "spectrum", "waveform", "vu", "bars"
	FFTSize int    `koanf:"fft_size"` // power of two, 1024-4096
	Bands   int    `koanf:"bands"`    // spectrum display buckets
	FPS     int    `koanf:"fps"`      // render rate, 30-60
}

// SpotifyConfig holds Spotify Web API credentials for metadata lookup.
type SpotifyConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in default_folder
	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	// Expand ~ in library_sources
	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/muker/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "muker", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasSpotifyConfig returns true if Spotify enrichment is configured.
func (c *Config) HasSpotifyConfig() bool {
	return c.Spotify.ClientID != "" && c.Spotify.ClientSecret != ""
}

// GetVisualizerConfig returns the visualizer configuration with defaults applied.
func (c *Config) GetVisualizerConfig() VisualizerConfig {
	cfg := c.Visualizer

	if cfg.Style == "" {
		cfg.Style = "spectrum"
	}
	if cfg.FFTSize < 1024 || cfg.FFTSize > 4096 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		cfg.FFTSize = 2048
	}
	if cfg.Bands <= 0 || cfg.Bands > 64 {
		cfg.Bands = 32
	}
	if cfg.FPS < 30 || cfg.FPS > 60 {
		cfg.FPS = 30
	}

	return cfg
}
