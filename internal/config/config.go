// Package config resolves server settings from defaults, an optional
// booth.yaml and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/youruser/photobooth/internal/fonts"
	imagepkg "github.com/youruser/photobooth/internal/image"
)

// FileName is the optional config file looked up in the working directory.
const FileName = "booth.yaml"

// Config represents booth.yaml.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Render RenderConfig `yaml:"render"`
	Paths  PathsConfig  `yaml:"paths"`
	Fonts  FontsConfig  `yaml:"fonts"`
}

// ServerConfig contains HTTP settings.
type ServerConfig struct {
	Port string `yaml:"port,omitempty"`
	// MaxPoses caps the composites rendered for one sheet request.
	MaxPoses int `yaml:"max_poses,omitempty"`
	// FetchTimeout bounds each remote image download, e.g. "15s".
	FetchTimeout string `yaml:"fetch_timeout,omitempty"`
}

// RenderConfig contains output defaults.
type RenderConfig struct {
	JPEGQuality int    `yaml:"jpeg_quality,omitempty"`
	Location    string `yaml:"location,omitempty"`
}

// PathsConfig contains filesystem locations.
type PathsConfig struct {
	Presets string `yaml:"presets,omitempty"`
	Out     string `yaml:"out,omitempty"`
}

// FontsConfig maps font styles to TTF/OTF files replacing the embedded Go fonts.
type FontsConfig struct {
	Regular    string `yaml:"regular,omitempty"`
	Bold       string `yaml:"bold,omitempty"`
	Italic     string `yaml:"italic,omitempty"`
	BoldItalic string `yaml:"bold_italic,omitempty"`
	Mono       string `yaml:"mono,omitempty"`
	// Emoji should be an outline (non-colour) emoji font for text stickers.
	Emoji string `yaml:"emoji,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080", MaxPoses: 10, FetchTimeout: "15s"},
		Render: RenderConfig{JPEGQuality: imagepkg.DefaultJPEGQuality, Location: "TOKYO"},
		Paths:  PathsConfig{Presets: "data", Out: "out"},
	}
}

// LoadOptional overlays dir/booth.yaml, if present, on the defaults.
func LoadOptional(dir string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return cfg, nil
}

// Load reads booth.yaml from dir, applies PORT, BOOTH_PRESETS and
// BOOTH_OUT from the environment and validates the result.
func Load(dir string) (*Config, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	for env, dst := range map[string]*string{
		"PORT":          &cfg.Server.Port,
		"BOOTH_PRESETS": &cfg.Paths.Presets,
		"BOOTH_OUT":     &cfg.Paths.Out,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.MaxPoses < 1 {
		return fmt.Errorf("server.max_poses must be positive, got %d", c.Server.MaxPoses)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if q := c.Render.JPEGQuality; q < 1 || q > 100 {
		return fmt.Errorf("render.jpeg_quality must be in 1..100, got %d", q)
	}
	return nil
}

// Timeout parses Server.FetchTimeout; empty means no per-download limit.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Server.FetchTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Server.FetchTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid server.fetch_timeout: %w", err)
	}
	return d, nil
}

// FontOverrides returns the configured font files keyed by style.
func (c *Config) FontOverrides() map[fonts.Style]string {
	out := map[fonts.Style]string{}
	for style, path := range map[fonts.Style]string{
		fonts.Regular:    c.Fonts.Regular,
		fonts.Bold:       c.Fonts.Bold,
		fonts.Italic:     c.Fonts.Italic,
		fonts.BoldItalic: c.Fonts.BoldItalic,
		fonts.Mono:       c.Fonts.Mono,
		fonts.Emoji:      c.Fonts.Emoji,
	} {
		if path != "" {
			out[style] = path
		}
	}
	return out
}
