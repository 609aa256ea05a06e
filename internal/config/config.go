// Package config loads the embedded profile document and the environment
// overrides that tune logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"portfolio/internal/assets"
)

var ErrInvalidConfig = errors.New("invalid config")

// Theme modes accepted by style.theme.
const (
	ThemeDark   = "dark"
	ThemeLight  = "light"
	ThemeSystem = "system"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Profile ProfileConfig `yaml:"profile"`
	Style   StyleConfig   `yaml:"style"`
	Log     LogConfig     `yaml:"log"`
}

type AppConfig struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	CanvasID     string `yaml:"canvas_id"`
}

type ProfileConfig struct {
	Owner string `yaml:"owner"`
}

type StyleConfig struct {
	Font        string  `yaml:"font"`
	HeadingSize float32 `yaml:"heading_size"`
	NameSize    float32 `yaml:"name_size"`
	GlyphSize   float32 `yaml:"glyph_size"`
	BarSpacing  float32 `yaml:"bar_spacing"`
	Theme       string  `yaml:"theme"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Load parses the embedded profile and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := Parse(assets.Profile())
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

// Parse decodes and validates a profile document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.App.Title == "":
		return fmt.Errorf("%w: app.title is empty", ErrInvalidConfig)
	case c.App.ID == "":
		return fmt.Errorf("%w: app.id is empty", ErrInvalidConfig)
	case c.App.WindowWidth <= 0 || c.App.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.App.WindowWidth, c.App.WindowHeight)
	case c.Profile.Owner == "":
		return fmt.Errorf("%w: profile.owner is empty", ErrInvalidConfig)
	case c.Style.Font == "":
		return fmt.Errorf("%w: style.font is empty", ErrInvalidConfig)
	case c.Style.HeadingSize <= 0 || c.Style.NameSize <= 0 || c.Style.GlyphSize <= 0:
		return fmt.Errorf("%w: text sizes must be positive", ErrInvalidConfig)
	case c.Style.BarSpacing < 0:
		return fmt.Errorf("%w: style.bar_spacing is negative", ErrInvalidConfig)
	}

	switch c.Style.Theme {
	case ThemeDark, ThemeLight, ThemeSystem:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Style.Theme)
	}
	return nil
}

// applyEnv lets PORTFOLIO_LOG_LEVEL, DEBUG=1 and PORTFOLIO_JSON_LOGS
// override the log section.
func (c *Config) applyEnv(getenv func(string) string) {
	if level := getenv("PORTFOLIO_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	} else if getenv("DEBUG") == "1" {
		c.Log.Level = "debug"
	}

	if getenv("PORTFOLIO_JSON_LOGS") == "true" {
		c.Log.JSON = true
	}
}
