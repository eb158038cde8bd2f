package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/flipbook/internal/input"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config captures the flipbook runtime settings.
type Config struct {
	BookPath           string
	TransitionDuration time.Duration
	TouchMinDistance   float64
	TouchMinDuration   time.Duration
	TouchMaxDuration   time.Duration
	Strategy           input.Strategy
	ScrollSync         bool
	CellHeight         float64
	TouchDevice        string
	LogFile            string
	LogLevel           string
}

const (
	defaultConfigPath   = "~/.config/flipbook/config.toml"
	defaultTransitionMs = 600
	defaultCellHeightPx = 16
	defaultLogLevel     = "info"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TransitionDuration: defaultTransitionMs * time.Millisecond,
		TouchMinDistance:   input.DefaultTouchMinDistance,
		TouchMinDuration:   input.DefaultTouchMinDuration,
		TouchMaxDuration:   input.DefaultTouchMaxDuration,
		Strategy:           input.StrategyWheel,
		ScrollSync:         true,
		CellHeight:         defaultCellHeightPx,
		LogLevel:           defaultLogLevel,
	}
}

type rawConfig struct {
	Book               *string  `toml:"book"`
	TransitionMs       *int     `toml:"transition_ms"`
	TouchMinDistancePx *float64 `toml:"touch_min_distance_px"`
	TouchMinMs         *int     `toml:"touch_min_ms"`
	TouchMaxMs         *int     `toml:"touch_max_ms"`
	InputStrategy      *string  `toml:"input_strategy"`
	ScrollSync         *bool    `toml:"scroll_sync"`
	CellHeightPx       *float64 `toml:"cell_height_px"`
	TouchDevice        *string  `toml:"touch_device"`
	LogFile            *string  `toml:"log_file"`
	LogLevel           *string  `toml:"log_level"`
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.apply(raw); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(raw rawConfig) error {
	if raw.Book != nil {
		c.BookPath = mustExpand(*raw.Book)
	}
	if raw.TransitionMs != nil {
		c.TransitionDuration = time.Duration(*raw.TransitionMs) * time.Millisecond
	}
	if raw.TouchMinDistancePx != nil {
		c.TouchMinDistance = *raw.TouchMinDistancePx
	}
	if raw.TouchMinMs != nil {
		c.TouchMinDuration = time.Duration(*raw.TouchMinMs) * time.Millisecond
	}
	if raw.TouchMaxMs != nil {
		c.TouchMaxDuration = time.Duration(*raw.TouchMaxMs) * time.Millisecond
	}
	if raw.InputStrategy != nil {
		strategy, err := input.ParseStrategy(*raw.InputStrategy)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		c.Strategy = strategy
	}
	if raw.ScrollSync != nil {
		c.ScrollSync = *raw.ScrollSync
	}
	if raw.CellHeightPx != nil {
		c.CellHeight = *raw.CellHeightPx
	}
	if raw.TouchDevice != nil {
		c.TouchDevice = strings.TrimSpace(*raw.TouchDevice)
	}
	if raw.LogFile != nil {
		c.LogFile = mustExpand(*raw.LogFile)
	}
	if raw.LogLevel != nil {
		if level := strings.TrimSpace(*raw.LogLevel); level != "" {
			c.LogLevel = level
		}
	}
	return nil
}

// Validate checks the timing and gesture settings.
func (c Config) Validate() error {
	switch {
	case c.TransitionDuration <= 0:
		return fmt.Errorf("%w: transition_ms must be positive", ErrInvalid)
	case c.TouchMinDistance <= 0:
		return fmt.Errorf("%w: touch_min_distance_px must be positive", ErrInvalid)
	case c.TouchMinDuration <= 0:
		return fmt.Errorf("%w: touch_min_ms must be positive", ErrInvalid)
	case c.TouchMaxDuration <= c.TouchMinDuration:
		return fmt.Errorf("%w: touch_max_ms must exceed touch_min_ms", ErrInvalid)
	case c.CellHeight <= 0:
		return fmt.Errorf("%w: cell_height_px must be positive", ErrInvalid)
	}
	return nil
}

// NormalizerOptions returns the input settings.
func (c Config) NormalizerOptions() input.Options {
	return input.Options{
		Strategy:         c.Strategy,
		TouchMinDistance: c.TouchMinDistance,
		TouchMinDuration: c.TouchMinDuration,
		TouchMaxDuration: c.TouchMaxDuration,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
