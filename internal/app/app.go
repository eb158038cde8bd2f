package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/flipbook/internal/config"
	"github.com/five82/flipbook/internal/input"
	"github.com/five82/flipbook/internal/inventory"
	"github.com/five82/flipbook/internal/logging"
	"github.com/five82/flipbook/internal/prefs"
	"github.com/five82/flipbook/internal/state"
	"github.com/five82/flipbook/internal/touch"
	"github.com/five82/flipbook/internal/ui"
)

// Options configure the flipbook application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/flipbook/prefs.toml
	BookPath   string // overrides the config's book
	Strategy   string // overrides the config's input_strategy
}

// Run boots the flipbook TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	defer func() { _ = logger.Sync() }()

	model, err := buildModel(cfg, opts.PrefsPath, logger)
	if err != nil {
		return err
	}

	program := ui.NewProgram(ctx, model)
	if cfg.TouchDevice != "" {
		open := func() (touchSource, error) {
			r, err := touch.Open(cfg.TouchDevice, 1)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
		StartTouchPump(ctx, open, program.Send, logger.Named("touch"))
	}

	logger.Info("flipbook started",
		zap.String("book", cfg.BookPath),
		zap.Stringer("strategy", cfg.Strategy),
		zap.Bool("scroll_sync", cfg.ScrollSync))

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.BookPath != "" {
		cfg.BookPath = opts.BookPath
	}
	if opts.Strategy != "" {
		strategy, err := input.ParseStrategy(opts.Strategy)
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: %v", config.ErrInvalid, err)
		}
		cfg.Strategy = strategy
	}
	return cfg, nil
}

// buildModel loads the book and wires store, controller and UI together.
func buildModel(cfg config.Config, prefsPath string, logger *zap.Logger) (ui.Model, error) {
	b, err := inventory.Load(cfg.BookPath)
	if err != nil {
		return ui.Model{}, fmt.Errorf("load book: %w", err)
	}
	store, err := state.NewStore(b.PageCount())
	if err != nil {
		return ui.Model{}, fmt.Errorf("init state: %w", err)
	}

	model, err := ui.New(ui.Options{
		Book:      b,
		Store:     store,
		Config:    cfg,
		Prefs:     prefs.Load(prefsPath),
		PrefsPath: prefsPath,
		Logger:    logger,
	})
	if err != nil {
		return ui.Model{}, fmt.Errorf("init ui: %w", err)
	}
	return model, nil
}
