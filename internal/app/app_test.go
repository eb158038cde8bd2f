package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/five82/flipbook/internal/config"
	"github.com/five82/flipbook/internal/input"
)

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("book = \"/tmp/a.yaml\"\ninput_strategy = \"wheel\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(Options{ConfigPath: path, BookPath: "/tmp/b.toml", Strategy: "scroll"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BookPath != "/tmp/b.toml" {
		t.Fatalf("BookPath = %q, want /tmp/b.toml", cfg.BookPath)
	}
	if cfg.Strategy != input.StrategyScroll {
		t.Fatalf("Strategy = %v, want scroll", cfg.Strategy)
	}
}

func TestLoadConfigRejectsUnknownStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := loadConfig(Options{ConfigPath: path, Strategy: "sideways"})
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestBuildModelWithDemoBook(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")

	if _, err := buildModel(config.Default(), prefsPath, zap.NewNop()); err != nil {
		t.Fatalf("buildModel: %v", err)
	}
}

func TestBuildModelMissingBook(t *testing.T) {
	cfg := config.Default()
	cfg.BookPath = filepath.Join(t.TempDir(), "nope.yaml")

	if _, err := buildModel(cfg, filepath.Join(t.TempDir(), "prefs.toml"), zap.NewNop()); err == nil {
		t.Fatal("expected error for missing book")
	}
}
