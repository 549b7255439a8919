package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hubastard/grove-gles/engine/colors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Fatalf("default size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadConfig_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	body := strings.Join([]string{
		"title: demo",
		"samples: 1",
		"render_policy: interval",
		"frame_interval: 33ms",
		"clear_color: \"#000000\"",
		"log_level: debug",
		"",
	}, "\n")
	cfg, err := LoadConfig(writeConfig(t, body))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Title != "demo" || cfg.Samples != 1 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Policy != PolicyInterval || cfg.FrameInterval != 33*time.Millisecond {
		t.Fatalf("policy = %q interval = %v", cfg.Policy, cfg.FrameInterval)
	}
	if cfg.ClearColor != colors.Black {
		t.Fatalf("clear color = %v", cfg.ClearColor)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Fatalf("level = %v", l)
	}
	// Untouched keys keep their defaults.
	if cfg.Width != 800 || !cfg.VSync {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "fullscreen: true\n")); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative samples", func(c *Config) { c.Samples = -1 }},
		{"too many samples", func(c *Config) { c.Samples = 64 }},
		{"unknown policy", func(c *Config) { c.Policy = "vsync" }},
		{"interval without duration", func(c *Config) { c.Policy = PolicyInterval; c.FrameInterval = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
