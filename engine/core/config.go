package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/grove-gles/engine/colors"
	"gopkg.in/yaml.v3"
)

// Policy selects how paint events turn into rendered frames.
type Policy string

const (
	// PolicyEvent renders on every paint event.
	PolicyEvent Policy = "event"
	// PolicyInterval drops paint events that arrive sooner than
	// Config.FrameInterval after the last rendered frame.
	PolicyInterval Policy = "interval"
)

const (
	DefaultFrameInterval = 16 * time.Millisecond
	MaxSamples           = 16
)

// Config for the application run.
type Config struct {
	Title         string        `yaml:"title"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	VSync         bool          `yaml:"vsync"`
	Samples       int           `yaml:"samples"`
	ClearColor    colors.Color  `yaml:"clear_color"`
	Policy        Policy        `yaml:"render_policy"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	ShaderDir     string        `yaml:"shader_dir"` // empty = embedded shaders
	LogLevel      string        `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Title:         "grove-gles",
		Width:         800,
		Height:        600,
		VSync:         true,
		Samples:       4,
		ClearColor:    colors.Sky,
		Policy:        PolicyEvent,
		FrameInterval: DefaultFrameInterval,
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 1 || c.Height < 1 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Samples < 0 || c.Samples > MaxSamples {
		errs = append(errs, fmt.Errorf("samples %d out of range [0, %d]", c.Samples, MaxSamples))
	}
	switch c.Policy {
	case PolicyEvent:
	case PolicyInterval:
		if c.FrameInterval <= 0 {
			errs = append(errs, fmt.Errorf("frame_interval must be positive with the %q policy", c.Policy))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown render_policy %q", c.Policy))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
