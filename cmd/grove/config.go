package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the content of grove.yaml. Command line flags override it.
type Config struct {
	LogLevel string `yaml:"log_level"`
	// Debug logs materialization statistics.
	Debug bool `yaml:"debug"`
	// Assets is the directory image references are resolved against.
	Assets string `yaml:"assets"`
	// Placeholders paints a checkerboard for images missing from Assets.
	Placeholders bool `yaml:"placeholders"`
	// Frames is the number of animation frames advanced before printing.
	Frames    int     `yaml:"frames"`
	FrameRate float64 `yaml:"frame_rate"`
	// Scene is the scene materialized when none is named on the command line.
	Scene string `yaml:"scene"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		Assets:    ".",
		FrameRate: 60,
		Scene:     "showcase",
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Frames < 0 {
		return nil, fmt.Errorf("config %s: frames must not be negative", path)
	}
	if cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("config %s: frame_rate must be positive", path)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// newLogger writes text records to w and standardizes the error key.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
