// Package config loads CLI defaults from TOML files.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/erraggy/slashfmt/pattern"
	"github.com/erraggy/slashfmt/slasherrors"
)

// Output format names accepted by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds CLI defaults.
type Config struct {
	Pattern string `koanf:"pattern"` // default pattern for "format" when -p is absent
	Strict  bool   `koanf:"strict"`  // validate patterns with strict rules
	Output  string `koanf:"output"`  // "text", "json" or "yaml"
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{Output: OutputText}
}

// Load reads the default config file locations.
func Load() (*Config, error) {
	return LoadFiles(Paths()...)
}

// LoadFiles loads the given TOML files in order; later files win. Missing
// files are skipped. An invalid output value falls back to text with a
// warning; an invalid default pattern is an error.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, &slasherrors.ConfigError{Option: path, Message: "loading config file", Cause: err}
		}
		slog.Debug("loaded config file", "path", path)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, &slasherrors.ConfigError{Message: "decoding config", Cause: err}
	}

	if !IsValidOutput(cfg.Output) {
		slog.Warn("invalid output format in config, using default", "value", cfg.Output, "default", OutputText)
		cfg.Output = OutputText
	}

	if cfg.Pattern != "" {
		if err := cfg.ValidatePattern(cfg.Pattern); err != nil {
			return nil, &slasherrors.ConfigError{Option: "pattern", Value: cfg.Pattern, Cause: err}
		}
	}

	return cfg, nil
}

// Paths returns the config file locations in priority order (last wins).
func Paths() []string {
	paths := []string{}

	// 1. ~/.config/slashfmt/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "slashfmt", "config.toml"))
	}

	// 2. ./.slashfmt.toml (pwd, highest priority)
	paths = append(paths, ".slashfmt.toml")

	return paths
}

// IsValidOutput reports whether s names a supported output format.
// The empty string counts as text.
func IsValidOutput(s string) bool {
	switch s {
	case "", OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// ValidatePattern checks p under the configured strictness.
func (c *Config) ValidatePattern(p string) error {
	if c.Strict {
		return pattern.ValidateStrict(p)
	}
	_, err := pattern.Parse(p)
	return err
}
