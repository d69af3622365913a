// Package logging builds the process-wide slog logger from service
// configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Level names a logging severity threshold.
type Level string

// Supported levels.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects the log output encoding: text for interactive use, JSON
// for ingestion pipelines.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// LevelInfo maps to slog's zero level, so an unvalidated Level falls
// back to info rather than debug.
var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// Env maps environment variable names for logging configuration.
type Env struct {
	Level  string
	Format string
}

// Config holds logging configuration settings.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize applies defaults, loads environment overrides, and validates
// the configuration.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
	}

	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func (c *Config) validate() error {
	if _, ok := slogLevels[c.Level]; !ok {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Format)
	}
	return nil
}

// New creates the process logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return slog.New(Handler(cfg, os.Stdout))
}

// Handler builds a slog handler for the configured level and format,
// writing to w.
func Handler(cfg *Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: slogLevels[cfg.Level]}

	if cfg.Format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
