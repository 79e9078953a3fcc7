// Package logging builds the zerolog loggers used by the command-line
// tools.
package logging

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidLevel  = errors.New("log level must be debug, info, warn, or error")
	ErrInvalidFormat = errors.New("log format must be 'json' or 'console'")
)

// Config selects the level and output format.
type Config struct {
	Level     string
	Format    string
	Component string
	Output    io.Writer
}

// DefaultConfig logs info and above to stdout in console format.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stdout,
	}
}

// ParseLevel maps a config level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, ErrInvalidLevel
	}
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	if c.Format != "json" && c.Format != "console" {
		return ErrInvalidFormat
	}
	return nil
}

// New builds a logger from cfg.
func New(cfg Config) (zerolog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	level, _ := ParseLevel(cfg.Level)

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.Component != "" {
		ctx = ctx.Str("component", cfg.Component)
	}
	return ctx.Logger(), nil
}
