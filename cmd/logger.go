package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/labstack/gommon/log"
)

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("service", "logistics"), nil
}

// Level parses LOG_LEVEL.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

// EchoLogLevel maps a slog level onto echo's gommon logger levels.
func EchoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
