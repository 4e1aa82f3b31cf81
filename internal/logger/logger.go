package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"photolicense-cli/internal/config"

	"github.com/rs/zerolog"
)

type Options struct {
	Level  zerolog.Level
	Format string // json|console
	Output io.Writer
}

// New builds the application logger. A nil Output discards everything.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		return zerolog.Nop()
	}
	if opts.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(out).
		With().
		Timestamp().
		Str("app", "photolicense").
		Logger().
		Level(opts.Level)
}

func ParseLevel(value string) zerolog.Level {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(value); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.InfoLevel
}

// FromConfig opens the configured log file (append mode) and returns a logger
// writing to it, plus a closer. The TUI owns the terminal, so without a log file
// the logger is a no-op.
func FromConfig(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	if cfg == nil || strings.TrimSpace(cfg.LogFile) == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	f, err := os.OpenFile(strings.TrimSpace(cfg.LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	l := New(Options{Level: ParseLevel(cfg.LogLevel), Format: cfg.LogFormat, Output: f})
	return l, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
