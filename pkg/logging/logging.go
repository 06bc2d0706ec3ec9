// Package logging turns a Config into an *slog.Logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrInvalid reports a level or format outside the supported set.
var ErrInvalid = errors.New("invalid logging setting")

// Level is a severity name as written in config files and the environment.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// Validate rejects names missing from the level table.
func (l Level) Validate() error {
	if _, ok := slogLevels[l]; !ok {
		return fmt.Errorf("%w: level %q", ErrInvalid, string(l))
	}
	return nil
}

// ToSlogLevel falls back to slog.LevelInfo for unknown names.
func (l Level) ToSlogLevel() slog.Level {
	if sl, ok := slogLevels[l]; ok {
		return sl
	}
	return slog.LevelInfo
}

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var handlers = map[Format]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	FormatText: func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) },
	FormatJSON: func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) },
}

func (f Format) Validate() error {
	if _, ok := handlers[f]; !ok {
		return fmt.Errorf("%w: format %q", ErrInvalid, string(f))
	}
	return nil
}

// normalize lowercases and trims so "DEBUG " and "debug" name the same level.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// New logs to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter logs to w. Debug loggers also record the call site.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := cfg.Level.ToSlogLevel()
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	build, ok := handlers[cfg.Format]
	if !ok {
		build = handlers[FormatText]
	}
	return slog.New(build(w, opts))
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
