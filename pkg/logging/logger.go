// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package logging provides structured logging for evosat components.
//
// It is built on the standard library slog package with two
// destinations: stderr for CLI usage (text by default, JSON optional)
// and an optional JSON log file for machine processing.
//
// # Basic Usage
//
//	logger := logging.Default()
//	logger.Info("solve started", "problem", path, "pop_size", popSize)
//
// # File Logging
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelDebug,
//	    LogDir:  "~/.evosat/logs",
//	    Service: "solver",
//	})
//	defer logger.Close()
//
// Log files are named "{service}_{date}.log" and are always JSON.
//
// # Thread Safety
//
// Logger is safe for concurrent use.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN" or "ERROR".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures Logger behavior. The zero value logs Info and
// above to stderr in text format.
type Config struct {
	// Level is the minimum level; messages below it are discarded.
	Level Level

	// LogDir, when set, enables JSON file logging alongside stderr.
	// Supports ~ expansion. The directory is created if missing.
	LogDir string

	// Service is attached to every entry as the "service" attribute
	// and used in the log file name.
	Service string

	// JSON switches stderr output to JSON format.
	JSON bool

	// Quiet disables stderr output entirely.
	Quiet bool
}

// Logger is a structured logger with optional file output.
type Logger struct {
	slog *slog.Logger
	file *os.File
}

// New creates a Logger from config. Call Close when done if LogDir is
// set, so the file handle is released.
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}

	var handlers []slog.Handler
	if !config.Quiet {
		if config.JSON {
			handlers = append(handlers, slog.NewJSONHandler(os.Stderr, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))
		}
	}

	var file *os.File
	if config.LogDir != "" {
		dir := expandPath(config.LogDir)
		if err := os.MkdirAll(dir, 0o750); err == nil {
			name := fmt.Sprintf("%s_%s.log", orDefault(config.Service, "evosat"), time.Now().Format("2006-01-02"))
			f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
			if err == nil {
				file = f
				handlers = append(handlers, slog.NewJSONHandler(f, opts))
			}
		}
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 4})
	case 1:
		handler = handlers[0]
	default:
		handler = multiHandler(handlers)
	}

	sl := slog.New(handler)
	if config.Service != "" {
		sl = sl.With("service", config.Service)
	}
	return &Logger{slog: sl, file: file}
}

// Default returns a stderr-only logger at Info level.
func Default() *Logger {
	return New(Config{})
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a child logger carrying extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), file: nil}
}

// Slog exposes the underlying slog.Logger for libraries that want one.
func (l *Logger) Slog() *slog.Logger { return l.slog }

// Close releases the log file, if any. Child loggers from With do not
// own the file and close to a no-op.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// multiHandler fans a record out to every destination.
type multiHandler []slog.Handler

func (h multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sub := range h {
		if sub.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, sub := range h {
		if sub.Enabled(ctx, r.Level) {
			if err := sub.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (h multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(h))
	for i, sub := range h {
		out[i] = sub.WithAttrs(attrs)
	}
	return out
}

func (h multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(h))
	for i, sub := range h {
		out[i] = sub.WithGroup(name)
	}
	return out
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
