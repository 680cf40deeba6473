// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-user-directory client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain scoped loggers
// via GetChildLogger or FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFileName is the file created next to the executable when no log
// path is configured.
const DefaultLogFileName = "logs"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     instead of the default file:line format.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	configureCaller()

	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger for the interactive client. The
// terminal is owned by the UI, so entries are appended to path instead of
// stdout. An empty path resolves to [DefaultLogFileName] next to the
// executable, or in the working directory when the executable cannot be
// located. If the file cannot be opened the logger falls back to stderr.
// Each fallback is recorded as the first entry of the new logger.
//
// level is parsed with zerolog.ParseLevel; an empty or unknown value keeps
// the Debug level.
//
// The returned close func releases the log file and must be called once the
// logger is no longer used.
func NewClientLogger(role, path, level string) (*Logger, func() error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	configureCaller()

	var warnings []string
	if path == "" {
		var resolveErr error
		path, resolveErr = defaultLogPath()
		if resolveErr != nil {
			warnings = append(warnings, fmt.Sprintf("executable path unknown (%v), logging to %s", resolveErr, path))
		}
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		l := newLogger(os.Stderr, role)
		for _, w := range warnings {
			l.Warn().Msg(w)
		}
		l.Warn().Err(err).Str("path", path).Msg("log file unavailable, logging to stderr")
		return l, func() error { return nil }
	}

	l := newLogger(logFile, role)
	for _, w := range warnings {
		l.Warn().Msg(w)
	}
	return l, logFile.Close
}

// executable is swapped in tests.
var executable = os.Executable

func defaultLogPath() (string, error) {
	execPath, err := executable()
	if err != nil {
		return DefaultLogFileName, err
	}
	return filepath.Join(filepath.Dir(execPath), DefaultLogFileName), nil
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func configureCaller() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches the logger to ctx so it can be recovered with
// FromContext further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
