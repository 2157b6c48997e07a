// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the photo album server and its terminal
// client. Request and job scoped loggers travel in the context; use
// FromContext or FromRequest to get them back.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is the client log file name used when no path is given.
const DefaultClientLogFile = "photo-album.log"

// Logger embeds zerolog.Logger so the whole zerolog API stays available.
type Logger struct {
	zerolog.Logger
}

var setupGlobals sync.Once

// configure sets the package level zerolog options shared by every logger:
// debug level and a "func" caller field holding the function name.
func configure() {
	setupGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

func newLogger(out io.Writer, role string) *Logger {
	configure()
	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger returns a JSON logger writing to stdout. role ends up in every
// entry ("server", "migrations") so the streams can be told apart.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger for the terminal client. The TUI owns the
// terminal, so entries are appended to logPath instead. An empty logPath
// means DefaultClientLogFile next to the executable; when the file cannot be
// opened the output is discarded.
func NewClientLogger(role, logPath string) *Logger {
	return newLogger(openClientLog(logPath), role)
}

func openClientLog(logPath string) io.Writer {
	if logPath == "" {
		execPath, err := os.Executable()
		if err != nil {
			return io.Discard
		}
		logPath = filepath.Join(filepath.Dir(execPath), DefaultClientLogFile)
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can take extra fields without touching
// the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one zerolog hands
// back its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithContext attaches l to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}
