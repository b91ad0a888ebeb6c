// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with
// environment-driven sink composition, sensitive-field redaction, and
// rotating file output.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment names. Kept as plain strings so this package does not depend
// on the config package; cmd/server passes config values through verbatim.
const (
	envDevelopment = "development"
	envProduction  = "production"
	envTest        = "test"
)

// Config carries everything sink composition needs. Field values come
// straight from the process configuration.
type Config struct {
	// Env selects the sink set: development, production or test.
	Env string

	// Level is the minimum level for console sinks ("debug".."error").
	Level string

	// Dir is the directory rotating log files are written to.
	Dir string

	// Pretty enables the human-readable console sink in development.
	Pretty bool

	// MaxSizeMB is the size threshold for rotating the active log file.
	MaxSizeMB int

	// MaxAgeDays is the retention window for rotated files.
	MaxAgeDays int

	// LogQueries forces query tracing on outside the test environment.
	LogQueries bool
}

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs the main application *Logger for the given role label
// (e.g. "server") with sinks composed from cfg:
//
//   - test: all output discarded;
//   - development: optional pretty console at cfg.Level, a rotating
//     <dir>/app.log capturing everything down to debug, and a rotating
//     <dir>/error.log receiving errors only;
//   - production: JSON to stdout at info, plus the same two rotating files
//     at info/error with age-based pruning and compression of rotated files.
//
// Every sink sits behind the redaction layer: sensitive fields never reach
// any output in clear form.
func New(role string, cfg Config) *Logger {
	if cfg.Env == envTest {
		return Nop()
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(composeSinks(cfg, sinksFor(cfg))).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewQueryLogger constructs the persistence-layer query tracing logger.
//
// Tracing is off in test always, and off in production unless cfg.LogQueries
// explicitly forces it on. When active it emits debug records into a rotating
// <dir>/query.log, plus the pretty console when cfg.Pretty is set,
// independent of the main request logger.
func NewQueryLogger(cfg Config) *Logger {
	if cfg.Env == envTest {
		return Nop()
	}
	if cfg.Env == envProduction && !cfg.LogQueries {
		return Nop()
	}

	sinks := []sinkConfig{
		{kind: sinkRotatingFile, minLevel: zerolog.DebugLevel, filename: "query.log"},
	}
	if cfg.Pretty {
		sinks = append(sinks, sinkConfig{kind: sinkConsolePretty, minLevel: zerolog.DebugLevel})
	}

	logger := zerolog.New(composeSinks(cfg, sinks)).With().
		Str("context", "query").
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Bootstrap returns a stderr console logger for use before the configuration
// is loaded (configuration failures themselves have to be reported somewhere).
func Bootstrap() *Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is used for the test environment and in unit tests where logging would
// produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP handlers after middleware has attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
