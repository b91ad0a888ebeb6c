// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// sinkKind enumerates the output targets a logger can be composed from.
type sinkKind int

const (
	// sinkStdoutJSON writes raw JSON lines to standard output.
	sinkStdoutJSON sinkKind = iota

	// sinkConsolePretty writes colorized human-readable lines to stdout.
	sinkConsolePretty

	// sinkRotatingFile writes JSON lines to a size- and day-rotated file
	// under Config.Dir.
	sinkRotatingFile
)

// sinkConfig describes one output target: where records go and the minimum
// level that reaches it.
type sinkConfig struct {
	kind     sinkKind
	minLevel zerolog.Level
	filename string // rotating file sinks only
}

// sinksFor maps an environment to its sink list. All three environments go
// through this single table so their behaviour cannot drift apart.
func sinksFor(cfg Config) []sinkConfig {
	switch cfg.Env {
	case envTest:
		return nil

	case envProduction:
		return []sinkConfig{
			{kind: sinkStdoutJSON, minLevel: zerolog.InfoLevel},
			{kind: sinkRotatingFile, minLevel: zerolog.InfoLevel, filename: "app.log"},
			{kind: sinkRotatingFile, minLevel: zerolog.ErrorLevel, filename: "error.log"},
		}

	default: // development
		sinks := make([]sinkConfig, 0, 3)
		if cfg.Pretty {
			sinks = append(sinks, sinkConfig{kind: sinkConsolePretty, minLevel: consoleLevel(cfg)})
		}
		sinks = append(sinks,
			sinkConfig{kind: sinkRotatingFile, minLevel: zerolog.DebugLevel, filename: "app.log"},
			sinkConfig{kind: sinkRotatingFile, minLevel: zerolog.ErrorLevel, filename: "error.log"},
		)
		return sinks
	}
}

// composeSinks builds the final zerolog writer: every sink wrapped with its
// level filter, combined, and placed behind the redaction layer so no sink
// can ever receive an unredacted record.
func composeSinks(cfg Config, sinks []sinkConfig) zerolog.LevelWriter {
	writers := make([]io.Writer, 0, len(sinks))
	for _, s := range sinks {
		var w io.Writer
		switch s.kind {
		case sinkConsolePretty:
			w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		case sinkRotatingFile:
			w = newRotatingWriter(filepath.Join(cfg.Dir, s.filename), cfg.MaxSizeMB, cfg.MaxAgeDays)
		default:
			w = os.Stdout
		}
		writers = append(writers, &leveledWriter{w: w, min: s.minLevel})
	}

	if len(writers) == 0 {
		return redactWriter{next: levelWriterAdapter{io.Discard}}
	}

	return redactWriter{next: zerolog.MultiLevelWriter(writers...)}
}

// consoleLevel parses Config.Level, falling back to debug on garbage input.
// Validation rejects unknown levels at boot, so the fallback only matters
// for hand-constructed configs in tests.
func consoleLevel(cfg Config) zerolog.Level {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.DebugLevel
	}
	return lvl
}

// leveledWriter drops records below its minimum level and forwards the rest.
// NoLevel records (logger.Log()) always pass.
type leveledWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (w *leveledWriter) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

func (w *leveledWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level != zerolog.NoLevel && level < w.min {
		return len(p), nil
	}
	return w.w.Write(p)
}

// levelWriterAdapter lets a plain io.Writer satisfy zerolog.LevelWriter.
type levelWriterAdapter struct {
	io.Writer
}

func (a levelWriterAdapter) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	return a.Write(p)
}
