// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"io"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const rotationDateLayout = "2006-01-02"

// newRotatingWriter builds a file writer that rotates on whichever comes
// first: the size threshold (lumberjack) or a calendar day boundary
// (dailyWriter). Rotated files carry the rotation timestamp in their name,
// are compressed, and are pruned once older than the retention window.
func newRotatingWriter(path string, maxSizeMB, maxAgeDays int) io.Writer {
	return &dailyWriter{
		lj: &lumberjack.Logger{
			Filename: path,
			MaxSize:  maxSizeMB,
			MaxAge:   maxAgeDays,
			Compress: true,
		},
		now: time.Now,
	}
}

// dailyWriter forces a rotation when the calendar day of a write differs
// from the previous write's day. Size-based rotation stays entirely inside
// lumberjack.
type dailyWriter struct {
	mu  sync.Mutex
	lj  *lumberjack.Logger
	now func() time.Time
	day string
}

func (d *dailyWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	today := d.now().Format(rotationDateLayout)
	if d.day != "" && d.day != today {
		// Rotation failure must not lose the record; fall through to write
		// into whatever file is active.
		_ = d.lj.Rotate()
	}
	d.day = today

	return d.lj.Write(p)
}
