// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

// assertFileContains reads path and asserts the substring is present.
func assertFileContains(t *testing.T, path, substring string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), substring)
}

func assertFileNotContains(t *testing.T, path, substring string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), substring)
}

func newTestDailyWriter(t *testing.T, dir string) (*dailyWriter, *time.Time) {
	t.Helper()
	clock := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	w := &dailyWriter{
		lj: &lumberjack.Logger{
			Filename: filepath.Join(dir, "app.log"),
			MaxSize:  1,
		},
		now: func() time.Time { return clock },
	}
	return w, &clock
}

func TestDailyWriter_SameDayNoRotation(t *testing.T) {
	dir := t.TempDir()
	w, _ := newTestDailyWriter(t, dir)

	_, err := w.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assertFileContains(t, filepath.Join(dir, "app.log"), "first")
	assertFileContains(t, filepath.Join(dir, "app.log"), "second")
}

func TestDailyWriter_RotatesAcrossMidnight(t *testing.T) {
	dir := t.TempDir()
	w, clock := newTestDailyWriter(t, dir)

	_, err := w.Write([]byte("yesterday\n"))
	require.NoError(t, err)

	*clock = clock.Add(2 * time.Minute) // crosses 2026-03-14 → 2026-03-15

	_, err = w.Write([]byte("today\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "expected the rotated file next to the active one")

	// active file holds only the post-rotation record
	assertFileContains(t, filepath.Join(dir, "app.log"), "today")
	assertFileNotContains(t, filepath.Join(dir, "app.log"), "yesterday")

	var rotated string
	for _, e := range entries {
		if e.Name() != "app.log" {
			rotated = e.Name()
		}
	}
	require.NotEmpty(t, rotated)
	assert.True(t, strings.HasPrefix(rotated, "app-"), "rotated name keeps base name and date: %s", rotated)
	assertFileContains(t, filepath.Join(dir, rotated), "yesterday")
}

func TestNewRotatingWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	w := newRotatingWriter(filepath.Join(dir, "app.log"), 1, 1)

	_, err := w.Write([]byte("hello\n"))
	require.NoError(t, err)

	assertFileContains(t, filepath.Join(dir, "app.log"), "hello")
}
