package launch

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeLaunchable drops a harmless executable file into a temp dir and
// returns its path.
func writeLaunchable(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		path := filepath.Join(dir, "noop.bat")
		require.NoError(t, os.WriteFile(path, []byte("@echo off\r\nexit /b 0\r\n"), 0o644))
		return path
	}
	path := filepath.Join(dir, "noop.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

func TestSingleEmptyPath(t *testing.T) {
	l := New(nil)
	err := l.Single("", "", "")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestSingleNotFound(t *testing.T) {
	l := New(nil)
	err := l.Single(filepath.Join(t.TempDir(), "ghost.exe"), "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSingleLaunches(t *testing.T) {
	l := New(nil)
	err := l.Single(writeLaunchable(t), "", "")
	assert.NoError(t, err)
}

func TestSingleWithArgumentsAndWorkingDir(t *testing.T) {
	l := New(nil)
	dir := t.TempDir()
	err := l.Single(writeLaunchable(t), "--flag value", dir)
	assert.NoError(t, err)
}

func TestSingleBadWorkingDirFallsBack(t *testing.T) {
	l := New(nil)
	// Nonexistent working dir falls back to the executable's directory.
	err := l.Single(writeLaunchable(t), "", filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
}

func TestMultipleEmpty(t *testing.T) {
	l := New(nil)
	progressCalls := 0
	results := l.Multiple(nil, 0, func(current, total int, name string) {
		progressCalls++
	})
	assert.Empty(t, results)
	assert.Zero(t, progressCalls)
}

func TestMultipleOrderAndContinueOnError(t *testing.T) {
	l := New(nil)
	specs := []Spec{
		{Name: "A", Path: writeLaunchable(t)},
		{Name: "B", Path: ""},
		{Name: "C", Path: writeLaunchable(t)},
	}

	results := l.Multiple(specs, 0, nil)
	require.Len(t, results, 3)

	assert.Equal(t, "A", results[0].Name)
	assert.True(t, results[0].Success)
	assert.NoError(t, results[0].Err)

	assert.Equal(t, "B", results[1].Name)
	assert.False(t, results[1].Success)
	assert.ErrorIs(t, results[1].Err, ErrEmptyPath)

	// B's failure did not short-circuit C.
	assert.Equal(t, "C", results[2].Name)
	assert.True(t, results[2].Success)
}

func TestMultipleResultCountMatchesInput(t *testing.T) {
	l := New(nil)
	specs := make([]Spec, 5)
	for i := range specs {
		specs[i] = Spec{Name: "X"} // all fail with empty path
	}
	results := l.Multiple(specs, 0, nil)
	require.Len(t, results, 5)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.ErrorIs(t, r.Err, ErrEmptyPath)
	}
}

func TestMultipleProgressBeforeEachAttempt(t *testing.T) {
	l := New(nil)
	specs := []Spec{{Name: "one"}, {Name: "two"}, {Name: "three"}}

	type call struct {
		current, total int
		name           string
	}
	var calls []call
	l.Multiple(specs, 0, func(current, total int, name string) {
		calls = append(calls, call{current, total, name})
	})

	require.Len(t, calls, 3)
	assert.Equal(t, call{1, 3, "one"}, calls[0])
	assert.Equal(t, call{2, 3, "two"}, calls[1])
	assert.Equal(t, call{3, 3, "three"}, calls[2])
}

func TestMultipleDelayBetweenLaunches(t *testing.T) {
	l := New(nil)
	delay := 40 * time.Millisecond
	specs := []Spec{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	start := time.Now()
	l.Multiple(specs, delay, nil)
	elapsed := time.Since(start)

	// Two gaps between three specs.
	assert.GreaterOrEqual(t, elapsed, 2*delay)
}

func TestMultipleNoDelayAfterLast(t *testing.T) {
	l := New(nil)
	delay := 300 * time.Millisecond

	start := time.Now()
	l.Multiple([]Spec{{Name: "only"}}, delay, nil)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, delay)
}

func TestValidate(t *testing.T) {
	l := New(nil)

	assert.ErrorIs(t, l.Validate(""), ErrEmptyPath)
	assert.ErrorIs(t, l.Validate(filepath.Join(t.TempDir(), "nope.exe")), ErrNotFound)
	assert.ErrorIs(t, l.Validate(t.TempDir()), ErrNotAFile)

	dir := t.TempDir()
	text := filepath.Join(dir, "readme.txt")
	require.NoError(t, os.WriteFile(text, []byte("hi"), 0o644))
	assert.ErrorIs(t, l.Validate(text), ErrUnsupportedType)

	for _, name := range []string{"app.exe", "run.BAT", "task.cmd", "link.lnk", "setup.msi", "tool.msc"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		assert.NoError(t, l.Validate(path), name)
	}
}

func TestIsRunningNegative(t *testing.T) {
	assert.False(t, IsRunning("definitely-not-a-real-process-zz9.exe"))
	assert.False(t, IsRunning(""))
}

func TestIsRunningFindsSelf(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "linux" {
		t.Skip("process list probe needs /proc or toolhelp")
	}
	exe, err := os.Executable()
	require.NoError(t, err)
	assert.True(t, IsRunning(exe))
}
