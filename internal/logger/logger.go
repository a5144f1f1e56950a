// Package logger is the process-wide diagnostic log for stylequote.
//
// Debug, Info and Section lines appear only with --verbose. Warnings are
// always written unless the log is muted, which the full-screen TUI does so
// stray output cannot tear its frame.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level orders messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

var tags = map[Level]string{
	LevelDebug: "[DEBUG] ",
	LevelInfo:  "[INFO] ",
	LevelWarn:  "[WARN] ",
}

var (
	mu      sync.RWMutex
	verbose bool
	muted   bool
	output  io.Writer = os.Stderr
)

// SetVerbose turns debug and info output on or off.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether debug and info output is on.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetMuted suppresses every message, warnings included.
func SetMuted(m bool) {
	mu.Lock()
	defer mu.Unlock()
	muted = m
}

// SetOutput redirects the log. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Enabled reports whether a message at level would be written.
func Enabled(level Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled(level)
}

func enabled(level Level) bool {
	if muted {
		return false
	}
	return verbose || level >= LevelWarn
}

func logf(level Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled(level) {
		return
	}
	fmt.Fprintf(output, tags[level]+format+"\n", args...)
}

// Debug logs detail useful when tracing a run.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs a notable step.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs a recoverable problem.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Section prints a heading between phases of a verbose run.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled(LevelInfo) {
		return
	}
	fmt.Fprintf(output, "\n=== %s ===\n", name)
}
