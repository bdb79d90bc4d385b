// =============================================================================
// Make Data - Logging
// =============================================================================
//
// This module provides the levelled logger used by the generation pipeline.
// Every message is written as a single "[LEVEL] message" line; messages below
// the configured level are dropped.
//
// LEVELS:
//   DEBUG  - details shown with --verbose
//   INFO   - progress
//   WARN   - recoverable problems (e.g. the output directory could not be made)
//   ERROR  - the run is about to fail
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Level enumerates severity tiers.
type Level int

// Log levels, lowest first.
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// String returns the upper-case level name used in log lines.
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Logger is a levelled logger writing "[LEVEL] message" lines.
type Logger struct {
	mu    sync.Mutex
	level Level
	inner *log.Logger
}

// New creates a logger that drops messages below minLevel.
func New(w io.Writer, minLevel Level) *Logger {
	return &Logger{
		level: minLevel,
		inner: log.New(w, "", 0),
	}
}

func (l *Logger) log(lvl Level, format string, args ...interface{}) {
	if lvl < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	l.inner.Printf("[%s] %s", lvl, msg)
	l.mu.Unlock()
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(f string, a ...interface{}) { l.log(DEBUG, f, a...) }

// Info logs at INFO level.
func (l *Logger) Info(f string, a ...interface{}) { l.log(INFO, f, a...) }

// Warn logs at WARN level.
func (l *Logger) Warn(f string, a ...interface{}) { l.log(WARN, f, a...) }

// Error logs at ERROR level.
func (l *Logger) Error(f string, a ...interface{}) { l.log(ERROR, f, a...) }
