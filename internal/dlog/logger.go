// Package dlog is a minimal structured-enough logger in the teacher's
// style (github.com/golang/dep's log.Logger): a thin wrapper around an
// io.Writer, extended with a level prefix and timestamp since aurd runs
// unattended as a daemon rather than as a CLI invocation.
package dlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger wraps a standard library *log.Logger, adding leveled helpers.
type Logger struct {
	*log.Logger
}

// New returns a Logger that writes timestamped lines to w.
func New(w io.Writer, prefix string) *Logger {
	return &Logger{Logger: log.New(w, prefix, log.LstdFlags)}
}

// Logln logs a line.
func (l *Logger) Logln(args ...interface{}) {
	l.Output(2, fmt.Sprintln(args...))
}

// Logf logs a formatted line.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.Output(2, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted line prefixed with "warn: ".
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Output(2, "warn: "+fmt.Sprintf(format, args...))
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger, writing to stderr. It exists so
// leaf packages (e.g. internal/index, internal/snapshot) can log without
// threading a *Logger through every constructor.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, "")
	})
	return defaultLogger
}

// SetDefault replaces the process-wide logger, e.g. so cmd/aurd can route
// it to a file.
func SetDefault(l *Logger) {
	// Consume the once so a later Default() call keeps l instead of
	// installing its own stderr logger over it.
	defaultOnce.Do(func() {})
	defaultLogger = l
}
