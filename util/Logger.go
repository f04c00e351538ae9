package util

import (
	"io"
	"log"
	"os"
)

// Logger is a leveled log sink. It is constructed once at startup and passed
// by reference into every component that logs, instead of being reached
// through package-level state.
type Logger struct {
	out *log.Logger
}

func NewLogger() *Logger {
	return &Logger{out: log.New(os.Stdout, "", log.LstdFlags)}
}

// NewLoggerTo writes to w; used by tests to capture output.
func NewLoggerTo(w io.Writer) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags)}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.out.Printf("[INFO] "+format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.out.Printf("[WARN] "+format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.out.Printf("[ERROR] "+format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.out.Printf("[DEBUG] "+format, args...)
}
