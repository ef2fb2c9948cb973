package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger provides structured, leveled logging throughout the application.
// Diagnostics go to stderr so the report on stdout stays clean.
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a new Logger writing to stderr.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stderr)
}

// NewLoggerTo creates a Logger writing to w.
func NewLoggerTo(w io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return FromLogrus(l)
}

// FromLogrus wraps an existing logrus logger.
func FromLogrus(l *logrus.Logger) *Logger {
	return &Logger{entry: logrus.NewEntry(l)}
}

// With returns a child logger that attaches key=value to every line.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// SetLevel parses a level name such as "debug" or "warn".
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	l.entry.Logger.SetLevel(lvl)
	return nil
}

func (l *Logger) Info(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.entry.Debugf(format, args...)
}
