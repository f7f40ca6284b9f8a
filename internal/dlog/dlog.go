// Package dlog provides leveled logging for nextline commands and the
// reader core. It is a thin layer over logrus so that all components log
// through one configured logger.
package dlog

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Setup sets the log level from its string representation. Unknown levels
// fall back to "info".
func Setup(level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}

// SetOutput redirects all log output, used by tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Level returns the current log level as a string.
func Level() string {
	return logger.GetLevel().String()
}

// WithField returns a log entry with one structured field attached.
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields returns a log entry with structured fields attached.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Debug logs a debug message.
func Debug(args ...interface{}) { logger.Debug(args...) }

// Info logs an informational message.
func Info(args ...interface{}) { logger.Info(args...) }

// Warn logs a warning.
func Warn(args ...interface{}) { logger.Warn(args...) }

// Error logs an error.
func Error(args ...interface{}) { logger.Error(args...) }

// Fatal logs an error and exits.
func Fatal(args ...interface{}) { logger.Fatal(args...) }
