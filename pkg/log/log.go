// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface expected by the emulator
// components. *logrus.Logger satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at the info level.
func New() Logger {
	return newLogrus(logrus.InfoLevel)
}

// NewWithLevel returns a Logger at the named level ("debug", "info",
// "error", ...).
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newLogrus(lvl), nil
}

func newLogrus(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
