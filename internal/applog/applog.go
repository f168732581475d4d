// Package applog centralises logrus setup so both binaries log the same
// way: structured fields, a configurable level, text output to stderr.
package applog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus.Logger at the given level ("debug", "info", "warn",
// "error"). An unrecognised level falls back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}
