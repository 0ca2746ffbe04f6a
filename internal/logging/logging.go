// internal/logging/logging.go
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. Init configures it in place.
var Log = logrus.New()

// Init configures the global logger with a specific level.
func Init(level string) {
	configure(Log, level)
}

// NewLogger returns a standalone logger with the same formatting as Log.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	configure(log, level)
	return log
}

func configure(log *logrus.Logger, level string) {
	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(ParseLevel(level))
}

// ParseLevel maps a config level to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
