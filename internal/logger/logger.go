// Package logger configures the diagnostics logger shared by the engine and
// the simulator.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide diagnostics logger. It is nil until Init is called.
var Log *logrus.Logger

// Init initializes the global logger. The level is read from LOG_LEVEL
// (default "info") and the format from LOG_FORMAT ("json" or text).
func Init(out io.Writer) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			QuoteEmptyFields: true,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	Log.SetOutput(out)
}

// Component returns an entry tagged with the given component name. Before
// Init, entries go to a logger that discards everything below warnings.
func Component(name string) *logrus.Entry {
	l := Log
	if l == nil {
		l = quiet
	}
	return l.WithField("component", name)
}

var quiet = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	l.SetOutput(os.Stderr)
	return l
}()
