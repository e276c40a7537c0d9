// Package logger wires the process-wide structured logger. Handlers and
// middleware log through the exported entry rather than constructing their
// own loggers.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	base *logrus.Logger
	Log  *logrus.Entry
)

// Unit tests hit the logger before main runs, so keep a usable default.
func init() {
	Init("development", "info")
}

// Init configures the global logger for the given environment. Production
// emits JSON for log collection, development stays human readable.
func Init(env, level string) {
	base = logrus.New()
	base.SetOutput(os.Stderr)

	if env == "production" {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	Log = base.WithFields(logrus.Fields{
		"service":        "feed-server",
		"is_development": env != "production",
	})
}
