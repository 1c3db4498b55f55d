package config

import (
	"io" // Log sink

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// SetupLogger configures the standard logrus logger; level falls back when c.LogLevel is empty or invalid
func (c *Config) SetupLogger(out io.Writer, fallback logrus.Level) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(out)
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = fallback
	}
	logrus.SetLevel(level)
}
