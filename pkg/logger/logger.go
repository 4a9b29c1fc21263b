package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a JSON logrus logger at the given level.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})

	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // fall back when an invalid level is passed
	}
	log.SetLevel(level)
	return log
}
