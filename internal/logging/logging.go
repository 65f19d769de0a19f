package logging

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	level := logrus.InfoLevel
	if parsed, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		level = parsed
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: level,
	}

	return &logger
}

// CriticalFault logs an invariant violation together with a full dump of the
// state that triggered it. The caller aborts the operation; the process
// keeps running.
func CriticalFault(logger *logrus.Logger, err error, what string, state interface{}) {
	logger.WithError(err).
		WithField("state", spew.Sdump(state)).
		Errorf("CriticalFault.%v", what)
}
