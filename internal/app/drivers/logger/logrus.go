package logger

import (
	"os"
	"unidash-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the access logger. Production writes JSON lines to a file next to
// the zap output; everything else gets the text formatter on stderr.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	if internalConfig.App.Env != "production" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile(driverConfig.Logger.AccessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.WithError(err).Info("Failed to log to file, using default stderr")
		return logger
	}
	logger.SetOutput(file)
	return logger
}
