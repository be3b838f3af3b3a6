package logger

import (
	"log"

	"go.uber.org/zap"
)

const (
	envLocal = "local"
	envProd  = "production"
)

// SetupLogger builds the application logger for the given environment.
// Local environments get the human readable development encoder, everything
// else logs structured JSON at info level.
func SetupLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)

	switch env {
	case envLocal:
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot build logger: %s", err)
	}

	return logger
}
