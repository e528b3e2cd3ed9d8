package utils

import (
	"os"

	"github.com/unicsmcr/hs_employees/environment"
	"go.uber.org/zap"
)

const loggerName = "hs_employees"

// NewLogger creates the application logger. Production settings are used when ENVIRONMENT is prod
func NewLogger() (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv(environment.Environment) == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return logger.Named(loggerName), nil
}
