package environment

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// names of env vars
const (
	Environment   = "ENVIRONMENT"
	Port          = "PORT"
	APIBaseURL    = "API_BASE_URL"
	SessionSecret = "SESSION_SECRET"
	ConfigDir     = "CONFIG_DIR"
)

const dotEnvFile = ".env"

// NewEnv creates an Env with loaded environment variables.
// Variables from a .env file are loaded first, without overriding ones already set.
func NewEnv(logger *zap.Logger) *Env {
	if err := godotenv.Load(dotEnvFile); err != nil {
		logger.Debug("could not load .env file", zap.String("file", dotEnvFile), zap.Error(err))
	}

	env := Env{
		vars: map[string]string{
			Environment:   valueOfEnvVar(logger, Environment),
			Port:          valueOfEnvVar(logger, Port),
			APIBaseURL:    valueOfEnvVar(logger, APIBaseURL),
			SessionSecret: valueOfEnvVar(logger, SessionSecret),
			ConfigDir:     valueOfEnvVar(logger, ConfigDir),
		},
	}
	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}
