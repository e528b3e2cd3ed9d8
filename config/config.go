package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/environment"

	"go.uber.org/config"
)

// APIConfig describes how the remote employees API is reached
type APIConfig struct {
	// BaseURL is the single API root used by every call, e.g. http://localhost:5000/api
	BaseURL string `yaml:"base_url"`
	// Timeout bounds a single API call. Zero disables the bound.
	Timeout time.Duration `yaml:"timeout"`
}

// EmployeesConfig stores the settings of the employee list and form views
type EmployeesConfig struct {
	PageSize       uint          `yaml:"page_size"`
	MaxImageSize   int64         `yaml:"max_image_size"`
	RedirectDelay  time.Duration `yaml:"redirect_delay"`
	SubmissionTTL  time.Duration `yaml:"submission_ttl"`
	ImageFileTypes []string      `yaml:"image_file_types"`
}

// AuthConfig stores the settings of the login/signup views and the session cookie
type AuthConfig struct {
	SessionCookieSecure bool   `yaml:"session_cookie_secure"`
	RateLimit           string `yaml:"rate_limit"`
}

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name      string          `yaml:"name"`
	API       APIConfig       `yaml:"api"`
	Employees EmployeesConfig `yaml:"employees"`
	Auth      AuthConfig      `yaml:"auth"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	configDir := env.Get(environment.ConfigDir)
	configFiles := []config.YAMLOption{config.File(filepath.Join(configDir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(configDir, "development.yaml")))
	}
	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig

	err = configProvider.Get("").Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	if baseURL := env.Get(environment.APIBaseURL); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	return &cfg, nil
}
