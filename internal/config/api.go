package config

import (
	"fmt"
	"os"

	"github.com/kaymen99/publishing-gmail-automation/pkg/middleware"
)

const (
	EnvAPIBasePath = "AUTOMATION_API_BASE_PATH"
	EnvAPIKey      = "AUTOMATION_API_KEY"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "AUTOMATION_CORS_ENABLED",
	Origins:          "AUTOMATION_CORS_ORIGINS",
	AllowedMethods:   "AUTOMATION_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "AUTOMATION_CORS_ALLOWED_HEADERS",
	AllowCredentials: "AUTOMATION_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "AUTOMATION_CORS_MAX_AGE",
}

// APIConfig holds API routing, authentication, and CORS settings. The
// key never comes from config files.
type APIConfig struct {
	BasePath string                `toml:"base_path"`
	Key      string                `toml:"-"`
	CORS     middleware.CORSConfig `toml:"cors"`
}

// Finalize applies defaults, environment variable overrides, and
// validation for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Key = v
	}
}

func (c *APIConfig) validate() error {
	if c.Key == "" {
		return fmt.Errorf("api key required")
	}
	return nil
}
