package mailbox

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds Gmail adapter parameters. Credentials are the JSON
// contents of a service account key with domain-wide delegation; they
// are only ever read from the environment, never from config files.
type Config struct {
	Credentials string `toml:"-"`
	Lookback    string `toml:"lookback"`
	MaxResults  int64  `toml:"max_results"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Credentials string
	Lookback    string
	MaxResults  string
}

// LookbackDuration returns Lookback as a time.Duration.
func (c *Config) LookbackDuration() time.Duration {
	d, _ := time.ParseDuration(c.Lookback)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Lookback != "" {
		c.Lookback = overlay.Lookback
	}
	if overlay.MaxResults != 0 {
		c.MaxResults = overlay.MaxResults
	}
}

func (c *Config) loadDefaults() {
	if c.Lookback == "" {
		c.Lookback = "4h"
	}
	if c.MaxResults == 0 {
		c.MaxResults = 50
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Credentials != "" {
		if v := os.Getenv(env.Credentials); v != "" {
			c.Credentials = v
		}
	}
	if env.Lookback != "" {
		if v := os.Getenv(env.Lookback); v != "" {
			c.Lookback = v
		}
	}
	if env.MaxResults != "" {
		if v := os.Getenv(env.MaxResults); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.MaxResults = n
			}
		}
	}
}

func (c *Config) validate() error {
	if c.Credentials == "" {
		return fmt.Errorf("service account credentials required")
	}
	if _, err := time.ParseDuration(c.Lookback); err != nil {
		return fmt.Errorf("invalid lookback: %w", err)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be positive")
	}
	return nil
}
