package pricing

import (
	"fmt"
	"os"
)

// Config identifies the spreadsheet holding journal publication fees.
// The sheet is expected to carry journal names in its first column and
// integer prices in its second. Credentials are the JSON contents of a
// service account key, read from the environment only.
type Config struct {
	Credentials string `toml:"-"`
	SheetID     string `toml:"sheet_id"`
	Range       string `toml:"range"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Credentials string
	SheetID     string
	Range       string
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
	if overlay.SheetID != "" {
		c.SheetID = overlay.SheetID
	}
	if overlay.Range != "" {
		c.Range = overlay.Range
	}
}

func (c *Config) loadDefaults() {
	if c.Range == "" {
		c.Range = "Sheet1!A2:B"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Credentials != "" {
		if v := os.Getenv(env.Credentials); v != "" {
			c.Credentials = v
		}
	}
	if env.SheetID != "" {
		if v := os.Getenv(env.SheetID); v != "" {
			c.SheetID = v
		}
	}
	if env.Range != "" {
		if v := os.Getenv(env.Range); v != "" {
			c.Range = v
		}
	}
}

func (c *Config) validate() error {
	if c.Credentials == "" {
		return fmt.Errorf("service account credentials required")
	}
	if c.SheetID == "" {
		return fmt.Errorf("sheet_id required")
	}
	return nil
}
