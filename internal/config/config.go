package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/kaymen99/publishing-gmail-automation/internal/mailbox"
	"github.com/kaymen99/publishing-gmail-automation/internal/pricing"
	"github.com/kaymen99/publishing-gmail-automation/pkg/database"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvAutomationEnv             = "AUTOMATION_ENV"
	EnvAutomationShutdownTimeout = "AUTOMATION_SHUTDOWN_TIMEOUT"
	EnvAutomationVersion         = "AUTOMATION_VERSION"

	// EnvServiceAccountCredentials holds the Google service account key
	// JSON shared by the Gmail and Sheets integrations.
	EnvServiceAccountCredentials = "SERVICE_ACCOUNT_CREDENTIALS"
)

var databaseEnv = &database.Env{
	Host:            "AUTOMATION_DB_HOST",
	Port:            "AUTOMATION_DB_PORT",
	Name:            "AUTOMATION_DB_NAME",
	User:            "AUTOMATION_DB_USER",
	Password:        "AUTOMATION_DB_PASSWORD",
	SSLMode:         "AUTOMATION_DB_SSL_MODE",
	ApplicationName: "AUTOMATION_DB_APPLICATION_NAME",
	MaxOpenConns:    "AUTOMATION_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "AUTOMATION_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "AUTOMATION_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "AUTOMATION_DB_CONN_TIMEOUT",
}

var mailboxEnv = &mailbox.Env{
	Credentials: EnvServiceAccountCredentials,
	Lookback:    "AUTOMATION_MAILBOX_LOOKBACK",
	MaxResults:  "AUTOMATION_MAILBOX_MAX_RESULTS",
}

var pricingEnv = &pricing.Env{
	Credentials: EnvServiceAccountCredentials,
	SheetID:     "AUTOMATION_PRICING_SHEET_ID",
	Range:       "AUTOMATION_PRICING_RANGE",
}

// Config is the root configuration for the automation service.
type Config struct {
	Server          ServerConfig     `toml:"server"`
	Database        database.Config  `toml:"database"`
	API             APIConfig        `toml:"api"`
	Mailbox         mailbox.Config   `toml:"mailbox"`
	Pricing         pricing.Config   `toml:"pricing"`
	Agents          AgentsConfig     `toml:"agents"`
	Automation      AutomationConfig `toml:"automation"`
	ShutdownTimeout string           `toml:"shutdown_timeout"`
	Version         string           `toml:"version"`
}

// Env returns the AUTOMATION_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvAutomationEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.API.Merge(&overlay.API)
	c.Mailbox.Merge(&overlay.Mailbox)
	c.Pricing.Merge(&overlay.Pricing)
	c.Agents.Merge(&overlay.Agents)
	c.Automation.Merge(&overlay.Automation)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Mailbox.Finalize(mailboxEnv); err != nil {
		return fmt.Errorf("mailbox: %w", err)
	}
	if err := c.Pricing.Finalize(pricingEnv); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	if err := c.Agents.Finalize(); err != nil {
		return fmt.Errorf("agents: %w", err)
	}
	if err := c.Automation.Finalize(); err != nil {
		return fmt.Errorf("automation: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.Database.ApplicationName == "" {
		c.Database.ApplicationName = "gmail-automation"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvAutomationShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvAutomationVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvAutomationEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
