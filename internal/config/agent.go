package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// AgentsConfig holds the two inference agents the workflow uses: the
// classifier handles categorization, extraction, and editorial passes;
// the writer drafts grounded replies.
type AgentsConfig struct {
	Classifier gaconfig.AgentConfig `toml:"classifier"`
	Writer     gaconfig.AgentConfig `toml:"writer"`
}

// Finalize applies the three-phase finalize pattern to both agents.
func (c *AgentsConfig) Finalize() error {
	if c.Classifier.Name == "" {
		c.Classifier.Name = "classifier"
	}
	if err := finalizeAgent(&c.Classifier, "AUTOMATION_CLASSIFIER"); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	if c.Writer.Name == "" {
		c.Writer.Name = "writer"
	}
	if err := finalizeAgent(&c.Writer, "AUTOMATION_WRITER"); err != nil {
		return fmt.Errorf("writer: %w", err)
	}

	return nil
}

// Merge overwrites configured fields from overlay for both agents.
func (c *AgentsConfig) Merge(overlay *AgentsConfig) {
	c.Classifier.Merge(&overlay.Classifier)
	c.Writer.Merge(&overlay.Writer)
}

// finalizeAgent applies the three-phase finalize pattern to a go-agents
// AgentConfig: defaults from go-agents DefaultAgentConfig, environment
// variable overrides under the given prefix, and validation.
func finalizeAgent(c *gaconfig.AgentConfig, envPrefix string) error {
	loadAgentDefaults(c)
	loadAgentEnv(c, envPrefix)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig, prefix string) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if v := os.Getenv(prefix + "_PROVIDER_NAME"); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(prefix + "_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(prefix + "_MODEL_NAME"); v != "" {
		c.Model.Name = v
	}

	setOption := func(suffix, key string) {
		if v := os.Getenv(prefix + suffix); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption("_TOKEN", "token")
	setOption("_DEPLOYMENT", "deployment")
	setOption("_API_VERSION", "api_version")
	setOption("_AUTH_TYPE", "auth_type")
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
