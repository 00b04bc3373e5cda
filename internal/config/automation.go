package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvAutomationInboxes     = "AUTOMATION_INBOXES"
	EnvAutomationStepLimit   = "AUTOMATION_STEP_LIMIT"
	EnvAutomationSendReplies = "AUTOMATION_SEND_REPLIES"
	EnvAutomationReview      = "AUTOMATION_REVIEW_ENABLED"
	EnvAutomationReviewCap   = "AUTOMATION_REVIEW_MAX_TRIALS"
)

// AutomationConfig holds the triage run parameters: which inboxes to
// drain, the node execution ceiling, delivery mode, and the optional
// editorial review loop.
type AutomationConfig struct {
	Inboxes     []string     `toml:"inboxes"`
	StepLimit   int          `toml:"step_limit"`
	SendReplies bool         `toml:"send_replies"`
	Review      ReviewConfig `toml:"review"`
}

// ReviewConfig bounds the editorial review loop.
type ReviewConfig struct {
	Enabled   bool `toml:"enabled"`
	MaxTrials int  `toml:"max_trials"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AutomationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AutomationConfig) Merge(overlay *AutomationConfig) {
	if len(overlay.Inboxes) > 0 {
		c.Inboxes = overlay.Inboxes
	}
	if overlay.StepLimit != 0 {
		c.StepLimit = overlay.StepLimit
	}
	if overlay.SendReplies {
		c.SendReplies = true
	}
	if overlay.Review.Enabled {
		c.Review.Enabled = true
	}
	if overlay.Review.MaxTrials != 0 {
		c.Review.MaxTrials = overlay.Review.MaxTrials
	}
}

func (c *AutomationConfig) loadDefaults() {
	if c.StepLimit == 0 {
		c.StepLimit = 1000
	}
	if c.Review.MaxTrials == 0 {
		c.Review.MaxTrials = 3
	}
}

func (c *AutomationConfig) loadEnv() {
	if v := os.Getenv(EnvAutomationInboxes); v != "" {
		var inboxes []string
		for _, inbox := range strings.Split(v, ",") {
			if inbox = strings.TrimSpace(inbox); inbox != "" {
				inboxes = append(inboxes, inbox)
			}
		}
		c.Inboxes = inboxes
	}
	if v := os.Getenv(EnvAutomationStepLimit); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			c.StepLimit = limit
		}
	}
	if v := os.Getenv(EnvAutomationSendReplies); v != "" {
		if send, err := strconv.ParseBool(v); err == nil {
			c.SendReplies = send
		}
	}
	if v := os.Getenv(EnvAutomationReview); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Review.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvAutomationReviewCap); v != "" {
		if trials, err := strconv.Atoi(v); err == nil {
			c.Review.MaxTrials = trials
		}
	}
}

func (c *AutomationConfig) validate() error {
	if len(c.Inboxes) == 0 {
		return fmt.Errorf("at least one inbox required")
	}
	if c.StepLimit < 0 {
		return fmt.Errorf("step_limit must not be negative")
	}
	if c.Review.MaxTrials < 1 {
		return fmt.Errorf("review max_trials must be positive")
	}
	return nil
}
