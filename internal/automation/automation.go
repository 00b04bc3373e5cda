// Package automation composes the triage workflow runtime from
// configuration and infrastructure. It binds one mailbox system per
// configured inbox, fetches the journal price list, and wires the
// inference and retrieval collaborators.
package automation

import (
	"context"
	"fmt"

	"github.com/kaymen99/publishing-gmail-automation/internal/agents"
	"github.com/kaymen99/publishing-gmail-automation/internal/config"
	"github.com/kaymen99/publishing-gmail-automation/internal/infrastructure"
	"github.com/kaymen99/publishing-gmail-automation/internal/knowledge"
	"github.com/kaymen99/publishing-gmail-automation/internal/mailbox"
	"github.com/kaymen99/publishing-gmail-automation/internal/pricing"
	"github.com/kaymen99/publishing-gmail-automation/internal/workflow"
)

// NewRuntime assembles a workflow runtime. The Gmail connections and
// the price sheet are established up front so a misconfigured inbox or
// credential fails startup, not a run in progress.
func NewRuntime(ctx context.Context, cfg *config.Config, infra *infrastructure.Infrastructure) (*workflow.Runtime, error) {
	mailboxes := make([]mailbox.System, 0, len(cfg.Automation.Inboxes))
	for _, inbox := range cfg.Automation.Inboxes {
		box, err := mailbox.New(ctx, &cfg.Mailbox, inbox, infra.Logger)
		if err != nil {
			return nil, fmt.Errorf("mailbox %s: %w", inbox, err)
		}
		mailboxes = append(mailboxes, box)
	}

	prices, err := pricing.Fetch(ctx, &cfg.Pricing, infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("pricing: %w", err)
	}

	return &workflow.Runtime{
		Agents:      agents.New(cfg.Agents.Classifier, cfg.Agents.Writer, infra.Logger),
		Mailboxes:   mailboxes,
		Pricing:     prices,
		Knowledge:   knowledge.NewStore(infra.Database.Connection(), infra.Logger),
		Logger:      infra.Logger.With("system", "workflow"),
		StepLimit:   cfg.Automation.StepLimit,
		Review:      cfg.Automation.Review.Enabled,
		ReviewCap:   cfg.Automation.Review.MaxTrials,
		SendReplies: cfg.Automation.SendReplies,
	}, nil
}
