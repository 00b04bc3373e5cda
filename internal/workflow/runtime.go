package workflow

import (
	"log/slog"
	"time"

	"github.com/kaymen99/publishing-gmail-automation/internal/agents"
	"github.com/kaymen99/publishing-gmail-automation/internal/knowledge"
	"github.com/kaymen99/publishing-gmail-automation/internal/mailbox"
	"github.com/kaymen99/publishing-gmail-automation/internal/pricing"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure and Domain systems.
type Runtime struct {
	Agents    agents.System
	Mailboxes []mailbox.System
	Pricing   pricing.System
	Knowledge knowledge.System
	Logger    *slog.Logger

	// StepLimit caps the number of node executions per run. Zero
	// disables the ceiling.
	StepLimit int

	// Review enables the editorial review loop on generated replies.
	Review    bool
	ReviewCap int

	// SendReplies sends replies immediately instead of drafting them.
	SendReplies bool

	// Now is the clock used for deadline calculation. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

func (rt *Runtime) now() time.Time {
	if rt.Now != nil {
		return rt.Now()
	}
	return time.Now()
}

func (rt *Runtime) mailbox(index int) (mailbox.System, bool) {
	if index < 0 || index >= len(rt.Mailboxes) {
		return nil, false
	}
	return rt.Mailboxes[index], true
}
