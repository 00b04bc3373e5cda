package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// submissionMarker appears in the automated confirmation the submission
// portal sends into the inbox.
const submissionMarker = "This is a new submission for"

// outreachNote frames near-empty replies, which are almost always bare
// responses to the journal's own outreach campaign.
const outreachNote = "Note this a response to our outreach email mentioning our interest in publishing a paper."

const (
	summarizeThreshold = 1000
	outreachThreshold  = 30
)

// CategorizeNode returns a state node that classifies the email at the
// tail of the queue. Portal submission confirmations are recognized by
// marker and bypass inference entirely. Otherwise the body is
// normalized first: long bodies are summarized, near-empty bodies get
// the outreach framing note. The normalized body replaces the original
// for every downstream node.
func CategorizeNode(rt *Runtime) state.StateNode {
	return node(rt, categorize)
}

func categorize(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	queue, err := extractValue[[]triage.Email](s, KeyQueue)
	if err != nil {
		return s, fmt.Errorf("categorize: %w", err)
	}

	if len(queue) == 0 {
		return s, fmt.Errorf("categorize: %w", ErrQueueEmpty)
	}

	email := queue[len(queue)-1]

	if strings.Contains(email.Body, submissionMarker) {
		rt.Logger.InfoContext(
			ctx, "email categorized",
			"subject", email.Subject,
			"category", triage.CategoryAfterSubmission,
			"marker", true,
		)

		s = s.Set(KeyEmail, email)
		return s.Set(KeyCategory, triage.CategoryAfterSubmission), nil
	}

	body, err := normalizeBody(ctx, rt, email.Body)
	if err != nil {
		return s, fmt.Errorf("categorize: %w", err)
	}
	email.Body = body

	category, err := rt.Agents.DetectIntent(ctx, body)
	if err != nil {
		return s, fmt.Errorf("categorize: %w", err)
	}

	rt.Logger.InfoContext(
		ctx, "email categorized",
		"subject", email.Subject,
		"category", category,
	)

	s = s.Set(KeyEmail, email)
	return s.Set(KeyCategory, category), nil
}

func normalizeBody(ctx context.Context, rt *Runtime, body string) (string, error) {
	switch {
	case len(body) > summarizeThreshold:
		summary, err := rt.Agents.Summarize(ctx, body)
		if err != nil {
			return "", err
		}
		return summary, nil
	case len(body) <= outreachThreshold:
		return fmt.Sprintf("%s\n\n%s", outreachNote, body), nil
	default:
		return body, nil
	}
}
