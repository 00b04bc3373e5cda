// Package agents wraps language-model inference behind typed
// collaborator calls. Every response is parsed and validated at this
// boundary; malformed or out-of-enumeration responses are contract
// violations surfaced as errors, never defaulted.
package agents

import (
	"context"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// System is the set of inference collaborators the workflow consumes.
type System interface {
	// Summarize reduces a long email body to its main message.
	Summarize(ctx context.Context, body string) (string, error)

	// DetectIntent classifies an email into the closed category set.
	DetectIntent(ctx context.Context, body string) (triage.Category, error)

	// ExtractInquiries identifies the inquiry tags present in an email.
	ExtractInquiries(ctx context.Context, body string) ([]triage.Inquiry, error)

	// SynthesizeContext condenses retrieved exemplar fragments into the
	// context used to ground a reply.
	SynthesizeContext(ctx context.Context, inquiries []triage.Inquiry, documents string) (string, error)

	// WriteTemplated personalizes a canned reply template for a recipient.
	WriteTemplated(ctx context.Context, template, recipient string) (string, error)

	// WriteGrounded drafts a reply from the email body and retrieved
	// context, without introducing facts absent from that context.
	WriteGrounded(ctx context.Context, body, context string) (string, error)

	// UpdateInformation revises a draft with recipient name, cost, and
	// deadline details.
	UpdateInformation(ctx context.Context, draft, recipient, information string) (string, error)

	// Review assesses a generated reply against the original email.
	// Returns VerdictReady when the draft is acceptable, otherwise
	// feedback text.
	Review(ctx context.Context, original, draft string) (string, error)

	// Rewrite incorporates editor feedback into a generated reply.
	Rewrite(ctx context.Context, original, draft, feedback string) (string, error)
}

// VerdictReady is the editorial verdict signalling a draft needs no
// further revision.
const VerdictReady = "ready"
