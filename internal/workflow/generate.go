package workflow

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/pricing"
	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// GenerateDirectNode returns a state node that personalizes the canned
// reply template for the current category.
func GenerateDirectNode(rt *Runtime) state.StateNode {
	return node(rt, generateDirect)
}

func generateDirect(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	email, err := extractValue[triage.Email](s, KeyEmail)
	if err != nil {
		return s, fmt.Errorf("generate_direct: %w", err)
	}

	category, err := extractValue[triage.Category](s, KeyCategory)
	if err != nil {
		return s, fmt.Errorf("generate_direct: %w", err)
	}

	template, err := triage.ReplyTemplate(category)
	if err != nil {
		return s, fmt.Errorf("generate_direct: %w", err)
	}

	reply, err := rt.Agents.WriteTemplated(ctx, template, email.Sender)
	if err != nil {
		return s, fmt.Errorf("generate_direct: %w", err)
	}

	rt.Logger.InfoContext(
		ctx, "templated reply generated",
		"subject", email.Subject,
		"category", category,
	)

	return s.Set(KeyReply, reply), nil
}

// GenerateAugmentedNode returns a state node that drafts a reply from
// the retrieved context, then revises it with the recipient name and
// any cost or deadline facts the inquiries call for. A fees inquiry
// whose subject names no priced journal fails the run rather than
// quoting a guessed price.
func GenerateAugmentedNode(rt *Runtime) state.StateNode {
	return node(rt, generateAugmented)
}

func generateAugmented(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	email, err := extractValue[triage.Email](s, KeyEmail)
	if err != nil {
		return s, fmt.Errorf("generate_augmented: %w", err)
	}

	retrieved, err := extractValue[string](s, KeyContext)
	if err != nil {
		return s, fmt.Errorf("generate_augmented: %w", err)
	}

	inquiries, err := extractValue[[]triage.Inquiry](s, KeyInquiries)
	if err != nil {
		return s, fmt.Errorf("generate_augmented: %w", err)
	}

	reply, err := rt.Agents.WriteGrounded(ctx, email.Body, retrieved)
	if err != nil {
		return s, fmt.Errorf("generate_augmented: %w", err)
	}

	information, err := composeInformation(rt, inquiries, email.Subject)
	if err != nil {
		return s, fmt.Errorf("generate_augmented: %w", err)
	}

	reply, err = rt.Agents.UpdateInformation(ctx, reply, email.Sender, information)
	if err != nil {
		return s, fmt.Errorf("generate_augmented: %w", err)
	}

	rt.Logger.InfoContext(
		ctx, "grounded reply generated",
		"subject", email.Subject,
		"inquiries", len(inquiries),
	)

	return s.Set(KeyReply, reply), nil
}

// composeInformation assembles the volatile facts a grounded reply must
// carry: the journal's current price when fees were asked about, the
// next submission deadline when deadlines were.
func composeInformation(rt *Runtime, inquiries []triage.Inquiry, subject string) (string, error) {
	var sb strings.Builder

	if slices.Contains(inquiries, triage.InquiryFeesOrCharges) {
		journal, err := pricing.JournalFromSubject(subject)
		if err != nil {
			return "", err
		}

		price, err := rt.Pricing.Price(journal)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&sb, "Latest Annual Journal Cost: %d$\n", price)
	}

	if slices.Contains(inquiries, triage.InquirySubmissionDeadlines) {
		fmt.Fprintf(&sb, "Latest Submission deadline: %s\n", NextDeadline(rt.now()))
	}

	return sb.String(), nil
}

// NextDeadline returns the upcoming mid-month submission deadline.
// Before the 15th it falls in the current month, from the 15th on in
// the next, rolling into January across a year boundary.
func NextDeadline(now time.Time) string {
	year, month := now.Year(), now.Month()

	if now.Day() >= 15 {
		if month == time.December {
			year++
			month = time.January
		} else {
			month++
		}
	}

	deadline := time.Date(year, month, 15, 0, 0, 0, 0, now.Location())
	return deadline.Format("2 January 2006")
}
