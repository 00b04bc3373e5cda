package workflow

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/knowledge"
	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// fragmentSeparator delimits exemplar fragments in the synthesis prompt.
const fragmentSeparator = "\n\n////////////\n\n"

// fragmentsPerInquiry is the retrieval depth for each inquiry tag.
const fragmentsPerInquiry = 2

// ExtractInquiriesNode returns a state node that identifies the inquiry
// tags in the current email, then applies the category adjustments so
// publication-intent emails always carry the submission process tag and
// draft-sharing emails carry the draft tag instead.
func ExtractInquiriesNode(rt *Runtime) state.StateNode {
	return node(rt, extractInquiries)
}

func extractInquiries(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	email, err := extractValue[triage.Email](s, KeyEmail)
	if err != nil {
		return s, fmt.Errorf("extract_inquiries: %w", err)
	}

	category, err := extractValue[triage.Category](s, KeyCategory)
	if err != nil {
		return s, fmt.Errorf("extract_inquiries: %w", err)
	}

	inquiries, err := rt.Agents.ExtractInquiries(ctx, email.Body)
	if err != nil {
		return s, fmt.Errorf("extract_inquiries: %w", err)
	}

	inquiries = triage.AdjustInquiries(category, inquiries)

	rt.Logger.InfoContext(
		ctx, "inquiries extracted",
		"subject", email.Subject,
		"inquiries", inquiries,
	)

	return s.Set(KeyInquiries, inquiries), nil
}

// RetrieveContextNode returns a state node that searches the exemplar
// store for each inquiry concurrently, joins the reply fragments, and
// synthesizes them into the grounding context for reply generation.
// Fragment order follows inquiry order regardless of which search
// returns first.
func RetrieveContextNode(rt *Runtime) state.StateNode {
	return node(rt, retrieveContext)
}

func retrieveContext(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	inquiries, err := extractValue[[]triage.Inquiry](s, KeyInquiries)
	if err != nil {
		return s, fmt.Errorf("retrieve_context: %w", err)
	}

	fragments, err := searchExemplars(ctx, rt, inquiries)
	if err != nil {
		return s, fmt.Errorf("retrieve_context: %w", err)
	}

	documents := strings.Join(fragments, fragmentSeparator)

	context, err := rt.Agents.SynthesizeContext(ctx, inquiries, documents)
	if err != nil {
		return s, fmt.Errorf("retrieve_context: %w", err)
	}

	rt.Logger.InfoContext(
		ctx, "context retrieved",
		"inquiries", len(inquiries),
		"fragments", len(fragments),
	)

	return s.Set(KeyContext, context), nil
}

func searchExemplars(ctx context.Context, rt *Runtime, inquiries []triage.Inquiry) ([]string, error) {
	results := make([][]string, len(inquiries))

	g, gctx := errgroup.WithContext(ctx)

	for i, inquiry := range inquiries {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			hits, err := rt.Knowledge.Search(gctx, string(inquiry), fragmentsPerInquiry)
			if err != nil {
				return fmt.Errorf("search %q: %w", inquiry, err)
			}

			extracted := make([]string, 0, len(hits))
			for _, hit := range hits {
				extracted = append(extracted, knowledge.ExtractResponse(hit))
			}

			results[i] = extracted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var fragments []string
	for _, r := range results {
		fragments = append(fragments, r...)
	}

	return fragments, nil
}
