package workflow

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/agents"
	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// Execute runs the triage workflow across every configured inbox. It
// builds the state graph (select_inbox → load_emails → check_empty →
// categorize → generate → finalize, with cycles back to check_empty
// until each inbox drains), executes it, and extracts the run Report
// from the final state.
func Execute(ctx context.Context, rt *Runtime) (*Report, error) {
	if len(rt.Mailboxes) == 0 {
		return nil, ErrNoInboxes
	}

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyInboxIndex, 0)
	initialState = initialState.Set(KeyReport, Report{StartedAt: rt.now()})

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	report, err := extractResult(finalState)
	if err != nil {
		return nil, err
	}

	report.CompletedAt = rt.now()
	return report, nil
}

// stepFunc is the signature every workflow step implements.
type stepFunc func(ctx context.Context, rt *Runtime, s state.State) (state.State, error)

// node wraps a workflow step with cancellation and step accounting.
// Every node entry counts against the run's step ceiling, which bounds
// the check_empty and review cycles.
func node(rt *Runtime, fn stepFunc) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		s, err := advanceStep(rt, s)
		if err != nil {
			return s, err
		}

		return fn(ctx, rt, s)
	})
}

func advanceStep(rt *Runtime, s state.State) (state.State, error) {
	steps := counter(s, KeySteps) + 1
	if rt.StepLimit > 0 && steps > rt.StepLimit {
		return s, fmt.Errorf("%w: %d nodes executed", ErrStepLimit, steps)
	}

	return s.Set(KeySteps, steps), nil
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("email-triage")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	nodes := map[string]state.StateNode{
		"select_inbox":       SelectInboxNode(rt),
		"load_emails":        LoadEmailsNode(rt),
		"check_empty":        CheckEmptyNode(rt),
		"categorize":         CategorizeNode(rt),
		"extract_inquiries":  ExtractInquiriesNode(rt),
		"retrieve_context":   RetrieveContextNode(rt),
		"generate_direct":    GenerateDirectNode(rt),
		"generate_augmented": GenerateAugmentedNode(rt),
		"review":             ReviewNode(rt),
		"rewrite":            RewriteNode(rt),
		"finalize":           FinalizeNode(rt),
		"skip":               SkipNode(rt),
		"done":               DoneNode(rt),
	}

	for name, n := range nodes {
		if err := graph.AddNode(name, n); err != nil {
			return nil, err
		}
	}

	remaining := inboxesRemain(rt)
	reviewed := reviewGate(rt)
	approved := reviewApproved(rt)

	edges := []struct {
		from, to  string
		condition func(state.State) bool
	}{
		// select_inbox exits when every inbox has been drained
		{"select_inbox", "load_emails", remaining},
		{"select_inbox", "done", state.Not(remaining)},

		{"load_emails", "check_empty", nil},

		// check_empty cycles back for the next inbox or processes the queue tail
		{"check_empty", "select_inbox", queueEmpty},
		{"check_empty", "categorize", state.Not(queueEmpty)},

		{"categorize", "generate_direct", routeIs(triage.RouteDirect)},
		{"categorize", "extract_inquiries", routeIs(triage.RouteAugmented)},
		{"categorize", "skip", routeIs(triage.RouteSkip)},

		{"extract_inquiries", "retrieve_context", nil},
		{"retrieve_context", "generate_augmented", nil},

		// only grounded drafts pass the editor; templated replies
		// are fixed text and go straight to finalize
		{"generate_direct", "finalize", nil},
		{"generate_augmented", "review", reviewed},
		{"generate_augmented", "finalize", state.Not(reviewed)},

		{"review", "finalize", approved},
		{"review", "rewrite", state.Not(approved)},
		{"rewrite", "review", nil},

		// processed emails loop back until the queue drains
		{"finalize", "check_empty", nil},
		{"skip", "check_empty", nil},
	}

	for _, e := range edges {
		if err := graph.AddEdge(e.from, e.to, e.condition); err != nil {
			return nil, err
		}
	}

	if err := graph.SetEntryPoint("select_inbox"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("done"); err != nil {
		return nil, err
	}

	return graph, nil
}

func inboxesRemain(rt *Runtime) func(state.State) bool {
	return func(s state.State) bool {
		return counter(s, KeyInboxIndex) < len(rt.Mailboxes)
	}
}

func queueEmpty(s state.State) bool {
	queue, err := extractValue[[]triage.Email](s, KeyQueue)
	if err != nil {
		return true
	}
	return len(queue) == 0
}

func routeIs(route triage.Route) func(state.State) bool {
	return func(s state.State) bool {
		category, err := extractValue[triage.Category](s, KeyCategory)
		if err != nil {
			return false
		}

		r, err := category.Route()
		if err != nil {
			return false
		}

		return r == route
	}
}

func reviewGate(rt *Runtime) func(state.State) bool {
	return func(state.State) bool {
		return rt.Review
	}
}

func reviewApproved(rt *Runtime) func(state.State) bool {
	return func(s state.State) bool {
		feedback, err := extractValue[string](s, KeyFeedback)
		if err != nil {
			return false
		}

		return feedback == agents.VerdictReady || counter(s, KeyTrials) > rt.ReviewCap
	}
}
