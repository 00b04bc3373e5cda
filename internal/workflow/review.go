package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/agents"
	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// ReviewNode returns a state node that judges the generated reply
// against the original email. The approval edge fires on a ready
// verdict, or once the rewrite budget is spent so an insistent editor
// cannot stall the run.
func ReviewNode(rt *Runtime) state.StateNode {
	return node(rt, review)
}

func review(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	email, err := extractValue[triage.Email](s, KeyEmail)
	if err != nil {
		return s, fmt.Errorf("review: %w", err)
	}

	reply, err := extractValue[string](s, KeyReply)
	if err != nil {
		return s, fmt.Errorf("review: %w", err)
	}

	feedback, err := rt.Agents.Review(ctx, email.Body, reply)
	if err != nil {
		return s, fmt.Errorf("review: %w", err)
	}

	rt.Logger.InfoContext(
		ctx, "reply reviewed",
		"subject", email.Subject,
		"ready", feedback == agents.VerdictReady,
		"trials", counter(s, KeyTrials),
	)

	return s.Set(KeyFeedback, feedback), nil
}

// RewriteNode returns a state node that revises the reply from editor
// feedback and counts the attempt.
func RewriteNode(rt *Runtime) state.StateNode {
	return node(rt, rewrite)
}

func rewrite(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	email, err := extractValue[triage.Email](s, KeyEmail)
	if err != nil {
		return s, fmt.Errorf("rewrite: %w", err)
	}

	reply, err := extractValue[string](s, KeyReply)
	if err != nil {
		return s, fmt.Errorf("rewrite: %w", err)
	}

	feedback, err := extractValue[string](s, KeyFeedback)
	if err != nil {
		return s, fmt.Errorf("rewrite: %w", err)
	}

	rewritten, err := rt.Agents.Rewrite(ctx, email.Body, reply, feedback)
	if err != nil {
		return s, fmt.Errorf("rewrite: %w", err)
	}

	s = s.Set(KeyReply, rewritten)
	return s.Set(KeyTrials, counter(s, KeyTrials)+1), nil
}
