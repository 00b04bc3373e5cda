package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// FinalizeNode returns a state node that delivers the generated reply
// and retires the email. The reply threads into the original
// conversation as a draft, or is sent immediately when the runtime is
// configured to. The email is popped from the queue and the per-email
// scratch keys reset before the queue check runs again.
func FinalizeNode(rt *Runtime) state.StateNode {
	return node(rt, finalize)
}

func finalize(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	box, ok := rt.mailbox(counter(s, KeyInboxIndex))
	if !ok {
		return s, fmt.Errorf("finalize: %w", ErrNoInboxes)
	}

	email, err := extractValue[triage.Email](s, KeyEmail)
	if err != nil {
		return s, fmt.Errorf("finalize: %w", err)
	}

	reply, err := extractValue[string](s, KeyReply)
	if err != nil {
		return s, fmt.Errorf("finalize: %w", err)
	}

	s, err = popQueue(s)
	if err != nil {
		return s, fmt.Errorf("finalize: %w", err)
	}

	if rt.SendReplies {
		if err := box.SendReply(ctx, email.ID, email.ThreadID, email.SenderEmail, email.Subject, reply); err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		rt.Logger.InfoContext(ctx, "reply sent", "subject", email.Subject, "recipient", email.SenderEmail)

		s, err = tallyOutcome(s, func(r *InboxReport) { r.Sent++ })
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		return resetScratch(s), nil
	}

	draftID, err := box.CreateDraft(ctx, email.ID, email.ThreadID, email.SenderEmail, email.Subject, reply)
	if err != nil {
		return s, fmt.Errorf("finalize: %w", err)
	}

	rt.Logger.InfoContext(
		ctx, "draft created",
		"subject", email.Subject,
		"recipient", email.SenderEmail,
		"draft_id", draftID,
	)

	s, err = tallyOutcome(s, func(r *InboxReport) { r.Drafted++ })
	if err != nil {
		return s, fmt.Errorf("finalize: %w", err)
	}

	return resetScratch(s), nil
}

// SkipNode returns a state node that retires an unrelated email with no
// reply.
func SkipNode(rt *Runtime) state.StateNode {
	return node(rt, skip)
}

func skip(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	email, err := extractValue[triage.Email](s, KeyEmail)
	if err != nil {
		return s, fmt.Errorf("skip: %w", err)
	}

	s, err = popQueue(s)
	if err != nil {
		return s, fmt.Errorf("skip: %w", err)
	}

	rt.Logger.InfoContext(ctx, "email skipped", "subject", email.Subject)

	s, err = tallyOutcome(s, func(r *InboxReport) { r.Skipped++ })
	if err != nil {
		return s, fmt.Errorf("skip: %w", err)
	}

	return resetScratch(s), nil
}

func popQueue(s state.State) (state.State, error) {
	queue, err := extractValue[[]triage.Email](s, KeyQueue)
	if err != nil {
		return s, err
	}

	if len(queue) == 0 {
		return s, ErrQueueEmpty
	}

	return s.Set(KeyQueue, queue[:len(queue)-1]), nil
}
