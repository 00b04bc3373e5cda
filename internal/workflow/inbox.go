package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// SelectInboxNode returns a state node that binds the cursor to the
// next inbox. The done edge fires instead when the cursor has passed
// the last configured inbox.
func SelectInboxNode(rt *Runtime) state.StateNode {
	return node(rt, selectInbox)
}

func selectInbox(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	box, ok := rt.mailbox(counter(s, KeyInboxIndex))
	if !ok {
		return s, nil
	}

	rt.Logger.InfoContext(ctx, "processing inbox", "inbox", box.Address())
	return s, nil
}

// LoadEmailsNode returns a state node that fills the queue with the
// current inbox's unreplied emails. Messages the inbox sent to itself
// are dropped. The queue is replaced, never appended to.
func LoadEmailsNode(rt *Runtime) state.StateNode {
	return node(rt, loadEmails)
}

func loadEmails(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	index := counter(s, KeyInboxIndex)
	box, ok := rt.mailbox(index)
	if !ok {
		return s, fmt.Errorf("load_emails: %w: index %d", ErrNoInboxes, index)
	}

	listed, err := box.ListUnreplied(ctx)
	if err != nil {
		return s, fmt.Errorf("load_emails: %w", err)
	}

	queue := make([]triage.Email, 0, len(listed))
	for _, email := range listed {
		if email.SenderEmail == box.Address() {
			continue
		}
		queue = append(queue, email)
	}

	rt.Logger.InfoContext(
		ctx, "emails loaded",
		"inbox", box.Address(),
		"count", len(queue),
	)

	s, err = recordInbox(s, box.Address(), len(queue))
	if err != nil {
		return s, fmt.Errorf("load_emails: %w", err)
	}

	return s.Set(KeyQueue, queue), nil
}

// CheckEmptyNode returns a state node that inspects the queue. When the
// queue has drained it advances the inbox cursor; this is the only
// place the cursor moves, so each empty inbox is passed exactly once.
func CheckEmptyNode(rt *Runtime) state.StateNode {
	return node(rt, checkEmpty)
}

func checkEmpty(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	if !queueEmpty(s) {
		return s, nil
	}

	index := counter(s, KeyInboxIndex)
	rt.Logger.InfoContext(ctx, "inbox drained", "inbox_index", index)

	return s.Set(KeyInboxIndex, index+1), nil
}

// DoneNode returns the exit node. All inboxes have been drained.
func DoneNode(rt *Runtime) state.StateNode {
	return node(rt, done)
}

func done(ctx context.Context, rt *Runtime, s state.State) (state.State, error) {
	rt.Logger.InfoContext(ctx, "all inboxes processed")
	return s, nil
}
