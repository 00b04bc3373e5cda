// Package mailbox implements the mailbox provider on the Gmail API.
// It lists recent unreplied threads, extracts plain-text bodies with
// quoted history stripped, and creates threaded draft or sent replies.
package mailbox

import (
	"context"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

// System is the mailbox contract the workflow consumes. One System is
// bound to one inbox address.
type System interface {
	// Address returns the inbox address this system is bound to.
	Address() string

	// ListUnreplied returns the latest message of each recent thread
	// that has no draft reply yet. Bounce senders are skipped.
	ListUnreplied(ctx context.Context) ([]triage.Email, error)

	// CreateDraft threads a draft reply into the original conversation.
	CreateDraft(ctx context.Context, msgID, threadID, recipient, subject, body string) (string, error)

	// SendReply sends the reply immediately instead of drafting it.
	SendReply(ctx context.Context, msgID, threadID, recipient, subject, body string) error
}
