package mailbox

import "errors"

// Sentinel errors for mailbox operations.
var (
	ErrListFailed  = errors.New("failed to list unreplied threads")
	ErrDraftFailed = errors.New("failed to create draft reply")
	ErrSendFailed  = errors.New("failed to send reply")
)
