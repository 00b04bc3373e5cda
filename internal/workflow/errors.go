package workflow

import "errors"

var (
	ErrNoInboxes  = errors.New("no inboxes configured")
	ErrQueueEmpty = errors.New("email queue is empty")
	ErrStepLimit  = errors.New("step ceiling exceeded")
)
