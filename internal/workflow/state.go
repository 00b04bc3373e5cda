package workflow

import (
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

const (
	KeySteps      = "steps"
	KeyInboxIndex = "inbox_index"
	KeyQueue      = "queue"
	KeyEmail      = "current_email"
	KeyCategory   = "category"
	KeyInquiries  = "inquiries"
	KeyContext    = "retrieved_context"
	KeyReply      = "generated_reply"
	KeyFeedback   = "feedback"
	KeyTrials     = "trials"
	KeyReport     = "report"
)

// InboxReport accumulates per-inbox processing counts.
type InboxReport struct {
	Inbox   string `json:"inbox"`
	Loaded  int    `json:"loaded"`
	Drafted int    `json:"drafted"`
	Sent    int    `json:"sent"`
	Skipped int    `json:"skipped"`
}

// Report is the final output from a triage run.
type Report struct {
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	Steps       int           `json:"steps"`
	Inboxes     []InboxReport `json:"inboxes"`
}

func extractValue[T any](s state.State, key string) (T, error) {
	var zero T

	val, ok := s.Get(key)
	if !ok {
		return zero, fmt.Errorf("missing %s in state", key)
	}

	typed, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%s is not %T", key, zero)
	}

	return typed, nil
}

// counter reads an int key that may not have been set yet.
func counter(s state.State, key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	n, _ := val.(int)
	return n
}

// resetScratch clears the per-email keys after an email leaves the queue.
func resetScratch(s state.State) state.State {
	s = s.Set(KeyInquiries, []triage.Inquiry(nil))
	s = s.Set(KeyContext, "")
	s = s.Set(KeyReply, "")
	s = s.Set(KeyFeedback, "")
	s = s.Set(KeyTrials, 0)
	return s
}

// recordInbox appends a loaded-inbox entry to the report and re-stores it.
func recordInbox(s state.State, inbox string, loaded int) (state.State, error) {
	report, err := extractValue[Report](s, KeyReport)
	if err != nil {
		return s, err
	}

	report.Inboxes = append(report.Inboxes, InboxReport{
		Inbox:  inbox,
		Loaded: loaded,
	})

	return s.Set(KeyReport, report), nil
}

// tallyOutcome increments one outcome counter on the current inbox entry.
func tallyOutcome(s state.State, apply func(*InboxReport)) (state.State, error) {
	report, err := extractValue[Report](s, KeyReport)
	if err != nil {
		return s, err
	}

	if len(report.Inboxes) == 0 {
		return s, fmt.Errorf("no inbox entry in report")
	}

	report.Inboxes = append([]InboxReport(nil), report.Inboxes...)
	apply(&report.Inboxes[len(report.Inboxes)-1])

	return s.Set(KeyReport, report), nil
}

func extractResult(s state.State) (*Report, error) {
	report, err := extractValue[Report](s, KeyReport)
	if err != nil {
		return nil, err
	}

	report.Steps = counter(s, KeySteps)
	return &report, nil
}
