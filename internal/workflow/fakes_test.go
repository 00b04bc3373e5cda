package workflow

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/agents"
	"github.com/kaymen99/publishing-gmail-automation/internal/mailbox"
	"github.com/kaymen99/publishing-gmail-automation/internal/pricing"
	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

type fakeAgents struct {
	summarize  func(body string) (string, error)
	intent     func(body string) (triage.Category, error)
	inquiries  func(body string) ([]triage.Inquiry, error)
	synthesize func(inquiries []triage.Inquiry, documents string) (string, error)
	templated  func(template, recipient string) (string, error)
	grounded   func(body, context string) (string, error)
	update     func(draft, recipient, information string) (string, error)
	reviewFn   func(original, draft string) (string, error)
	rewriteFn  func(original, draft, feedback string) (string, error)
}

var _ agents.System = (*fakeAgents)(nil)

func (f *fakeAgents) Summarize(_ context.Context, body string) (string, error) {
	if f.summarize == nil {
		return "summary", nil
	}
	return f.summarize(body)
}

func (f *fakeAgents) DetectIntent(_ context.Context, body string) (triage.Category, error) {
	if f.intent == nil {
		return triage.CategoryNotInterested, nil
	}
	return f.intent(body)
}

func (f *fakeAgents) ExtractInquiries(_ context.Context, body string) ([]triage.Inquiry, error) {
	if f.inquiries == nil {
		return nil, nil
	}
	return f.inquiries(body)
}

func (f *fakeAgents) SynthesizeContext(_ context.Context, inquiries []triage.Inquiry, documents string) (string, error) {
	if f.synthesize == nil {
		return "context", nil
	}
	return f.synthesize(inquiries, documents)
}

func (f *fakeAgents) WriteTemplated(_ context.Context, template, recipient string) (string, error) {
	if f.templated == nil {
		return "templated reply", nil
	}
	return f.templated(template, recipient)
}

func (f *fakeAgents) WriteGrounded(_ context.Context, body, context string) (string, error) {
	if f.grounded == nil {
		return "grounded reply", nil
	}
	return f.grounded(body, context)
}

func (f *fakeAgents) UpdateInformation(_ context.Context, draft, recipient, information string) (string, error) {
	if f.update == nil {
		return draft, nil
	}
	return f.update(draft, recipient, information)
}

func (f *fakeAgents) Review(_ context.Context, original, draft string) (string, error) {
	if f.reviewFn == nil {
		return agents.VerdictReady, nil
	}
	return f.reviewFn(original, draft)
}

func (f *fakeAgents) Rewrite(_ context.Context, original, draft, feedback string) (string, error) {
	if f.rewriteFn == nil {
		return draft, nil
	}
	return f.rewriteFn(original, draft, feedback)
}

type deliveryRecord struct {
	msgID     string
	threadID  string
	recipient string
	subject   string
	body      string
}

type fakeMailbox struct {
	address string
	emails  []triage.Email
	listErr error
	drafts  []deliveryRecord
	sent    []deliveryRecord
}

var _ mailbox.System = (*fakeMailbox)(nil)

func (f *fakeMailbox) Address() string {
	return f.address
}

func (f *fakeMailbox) ListUnreplied(context.Context) ([]triage.Email, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.emails, nil
}

func (f *fakeMailbox) CreateDraft(_ context.Context, msgID, threadID, recipient, subject, body string) (string, error) {
	f.drafts = append(f.drafts, deliveryRecord{msgID, threadID, recipient, subject, body})
	return "draft-1", nil
}

func (f *fakeMailbox) SendReply(_ context.Context, msgID, threadID, recipient, subject, body string) error {
	f.sent = append(f.sent, deliveryRecord{msgID, threadID, recipient, subject, body})
	return nil
}

type fakeKnowledge struct {
	fragments map[string][]string
}

func (f *fakeKnowledge) Search(_ context.Context, query string, k int) ([]string, error) {
	hits := f.fragments[query]
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func testRuntime(boxes ...mailbox.System) *Runtime {
	return &Runtime{
		Agents:    &fakeAgents{},
		Mailboxes: boxes,
		Pricing:   pricing.FromRows(nil),
		Knowledge: &fakeKnowledge{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		StepLimit: 100,
		ReviewCap: 3,
		Now: func() time.Time {
			return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
		},
	}
}

func seedState(queue []triage.Email) state.State {
	s := state.New(nil)
	s = s.Set(KeyInboxIndex, 0)
	s = s.Set(KeyQueue, queue)
	s = s.Set(KeyReport, Report{
		Inboxes: []InboxReport{{Inbox: "editorials@nabpress.com", Loaded: len(queue)}},
	})
	return s
}
