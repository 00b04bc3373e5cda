package workflow

import (
	"context"
	"testing"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

func TestFinalizeDraftsAndRetires(t *testing.T) {
	box := &fakeMailbox{address: "editorials@nabpress.com"}
	rt := testRuntime(box)

	email := triage.Email{
		ID:          "msg-2",
		ThreadID:    "thread-2",
		SenderEmail: "dana@example.com",
		Subject:     "Submission question",
	}
	queue := []triage.Email{{ID: "msg-1"}, email}

	s := seedState(queue)
	s = s.Set(KeyEmail, email)
	s = s.Set(KeyReply, "reply body")
	s = s.Set(KeyInquiries, []triage.Inquiry{triage.InquiryFeesOrCharges})
	s = s.Set(KeyContext, "old context")
	s = s.Set(KeyFeedback, "needs work")
	s = s.Set(KeyTrials, 2)

	s, err := finalize(context.Background(), rt, s)
	if err != nil {
		t.Fatalf("finalize error: %v", err)
	}

	if len(box.drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(box.drafts))
	}
	draft := box.drafts[0]
	if draft.msgID != "msg-2" || draft.threadID != "thread-2" {
		t.Errorf("draft threading = %+v", draft)
	}
	if draft.recipient != "dana@example.com" || draft.body != "reply body" {
		t.Errorf("draft content = %+v", draft)
	}

	remaining, err := extractValue[[]triage.Email](s, KeyQueue)
	if err != nil {
		t.Fatalf("extract queue: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != "msg-1" {
		t.Errorf("queue after finalize = %+v, want tail popped", remaining)
	}

	report, err := extractValue[Report](s, KeyReport)
	if err != nil {
		t.Fatalf("extract report: %v", err)
	}
	if report.Inboxes[0].Drafted != 1 {
		t.Errorf("drafted = %d, want 1", report.Inboxes[0].Drafted)
	}

	// per-email scratch must reset for the next queue entry
	if got, _ := extractValue[string](s, KeyContext); got != "" {
		t.Errorf("context not reset: %q", got)
	}
	if got, _ := extractValue[string](s, KeyFeedback); got != "" {
		t.Errorf("feedback not reset: %q", got)
	}
	if got := counter(s, KeyTrials); got != 0 {
		t.Errorf("trials not reset: %d", got)
	}
	if inquiries, _ := extractValue[[]triage.Inquiry](s, KeyInquiries); len(inquiries) != 0 {
		t.Errorf("inquiries not reset: %v", inquiries)
	}
}

func TestFinalizeSendsWhenConfigured(t *testing.T) {
	box := &fakeMailbox{address: "editorials@nabpress.com"}
	rt := testRuntime(box)
	rt.SendReplies = true

	email := triage.Email{ID: "msg-1", ThreadID: "t-1", SenderEmail: "dana@example.com"}

	s := seedState([]triage.Email{email})
	s = s.Set(KeyEmail, email)
	s = s.Set(KeyReply, "reply body")

	s, err := finalize(context.Background(), rt, s)
	if err != nil {
		t.Fatalf("finalize error: %v", err)
	}

	if len(box.sent) != 1 || len(box.drafts) != 0 {
		t.Fatalf("sent = %d, drafts = %d, want send only", len(box.sent), len(box.drafts))
	}

	report, err := extractValue[Report](s, KeyReport)
	if err != nil {
		t.Fatalf("extract report: %v", err)
	}
	if report.Inboxes[0].Sent != 1 || report.Inboxes[0].Drafted != 0 {
		t.Errorf("report = %+v, want one sent", report.Inboxes[0])
	}
}

func TestSkipRetiresWithoutReply(t *testing.T) {
	box := &fakeMailbox{address: "editorials@nabpress.com"}
	rt := testRuntime(box)

	email := triage.Email{ID: "msg-1", Subject: "Newsletter"}

	s := seedState([]triage.Email{email})
	s = s.Set(KeyEmail, email)

	s, err := skip(context.Background(), rt, s)
	if err != nil {
		t.Fatalf("skip error: %v", err)
	}

	if len(box.drafts) != 0 || len(box.sent) != 0 {
		t.Error("skip must not touch the mailbox")
	}

	remaining, err := extractValue[[]triage.Email](s, KeyQueue)
	if err != nil {
		t.Fatalf("extract queue: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("queue = %+v, want empty", remaining)
	}

	report, err := extractValue[Report](s, KeyReport)
	if err != nil {
		t.Fatalf("extract report: %v", err)
	}
	if report.Inboxes[0].Skipped != 1 {
		t.Errorf("skipped = %d, want 1", report.Inboxes[0].Skipped)
	}
}
