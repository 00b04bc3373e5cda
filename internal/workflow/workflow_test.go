package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/kaymen99/publishing-gmail-automation/internal/agents"
	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

func TestRouteConditions(t *testing.T) {
	tests := []struct {
		category triage.Category
		route    triage.Route
	}{
		{triage.CategoryPaperAlreadyPublished, triage.RouteDirect},
		{triage.CategoryAfterSubmission, triage.RouteDirect},
		{triage.CategoryNotInterested, triage.RouteDirect},
		{triage.CategoryWantToPublish, triage.RouteAugmented},
		{triage.CategoryShareAnotherPaper, triage.RouteAugmented},
		{triage.CategoryUnrelated, triage.RouteSkip},
	}

	routes := []triage.Route{triage.RouteDirect, triage.RouteAugmented, triage.RouteSkip}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			s := state.New(nil).Set(KeyCategory, tt.category)

			for _, route := range routes {
				got := routeIs(route)(s)
				want := route == tt.route
				if got != want {
					t.Errorf("routeIs(%v) = %v, want %v", route, got, want)
				}
			}
		})
	}

	t.Run("missing category matches nothing", func(t *testing.T) {
		s := state.New(nil)
		for _, route := range routes {
			if routeIs(route)(s) {
				t.Errorf("routeIs(%v) = true on empty state", route)
			}
		}
	})
}

func TestReviewApproved(t *testing.T) {
	rt := testRuntime()
	rt.ReviewCap = 2
	approved := reviewApproved(rt)

	tests := []struct {
		name     string
		feedback string
		trials   int
		expected bool
	}{
		{"ready verdict", agents.VerdictReady, 0, true},
		{"feedback below cap", "tone is off", 1, false},
		{"feedback at cap", "tone is off", 2, false},
		{"budget exhausted", "tone is off", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := state.New(nil)
			s = s.Set(KeyFeedback, tt.feedback)
			s = s.Set(KeyTrials, tt.trials)

			if got := approved(s); got != tt.expected {
				t.Errorf("approved = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReviewLoopUpdatesReplyAndTrials(t *testing.T) {
	rt := testRuntime()

	fake := rt.Agents.(*fakeAgents)
	fake.reviewFn = func(original, draft string) (string, error) {
		return "shorten the opening", nil
	}
	fake.rewriteFn = func(original, draft, feedback string) (string, error) {
		if feedback != "shorten the opening" {
			t.Errorf("feedback = %q", feedback)
		}
		return draft + " v2", nil
	}

	email := triage.Email{Subject: "Inquiry", Body: "original body"}

	s := seedState([]triage.Email{email})
	s = s.Set(KeyEmail, email)
	s = s.Set(KeyReply, "draft")

	s, err := review(context.Background(), rt, s)
	if err != nil {
		t.Fatalf("review error: %v", err)
	}
	if reviewApproved(rt)(s) {
		t.Fatal("draft approved despite feedback")
	}

	s, err = rewrite(context.Background(), rt, s)
	if err != nil {
		t.Fatalf("rewrite error: %v", err)
	}

	reply, err := extractValue[string](s, KeyReply)
	if err != nil {
		t.Fatalf("extract reply: %v", err)
	}
	if reply != "draft v2" {
		t.Errorf("reply = %q, want %q", reply, "draft v2")
	}
	if got := counter(s, KeyTrials); got != 1 {
		t.Errorf("trials = %d, want 1", got)
	}
}

func TestAdvanceStepEnforcesCeiling(t *testing.T) {
	rt := testRuntime()
	rt.StepLimit = 3

	s := state.New(nil)
	var err error
	for range 3 {
		s, err = advanceStep(rt, s)
		if err != nil {
			t.Fatalf("advanceStep error before ceiling: %v", err)
		}
	}

	if _, err = advanceStep(rt, s); !errors.Is(err, ErrStepLimit) {
		t.Errorf("error = %v, want ErrStepLimit", err)
	}
}

func TestAdvanceStepUnlimitedWhenZero(t *testing.T) {
	rt := testRuntime()
	rt.StepLimit = 0

	s := state.New(nil)
	var err error
	for range 50 {
		if s, err = advanceStep(rt, s); err != nil {
			t.Fatalf("advanceStep error: %v", err)
		}
	}
	if got := counter(s, KeySteps); got != 50 {
		t.Errorf("steps = %d, want 50", got)
	}
}

func TestExecuteRequiresInboxes(t *testing.T) {
	rt := testRuntime()

	if _, err := Execute(context.Background(), rt); !errors.Is(err, ErrNoInboxes) {
		t.Errorf("error = %v, want ErrNoInboxes", err)
	}
}

func TestInboxesRemain(t *testing.T) {
	rt := testRuntime(&fakeMailbox{address: "a@nabpress.com"})
	remaining := inboxesRemain(rt)

	if !remaining(state.New(nil).Set(KeyInboxIndex, 0)) {
		t.Error("index 0 of 1 should remain")
	}
	if remaining(state.New(nil).Set(KeyInboxIndex, 1)) {
		t.Error("index 1 of 1 should be done")
	}
}

func TestExecuteDrainsInboxes(t *testing.T) {
	editorial := &fakeMailbox{
		address: "editorials@nabpress.com",
		emails: []triage.Email{
			{
				ID:          "msg-1",
				ThreadID:    "thread-1",
				Sender:      "Submission Portal",
				SenderEmail: "portal@nabpress.com",
				Subject:     "New submission - Annual Journal of Physics",
				Body:        "This is a new submission for the Annual Journal of Physics.",
			},
			{
				ID:          "msg-2",
				ThreadID:    "thread-2",
				Sender:      "Conference Organizer",
				SenderEmail: "organizer@events.com",
				Subject:     "Sponsorship opportunity",
				Body:        "Would your organization sponsor our upcoming conference?",
			},
		},
	}
	support := &fakeMailbox{address: "support@nabpress.com"}

	rt := testRuntime(editorial, support)

	var classified []string
	rt.Agents = &fakeAgents{
		intent: func(body string) (triage.Category, error) {
			classified = append(classified, body)
			return triage.CategoryUnrelated, nil
		},
	}

	report, err := Execute(context.Background(), rt)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(report.Inboxes) != 2 {
		t.Fatalf("inbox reports = %d, want 2", len(report.Inboxes))
	}

	first := report.Inboxes[0]
	if first.Inbox != "editorials@nabpress.com" {
		t.Errorf("first inbox = %s, want editorials@nabpress.com", first.Inbox)
	}
	if first.Loaded != 2 || first.Drafted != 1 || first.Skipped != 1 || first.Sent != 0 {
		t.Errorf("first inbox counts = %+v, want loaded 2, drafted 1, skipped 1", first)
	}

	second := report.Inboxes[1]
	if second.Inbox != "support@nabpress.com" {
		t.Errorf("second inbox = %s, want support@nabpress.com", second.Inbox)
	}
	if second.Loaded != 0 || second.Drafted != 0 || second.Skipped != 0 {
		t.Errorf("empty inbox counts = %+v, want all zero", second)
	}

	for _, inbox := range report.Inboxes {
		if inbox.Drafted+inbox.Sent+inbox.Skipped != inbox.Loaded {
			t.Errorf("inbox %s: outcomes %d+%d+%d != loaded %d",
				inbox.Inbox, inbox.Drafted, inbox.Sent, inbox.Skipped, inbox.Loaded)
		}
	}

	// the queue drains tail-first, so the sponsorship email is
	// classified before the portal confirmation short-circuits
	if len(classified) != 1 {
		t.Fatalf("classifier calls = %d, want 1", len(classified))
	}
	if strings.Contains(classified[0], submissionMarker) {
		t.Error("portal confirmation should bypass the classifier")
	}

	if len(editorial.drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(editorial.drafts))
	}
	draft := editorial.drafts[0]
	if draft.msgID != "msg-1" || draft.threadID != "thread-1" {
		t.Errorf("draft threading = %s/%s, want msg-1/thread-1", draft.msgID, draft.threadID)
	}
	if draft.recipient != "portal@nabpress.com" {
		t.Errorf("draft recipient = %s, want portal@nabpress.com", draft.recipient)
	}
	if len(editorial.sent) != 0 || len(support.drafts) != 0 {
		t.Error("no replies should be sent and the empty inbox should stay untouched")
	}

	if report.Steps <= 0 || report.Steps > rt.StepLimit {
		t.Errorf("steps = %d, want within (0, %d]", report.Steps, rt.StepLimit)
	}
	if report.StartedAt.IsZero() || report.CompletedAt.IsZero() {
		t.Error("report timestamps should be set")
	}
}

func TestExecuteReviewsOnlyGroundedDrafts(t *testing.T) {
	box := &fakeMailbox{
		address: "editorials@nabpress.com",
		emails: []triage.Email{
			{
				ID:          "msg-1",
				ThreadID:    "thread-1",
				Sender:      "Submission Portal",
				SenderEmail: "portal@nabpress.com",
				Subject:     "New submission - Annual Journal of Physics",
				Body:        "This is a new submission for the Annual Journal of Physics.",
			},
		},
	}

	rt := testRuntime(box)
	rt.Review = true

	var reviews int
	rt.Agents = &fakeAgents{
		reviewFn: func(original, draft string) (string, error) {
			reviews++
			return agents.VerdictReady, nil
		},
	}

	report, err := Execute(context.Background(), rt)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if reviews != 0 {
		t.Errorf("review calls = %d, want 0 for a templated reply", reviews)
	}
	if len(box.drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(box.drafts))
	}
	if report.Inboxes[0].Drafted != 1 {
		t.Errorf("drafted = %d, want 1", report.Inboxes[0].Drafted)
	}
}
