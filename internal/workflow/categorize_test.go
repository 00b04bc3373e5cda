package workflow

import (
	"context"
	"strings"
	"testing"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

func TestCategorizeSubmissionMarker(t *testing.T) {
	rt := testRuntime()

	fake := rt.Agents.(*fakeAgents)
	fake.intent = func(string) (triage.Category, error) {
		t.Fatal("intent detection should not run for submission confirmations")
		return "", nil
	}

	email := triage.Email{
		Subject: "New submission received",
		Body:    "Hello,\n\nThis is a new submission for the Journal of Modern Physics.",
	}

	s, err := categorize(context.Background(), rt, seedState([]triage.Email{email}))
	if err != nil {
		t.Fatalf("categorize error: %v", err)
	}

	category, err := extractValue[triage.Category](s, KeyCategory)
	if err != nil {
		t.Fatalf("extract category: %v", err)
	}
	if category != triage.CategoryAfterSubmission {
		t.Errorf("category = %q, want %q", category, triage.CategoryAfterSubmission)
	}
}

func TestCategorizeNormalization(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected func(t *testing.T, normalized string)
	}{
		{
			name: "long body summarized",
			body: strings.Repeat("We would like to publish our research findings. ", 30),
			expected: func(t *testing.T, normalized string) {
				if normalized != "summary" {
					t.Errorf("body = %q, want summarized", normalized)
				}
			},
		},
		{
			name: "near-empty body framed",
			body: "Yes, interested.",
			expected: func(t *testing.T, normalized string) {
				if !strings.HasPrefix(normalized, outreachNote) {
					t.Errorf("body missing outreach note: %q", normalized)
				}
				if !strings.HasSuffix(normalized, "Yes, interested.") {
					t.Errorf("body lost original content: %q", normalized)
				}
			},
		},
		{
			name: "ordinary body unchanged",
			body: "Could you share the submission guidelines for your journal?",
			expected: func(t *testing.T, normalized string) {
				if normalized != "Could you share the submission guidelines for your journal?" {
					t.Errorf("body = %q, want unchanged", normalized)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := testRuntime()

			var classified string
			fake := rt.Agents.(*fakeAgents)
			fake.intent = func(body string) (triage.Category, error) {
				classified = body
				return triage.CategoryWantToPublish, nil
			}

			email := triage.Email{Subject: "Inquiry", Body: tt.body}

			s, err := categorize(context.Background(), rt, seedState([]triage.Email{email}))
			if err != nil {
				t.Fatalf("categorize error: %v", err)
			}

			tt.expected(t, classified)

			// the normalized body must replace the original downstream
			current, err := extractValue[triage.Email](s, KeyEmail)
			if err != nil {
				t.Fatalf("extract email: %v", err)
			}
			if current.Body != classified {
				t.Errorf("stored body %q differs from classified body %q", current.Body, classified)
			}
		})
	}
}

func TestCategorizeProcessesQueueTail(t *testing.T) {
	rt := testRuntime()

	var classified string
	fake := rt.Agents.(*fakeAgents)
	fake.intent = func(body string) (triage.Category, error) {
		classified = body
		return triage.CategoryUnrelated, nil
	}

	queue := []triage.Email{
		{Subject: "first", Body: "Older email still waiting in the queue."},
		{Subject: "second", Body: "Most recently loaded email in the queue."},
	}

	if _, err := categorize(context.Background(), rt, seedState(queue)); err != nil {
		t.Fatalf("categorize error: %v", err)
	}

	if classified != queue[1].Body {
		t.Errorf("classified %q, want queue tail %q", classified, queue[1].Body)
	}
}
