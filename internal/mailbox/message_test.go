package mailbox

import (
	"strings"
	"testing"
)

func TestBuildReply(t *testing.T) {
	msg, err := buildReply(
		"editorials@nabpress.com",
		"john@example.com",
		"Publishing Invitation - Journal of Testing",
		"msg-123",
		"Dear John,\n\nThank you for your interest.",
	)
	if err != nil {
		t.Fatalf("buildReply() unexpected error: %v", err)
	}

	text := string(msg)
	for _, want := range []string{
		"From: <editorials@nabpress.com>",
		"To: <john@example.com>",
		"Subject: Re: Publishing Invitation - Journal of Testing",
		"In-Reply-To: msg-123",
		"References: msg-123",
		"Thank you for your interest.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q\nmessage:\n%s", want, text)
		}
	}
}

func TestEncodeReplyRoundTrip(t *testing.T) {
	raw, err := encodeReply("a@x.com", "b@y.com", "Hi", "id-1", "body text")
	if err != nil {
		t.Fatalf("encodeReply() unexpected error: %v", err)
	}
	if raw == "" {
		t.Fatal("encodeReply() returned empty string")
	}
	if strings.ContainsAny(raw, "+/") {
		t.Error("raw encoding is not URL-safe")
	}
}
