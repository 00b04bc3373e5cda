package mailbox

import (
	"encoding/base64"
	"regexp"
	"strings"

	"google.golang.org/api/gmail/v1"
)

var (
	addressRegex = regexp.MustCompile(`<(.*?)>`)

	// Common reply separators across the languages the inboxes receive.
	// Everything from the first match onward is quoted history.
	replyMarkerRegex = regexp.MustCompile(
		`(?ms)(^On\s.*?wrote:|^Le\s.*?écrit :|^Am\s.*?schrieb:|^Il\s.*?ha scritto:|` +
			`^El\s.*?escribió:|^Em\s.*?escreveu:|^From:\s.*?$|^Sent:\s.*?$|.*?@\S+\s*wrote:)`,
	)

	quotedLineRegex = regexp.MustCompile(`(?m)^>.*$\n*`)
)

// parseSender splits a From header into display name and address.
// "John Doe <john@x.com>" yields ("John Doe", "john@x.com"); a bare
// address is returned as both.
func parseSender(from string) (name, address string) {
	if m := addressRegex.FindStringSubmatch(from); m != nil {
		name = strings.TrimSpace(strings.Split(from, "<")[0])
		name = strings.Trim(name, `"`)
		return name, m[1]
	}
	trimmed := strings.TrimSpace(from)
	return trimmed, trimmed
}

// stripQuoted removes quoted thread history: everything from the first
// reply separator onward, plus any remaining ">"-prefixed lines.
func stripQuoted(body string) string {
	if loc := replyMarkerRegex.FindStringIndex(body); loc != nil {
		body = body[:loc[0]]
	}
	body = quotedLineRegex.ReplaceAllString(body, "")
	return strings.TrimSpace(body)
}

// isBounce reports whether the sender is a delivery-failure address.
func isBounce(sender string) bool {
	s := strings.ToLower(sender)
	return strings.Contains(s, "postmaster@") || strings.Contains(s, "mailer-daemon@")
}

// plainTextBody walks the MIME tree for the first text/plain part.
func plainTextBody(payload *gmail.MessagePart) string {
	if payload.MimeType == "text/plain" && payload.Body != nil && payload.Body.Data != "" {
		return decodeBody(payload.Body.Data)
	}
	for _, part := range payload.Parts {
		mime := strings.ToLower(part.MimeType)
		if strings.HasPrefix(mime, "text/") || strings.HasPrefix(mime, "multipart/") {
			if body := plainTextBody(part); body != "" {
				return body
			}
		}
	}
	if payload.Body != nil && payload.Body.Data != "" && payload.MimeType == "" {
		return decodeBody(payload.Body.Data)
	}
	return ""
}

// decodeBody accepts both padded and unpadded base64url payloads.
func decodeBody(data string) string {
	if b, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(b)
	}
	if b, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(b)
	}
	return ""
}
