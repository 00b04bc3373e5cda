package mailbox

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-message/mail"
)

// buildReply assembles the RFC 822 reply message. In-Reply-To and
// References carry the original message id so the provider threads the
// reply into the existing conversation.
func buildReply(from, to, subject, originalMsgID, body string) ([]byte, error) {
	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Address: from}})
	h.SetAddressList("To", []*mail.Address{{Address: to}})
	h.SetSubject("Re: " + subject)
	h.Set("In-Reply-To", originalMsgID)
	h.Set("References", originalMsgID)

	var buf bytes.Buffer
	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("create message writer: %w", err)
	}

	if _, err := io.WriteString(w, body); err != nil {
		w.Close()
		return nil, fmt.Errorf("write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close message writer: %w", err)
	}

	return buf.Bytes(), nil
}

// encodeReply builds the reply and encodes it for the Gmail raw field.
func encodeReply(from, to, subject, originalMsgID, body string) (string, error) {
	msg, err := buildReply(from, to, subject, originalMsgID, body)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(msg), nil
}
