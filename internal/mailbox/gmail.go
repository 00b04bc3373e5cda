package mailbox

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

type gmailSystem struct {
	svc      *gmail.Service
	inbox    string
	lookback time.Duration
	max      int64
	logger   *slog.Logger
}

// New creates a Gmail-backed mailbox System delegated to the given
// inbox address using service account credentials.
func New(ctx context.Context, cfg *Config, inbox string, logger *slog.Logger) (System, error) {
	jwt, err := google.JWTConfigFromJSON([]byte(cfg.Credentials), gmail.GmailModifyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	jwt.Subject = inbox

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}

	return &gmailSystem{
		svc:      svc,
		inbox:    inbox,
		lookback: cfg.LookbackDuration(),
		max:      cfg.MaxResults,
		logger:   logger.With("system", "mailbox", "inbox", inbox),
	}, nil
}

func (g *gmailSystem) Address() string {
	return g.inbox
}

func (g *gmailSystem) ListUnreplied(ctx context.Context) ([]triage.Email, error) {
	recent, err := g.listRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}
	if len(recent) == 0 {
		return nil, nil
	}

	drafted, err := g.threadsWithDrafts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	var emails []triage.Email
	for _, msg := range latestPerThread(recent) {
		if drafted[msg.ThreadId] {
			continue
		}

		email, err := g.loadEmail(ctx, msg.Id)
		if err != nil {
			return nil, fmt.Errorf("%w: message %s: %w", ErrListFailed, msg.Id, err)
		}
		if isBounce(email.SenderEmail) {
			continue
		}
		emails = append(emails, email)
	}

	g.logger.InfoContext(ctx, "unreplied threads listed", "count", len(emails))
	return emails, nil
}

// listRecent queries messages received inside the lookback window.
func (g *gmailSystem) listRecent(ctx context.Context) ([]*gmail.Message, error) {
	now := time.Now()
	query := fmt.Sprintf("after:%d before:%d", now.Add(-g.lookback).Unix(), now.Unix())

	res, err := g.svc.Users.Messages.List(g.inbox).
		Q(query).
		MaxResults(g.max).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return res.Messages, nil
}

// threadsWithDrafts returns the set of thread ids that already carry a
// draft reply. This is what keeps re-runs idempotent: a thread drafted
// in a prior pass is never loaded again.
func (g *gmailSystem) threadsWithDrafts(ctx context.Context) (map[string]bool, error) {
	res, err := g.svc.Users.Drafts.List(g.inbox).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	threads := make(map[string]bool, len(res.Drafts))
	for _, d := range res.Drafts {
		if d.Message != nil {
			threads[d.Message.ThreadId] = true
		}
	}
	return threads, nil
}

func (g *gmailSystem) loadEmail(ctx context.Context, id string) (triage.Email, error) {
	msg, err := g.svc.Users.Messages.Get(g.inbox, id).Format("full").Context(ctx).Do()
	if err != nil {
		return triage.Email{}, fmt.Errorf("get message: %w", err)
	}

	sender, subject := headerValues(msg.Payload)
	name, address := parseSender(sender)

	body := ""
	if msg.Payload != nil {
		body = stripQuoted(plainTextBody(msg.Payload))
	}

	return triage.Email{
		ID:          msg.Id,
		ThreadID:    msg.ThreadId,
		Sender:      name,
		SenderEmail: address,
		Subject:     subject,
		Body:        body,
	}, nil
}

func (g *gmailSystem) CreateDraft(ctx context.Context, msgID, threadID, recipient, subject, body string) (string, error) {
	raw, err := encodeReply(g.inbox, recipient, subject, msgID, body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDraftFailed, err)
	}

	draft, err := g.svc.Users.Drafts.Create(g.inbox, &gmail.Draft{
		Message: &gmail.Message{
			Raw:      raw,
			ThreadId: threadID,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDraftFailed, err)
	}

	g.logger.InfoContext(ctx, "draft created", "draft_id", draft.Id, "thread_id", threadID)
	return draft.Id, nil
}

func (g *gmailSystem) SendReply(ctx context.Context, msgID, threadID, recipient, subject, body string) error {
	raw, err := encodeReply(g.inbox, recipient, subject, msgID, body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	sent, err := g.svc.Users.Messages.Send(g.inbox, &gmail.Message{
		Raw:      raw,
		ThreadId: threadID,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	g.logger.InfoContext(ctx, "reply sent", "message_id", sent.Id, "thread_id", threadID)
	return nil
}

// latestPerThread keeps the first message seen for each thread. Gmail
// returns newest first, so the first occurrence is the latest reply.
func latestPerThread(messages []*gmail.Message) []*gmail.Message {
	seen := make(map[string]bool, len(messages))
	var latest []*gmail.Message
	for _, m := range messages {
		if seen[m.ThreadId] {
			continue
		}
		seen[m.ThreadId] = true
		latest = append(latest, m)
	}
	return latest
}

func headerValues(payload *gmail.MessagePart) (sender, subject string) {
	if payload == nil {
		return "", ""
	}
	for _, h := range payload.Headers {
		switch h.Name {
		case "From":
			sender = h.Value
		case "Subject":
			subject = h.Value
		}
	}
	return sender, subject
}
