package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kaymen99/publishing-gmail-automation/internal/prompts"
	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
	"github.com/kaymen99/publishing-gmail-automation/pkg/formatting"
)

type system struct {
	classifier gaconfig.AgentConfig
	writer     gaconfig.AgentConfig
	logger     *slog.Logger
}

// New creates the inference system. The classifier config drives the
// cheap analysis stages; the writer config drives long-form drafting
// and rewriting.
func New(classifier, writer gaconfig.AgentConfig, logger *slog.Logger) System {
	return &system{
		classifier: classifier,
		writer:     writer,
		logger:     logger.With("system", "agents"),
	}
}

func (s *system) chat(ctx context.Context, cfg gaconfig.AgentConfig, stage prompts.Stage, sections ...prompts.Section) (string, error) {
	prompt, err := prompts.Compose(stage, sections...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", stage, err)
	}

	a, err := agent.New(&cfg)
	if err != nil {
		return "", fmt.Errorf("%s: create agent: %w", stage, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: chat call: %w", stage, err)
	}

	return resp.Content(), nil
}

func (s *system) Summarize(ctx context.Context, body string) (string, error) {
	content, err := s.chat(ctx, s.classifier, prompts.StageSummarize,
		prompts.Section{Title: "Email Content", Body: body},
	)
	if err != nil {
		return "", err
	}
	return formatting.Text(content), nil
}

func (s *system) DetectIntent(ctx context.Context, body string) (triage.Category, error) {
	content, err := s.chat(ctx, s.classifier, prompts.StageIntent,
		prompts.Section{Title: "Email Content", Body: body},
	)
	if err != nil {
		return "", err
	}

	parsed, err := formatting.Parse[intentResponse](content)
	if err != nil {
		return "", fmt.Errorf("%w: intent: %w", ErrContract, err)
	}

	category, err := triage.ParseCategory(parsed.Intent)
	if err != nil {
		return "", fmt.Errorf("%w: intent %q: %w", ErrContract, parsed.Intent, err)
	}

	s.logger.InfoContext(ctx, "intent detected", "category", category)
	return category, nil
}

func (s *system) ExtractInquiries(ctx context.Context, body string) ([]triage.Inquiry, error) {
	content, err := s.chat(ctx, s.classifier, prompts.StageInquiries,
		prompts.Section{Title: "Email Content", Body: body},
	)
	if err != nil {
		return nil, err
	}

	parsed, err := formatting.Parse[inquiriesResponse](content)
	if err != nil {
		return nil, fmt.Errorf("%w: inquiries: %w", ErrContract, err)
	}

	tags := make([]triage.Inquiry, 0, len(parsed.Inquiries))
	for _, raw := range parsed.Inquiries {
		tag, err := triage.ParseInquiry(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: inquiry %q: %w", ErrContract, raw, err)
		}
		tags = append(tags, tag)
	}

	s.logger.InfoContext(ctx, "inquiries extracted", "count", len(tags))
	return tags, nil
}

func (s *system) SynthesizeContext(ctx context.Context, inquiries []triage.Inquiry, documents string) (string, error) {
	content, err := s.chat(ctx, s.classifier, prompts.StageSynthesize,
		prompts.Section{Title: "Inquiries", Body: joinInquiries(inquiries)},
		prompts.Section{Title: "Past Email Replies", Body: documents},
	)
	if err != nil {
		return "", err
	}
	return formatting.Text(content), nil
}

func (s *system) WriteTemplated(ctx context.Context, template, recipient string) (string, error) {
	content, err := s.chat(ctx, s.classifier, prompts.StageTemplated,
		prompts.Section{Title: "Template Response", Body: template},
		prompts.Section{Title: "Recipient Information", Body: recipient},
	)
	if err != nil {
		return "", err
	}
	return formatting.Text(content), nil
}

func (s *system) WriteGrounded(ctx context.Context, body, context string) (string, error) {
	content, err := s.chat(ctx, s.writer, prompts.StageGrounded,
		prompts.Section{Title: "Sender Email", Body: body},
		prompts.Section{Title: "Previous Emails Context", Body: context},
	)
	if err != nil {
		return "", err
	}
	return formatting.Text(content), nil
}

func (s *system) UpdateInformation(ctx context.Context, draft, recipient, information string) (string, error) {
	content, err := s.chat(ctx, s.classifier, prompts.StageUpdate,
		prompts.Section{Title: "Email to Update", Body: draft},
		prompts.Section{Title: "Recipient Details", Body: recipient},
		prompts.Section{Title: "Updated Information (Deadline, Costs)", Body: information},
	)
	if err != nil {
		return "", err
	}
	return formatting.Text(content), nil
}

func (s *system) Review(ctx context.Context, original, draft string) (string, error) {
	content, err := s.chat(ctx, s.classifier, prompts.StageReview,
		prompts.Section{Title: "Sender's Email", Body: original},
		prompts.Section{Title: "Reply Email", Body: draft},
	)
	if err != nil {
		return "", err
	}

	parsed, err := formatting.Parse[reviewResponse](content)
	if err != nil {
		return "", fmt.Errorf("%w: review: %w", ErrContract, err)
	}
	if parsed.Feedback == "" {
		return "", fmt.Errorf("%w: review: empty feedback", ErrContract)
	}

	return parsed.Feedback, nil
}

func (s *system) Rewrite(ctx context.Context, original, draft, feedback string) (string, error) {
	content, err := s.chat(ctx, s.writer, prompts.StageRewrite,
		prompts.Section{Title: "Email We Are Responding To", Body: original},
		prompts.Section{Title: "Generated Email", Body: draft},
		prompts.Section{Title: "Editor Feedback", Body: feedback},
	)
	if err != nil {
		return "", err
	}
	return formatting.Text(content), nil
}

func joinInquiries(inquiries []triage.Inquiry) string {
	parts := make([]string, len(inquiries))
	for i, tag := range inquiries {
		parts[i] = string(tag)
	}
	return strings.Join(parts, "\n")
}
