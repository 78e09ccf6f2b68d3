package writer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/branchadmin/server/internal/llm"
	"codeberg.org/branchadmin/server/internal/logger"
)

const (
	replyMaxTokens   = 500
	mailingMaxTokens = 600
)

var ErrEmptyResponse = errors.New("generator returned empty text")

func New(generator llm.TextGenerator, instructions InstructionSource) *Writer {
	if instructions == nil {
		instructions = StaticInstructions{}
	}

	return &Writer{
		generator:    generator,
		instructions: instructions,
	}
}

// writes a ready-to-send reply to a guest review
func (w *Writer) GenerateReply(ctx context.Context, tenant string, req ReplyRequest) (*Response, error) {
	systemPrompt := buildReplyPrompt(w.instructions.ReplyInstructions(ctx, tenant))

	return w.generate(ctx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages:     []llm.Message{{Role: "user", Content: buildReplyMessage(req)}},
		MaxTokens:    replyMaxTokens,
	})
}

// writes the body of a marketing mailing about a topic
func (w *Writer) GenerateMailing(ctx context.Context, tenant string, req MailingRequest) (*Response, error) {
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = DefaultTone
	}

	systemPrompt := buildMailingPrompt(w.instructions.MarketingInstructions(ctx, tenant), tone)

	return w.generate(ctx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages:     []llm.Message{{Role: "user", Content: buildMailingMessage(req.Topic)}},
		MaxTokens:    mailingMaxTokens,
	})
}

func (w *Writer) generate(ctx context.Context, req llm.TextGenerationRequest) (*Response, error) {
	resp, err := w.generator.GenerateText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate text: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	logger.FromContext(ctx).Debug("text generated",
		"model", w.generator.Model(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)

	return &Response{
		Text:         text,
		Model:        w.generator.Model(),
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}
