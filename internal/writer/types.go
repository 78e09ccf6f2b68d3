package writer

import (
	"context"

	"codeberg.org/branchadmin/server/internal/llm"
)

// resolves tone-of-voice instructions for a tenant
type InstructionSource interface {
	ReplyInstructions(ctx context.Context, tenant string) string
	MarketingInstructions(ctx context.Context, tenant string) string
}

// drafts review replies and mailing copy for a tenant
type Writer struct {
	generator    llm.TextGenerator
	instructions InstructionSource
}

// contains the inputs for a review reply
type ReplyRequest struct {
	ReviewText   string
	ReviewRating int
	DraftText    string // optional, improved rather than replaced
}

// contains the inputs for a mailing text
type MailingRequest struct {
	Topic string
	Tone  string // defaults to DefaultTone
}

// contains the generated text and metadata
type Response struct {
	Text         string `json:"text"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}
