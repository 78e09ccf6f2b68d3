package generate

import (
	"context"

	"codeberg.org/branchadmin/server/internal/writer"
)

const defaultReviewRating = 5

// drafts texts for a tenant
type Writer interface {
	GenerateReply(ctx context.Context, tenant string, req writer.ReplyRequest) (*writer.Response, error)
	GenerateMailing(ctx context.Context, tenant string, req writer.MailingRequest) (*writer.Response, error)
}

// ReplyRequest represents the request body for a review reply
type ReplyRequest struct {
	ReviewText   string `json:"review_text"`
	ReviewRating *int   `json:"review_rating"` // defaults to 5
	DraftText    string `json:"draft_text"`
}

// ReplyResponse represents the response body for a review reply
type ReplyResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model,omitempty"`
}

// MailingRequest represents the request body for a mailing text
type MailingRequest struct {
	Topic string `json:"topic"`
	Tone  string `json:"tone"`
}

// MailingResponse represents the response body for a mailing text
type MailingResponse struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}
