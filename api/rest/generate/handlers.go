package generate

import (
	"net/http"
	"strings"

	"codeberg.org/branchadmin/server/internal/auth"
	"codeberg.org/branchadmin/server/internal/errors"
	"codeberg.org/branchadmin/server/internal/logger"
	"codeberg.org/branchadmin/server/internal/writer"
	"github.com/gin-gonic/gin"
)

// creates a handler for review reply generation
func ReplyHandler(w Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReplyRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		tenant, ok := auth.GetTenant(c)
		if !ok {
			errors.MissingTenant(c)
			return
		}

		rating := defaultReviewRating
		if req.ReviewRating != nil {
			rating = *req.ReviewRating
		}

		resp, err := w.GenerateReply(c.Request.Context(), tenant, writer.ReplyRequest{
			ReviewText:   req.ReviewText,
			ReviewRating: rating,
			DraftText:    req.DraftText,
		})
		if err != nil {
			errors.GenerationFailed(c, "Failed to generate a reply. Please try again later.", err)
			return
		}

		logger.Info("review reply generated",
			"tenant", tenant,
			"rating", rating,
			"has_draft", req.DraftText != "",
			"model", resp.Model,
		)

		c.JSON(http.StatusOK, ReplyResponse{
			Reply: resp.Text,
			Model: resp.Model,
		})
	}
}

// creates a handler for mailing text generation
func MailingHandler(w Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MailingRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		topic := strings.TrimSpace(req.Topic)
		if topic == "" {
			errors.BadRequest(c, "Topic is required", nil)
			return
		}

		tenant, ok := auth.GetTenant(c)
		if !ok {
			errors.MissingTenant(c)
			return
		}

		resp, err := w.GenerateMailing(c.Request.Context(), tenant, writer.MailingRequest{
			Topic: topic,
			Tone:  req.Tone,
		})
		if err != nil {
			errors.GenerationFailed(c, "Failed to generate the mailing text. Please try again later.", err)
			return
		}

		logger.Info("mailing text generated",
			"tenant", tenant,
			"model", resp.Model,
		)

		c.JSON(http.StatusOK, MailingResponse{
			Text:  resp.Text,
			Model: resp.Model,
		})
	}
}
