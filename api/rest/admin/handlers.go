package admin

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"codeberg.org/branchadmin/server/internal/auth"
	"codeberg.org/branchadmin/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const defaultReviewRating = 5

//go:embed templates/*.html
var templateFS embed.FS

// parses the embedded admin page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// renders the review change form the reply assistant attaches to
//
// Query parameters text, rating and reply prefill the form.
func ReviewReplyHandler(csrf *auth.CSRF) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := csrf.Token(c)
		if err != nil {
			errors.InternalError(c, "failed to issue CSRF token", err)
			return
		}

		tenant, _ := auth.GetTenant(c)

		rating := defaultReviewRating
		if raw := c.Query("rating"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				rating = v
			}
		}

		c.HTML(http.StatusOK, "review_reply.html", ReviewReplyPage{
			Tenant:       tenant,
			Token:        token,
			ReviewText:   c.Query("text"),
			ReviewRating: rating,
			ReplyText:    c.Query("reply"),
		})
	}
}

// renders the mailing add form the mailing assistant attaches to
func MailingHandler(csrf *auth.CSRF) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := csrf.Token(c)
		if err != nil {
			errors.InternalError(c, "failed to issue CSRF token", err)
			return
		}

		tenant, _ := auth.GetTenant(c)

		c.HTML(http.StatusOK, "mailing_form.html", MailingPage{
			Tenant: tenant,
			Token:  token,
			Text:   c.Query("topic"),
		})
	}
}
