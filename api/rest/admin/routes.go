package admin

import (
	"codeberg.org/branchadmin/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers the admin change-form pages; the engine must carry Templates()
func RegisterRoutes(router *gin.RouterGroup, csrf *auth.CSRF, defaultTenant string) {
	admin := router.Group("/admin", auth.TenantMiddleware(defaultTenant))

	admin.GET("/reviews/reply", ReviewReplyHandler(csrf))
	admin.GET("/mailings/new", MailingHandler(csrf))
}
