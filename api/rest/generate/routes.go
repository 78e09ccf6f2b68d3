package generate

import (
	"fmt"

	"codeberg.org/branchadmin/server/internal/auth"
	"codeberg.org/branchadmin/server/internal/errors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// configures the branch generation routes
type RouteConfig struct {
	CSRF          *auth.CSRF
	DefaultTenant string
	RateLimit     string // e.g. "30-M", empty disables limiting
}

// registers generation routes under /branch
func RegisterRoutes(router *gin.RouterGroup, w Writer, cfg RouteConfig) error {
	middleware := []gin.HandlerFunc{cfg.CSRF.Middleware()}

	if cfg.RateLimit != "" {
		limit, err := RateLimitMiddleware(cfg.RateLimit)
		if err != nil {
			return err
		}
		middleware = append(middleware, limit)
	}

	middleware = append(middleware, auth.TenantMiddleware(cfg.DefaultTenant))

	branch := router.Group("/branch", middleware...)
	{
		branch.POST("/generate-reply/", ReplyHandler(w))
		branch.POST("/generate-mailing/", MailingHandler(w))
	}

	return nil
}

// limits generation calls per client IP, answering 429 with an error body
func RateLimitMiddleware(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "Too many generation requests. Please wait a minute.")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "rate limiter failed", err)
		}),
	), nil
}
