package auth

import (
	"net"
	"strings"

	"codeberg.org/branchadmin/server/internal/errors"
	"github.com/gin-gonic/gin"
)

const TenantHeader = "X-Tenant"

// resolves the company a request acts for: header, then subdomain, then fallback
func ResolveTenant(c *gin.Context, fallback string) string {
	if tenant := strings.TrimSpace(c.GetHeader(TenantHeader)); tenant != "" {
		return strings.ToLower(tenant)
	}

	if tenant := subdomain(c.Request.Host); tenant != "" {
		return tenant
	}

	return fallback
}

// stores the resolved tenant in the context, answering 400 when none resolves
func TenantMiddleware(fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant := ResolveTenant(c, fallback)
		if tenant == "" {
			errors.MissingTenant(c)
			c.Abort()
			return
		}

		c.Set(tenantContextKey, tenant)
		c.Next()
	}
}

// extracts the tenant after TenantMiddleware
func GetTenant(c *gin.Context) (string, bool) {
	tenant := c.GetString(tenantContextKey)
	return tenant, tenant != ""
}

func subdomain(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	if host == "" || net.ParseIP(host) != nil {
		return ""
	}

	labels := strings.Split(strings.ToLower(host), ".")

	// "acme.localhost" has a subdomain, "localhost" and "example.com" do not
	minLabels := 3
	if labels[len(labels)-1] == "localhost" {
		minLabels = 2
	}

	if len(labels) < minLabels || labels[0] == "www" {
		return ""
	}

	return labels[0]
}
