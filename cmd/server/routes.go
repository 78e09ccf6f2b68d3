package main

import (
	"time"

	"codeberg.org/branchadmin/server/api/rest/admin"
	"codeberg.org/branchadmin/server/api/rest/generate"
	"codeberg.org/branchadmin/server/api/rest/health"
	"codeberg.org/branchadmin/server/internal/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	if origins := server.config.CORSAllowedOrigins; len(origins) > 0 {
		router.Use(CORSMiddleware(origins, server.csrf.HeaderName()))
	}

	router.GET("/health", health.Handler(server.services.LLM.Model()))
	router.GET("/ping", health.PingHandler)

	root := router.Group("")

	admin.RegisterRoutes(root, server.csrf, server.config.DefaultTenant)

	return generate.RegisterRoutes(root, server.services.Writer, generate.RouteConfig{
		CSRF:          server.csrf,
		DefaultTenant: server.config.DefaultTenant,
		RateLimit:     server.config.GenerationRateLimit,
	})
}

// allows admin pages served from other origins to call the generation endpoints
func CORSMiddleware(origins []string, tokenHeader string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", tokenHeader, auth.TenantHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
