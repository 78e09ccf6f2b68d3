package main

import (
	"fmt"

	"codeberg.org/branchadmin/server/api/rest/admin"
	"codeberg.org/branchadmin/server/internal/auth"
	"codeberg.org/branchadmin/server/internal/config"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := auth.NewCookieStore(cfg.SessionSecret, cfg.Environment == "production")
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	templates, err := admin.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin templates: %w", err)
	}

	router := gin.Default()
	router.SetHTMLTemplate(templates)

	server := &Server{
		config:   cfg,
		csrf:     auth.NewCSRF(store, auth.DefaultHeaderName),
		services: services,
		router:   router,
	}

	if err := RegisterRoutes(router, server); err != nil {
		return nil, err
	}

	return server, nil
}
