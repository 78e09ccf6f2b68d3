package main

import (
	"codeberg.org/branchadmin/server/internal/auth"
	"codeberg.org/branchadmin/server/internal/config"
	"codeberg.org/branchadmin/server/internal/llm"
	"codeberg.org/branchadmin/server/internal/writer"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the admin backend
type Server struct {
	config   *config.Config
	csrf     *auth.CSRF
	services *Services
	router   *gin.Engine
}

// holds all external service clients (LLM, writer)
type Services struct {
	LLM          llm.TextGenerator
	Writer       *writer.Writer
	Instructions *writer.FileInstructions
}
