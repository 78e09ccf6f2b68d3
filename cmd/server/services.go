package main

import (
	"fmt"

	"codeberg.org/branchadmin/server/internal/config"
	"codeberg.org/branchadmin/server/internal/llm"
	"codeberg.org/branchadmin/server/internal/logger"
	"codeberg.org/branchadmin/server/internal/writer"
)

// creates the generator and the writer on top of it
func InitializeServices(cfg *config.Config) (*Services, error) {
	llmClient, err := llm.NewGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	instructions := writer.NewFileInstructions(cfg.InstructionsDir)
	if cfg.InstructionsDir == "" {
		logger.Warn("INSTRUCTIONS_DIR not set, every tenant uses the default tone of voice")
	}

	logger.Info("generator initialized", "model", llmClient.Model())

	return &Services{
		LLM:          llmClient,
		Writer:       writer.New(llmClient, instructions),
		Instructions: instructions,
	}, nil
}
