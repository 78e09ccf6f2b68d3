package llm

import (
	"fmt"
)

// creates a text generator configured from environment variables
func NewGenerator() (TextGenerator, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}

	return NewGeneratorWithConfig(config)
}

// creates a text generator with explicit configuration
func NewGeneratorWithConfig(config *Config) (TextGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Provider {
	case ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
			BaseURL:     config.BaseURL,
		}), nil
	case ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
			BaseURL:     config.BaseURL,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", config.Provider)
	}
}
