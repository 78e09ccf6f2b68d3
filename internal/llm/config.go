package llm

import (
	"fmt"
	"os"
	"strconv"
)

// loadConfig loads generator configuration from environment variables
func loadConfig() (*Config, error) {
	provider := Provider(os.Getenv("GENERATOR_PROVIDER"))
	if provider == "" {
		provider = ProviderAnthropic // default
	}

	var apiKey, model string

	switch provider {
	case ProviderAnthropic:
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
		model = defaultAnthropicModel
	case ProviderOpenAI:
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		model = defaultOpenAIModel
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", provider)
	}

	if m := os.Getenv("GENERATOR_MODEL"); m != "" {
		model = m
	}

	maxTokens := 600 // default
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			maxTokens = val
		}
	}

	temperature := float32(0.7) // default
	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature = float32(val)
		}
	}

	return &Config{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		BaseURL:     os.Getenv("GENERATOR_BASE_URL"),
	}, nil
}
