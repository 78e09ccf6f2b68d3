package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loads backend configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	rateLimit := os.Getenv("GENERATION_RATE_LIMIT")
	if rateLimit == "" {
		rateLimit = "30-M"
	}

	var origins []string
	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return &Config{
		Environment:         environment,
		Port:                port,
		SessionSecret:       sessionSecret,
		InstructionsDir:     os.Getenv("INSTRUCTIONS_DIR"),
		DefaultTenant:       os.Getenv("DEFAULT_TENANT"),
		GenerationRateLimit: rateLimit,
		CORSAllowedOrigins:  origins,
	}, nil
}

// loads assist CLI configuration from environment variables
func LoadAssistEnvironment() *AssistConfig {
	if err := godotenv.Load(); err != nil {
		_ = err
	}

	baseURL := os.Getenv("ADMIN_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	logFile := os.Getenv("ASSIST_LOG_FILE")
	if logFile == "" {
		logFile = "assist.log"
	}

	return &AssistConfig{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		SelectorsPath: os.Getenv("ASSIST_SELECTORS"),
		LogFile:       logFile,
	}
}
