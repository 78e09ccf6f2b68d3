package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// returns the selector profile matching the pages served by the admin backend
func DefaultSelectors() Selectors {
	return Selectors{
		AuthTokenField:  "input[name=csrfmiddlewaretoken]",
		AuthTokenHeader: "X-CSRFToken",
		FallbackMessage: "Network error. Please try again.",
		Reply: ReplySelectors{
			Endpoint:     "/branch/generate-reply/",
			Context:      ".review-context",
			Field:        "#id_reply_text",
			Trigger:      "#ai-generate-reply-btn",
			Indicator:    "#ai-reply-spinner",
			ErrorDisplay: "#ai-reply-error",
		},
		Mailing: MailingSelector{
			Endpoint: "/branch/generate-mailing/",
			Field:    "#id_text",
		},
	}
}

// reads a YAML selector profile; keys left out keep their default values
func LoadSelectors(path string) (Selectors, error) {
	selectors := DefaultSelectors()

	if path == "" {
		return selectors, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from operator config
	if err != nil {
		return selectors, fmt.Errorf("failed to read selectors file: %w", err)
	}

	if err := yaml.Unmarshal(data, &selectors); err != nil {
		return selectors, fmt.Errorf("failed to parse selectors file: %w", err)
	}

	if selectors.AuthTokenHeader == "" {
		return selectors, fmt.Errorf("auth_token_header cannot be empty")
	}

	return selectors, nil
}
