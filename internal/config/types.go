package config

// settings for the dev admin backend
type Config struct {
	Environment         string
	Port                string
	SessionSecret       string
	InstructionsDir     string
	DefaultTenant       string
	GenerationRateLimit string // ulule limiter format, e.g. "30-M"
	CORSAllowedOrigins  []string
}

// settings for the assist CLI
type AssistConfig struct {
	BaseURL       string
	SelectorsPath string
	LogFile       string
}

// where the assist controllers find their elements and endpoints on an admin page
type Selectors struct {
	AuthTokenField  string          `yaml:"auth_token_field"`
	AuthTokenHeader string          `yaml:"auth_token_header"`
	FallbackMessage string          `yaml:"fallback_message"`
	Reply           ReplySelectors  `yaml:"reply"`
	Mailing         MailingSelector `yaml:"mailing"`
}

type ReplySelectors struct {
	Endpoint     string `yaml:"endpoint"`
	Context      string `yaml:"context"`
	Field        string `yaml:"field"`
	Trigger      string `yaml:"trigger"`
	Indicator    string `yaml:"indicator"`
	ErrorDisplay string `yaml:"error_display"`
}

type MailingSelector struct {
	Endpoint string `yaml:"endpoint"`
	Field    string `yaml:"field"`
}
