package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Relay providers understood by the relay package.
const (
	ProviderFormSubmit = "formsubmit"
	ProviderNetlify    = "netlify"
)

// RelayConfig holds settings for the outbound form-handling endpoint.
type RelayConfig struct {
	Provider string        `env:"RELAY_PROVIDER" envDefault:"formsubmit"`
	Endpoint string        `env:"RELAY_ENDPOINT"`
	Timeout  time.Duration `env:"RELAY_TIMEOUT" envDefault:"10s"`
	// FormName is sent as form-name to static-site form handlers.
	FormName string `env:"RELAY_FORM_NAME" envDefault:"altas-clientes"`
	NextURL  string `env:"RELAY_NEXT_URL"`
	Template string `env:"RELAY_TEMPLATE" envDefault:"table"`
	Captcha  bool   `env:"RELAY_CAPTCHA" envDefault:"false"`
}

// FormConfig holds settings for the HTML form pages.
type FormConfig struct {
	ResetDelay   time.Duration `env:"FORM_RESET_DELAY" envDefault:"3s"`
	DefaultLang  string        `env:"DEFAULT_LANG" envDefault:"es"`
	RateLimitMax int           `env:"RATE_LIMIT_MAX" envDefault:"20"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string `env:"APP_HOST" envDefault:"localhost:8080"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Relay    RelayConfig
	Form     FormConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings the service cannot run with.
// An empty relay endpoint is allowed; /health reports it as unavailable.
func (c *AppConfig) Validate() error {
	switch c.Relay.Provider {
	case ProviderFormSubmit, ProviderNetlify:
	default:
		return fmt.Errorf("invalid RELAY_PROVIDER %q", c.Relay.Provider)
	}
	if c.Relay.Timeout <= 0 {
		return fmt.Errorf("RELAY_TIMEOUT must be positive")
	}
	if c.Form.ResetDelay < 0 {
		return fmt.Errorf("FORM_RESET_DELAY must not be negative")
	}
	if c.Form.RateLimitMax < 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must not be negative")
	}
	return nil
}
