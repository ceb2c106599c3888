package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config is the process configuration. GraphQLURL is optional: when set,
// sign-ups go to that endpoint instead of the in-process resolver.
type Config struct {
	MainLanguage      string        `env:"MAIN_LANGUAGE" envDefault:"uk"`
	FallbackLanguage  string        `env:"FALLBACK_LANGUAGE" envDefault:"en"`
	HTTPAddr          string        `env:"HTTP_ADDR" envDefault:"localhost:3000"`
	MockAddr          string        `env:"MOCK_ADDR" envDefault:"localhost:4000"`
	WebsiteURL        string        `env:"WEBSITE_URL" envDefault:"http://localhost:3000"`
	GraphQLURL        string        `env:"GRAPHQL_URL"`
	APIVersion        string        `env:"API_VERSION"`
	APISchemaURL      string        `env:"API_SCHEMA_URL" envDefault:"https://raw.githubusercontent.com/VilnaCRM-Org/user-service/{version}/.github/openapi-spec/spec.yaml"`
	GraphQLSchemaURL  string        `env:"GRAPHQL_SCHEMA_URL" envDefault:"https://raw.githubusercontent.com/VilnaCRM-Org/user-service/{version}/.github/graphql-spec/spec"`
	SchemaPath        string        `env:"SCHEMA_PATH" envDefault:"static/swagger-schema.json"`
	GraphQLSchemaPath string        `env:"GRAPHQL_SCHEMA_PATH" envDefault:"static/schema.graphql"`
	StaticDir         string        `env:"STATIC_DIR" envDefault:"static"`
	LocalesDir        string        `env:"LOCALES_DIR" envDefault:"locales"`
	LocalizationPath  string        `env:"LOCALIZATION_PATH" envDefault:"internal/infrastructure/i18n/localization.json"`
	FetchTimeout      time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	OTelEndpoint      string        `env:"OTEL_ENDPOINT"`
	OTelEnabled       bool          `env:"OTEL_ENABLED" envDefault:"true"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate only checks presence and shape; values are otherwise used as given.
func (c *Config) validate() error {
	for name, value := range map[string]string{
		"MAIN_LANGUAGE":     c.MainLanguage,
		"FALLBACK_LANGUAGE": c.FallbackLanguage,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("config: %s is required and cannot be empty", name)
		}
		if _, err := language.Parse(value); err != nil {
			return fmt.Errorf("config: %s is not a language tag (%q): %w", name, value, err)
		}
	}

	urls := map[string]string{"WEBSITE_URL": c.WebsiteURL}
	if c.GraphQLURL != "" {
		urls["GRAPHQL_URL"] = c.GraphQLURL
	}
	for name, value := range urls {
		parsed, err := url.Parse(value)
		if err != nil {
			return fmt.Errorf("config: %s is invalid (%q): %w", name, value, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: %s is invalid (%q): missing scheme or host", name, value)
		}
	}

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config: FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}

	return nil
}
