package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tripcraft/internal/planner"
)

// Providers accepted by MODEL_PROVIDER.
const (
	ProviderGemini       = "gemini"
	ProviderGeminiLegacy = "gemini-legacy"
	ProviderOpenAI       = "openai"
)

// DefaultOpenAIModel is used for both modes when the openai provider is
// selected without explicit model names.
const DefaultOpenAIModel = "gpt-4o-mini"

type Config struct {
	Port      string `mapstructure:"PORT"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	ModelProvider string `mapstructure:"MODEL_PROVIDER"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`

	GroundedModel     string        `mapstructure:"GROUNDED_MODEL"`
	StructuredModel   string        `mapstructure:"STRUCTURED_MODEL"`
	Temperature       float32       `mapstructure:"MODEL_TEMPERATURE"`
	TopP              float32       `mapstructure:"MODEL_TOP_P"`
	TopK              int32         `mapstructure:"MODEL_TOP_K"`
	ModelTimeout      time.Duration `mapstructure:"MODEL_TIMEOUT"`
	ZeroCoordsPresent bool          `mapstructure:"ZERO_COORDINATES_PRESENT"`

	PostgresURL        string   `mapstructure:"POSTGRES_URL"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var keys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT",
	"MODEL_PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY",
	"GROUNDED_MODEL", "STRUCTURED_MODEL",
	"MODEL_TEMPERATURE", "MODEL_TOP_P", "MODEL_TOP_K", "MODEL_TIMEOUT",
	"ZERO_COORDINATES_PRESENT", "POSTGRES_URL", "CORS_ALLOWED_ORIGINS",
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	defaults := planner.DefaultOptions()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("MODEL_PROVIDER", ProviderGemini)
	v.SetDefault("MODEL_TEMPERATURE", defaults.Temperature)
	v.SetDefault("MODEL_TOP_P", defaults.TopP)
	v.SetDefault("MODEL_TOP_K", defaults.TopK)
	v.SetDefault("MODEL_TIMEOUT", "60s")
	v.SetDefault("ZERO_COORDINATES_PRESENT", defaults.ZeroCoordinatesPresent)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	v.AutomaticEnv()
	// Unmarshal only sees keys viper already knows about.
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ModelProvider = strings.ToLower(strings.TrimSpace(cfg.ModelProvider))
	cfg.applyModelDefaults(defaults)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyModelDefaults fills unset model names with ones the selected provider
// actually serves.
func (c *Config) applyModelDefaults(defaults planner.Options) {
	grounded, structured := defaults.GroundedModel, defaults.StructuredModel
	if c.ModelProvider == ProviderOpenAI {
		grounded, structured = DefaultOpenAIModel, DefaultOpenAIModel
	}
	if c.GroundedModel == "" {
		c.GroundedModel = grounded
	}
	if c.StructuredModel == "" {
		c.StructuredModel = structured
	}
}

func (c *Config) Validate() error {
	switch c.ModelProvider {
	case ProviderGemini, ProviderGeminiLegacy:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when using the %s provider", c.ModelProvider)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when using the openai provider")
		}
	default:
		return fmt.Errorf("unsupported model provider %q", c.ModelProvider)
	}
	if c.GroundedModel == "" || c.StructuredModel == "" {
		return fmt.Errorf("GROUNDED_MODEL and STRUCTURED_MODEL must not be empty")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("MODEL_TEMPERATURE must be within [0, 2], got %v", c.Temperature)
	}
	if c.TopP <= 0 || c.TopP > 1 {
		return fmt.Errorf("MODEL_TOP_P must be within (0, 1], got %v", c.TopP)
	}
	if c.TopK < 1 {
		return fmt.Errorf("MODEL_TOP_K must be positive, got %d", c.TopK)
	}
	return nil
}

// PlannerOptions maps the model settings onto planner.Options.
func (c *Config) PlannerOptions() planner.Options {
	return planner.Options{
		GroundedModel:          c.GroundedModel,
		StructuredModel:        c.StructuredModel,
		Temperature:            c.Temperature,
		TopP:                   c.TopP,
		TopK:                   c.TopK,
		ZeroCoordinatesPresent: c.ZeroCoordsPresent,
	}
}
