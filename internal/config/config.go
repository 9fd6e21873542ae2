package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env             string        `envconfig:"APP_ENV" default:"development"`
	Port            string        `envconfig:"PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	Model     ModelConfig
	RateLimit RateLimitConfig

	// OpenAI configuration
	OpenAIAPIKey     string `envconfig:"OPENAI_API_KEY"`
	OpenAICoachModel string `envconfig:"OPENAI_COACH_MODEL" default:"gpt-4o-mini"`

	// Langfuse configuration
	LangfuseBaseURL   string `envconfig:"LANGFUSE_BASE_URL"`
	LangfusePublicKey string `envconfig:"LANGFUSE_PUBLIC_KEY"`
	LangfuseSecretKey string `envconfig:"LANGFUSE_SECRET_KEY"`
	LangfuseEnv       string `envconfig:"LANGFUSE_ENV" default:"development"`

	// Generic OTLP/HTTP trace endpoint, used when Langfuse is not configured
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	SentryDSN string `envconfig:"SENTRY_DSN"`
}

// ModelConfig locates the exported stress classifier.
type ModelConfig struct {
	Path       string `envconfig:"MODEL_PATH" default:"student_stress_model.onnx"`
	RuntimeLib string `envconfig:"ONNX_RUNTIME_LIB"`
	InputName  string `envconfig:"ONNX_INPUT_NAME" default:"float_input"`
	OutputName string `envconfig:"ONNX_LABEL_OUTPUT" default:"output_label"`
}

// RateLimitConfig bounds prediction traffic. A zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}

// LangfuseEnabled reports whether all Langfuse credentials are set.
func (c *Config) LangfuseEnabled() bool {
	return c.LangfuseBaseURL != "" && c.LangfusePublicKey != "" && c.LangfuseSecretKey != ""
}
