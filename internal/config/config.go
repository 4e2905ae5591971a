package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"LOG_ENCODING" envDefault:"json"`

	PostgresURL string `env:"POSTGRES_URL"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`

	SessionTTL      time.Duration `env:"WIZARD_SESSION_TTL" envDefault:"2h"`
	SessionSweepDur time.Duration `env:"WIZARD_SESSION_SWEEP" envDefault:"5m"`

	AI AIConfig
}

type AIConfig struct {
	Provider       string        `env:"AI_PROVIDER" envDefault:"none"`
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	GeminiModel    string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	OpenAIAPIKey   string        `env:"OPENAI_API_KEY"`
	OpenAIModel    string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	EmbeddingModel string        `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	Timeout        time.Duration `env:"AI_TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported GIN_MODE %q", c.GinMode)
	}
	if c.SessionTTL <= 0 {
		return errors.New("WIZARD_SESSION_TTL must be positive")
	}

	switch c.AI.Provider {
	case "none":
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when using Gemini provider")
		}
	case "openai":
		if c.AI.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q, use 'none', 'gemini' or 'openai'", c.AI.Provider)
	}
	if c.SessionSweepDur <= 0 {
		return errors.New("WIZARD_SESSION_SWEEP must be positive")
	}
	if c.AI.Timeout <= 0 {
		return errors.New("AI_TIMEOUT must be positive")
	}
	return nil
}
