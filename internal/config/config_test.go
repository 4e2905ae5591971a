package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "none", cfg.AI.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.GeminiModel)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nWIZARD_SESSION_TTL=15m\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("WIZARD_SESSION_TTL")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
}

func validConfig(mutate func(*Config)) Config {
	cfg := Config{
		JWTSecret:       "s",
		GinMode:         "release",
		SessionTTL:      time.Hour,
		SessionSweepDur: time.Minute,
		AI:              AIConfig{Provider: "none", Timeout: time.Second},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing secret", validConfig(func(c *Config) { c.JWTSecret = "" }), "JWT_SECRET"},
		{"gemini without key", validConfig(func(c *Config) { c.AI.Provider = "gemini" }), "GEMINI_API_KEY"},
		{"openai without key", validConfig(func(c *Config) { c.AI.Provider = "openai" }), "OPENAI_API_KEY"},
		{"unknown provider", validConfig(func(c *Config) { c.AI.Provider = "llama" }), "unsupported"},
		{"bad gin mode", validConfig(func(c *Config) { c.GinMode = "prod" }), "GIN_MODE"},
		{"bad ttl", validConfig(func(c *Config) { c.SessionTTL = 0 }), "WIZARD_SESSION_TTL"},
		{"bad sweep", validConfig(func(c *Config) { c.SessionSweepDur = 0 }), "WIZARD_SESSION_SWEEP"},
		{"bad ai timeout", validConfig(func(c *Config) { c.AI.Timeout = 0 }), "AI_TIMEOUT"},
		{"ok", validConfig(func(c *Config) { c.AI.Provider = "openai"; c.AI.OpenAIAPIKey = "k" }), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
