// ABOUTME: Centralized configuration for bookchunk
// ABOUTME: Loads .env and environment variables into a validated Config
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/harper/bookchunk/internal/models"
)

const (
	DefaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel       = "gemini-2.5-pro"
	DefaultTemperature = 0.2
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds all configuration for chunking and analysis runs
type Config struct {
	// Storage root; empty means the XDG data directory
	DataDir string `env:"BOOKCHUNK_DATA_DIR"`

	// Analysis service settings
	APIKey      string  `env:"GEMINI_API_KEY"`
	BaseURL     string  `env:"BOOKCHUNK_LLM_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`
	Model       string  `env:"BOOKCHUNK_LLM_MODEL" envDefault:"gemini-2.5-pro"`
	Temperature float32 `env:"BOOKCHUNK_LLM_TEMPERATURE" envDefault:"0.2"`

	LogLevel string `env:"BOOKCHUNK_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file, then the environment
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses the process environment without touching .env
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("BOOKCHUNK_LLM_TEMPERATURE must be 0-2, got %g", c.Temperature)
	}
	level := strings.ToLower(c.LogLevel)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("BOOKCHUNK_LOG_LEVEL must be one of %s, got %q", strings.Join(logLevels, "|"), c.LogLevel)
}

// RequireAPIKey fails when no analysis credential is configured
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY is not set", models.ErrMissingCredential)
	}
	return nil
}
