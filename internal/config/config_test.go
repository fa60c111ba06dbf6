// ABOUTME: Tests for the configuration loader
// ABOUTME: Verifies environment variable parsing, defaults and validation
package config

import (
	"errors"
	"os"
	"testing"

	"github.com/harper/bookchunk/internal/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BOOKCHUNK_DATA_DIR", "GEMINI_API_KEY", "BOOKCHUNK_LLM_BASE_URL",
		"BOOKCHUNK_LLM_MODEL", "BOOKCHUNK_LLM_TEMPERATURE", "BOOKCHUNK_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}

	if cfg.DataDir != "" {
		t.Errorf("DataDir = %q, want empty", cfg.DataDir)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %s, want %s", cfg.Model, DefaultModel)
	}
	if cfg.Temperature != DefaultTemperature {
		t.Errorf("Temperature = %g, want %g", cfg.Temperature, DefaultTemperature)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestFromEnv_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOOKCHUNK_DATA_DIR", "/tmp/books")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("BOOKCHUNK_LLM_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("BOOKCHUNK_LLM_MODEL", "gemini-2.5-flash")
	t.Setenv("BOOKCHUNK_LLM_TEMPERATURE", "1.5")
	t.Setenv("BOOKCHUNK_LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}

	if cfg.DataDir != "/tmp/books" {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %s", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("BaseURL = %s", cfg.BaseURL)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %s", cfg.Model)
	}
	if cfg.Temperature != 1.5 {
		t.Errorf("Temperature = %g", cfg.Temperature)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"temperature not a number", "BOOKCHUNK_LLM_TEMPERATURE", "warm"},
		{"temperature too high", "BOOKCHUNK_LLM_TEMPERATURE", "2.5"},
		{"temperature negative", "BOOKCHUNK_LLM_TEMPERATURE", "-0.1"},
		{"unknown log level", "BOOKCHUNK_LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireAPIKey(); !errors.Is(err, models.ErrMissingCredential) {
		t.Errorf("RequireAPIKey() = %v, want ErrMissingCredential", err)
	}

	cfg.APIKey = "   "
	if err := cfg.RequireAPIKey(); !errors.Is(err, models.ErrMissingCredential) {
		t.Errorf("RequireAPIKey() with blank key = %v, want ErrMissingCredential", err)
	}

	cfg.APIKey = "key"
	if err := cfg.RequireAPIKey(); err != nil {
		t.Errorf("RequireAPIKey() = %v, want nil", err)
	}
}
