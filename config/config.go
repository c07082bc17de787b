// Package config resolves application configuration from the process
// environment, optionally seeded from a local .env file.
package config

import (
	"errors"
	"os"
	"strconv"

	"ai_text_completion/settings"

	"github.com/joho/godotenv"
)

// CredentialEnv is the environment variable holding the API credential.
const CredentialEnv = "OPENROUTER_API_KEY"

// DefaultModel is used when no model override is present.
const DefaultModel = "meta-llama/llama-3.2-3b-instruct:free"

// Config represents the application configuration.
type Config struct {
	APIKey            string
	Model             string
	Temperature       float64
	MaxTokens         int
	APITimeoutSeconds int
	LogLevel          string
	LogFile           string
}

// Default returns a configuration with default values.
func Default() Config {
	return Config{
		APIKey:            "",
		Model:             DefaultModel,
		Temperature:       settings.DefaultTemperature,
		MaxTokens:         settings.DefaultMaxTokens,
		APITimeoutSeconds: 30,
		LogLevel:          "info",
		LogFile:           "",
	}
}

// Load builds the configuration: defaults, then a local .env file if one
// exists, then environment variable overrides. A usable config is always
// returned; the error only reports a malformed .env file (a missing one is
// not an error) so the caller can surface it once logging is set up. A
// missing credential is left empty for the caller to handle.
func Load() (Config, error) {
	err := LoadDotEnv(".env")
	return applyEnvironmentOverrides(Default()), err
}

// LoadDotEnv loads environment variables from path. Missing files are
// ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// LoadCredential reads the API credential from the environment. It returns
// an empty string when unset; absence is not an error here.
func LoadCredential() string {
	return os.Getenv(CredentialEnv)
}

// applyEnvironmentOverrides layers environment variables over cfg. Invalid
// values are ignored and the existing value kept.
func applyEnvironmentOverrides(cfg Config) Config {
	if key := LoadCredential(); key != "" {
		cfg.APIKey = key
	}

	if model := os.Getenv("AITC_MODEL"); model != "" {
		cfg.Model = model
	}

	if tempStr := os.Getenv("AITC_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 64); err == nil &&
			temp >= settings.MinTemperature && temp <= settings.MaxTemperature {
			cfg.Temperature = temp
		}
	}

	if tokensStr := os.Getenv("AITC_MAX_TOKENS"); tokensStr != "" {
		if tokens, err := strconv.Atoi(tokensStr); err == nil &&
			tokens >= settings.MinMaxTokens && tokens <= settings.MaxMaxTokens {
			cfg.MaxTokens = tokens
		}
	}

	if timeoutStr := os.Getenv("AITC_API_TIMEOUT"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil && timeout > 0 {
			cfg.APITimeoutSeconds = timeout
		}
	}

	if level := os.Getenv("AITC_LOG_LEVEL"); level != "" {
		switch level {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = level
		}
	}

	if logFile := os.Getenv("AITC_LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}

	return cfg
}

// Settings returns the generation settings carried by the configuration.
func (c Config) Settings() settings.Settings {
	return settings.Settings{
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
}
