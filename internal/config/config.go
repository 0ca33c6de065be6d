// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/character-forge/internal/llm"
)

// Config represents the service configuration. Values can come from a JSON
// file, environment variables, or CLI flags; missing values use defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// LLM
	Provider string `json:"provider,omitempty"` // "openai" or "gemini"
	APIKey   string `json:"api_key,omitempty"`  // Provider API key
	BaseURL  string `json:"base_url,omitempty"` // Override for the provider API endpoint

	// Storage
	RedisAddr string `json:"redis_addr,omitempty"` // Redis address; empty uses in-memory storage

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Environment variable names recognized by FromEnv.
const (
	EnvPort      = "PORT"
	EnvProvider  = "LLM_PROVIDER"
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
	EnvBaseURL   = "LLM_BASE_URL"
	EnvRedisAddr = "REDIS_ADDR"
)

const defaultPort = 8080

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. The API key is taken
// from the variable matching the selected provider, falling back to
// OPENAI_API_KEY when no provider is set.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Provider:  os.Getenv(EnvProvider),
		BaseURL:   os.Getenv(EnvBaseURL),
		RedisAddr: os.Getenv(EnvRedisAddr),
	}

	switch llm.Provider(cfg.Provider) {
	case llm.ProviderGemini:
		cfg.APIKey = os.Getenv(EnvGeminiKey)
	default:
		cfg.APIKey = os.Getenv(EnvOpenAIKey)
	}

	if port := os.Getenv(EnvPort); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid %s value %q: %w", EnvPort, port, err)
		}
		cfg.Port = n
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for the API key since the service can run
// without one and serve offline fallbacks.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch llm.Provider(c.Provider) {
	case "", llm.ProviderOpenAI, llm.ProviderGemini:
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = defaultPort
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig translates the service configuration into an LLM client config.
func (c *Config) LLMConfig() *llm.Config {
	var base *llm.Config
	switch llm.Provider(c.Provider) {
	case llm.ProviderGemini:
		base = llm.DefaultGeminiConfig()
	default:
		base = llm.DefaultOpenAIConfig()
	}
	if c.BaseURL != "" {
		base.BaseURL = c.BaseURL
	}
	return base
}
