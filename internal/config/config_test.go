package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/character-forge/internal/llm"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9090,
		"provider": "openai",
		"api_key": "sk-test",
		"redis_addr": "localhost:6379",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvPort, "9191")
	t.Setenv(EnvProvider, "openai")
	t.Setenv(EnvOpenAIKey, "sk-env")
	t.Setenv(EnvRedisAddr, "redis:6379")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-env", cfg.APIKey)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
}

func TestFromEnv_GeminiProviderPicksGeminiKey(t *testing.T) {
	t.Setenv(EnvProvider, "gemini")
	t.Setenv(EnvOpenAIKey, "sk-openai")
	t.Setenv(EnvGeminiKey, "gm-key")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "gm-key", cfg.APIKey)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	cfg, err := FromEnv()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty config", cfg: Config{}},
		{name: "openai provider", cfg: Config{Provider: "openai"}},
		{name: "gemini provider", cfg: Config{Provider: "gemini"}},
		{name: "unknown provider", cfg: Config{Provider: "llama"}, wantErr: "unknown provider"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port' must be"},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "'port' must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "sk-flag"}
	defaults := Config{APIKey: "sk-file", Provider: "gemini", RedisAddr: "redis:6379", Port: 9000}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "sk-flag", merged.APIKey, "explicit value wins over default")
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "redis:6379", merged.RedisAddr)
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaults_PortFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, defaultPort, merged.Port)
}

func TestLLMConfig(t *testing.T) {
	cfg := Config{Provider: "gemini"}
	assert.Equal(t, llm.ProviderGemini, cfg.LLMConfig().Provider)

	cfg = Config{BaseURL: "http://localhost:9999/v1"}
	llmCfg := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderOpenAI, llmCfg.Provider)
	assert.Equal(t, "http://localhost:9999/v1", llmCfg.BaseURL)
}
