package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/character-forge/internal/config"
)

func TestLoadServeConfig_FlagOverridesEverything(t *testing.T) {
	t.Setenv(config.EnvPort, "7000")

	content := `{"port": 8000, "provider": "openai"}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	serveConfig = path
	servePort = 9000
	t.Cleanup(func() { serveConfig = ""; servePort = 0 })

	cfg, err := loadServeConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
}

func TestLoadServeConfig_FileOverEnv(t *testing.T) {
	t.Setenv(config.EnvOpenAIKey, "sk-env")
	t.Setenv(config.EnvRedisAddr, "env-redis:6379")

	content := `{"api_key": "sk-file"}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	serveConfig = path
	t.Cleanup(func() { serveConfig = "" })

	cfg, err := loadServeConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk-file", cfg.APIKey)
	// Env fills what the file leaves unset.
	assert.Equal(t, "env-redis:6379", cfg.RedisAddr)
}

func TestGeneratorFactory_EmptyKeyIsOffline(t *testing.T) {
	factory := generatorFactory(&config.Config{})

	gen, err := factory(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, gen.Online())
}

func TestGeneratorFactory_KeyGoesOnline(t *testing.T) {
	factory := generatorFactory(&config.Config{})

	gen, err := factory(context.Background(), "sk-test")
	require.NoError(t, err)
	assert.True(t, gen.Online())
}

func TestBuildRepository_InMemoryWithoutRedis(t *testing.T) {
	repo, cleanup, err := buildRepository(&config.Config{})
	require.NoError(t, err)
	defer cleanup()

	assert.NotNil(t, repo)
}
