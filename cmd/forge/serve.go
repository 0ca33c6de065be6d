package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jonathan/character-forge/internal/config"
	"github.com/jonathan/character-forge/internal/generation"
	"github.com/jonathan/character-forge/internal/llm"
	"github.com/jonathan/character-forge/internal/server"
	"github.com/jonathan/character-forge/internal/storage"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for character generation, persistence, and game catalogs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, cleanup, err := buildRepository(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	newGen := generatorFactory(cfg)

	apiKey := cfg.APIKey
	if apiKey == "" {
		// Fall back to a previously stored credential.
		stored, err := repo.GetCredential(ctx)
		if err != nil {
			return fmt.Errorf("failed to read stored credential: %w", err)
		}
		apiKey = stored
	}
	if apiKey == "" {
		log.Println("[SERVE] no API key configured; generation runs offline with fallbacks")
	}

	gen, err := newGen(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	srv, err := server.New(server.Config{Port: cfg.Port}, server.Deps{
		Repo:   repo,
		Gen:    gen,
		NewGen: newGen,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}

// loadServeConfig layers flags over the config file over the environment.
func loadServeConfig() (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return nil, err
		}
		merged := fileCfg.MergeWithDefaults(*cfg)
		cfg = &merged
	} else {
		merged := cfg.MergeWithDefaults(config.Config{})
		cfg = &merged
	}

	if servePort > 0 {
		cfg.Port = servePort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildRepository selects redis-backed or in-memory character storage.
func buildRepository(cfg *config.Config) (storage.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		log.Println("[SERVE] no redis address configured; using in-memory storage")
		return storage.NewInMemoryRepository(), func() {}, nil
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{cfg.RedisAddr},
	})
	repo := storage.NewRedisRepository(&storage.RedisRepoConfig{Client: client})
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("[SERVE] error closing redis client: %v", err)
		}
	}
	return repo, cleanup, nil
}

// generatorFactory builds generation services for a given API key; an empty
// key yields the offline service. The server uses it again when the
// credential endpoints change the stored key.
func generatorFactory(cfg *config.Config) func(ctx context.Context, apiKey string) (*generation.Service, error) {
	llmCfg := cfg.LLMConfig()
	return func(ctx context.Context, apiKey string) (*generation.Service, error) {
		if apiKey == "" {
			return generation.NewService(nil), nil
		}
		client, err := llm.NewClient(ctx, llmCfg, apiKey)
		if err != nil {
			return nil, err
		}
		return generation.NewService(client), nil
	}
}
