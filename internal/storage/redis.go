package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/character-forge/internal/types"
)

const (
	charactersKey = "characters"
	credentialKey = "credential:api_key"
)

// redisRepo implements Repository on a single Redis hash plus one string key
// for the credential.
type redisRepo struct {
	client redis.UniversalClient
	clock  func() time.Time
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// Clock overrides the id timestamp source, used by tests.
	Clock func() time.Time
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &redisRepo{
		client: cfg.Client,
		clock:  clock,
	}
}

func (r *redisRepo) SaveCharacter(ctx context.Context, ch types.Character) (string, error) {
	id := characterID(ch, r.clock())

	data, err := json.Marshal(ch)
	if err != nil {
		return "", fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.HSet(ctx, charactersKey, id, data).Err(); err != nil {
		return "", fmt.Errorf("failed to save character: %w", err)
	}
	return id, nil
}

func (r *redisRepo) GetCharacter(ctx context.Context, id string) (types.Character, error) {
	data, err := r.client.HGet(ctx, charactersKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return types.Character{}, ErrNotFound
	}
	if err != nil {
		return types.Character{}, fmt.Errorf("failed to get character: %w", err)
	}

	var ch types.Character
	if err := json.Unmarshal([]byte(data), &ch); err != nil {
		return types.Character{}, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return ch, nil
}

func (r *redisRepo) ListCharacters(ctx context.Context) (map[string]types.Character, error) {
	entries, err := r.client.HGetAll(ctx, charactersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	characters := make(map[string]types.Character, len(entries))
	for id, data := range entries {
		var ch types.Character
		if err := json.Unmarshal([]byte(data), &ch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal character %q: %w", id, err)
		}
		characters[id] = ch
	}
	return characters, nil
}

func (r *redisRepo) DeleteCharacter(ctx context.Context, id string) error {
	if err := r.client.HDel(ctx, charactersKey, id).Err(); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

func (r *redisRepo) ClearCharacters(ctx context.Context) error {
	if err := r.client.Del(ctx, charactersKey).Err(); err != nil {
		return fmt.Errorf("failed to clear characters: %w", err)
	}
	return nil
}

func (r *redisRepo) GetCredential(ctx context.Context) (string, error) {
	credential, err := r.client.Get(ctx, credentialKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}
	return credential, nil
}

func (r *redisRepo) SetCredential(ctx context.Context, credential string) error {
	if err := r.client.Set(ctx, credentialKey, credential, 0).Err(); err != nil {
		return fmt.Errorf("failed to set credential: %w", err)
	}
	return nil
}

func (r *redisRepo) ClearCredential(ctx context.Context) error {
	if err := r.client.Del(ctx, credentialKey).Err(); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
