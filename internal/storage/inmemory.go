package storage

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/character-forge/internal/types"
)

// InMemoryRepository is an in-memory implementation of Repository.
// Useful for testing and development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]types.Character
	credential string
	clock      func() time.Time
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters: make(map[string]types.Character),
		clock:      time.Now,
	}
}

// WithClock overrides the id timestamp source, used by tests.
func (r *InMemoryRepository) WithClock(clock func() time.Time) *InMemoryRepository {
	r.clock = clock
	return r
}

func (r *InMemoryRepository) SaveCharacter(_ context.Context, ch types.Character) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := characterID(ch, r.clock())
	r.characters[id] = ch
	return id, nil
}

func (r *InMemoryRepository) GetCharacter(_ context.Context, id string) (types.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, exists := r.characters[id]
	if !exists {
		return types.Character{}, ErrNotFound
	}
	return ch, nil
}

func (r *InMemoryRepository) ListCharacters(_ context.Context) (map[string]types.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	characters := make(map[string]types.Character, len(r.characters))
	for id, ch := range r.characters {
		characters[id] = ch
	}
	return characters, nil
}

func (r *InMemoryRepository) DeleteCharacter(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.characters, id)
	return nil
}

func (r *InMemoryRepository) ClearCharacters(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.characters = make(map[string]types.Character)
	return nil
}

func (r *InMemoryRepository) GetCredential(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.credential, nil
}

func (r *InMemoryRepository) SetCredential(_ context.Context, credential string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credential = credential
	return nil
}

func (r *InMemoryRepository) ClearCredential(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credential = ""
	return nil
}
