// Package storage persists character snapshots and the provider credential.
// Characters are stored as a key-value record: the key is the character's
// name, or a synthesized race-class-timestamp string when no name exists.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/character-forge/internal/types"
)

// ErrNotFound is returned when no character exists under the requested id.
var ErrNotFound = errors.New("character not found")

// Repository defines the interface for character and credential persistence
type Repository interface {
	// SaveCharacter stores a character snapshot and returns its id
	SaveCharacter(ctx context.Context, ch types.Character) (string, error)
	// GetCharacter retrieves a character by id
	GetCharacter(ctx context.Context, id string) (types.Character, error)
	// ListCharacters retrieves all stored characters keyed by id
	ListCharacters(ctx context.Context) (map[string]types.Character, error)
	// DeleteCharacter removes a character; deleting a missing id is a no-op
	DeleteCharacter(ctx context.Context, id string) error
	// ClearCharacters removes every stored character
	ClearCharacters(ctx context.Context) error

	// GetCredential returns the stored API credential, or "" when unset
	GetCredential(ctx context.Context) (string, error)
	// SetCredential stores the API credential
	SetCredential(ctx context.Context, credential string) error
	// ClearCredential removes the stored API credential
	ClearCredential(ctx context.Context) error
}

// characterID derives the storage id for a character: the name when present,
// otherwise race-class-timestamp so unnamed characters still get a unique,
// readable key.
func characterID(ch types.Character, now time.Time) string {
	if ch.Name != "" {
		return ch.Name
	}
	return fmt.Sprintf("%s-%s-%d", ch.Race.Name, ch.Class.Name, now.UnixMilli())
}
