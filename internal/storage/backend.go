// Package storage is the persistence boundary for character records. A Backend
// reads and writes the whole name-keyed document; the codec in this package owns
// the on-disk record layout and its migrations.
package storage

//go:generate mockgen -destination=mock/mock_backend.go -package=storagemock github.com/KirkDiggler/character-maker/internal/storage Backend

import (
	"context"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// Backend loads and saves every character at once, keyed by name
type Backend interface {
	// LoadAll returns every stored character.
	// A store that does not exist yet yields an empty map.
	// Returns errors.Persistence for unreadable or malformed data
	LoadAll(ctx context.Context) (map[string]*dnd5e.Character, error)

	// SaveAll replaces the stored document with characters.
	// Returns errors.Persistence when the store cannot be written
	SaveAll(ctx context.Context, characters map[string]*dnd5e.Character) error
}
