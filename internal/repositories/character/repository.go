// Package character provides the owning, name-keyed store of character records
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/character-maker/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// Repository owns every character record. Records handed out are copies;
// changes only land through Create, Update and Rename.
type Repository interface {
	// Load replaces the in-memory records with the backend's.
	// On failure the store is reset to empty.
	// Returns errors.Persistence for unreadable or malformed data
	Load(ctx context.Context) error

	// Save writes every record to the backend. Memory is unchanged on failure.
	// Returns errors.Persistence when the backend cannot be written
	Save(ctx context.Context) error

	// Create adds a new record keyed by its name
	// Returns errors.InvalidArgument for a missing character or blank name
	// Returns errors.AlreadyExists if the name is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a copy of a record by exact name
	// Returns errors.InvalidArgument for a blank name
	// Returns errors.NotFound if no record has the name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the record with the same name
	// Returns errors.InvalidArgument for a missing character
	// Returns errors.NotFound if no record has the name
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Rename re-keys a record atomically
	// Returns errors.InvalidArgument for a blank new name
	// Returns errors.NotFound if the old name is unknown
	// Returns errors.AlreadyExists if the new name is taken
	Rename(ctx context.Context, input RenameInput) (*RenameOutput, error)

	// Delete removes a record
	// Returns errors.NotFound if no record has the name
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns copies of every record sorted by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *dnd5e.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *dnd5e.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *dnd5e.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *dnd5e.Character
}

// RenameInput defines the input for renaming a character
type RenameInput struct {
	OldName string
	NewName string
}

// RenameOutput defines the output for renaming a character
type RenameOutput struct {
	Character *dnd5e.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	Name string
}

// DeleteOutput carries the removed record
type DeleteOutput struct {
	Character *dnd5e.Character
}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*dnd5e.Character
}
