package rpgtoolkit

import "github.com/KirkDiggler/character-maker/internal/entities/dnd5e"

// EntityTypeCharacter is the rpg-toolkit entity type of a character
const EntityTypeCharacter = "character"

// CharacterEntity wraps dnd5e.Character to implement core.Entity interface
type CharacterEntity struct {
	*dnd5e.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// WrapCharacter converts a dnd5e.Character to a CharacterEntity
func WrapCharacter(character *dnd5e.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}
