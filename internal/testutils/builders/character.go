package builders

import (
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/testutils"
)

// CharacterBuilder tweaks a copy of the fighter fixture
type CharacterBuilder struct {
	character *dnd5e.Character
}

// NewCharacterBuilder starts from the fighter fixture
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{character: testutils.NewCharacterFixture()}
}

// NewSpellcasterBuilder starts from the wizard fixture
func NewSpellcasterBuilder() *CharacterBuilder {
	return &CharacterBuilder{character: testutils.NewSpellcasterFixture()}
}

// WithID sets the record ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets the level without recalculating
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithHitPoints sets maximum, current and temporary hit points
func (b *CharacterBuilder) WithHitPoints(maximum, current, temporary int) *CharacterBuilder {
	b.character.HitPoints = dnd5e.HitPointState{Maximum: maximum, Current: current, Temporary: temporary}
	return b
}

// WithSpellSlot sets the total and expended slots for one level
func (b *CharacterBuilder) WithSpellSlot(level dnd5e.SpellSlotLevel, total, expended int) *CharacterBuilder {
	if b.character.Spellcasting == nil {
		b.character.Spellcasting = &dnd5e.SpellcastingProfile{
			Class:   b.character.Class,
			Ability: dnd5e.AbilityIntelligence,
		}
	}
	b.character.Spellcasting.Slots[level-1] = dnd5e.SpellSlot{Total: total, Expended: expended}
	return b
}

// WithConditions sets the active conditions
func (b *CharacterBuilder) WithConditions(conditions ...string) *CharacterBuilder {
	b.character.Conditions = conditions
	return b
}

// WithCombatNotes sets the combat notes
func (b *CharacterBuilder) WithCombatNotes(notes ...string) *CharacterBuilder {
	b.character.CombatNotes = notes
	return b
}

// WithFeatures sets features and traits
func (b *CharacterBuilder) WithFeatures(features ...string) *CharacterBuilder {
	b.character.FeaturesAndTraits = features
	return b
}

// WithInventory sets the carried items
func (b *CharacterBuilder) WithInventory(items ...dnd5e.InventoryItem) *CharacterBuilder {
	b.character.Inventory = items
	return b
}

// Build returns the constructed Character
func (b *CharacterBuilder) Build() *dnd5e.Character {
	return b.character
}
