// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// CharacterDraftBuilder provides a fluent interface for building test CharacterDraft instances
type CharacterDraftBuilder struct {
	draft *dnd5e.CharacterDraft
}

// NewCharacterDraftBuilder creates a new builder with the wizard defaults
func NewCharacterDraftBuilder() *CharacterDraftBuilder {
	return &CharacterDraftBuilder{
		draft: dnd5e.NewCharacterDraft("Test Character"),
	}
}

// WithName sets the character name
func (b *CharacterDraftBuilder) WithName(name string) *CharacterDraftBuilder {
	b.draft.Name = name
	return b
}

// WithPlayerName sets the player name
func (b *CharacterDraftBuilder) WithPlayerName(player string) *CharacterDraftBuilder {
	b.draft.PlayerName = player
	return b
}

// WithRace sets the free-text race
func (b *CharacterDraftBuilder) WithRace(race string) *CharacterDraftBuilder {
	b.draft.Race = race
	return b
}

// WithClass sets the class, optional subclass, and level
func (b *CharacterDraftBuilder) WithClass(class string, level int, subclass ...string) *CharacterDraftBuilder {
	b.draft.Class = class
	b.draft.Level = level
	if len(subclass) > 0 {
		b.draft.Subclass = subclass[0]
	}
	return b
}

// WithBackground sets the background
func (b *CharacterDraftBuilder) WithBackground(background string) *CharacterDraftBuilder {
	b.draft.Background = background
	return b
}

// WithAlignment sets the alignment
func (b *CharacterDraftBuilder) WithAlignment(alignment string) *CharacterDraftBuilder {
	b.draft.Alignment = alignment
	return b
}

// WithAbilityScores sets all six ability scores in STR, DEX, CON, INT, WIS, CHA order
func (b *CharacterDraftBuilder) WithAbilityScores(str, dex, con, intel, wis, cha int) *CharacterDraftBuilder {
	b.draft.AbilityScores = dnd5e.AbilityScores{
		Strength:     str,
		Dexterity:    dex,
		Constitution: con,
		Intelligence: intel,
		Wisdom:       wis,
		Charisma:     cha,
	}
	return b
}

// WithHitPointMethod sets how maximum hit points are computed
func (b *CharacterDraftBuilder) WithHitPointMethod(method dnd5e.HitPointMethod) *CharacterDraftBuilder {
	b.draft.HitPointMethod = method
	return b
}

// WithCustomHitPoints selects the custom method with the given total
func (b *CharacterDraftBuilder) WithCustomHitPoints(hp int) *CharacterDraftBuilder {
	b.draft.HitPointMethod = dnd5e.HitPointMethodCustom
	b.draft.CustomHitPoints = hp
	return b
}

// WithSavingThrows sets the proficient saving throws
func (b *CharacterDraftBuilder) WithSavingThrows(abilities ...dnd5e.Ability) *CharacterDraftBuilder {
	b.draft.SavingThrows = abilities
	return b
}

// WithSkills sets the proficient skills
func (b *CharacterDraftBuilder) WithSkills(skills ...dnd5e.Skill) *CharacterDraftBuilder {
	b.draft.Skills = skills
	return b
}

// WithArmorClass overrides the 10 + DEX default
func (b *CharacterDraftBuilder) WithArmorClass(ac int) *CharacterDraftBuilder {
	b.draft.ArmorClass = &ac
	return b
}

// WithSpeed sets the walking speed
func (b *CharacterDraftBuilder) WithSpeed(speed int) *CharacterDraftBuilder {
	b.draft.Speed = speed
	return b
}

// WithSpellcasting adds a spellcasting block; slots are totals for levels 1, 2, ...
func (b *CharacterDraftBuilder) WithSpellcasting(class string, ability dnd5e.Ability, slots ...int) *CharacterDraftBuilder {
	sc := &dnd5e.DraftSpellcasting{Class: class, Ability: ability}
	copy(sc.SlotTotals[:], slots)
	b.draft.Spellcasting = sc
	return b
}

// WithLanguages sets the known languages
func (b *CharacterDraftBuilder) WithLanguages(languages ...string) *CharacterDraftBuilder {
	b.draft.Languages = languages
	return b
}

// AsFighter builds the draft the fighter fixture is created from
func (b *CharacterDraftBuilder) AsFighter() *CharacterDraftBuilder {
	return b.
		WithName("Thorin Oakenshield").
		WithPlayerName("Alex").
		WithRace("Mountain Dwarf").
		WithClass(dnd5e.ClassFighter, 1).
		WithBackground("Soldier").
		WithAlignment("Lawful Good").
		WithAbilityScores(16, 14, 14, 8, 12, 10).
		WithHitPointMethod(dnd5e.HitPointMethodMaximum).
		WithSavingThrows(dnd5e.AbilityStrength, dnd5e.AbilityConstitution).
		WithSkills(dnd5e.SkillAthletics, dnd5e.SkillPerception).
		WithArmorClass(16).
		WithSpeed(25)
}

// AsWizard builds a level 3 wizard draft with slots 4/2
func (b *CharacterDraftBuilder) AsWizard() *CharacterDraftBuilder {
	return b.
		WithName("Elara Moonwhisper").
		WithRace("High Elf").
		WithClass(dnd5e.ClassWizard, 3, "School of Evocation").
		WithAbilityScores(8, 14, 12, 16, 13, 10).
		WithHitPointMethod(dnd5e.HitPointMethodAverage).
		WithSavingThrows(dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom).
		WithSkills(dnd5e.SkillArcana, dnd5e.SkillHistory).
		WithSpellcasting(dnd5e.ClassWizard, dnd5e.AbilityIntelligence, 4, 2)
}

// Build returns the constructed CharacterDraft
func (b *CharacterDraftBuilder) Build() *dnd5e.CharacterDraft {
	return b.draft
}
