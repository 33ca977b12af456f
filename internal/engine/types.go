package engine

import (
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// CalculateHitPointsInput contains the parameters for a hit point method
type CalculateHitPointsInput struct {
	Method            dnd5e.HitPointMethod
	HitDie            int
	ConstitutionScore int
	Level             int
	// Custom is the total used by the custom method
	Custom int
}

// CalculateHitPointsOutput contains the computed maximum
type CalculateHitPointsOutput struct {
	Method  dnd5e.HitPointMethod
	Maximum int
	// Rolls holds one die result per level after the first for the rolled method
	Rolls []int
	// Raised is true when the formula came out below 1 and was raised to 1
	Raised bool
}

// ApplyLevelChangeInput names the character whose level or class changed
type ApplyLevelChangeInput struct {
	Character *dnd5e.Character
}

// ApplyAbilityChangeInput names the character and the abilities that changed
type ApplyAbilityChangeInput struct {
	Character *dnd5e.Character
	Abilities []dnd5e.Ability
}

// RecalculateOutput lists the derived fields that changed
type RecalculateOutput struct {
	Changed []string
}

// CalculateCharacterSheetInput contains the character to render
type CalculateCharacterSheetInput struct {
	Character *dnd5e.Character
}

// CalculateCharacterSheetOutput contains the resolved sheet
type CalculateCharacterSheetOutput struct {
	Sheet *CharacterSheet
}
