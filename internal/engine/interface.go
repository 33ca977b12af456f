// Package engine is the derived-stats engine: pure functions from base
// attributes to modifiers, saves, skills, spell numbers and hit points, plus
// the Engine interface whose rpg-toolkit implementation adds dice and events.
package engine

import (
	"context"
)

// Engine runs the calculations that need a dice roller or announce their results
type Engine interface {
	// CalculateHitPoints applies a hit point method. Totals below 1 are raised to 1.
	CalculateHitPoints(ctx context.Context, input *CalculateHitPointsInput) (*CalculateHitPointsOutput, error)

	// ApplyLevelChange refreshes level and class dependent fields on the given character
	ApplyLevelChange(ctx context.Context, input *ApplyLevelChangeInput) (*RecalculateOutput, error)

	// ApplyAbilityChange refreshes fields that depend on the changed abilities
	ApplyAbilityChange(ctx context.Context, input *ApplyAbilityChangeInput) (*RecalculateOutput, error)

	// CalculateCharacterSheet resolves the full read-only sheet
	CalculateCharacterSheet(
		ctx context.Context,
		input *CalculateCharacterSheetInput,
	) (*CalculateCharacterSheetOutput, error)
}
