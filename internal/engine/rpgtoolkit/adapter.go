// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
	publisher  *Publisher
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
		publisher:  NewPublisher(cfg.EventBus),
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// CalculateHitPoints applies one of the four hit point methods
func (a *Adapter) CalculateHitPoints(
	ctx context.Context,
	input *engine.CalculateHitPointsInput,
) (*engine.CalculateHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", input.Level, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
	if input.HitDie < 1 {
		vb.Fieldf("hit_die", "must be positive, got %d", input.HitDie)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	conMod := engine.Modifier(input.ConstitutionScore)
	out := &engine.CalculateHitPointsOutput{Method: input.Method}

	switch input.Method {
	case dnd5e.HitPointMethodMaximum:
		out.Maximum = engine.MaxHitPoints(input.HitDie, conMod, input.Level)
	case dnd5e.HitPointMethodAverage:
		out.Maximum = engine.AverageHitPoints(input.HitDie, conMod, input.Level)
	case dnd5e.HitPointMethodRolled:
		total, rolls, err := engine.RolledHitPoints(a.diceRoller, input.HitDie, conMod, input.Level)
		if err != nil {
			return nil, err
		}
		out.Maximum = total
		out.Rolls = rolls
	case dnd5e.HitPointMethodCustom:
		if input.Custom < 1 {
			return nil, errors.InvalidArgumentf("custom hit points must be positive, got %d", input.Custom)
		}
		out.Maximum = input.Custom
	default:
		return nil, errors.InvalidArgumentf("unknown hit point method %q", input.Method)
	}

	if out.Maximum < 1 {
		slog.DebugContext(ctx, "hit point total raised to 1",
			"method", input.Method,
			"computed", out.Maximum)
		out.Maximum = 1
		out.Raised = true
	}

	return out, nil
}

// ApplyLevelChange recomputes level and class dependent fields
func (a *Adapter) ApplyLevelChange(ctx context.Context, input *engine.ApplyLevelChangeInput) (*engine.RecalculateOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := engine.ValidateLevel(input.Character.Level); err != nil {
		return nil, err
	}

	changed := engine.RecalculateLevelStats(input.Character)
	a.announce(ctx, input.Character, changed)

	return &engine.RecalculateOutput{Changed: changed}, nil
}

// ApplyAbilityChange recomputes fields that depend on the changed abilities
func (a *Adapter) ApplyAbilityChange(
	ctx context.Context,
	input *engine.ApplyAbilityChangeInput,
) (*engine.RecalculateOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	var changed []string
	for _, ability := range input.Abilities {
		if !ability.Valid() {
			return nil, errors.InvalidArgumentf("unknown ability %q", ability)
		}
		changed = appendUnique(changed, engine.RecalculateAbilityStats(input.Character, ability)...)
	}
	a.announce(ctx, input.Character, changed)

	return &engine.RecalculateOutput{Changed: changed}, nil
}

// CalculateCharacterSheet resolves the read-only sheet
func (a *Adapter) CalculateCharacterSheet(
	_ context.Context,
	input *engine.CalculateCharacterSheetInput,
) (*engine.CalculateCharacterSheetOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	return &engine.CalculateCharacterSheetOutput{Sheet: engine.BuildSheet(input.Character)}, nil
}

func (a *Adapter) announce(ctx context.Context, character *dnd5e.Character, changed []string) {
	if len(changed) == 0 {
		return
	}
	// Recalculation already happened; a failing subscriber only gets logged.
	_ = a.publisher.Publish(ctx, EventCharacterRecalculated, character, map[string]any{
		KeyChanged: changed,
	})
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
