package character

import (
	"context"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

// SetHitPoints re-applies a hit point method at the current level. Current
// hit points are reset to the new maximum.
func (o *Orchestrator) SetHitPoints(
	ctx context.Context,
	input *character.SetHitPointsInput,
) (*character.SetHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var hp *engine.CalculateHitPointsOutput
	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		var err error
		hp, err = o.engine.CalculateHitPoints(ctx, &engine.CalculateHitPointsInput{
			Method:            input.Method,
			HitDie:            dnd5e.HitDieFor(c.Class),
			ConstitutionScore: c.AbilityScores.Constitution,
			Level:             c.Level,
			Custom:            input.Custom,
		})
		if err != nil {
			return err
		}
		return c.HitPoints.Reset(hp.Maximum)
	})
	if err != nil {
		return nil, err
	}
	return &character.SetHitPointsOutput{Character: c, HitPoints: hp}, nil
}

// Damage removes hit points, temporary first
func (o *Orchestrator) Damage(ctx context.Context, input *character.DamageInput) (*character.DamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		result      *dnd5e.DamageResult
		wasStanding bool
	)
	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		wasStanding = c.HitPoints.Current > 0
		var err error
		result, err = c.HitPoints.Damage(input.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, rpgtoolkit.EventCharacterDamaged, c, map[string]any{
		rpgtoolkit.KeyAmount:    input.Amount,
		rpgtoolkit.KeyAbsorbed:  result.Absorbed,
		rpgtoolkit.KeyCurrentHP: c.HitPoints.Current,
		rpgtoolkit.KeyMaximumHP: c.HitPoints.Maximum,
	})
	if result.Unconscious && wasStanding {
		o.publish(ctx, rpgtoolkit.EventCharacterUnconscious, c, map[string]any{
			rpgtoolkit.KeyCurrentHP: c.HitPoints.Current,
			rpgtoolkit.KeyMaximumHP: c.HitPoints.Maximum,
		})
	}

	return &character.DamageOutput{Result: result, HitPoints: c.HitPoints}, nil
}

// Heal restores current hit points up to the maximum
func (o *Orchestrator) Heal(ctx context.Context, input *character.HealInput) (*character.HealOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var healed int
	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		var err error
		healed, err = c.HitPoints.Heal(input.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	if healed > 0 {
		o.publish(ctx, rpgtoolkit.EventCharacterHealed, c, map[string]any{
			rpgtoolkit.KeyAmount:    healed,
			rpgtoolkit.KeyCurrentHP: c.HitPoints.Current,
			rpgtoolkit.KeyMaximumHP: c.HitPoints.Maximum,
		})
	}

	return &character.HealOutput{Healed: healed, HitPoints: c.HitPoints}, nil
}

// GrantTemporaryHitPoints keeps the larger of the current and new temporary pool
func (o *Orchestrator) GrantTemporaryHitPoints(
	ctx context.Context,
	input *character.HitPointAmountInput,
) (*character.HitPointsOutput, error) {
	return o.changeHitPoints(ctx, input, func(h *dnd5e.HitPointState, amount int) error {
		return h.GrantTemporary(amount)
	})
}

// ClearTemporaryHitPoints drops the temporary pool
func (o *Orchestrator) ClearTemporaryHitPoints(
	ctx context.Context,
	input *character.CharacterNameInput,
) (*character.HitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.changeHitPoints(ctx, &character.HitPointAmountInput{Name: input.Name}, func(h *dnd5e.HitPointState, _ int) error {
		h.ClearTemporary()
		return nil
	})
}

// SetCurrentHitPoints sets current hit points within [0, maximum]
func (o *Orchestrator) SetCurrentHitPoints(
	ctx context.Context,
	input *character.HitPointAmountInput,
) (*character.HitPointsOutput, error) {
	return o.changeHitPoints(ctx, input, func(h *dnd5e.HitPointState, amount int) error {
		return h.SetCurrent(amount)
	})
}

// ChangeMaximumHitPoints sets a new maximum without touching current hit points
func (o *Orchestrator) ChangeMaximumHitPoints(
	ctx context.Context,
	input *character.HitPointAmountInput,
) (*character.HitPointsOutput, error) {
	return o.changeHitPoints(ctx, input, func(h *dnd5e.HitPointState, amount int) error {
		return h.ChangeMaximum(amount)
	})
}

func (o *Orchestrator) changeHitPoints(
	ctx context.Context,
	input *character.HitPointAmountInput,
	fn func(h *dnd5e.HitPointState, amount int) error,
) (*character.HitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		return fn(&c.HitPoints, input.Amount)
	})
	if err != nil {
		return nil, err
	}
	return &character.HitPointsOutput{HitPoints: c.HitPoints}, nil
}
