package character

import (
	"context"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

// EnableSpellcasting adds a spellcasting profile or replaces the class and
// ability of an existing one. Spell lists survive; slot totals survive unless
// new ones are given, which resets expended slots.
func (o *Orchestrator) EnableSpellcasting(
	ctx context.Context,
	input *character.EnableSpellcastingInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Ability.IsCastingAbility() {
		return nil, errors.InvalidArgumentf("spellcasting ability must be intelligence, wisdom or charisma, got %q", input.Ability)
	}
	if input.SlotTotals != nil {
		for i, total := range input.SlotTotals {
			if total < 0 {
				return nil, errors.InvalidArgumentf("%s level slot total must not be negative, got %d",
					dnd5e.SpellSlotLevel(i+1), total)
			}
		}
	}

	var changed []string
	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		profile := c.Spellcasting
		if profile == nil {
			profile = &dnd5e.SpellcastingProfile{}
		}

		profile.Class = strings.TrimSpace(input.Class)
		if profile.Class == "" {
			profile.Class = c.Class
		}
		profile.Ability = input.Ability

		if input.SlotTotals != nil {
			for i, total := range input.SlotTotals {
				if err := profile.Slots.ChangeTotal(dnd5e.SpellSlotLevel(i+1), total); err != nil {
					return err
				}
			}
		}

		c.Spellcasting = profile
		changed = engine.RecalculateSpellStats(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c, Changed: changed}, nil
}

// DisableSpellcasting drops the spellcasting profile
func (o *Orchestrator) DisableSpellcasting(
	ctx context.Context,
	input *character.CharacterNameInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		c.Spellcasting = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

// SetSpellList replaces the known or prepared spells
func (o *Orchestrator) SetSpellList(
	ctx context.Context,
	input *character.SetSpellListInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.List != character.SpellListKnown && input.List != character.SpellListPrepared {
		return nil, errors.InvalidArgumentf("unknown spell list %q", input.List)
	}

	c, err := o.mutateProfile(ctx, input.Name, func(p *dnd5e.SpellcastingProfile) error {
		if input.List == character.SpellListKnown {
			p.SpellsKnown = cleanList(input.Spells)
		} else {
			p.SpellsPrepared = cleanList(input.Spells)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

// SetSpellSlotTotal changes the pool size of one level and resets its expended count
func (o *Orchestrator) SetSpellSlotTotal(
	ctx context.Context,
	input *character.SetSpellSlotTotalInput,
) (*character.SpellSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var slot dnd5e.SpellSlot
	_, err := o.mutateProfile(ctx, input.Name, func(p *dnd5e.SpellcastingProfile) error {
		if err := p.Slots.ChangeTotal(input.Level, input.Total); err != nil {
			return err
		}
		slot, _ = p.Slots.Get(input.Level)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.SpellSlotOutput{Level: input.Level, Slot: slot}, nil
}

// UseSpellSlot expends one slot of the given level
func (o *Orchestrator) UseSpellSlot(ctx context.Context, input *character.SpellSlotInput) (*character.SpellSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var slot dnd5e.SpellSlot
	c, err := o.mutateProfile(ctx, input.Name, func(p *dnd5e.SpellcastingProfile) error {
		if _, err := p.Slots.Use(input.Level); err != nil {
			return err
		}
		slot, _ = p.Slots.Get(input.Level)
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, rpgtoolkit.EventSpellSlotUsed, c, map[string]any{
		rpgtoolkit.KeySpellLevel: input.Level.String(),
		rpgtoolkit.KeyRemaining:  slot.Remaining(),
	})
	return &character.SpellSlotOutput{Level: input.Level, Slot: slot}, nil
}

// RecoverSpellSlot restores one expended slot of the given level
func (o *Orchestrator) RecoverSpellSlot(
	ctx context.Context,
	input *character.SpellSlotInput,
) (*character.SpellSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var slot dnd5e.SpellSlot
	_, err := o.mutateProfile(ctx, input.Name, func(p *dnd5e.SpellcastingProfile) error {
		if _, err := p.Slots.Recover(input.Level); err != nil {
			return err
		}
		slot, _ = p.Slots.Get(input.Level)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.SpellSlotOutput{Level: input.Level, Slot: slot}, nil
}

// ResetSpellSlots recovers every expended slot (a long rest)
func (o *Orchestrator) ResetSpellSlots(
	ctx context.Context,
	input *character.CharacterNameInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutateProfile(ctx, input.Name, func(p *dnd5e.SpellcastingProfile) error {
		p.Slots.ResetAll()
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, rpgtoolkit.EventLongRest, c, nil)
	return &character.UpdateCharacterOutput{Character: c}, nil
}

func (o *Orchestrator) mutateProfile(
	ctx context.Context,
	name string,
	fn func(p *dnd5e.SpellcastingProfile) error,
) (*dnd5e.Character, error) {
	return o.mutate(ctx, name, func(c *dnd5e.Character) error {
		if c.Spellcasting == nil {
			return errors.NotFoundf("%s has no spellcasting profile", c.Name).
				WithMeta("character", c.Name)
		}
		return fn(c.Spellcasting)
	})
}
