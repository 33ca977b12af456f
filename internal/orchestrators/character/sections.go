package character

import (
	"context"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

// UpdateBasicInfo changes identity fields. A new name renames the record first
// so a taken name fails before anything else is touched.
func (o *Orchestrator) UpdateBasicInfo(
	ctx context.Context,
	input *character.UpdateBasicInfoInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ExperiencePoints != nil && *input.ExperiencePoints < 0 {
		return nil, errors.InvalidArgumentf("experience points must not be negative, got %d", *input.ExperiencePoints)
	}
	if input.NewName != nil && strings.TrimSpace(*input.NewName) == "" {
		return nil, errors.InvalidArgument("character name cannot be empty")
	}

	name := input.Name
	if input.NewName != nil {
		renamed, err := o.rename(ctx, input.Name, strings.TrimSpace(*input.NewName))
		if err != nil {
			return nil, err
		}
		name = renamed.Name
	}

	c, err := o.mutate(ctx, name, func(c *dnd5e.Character) error {
		setString(&c.PlayerName, input.PlayerName)
		setString(&c.Race, input.Race)
		setString(&c.Background, input.Background)
		setString(&c.Alignment, input.Alignment)
		if input.ExperiencePoints != nil {
			c.ExperiencePoints = *input.ExperiencePoints
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

// UpdateClass changes class, subclass or level and refreshes the level dependent fields
func (o *Orchestrator) UpdateClass(
	ctx context.Context,
	input *character.UpdateClassInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var className string
	if input.Class != nil {
		def, err := dnd5e.ClassInfo(*input.Class)
		if err != nil {
			return nil, err
		}
		className = def.Name
	}
	if input.Level != nil {
		if err := engine.ValidateLevel(*input.Level); err != nil {
			return nil, err
		}
	}

	var changed []string
	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		if input.Class != nil {
			c.Class = className
		}
		setString(&c.Subclass, input.Subclass)
		if input.Level != nil {
			c.Level = *input.Level
		}

		out, err := o.engine.ApplyLevelChange(ctx, &engine.ApplyLevelChangeInput{Character: c})
		if err != nil {
			return err
		}
		changed = out.Changed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c, Changed: changed}, nil
}

// UpdateAbilityScores validates every score before applying any of them
func (o *Orchestrator) UpdateAbilityScores(
	ctx context.Context,
	input *character.UpdateAbilityScoresInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Scores) == 0 {
		return nil, errors.InvalidArgument("at least one ability score is required")
	}

	vb := errors.NewValidationBuilder()
	var abilities []dnd5e.Ability
	for _, a := range dnd5e.Abilities {
		score, ok := input.Scores[a]
		if !ok {
			continue
		}
		errors.ValidateRange(string(a), score, dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore, vb)
		abilities = append(abilities, a)
	}
	for a := range input.Scores {
		if !a.Valid() {
			vb.InvalidField("ability", "unknown ability "+string(a))
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var changed []string
	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		for _, a := range abilities {
			if err := c.AbilityScores.Set(a, input.Scores[a]); err != nil {
				return err
			}
		}
		out, err := o.engine.ApplyAbilityChange(ctx, &engine.ApplyAbilityChangeInput{
			Character: c,
			Abilities: abilities,
		})
		if err != nil {
			return err
		}
		changed = out.Changed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c, Changed: changed}, nil
}

// UpdateCombatStats changes the stored combat numbers. Armor class only follows
// dexterity when the caller asks for the default.
func (o *Orchestrator) UpdateCombatStats(
	ctx context.Context,
	input *character.UpdateCombatStatsInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.ArmorClass != nil && *input.ArmorClass < 0 {
		vb.Fieldf("armor_class", "must not be negative, got %d", *input.ArmorClass)
	}
	if input.Speed != nil && *input.Speed < 0 {
		vb.Fieldf("speed", "must not be negative, got %d", *input.Speed)
	}
	if input.HitDice != nil && strings.TrimSpace(*input.HitDice) == "" {
		vb.RequiredField("hit_dice")
	}
	if input.ProficiencyBonus != nil && *input.ProficiencyBonus < 0 {
		vb.Fieldf("proficiency_bonus", "must not be negative, got %d", *input.ProficiencyBonus)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var changed []string
	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		switch {
		case input.UseDefaultArmorClass:
			c.ArmorClass = engine.DefaultArmorClass(c.AbilityScores.Dexterity)
		case input.ArmorClass != nil:
			c.ArmorClass = *input.ArmorClass
		}
		if input.Speed != nil {
			c.Speed = *input.Speed
		}
		if input.HitDice != nil {
			c.HitDice = strings.TrimSpace(*input.HitDice)
		}
		if input.ProficiencyBonus != nil {
			// Stands until the next level change recomputes it.
			c.ProficiencyBonus = *input.ProficiencyBonus
			changed = engine.RecalculateSpellStats(c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c, Changed: changed}, nil
}

// SetSavingThrowProficiency toggles one saving throw
func (o *Orchestrator) SetSavingThrowProficiency(
	ctx context.Context,
	input *character.SetSavingThrowProficiencyInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Ability.Valid() {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		c.SavingThrows = c.SavingThrows.Normalize()
		c.SavingThrows[input.Ability] = input.Proficient
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

// SetSkillProficiency toggles one skill. The creation budget does not apply to edits.
func (o *Orchestrator) SetSkillProficiency(
	ctx context.Context,
	input *character.SetSkillProficiencyInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Skill.Valid() {
		return nil, errors.InvalidArgumentf("unknown skill %q", input.Skill)
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		c.Skills = c.Skills.Normalize()
		c.Skills[input.Skill] = input.Proficient
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

// SetLanguages replaces the language list
func (o *Orchestrator) SetLanguages(ctx context.Context, input *character.SetListInput) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		c.Languages = cleanList(input.Values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

// SetOtherProficiencies replaces the tools, weapons and armor list
func (o *Orchestrator) SetOtherProficiencies(
	ctx context.Context,
	input *character.SetListInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		c.OtherProficiencies = cleanList(input.Values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

// SplitList turns comma separated entry text into list values
func SplitList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

// cleanList trims entries and drops blanks. An empty result is nil.
func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func setString(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}
