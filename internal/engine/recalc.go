package engine

import (
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// Field names reported by the recalculation functions
const (
	FieldProficiencyBonus = "proficiency_bonus"
	FieldHitDice          = "hit_dice"
	FieldInitiative       = "initiative"
	FieldSpellSaveDC      = "spell_save_dc"
	FieldSpellAttackBonus = "spell_attack_bonus"
)

// RecalculateLevelStats refreshes everything that depends on level or class:
// proficiency bonus, hit dice notation, initiative and, when the character
// casts, spell save DC and attack bonus. It returns the fields whose value changed.
func RecalculateLevelStats(c *dnd5e.Character) []string {
	var changed []string

	if prof := ProficiencyBonus(c.Level); prof != c.ProficiencyBonus {
		c.ProficiencyBonus = prof
		changed = append(changed, FieldProficiencyBonus)
	}
	if hd := HitDiceNotation(c.Level, dnd5e.HitDieFor(c.Class)); hd != c.HitDice {
		c.HitDice = hd
		changed = append(changed, FieldHitDice)
	}
	if initiative := Initiative(c.AbilityScores.Dexterity); initiative != c.Initiative {
		c.Initiative = initiative
		changed = append(changed, FieldInitiative)
	}

	return append(changed, RecalculateSpellStats(c)...)
}

// RecalculateAbilityStats refreshes what depends on one ability score:
// initiative for dexterity and the spell numbers for the casting ability
func RecalculateAbilityStats(c *dnd5e.Character, ability dnd5e.Ability) []string {
	var changed []string

	if ability == dnd5e.AbilityDexterity {
		if initiative := Initiative(c.AbilityScores.Dexterity); initiative != c.Initiative {
			c.Initiative = initiative
			changed = append(changed, FieldInitiative)
		}
	}
	if c.Spellcasting != nil && c.Spellcasting.Ability == ability {
		changed = append(changed, RecalculateSpellStats(c)...)
	}

	return changed
}

// RecalculateSpellStats refreshes the spell save DC and attack bonus from the
// stored proficiency bonus and the casting ability score
func RecalculateSpellStats(c *dnd5e.Character) []string {
	if c.Spellcasting == nil {
		return nil
	}
	var changed []string
	score := c.AbilityScores.Get(c.Spellcasting.Ability)

	if dc := SpellSaveDC(c.ProficiencyBonus, score); dc != c.Spellcasting.SaveDC {
		c.Spellcasting.SaveDC = dc
		changed = append(changed, FieldSpellSaveDC)
	}
	if atk := SpellAttackBonus(c.ProficiencyBonus, score); atk != c.Spellcasting.AttackBonus {
		c.Spellcasting.AttackBonus = atk
		changed = append(changed, FieldSpellAttackBonus)
	}
	return changed
}
