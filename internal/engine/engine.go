package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Modifier returns floor((score-10)/2), rounding toward negative infinity
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// ProficiencyBonus returns 2 + (level-1)/4. Callers validate the level first.
func ProficiencyBonus(level int) int {
	return 2 + (level-1)/4
}

// ValidateLevel checks level is inside [1,20]
func ValidateLevel(level int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", level, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
	return vb.Build()
}

// SkillModifier is the governing ability modifier plus the proficiency bonus
// when proficient. Unknown skills read a neutral score of 10.
func SkillModifier(skills dnd5e.SkillProficiencies, scores dnd5e.AbilityScores, profBonus int, skill dnd5e.Skill) int {
	score := dnd5e.DefaultAbilityScore
	if ability, ok := skill.Ability(); ok {
		score = scores.Get(ability)
	}
	mod := Modifier(score)
	if skills[skill] {
		mod += profBonus
	}
	return mod
}

// SavingThrowModifier is the ability modifier plus the proficiency bonus when proficient
func SavingThrowModifier(score int, proficient bool, profBonus int) int {
	mod := Modifier(score)
	if proficient {
		mod += profBonus
	}
	return mod
}

// DefaultArmorClass is the unarmored suggestion 10 + DEX modifier
func DefaultArmorClass(dexterity int) int {
	return 10 + Modifier(dexterity)
}

// Initiative is the DEX modifier
func Initiative(dexterity int) int {
	return Modifier(dexterity)
}

// SpellSaveDC is 8 + proficiency + casting modifier
func SpellSaveDC(profBonus, castingScore int) int {
	return 8 + profBonus + Modifier(castingScore)
}

// SpellAttackBonus is proficiency + casting modifier
func SpellAttackBonus(profBonus, castingScore int) int {
	return profBonus + Modifier(castingScore)
}

// PassivePerception is 10 + the perception skill modifier
func PassivePerception(skills dnd5e.SkillProficiencies, scores dnd5e.AbilityScores, profBonus int) int {
	return 10 + SkillModifier(skills, scores, profBonus, dnd5e.SkillPerception)
}

// HitDiceNotation renders e.g. "3d10"
func HitDiceNotation(level, hitDie int) string {
	return fmt.Sprintf("%dd%d", level, hitDie)
}

// MaxHitPoints treats every level as die maximum plus CON: d + c + (L-1)*(d + c)
func MaxHitPoints(hitDie, conMod, level int) int {
	return hitDie + conMod + (level-1)*(hitDie+conMod)
}

// AverageHitPoints takes the die maximum at level 1 and the rounded-up
// average afterwards: d + c + (L-1)*(d/2 + 1 + c)
func AverageHitPoints(hitDie, conMod, level int) int {
	return hitDie + conMod + (level-1)*(hitDie/2+1+conMod)
}

// RolledHitPoints takes d + c at level 1 and rolls the die for every later
// level. rolls holds the raw die results, one per level after the first.
func RolledHitPoints(roller dice.Roller, hitDie, conMod, level int) (int, []int, error) {
	if roller == nil {
		return 0, nil, errors.InvalidArgument("dice roller is required")
	}
	total := hitDie + conMod
	if level <= 1 {
		return total, nil, nil
	}

	rolls := make([]int, 0, level-1)
	for l := 2; l <= level; l++ {
		r, err := roller.Roll(hitDie)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "failed to roll d%d for level %d", hitDie, l)
		}
		rolls = append(rolls, r)
		total += r + conMod
	}
	return total, rolls, nil
}

// AttackBonuses are the common attack and damage numbers shown on the combat reference
type AttackBonuses struct {
	Melee           int
	Ranged          int
	Finesse         int
	StrengthDamage  int
	DexterityDamage int
	// SpellAttack is nil when the character has no spellcasting profile
	SpellAttack *int
}

// CalculateAttackBonuses derives melee (STR), ranged and finesse (DEX) bonuses
func CalculateAttackBonuses(profBonus int, scores dnd5e.AbilityScores, spellcasting *dnd5e.SpellcastingProfile) AttackBonuses {
	str := Modifier(scores.Strength)
	dex := Modifier(scores.Dexterity)
	out := AttackBonuses{
		Melee:           profBonus + str,
		Ranged:          profBonus + dex,
		Finesse:         profBonus + dex,
		StrengthDamage:  str,
		DexterityDamage: dex,
	}
	if spellcasting != nil {
		bonus := spellcasting.AttackBonus
		out.SpellAttack = &bonus
	}
	return out
}

var experienceThresholds = [dnd5e.MaxLevel]int{
	0, 300, 900, 2700, 6500, 14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000, 195000, 225000, 265000, 305000, 355000,
}

// LevelForExperience returns the level an XP total would reach. It is
// informational and never changes a character's level.
func LevelForExperience(xp int) int {
	level := dnd5e.MinLevel
	for l := dnd5e.MinLevel; l <= dnd5e.MaxLevel; l++ {
		if xp >= experienceThresholds[l-1] {
			level = l
		}
	}
	return level
}

// ExperienceForLevel returns the XP threshold of a level, or false outside [1,20]
func ExperienceForLevel(level int) (int, bool) {
	if level < dnd5e.MinLevel || level > dnd5e.MaxLevel {
		return 0, false
	}
	return experienceThresholds[level-1], true
}

// FormatModifier renders a signed modifier, e.g. "+3" or "-1"
func FormatModifier(mod int) string {
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return fmt.Sprintf("%d", mod)
}
