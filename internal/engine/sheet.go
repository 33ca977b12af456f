package engine

import (
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// AbilityLine is one ability on the sheet
type AbilityLine struct {
	Ability  dnd5e.Ability
	Score    int
	Modifier int
}

// SavingThrowLine is one saving throw on the sheet
type SavingThrowLine struct {
	Ability    dnd5e.Ability
	Modifier   int
	Proficient bool
}

// SkillLine is one skill on the sheet
type SkillLine struct {
	Skill      dnd5e.Skill
	Ability    dnd5e.Ability
	Modifier   int
	Proficient bool
}

// SpellSlotLine is one spell level on the sheet
type SpellSlotLine struct {
	Level     dnd5e.SpellSlotLevel
	Total     int
	Expended  int
	Remaining int
}

// SpellcastingSheet is the spellcasting block of the sheet
type SpellcastingSheet struct {
	Class          string
	Ability        dnd5e.Ability
	SaveDC         int
	AttackBonus    int
	Slots          []SpellSlotLine
	SpellsKnown    []string
	SpellsPrepared []string
}

// CharacterSheet is the read-only view of a character with every derived number resolved
type CharacterSheet struct {
	Name       string
	PlayerName string
	Race       string
	Background string
	Alignment  string
	Class      string
	Subclass   string
	ClassLevel string
	Level      int

	ExperiencePoints int
	// NextLevelExperience is 0 at level 20
	NextLevelExperience int
	ExperienceLevel     int

	Abilities []AbilityLine

	ArmorClass       int
	Initiative       int
	Speed            int
	HitDice          string
	HitPoints        dnd5e.HitPointState
	ProficiencyBonus int

	SavingThrows      []SavingThrowLine
	Skills            []SkillLine
	PassivePerception int
	Attacks           AttackBonuses

	Spellcasting *SpellcastingSheet

	FeaturesAndTraits  []string
	CustomAbilities    []string
	Languages          []string
	OtherProficiencies []string
	Conditions         []string
	CombatNotes        []string
	InventoryCount     int
}

// BuildSheet resolves every derived number for display. It reads the stored
// proficiency bonus, so a manual override shows until the next level change.
func BuildSheet(c *dnd5e.Character) *CharacterSheet {
	prof := c.ProficiencyBonus
	sheet := &CharacterSheet{
		Name:               c.Name,
		PlayerName:         c.PlayerName,
		Race:               c.Race,
		Background:         c.Background,
		Alignment:          c.Alignment,
		Class:              c.Class,
		Subclass:           c.Subclass,
		ClassLevel:         c.ClassLevel(),
		Level:              c.Level,
		ExperiencePoints:   c.ExperiencePoints,
		ExperienceLevel:    LevelForExperience(c.ExperiencePoints),
		ArmorClass:         c.ArmorClass,
		Initiative:         c.Initiative,
		Speed:              c.Speed,
		HitDice:            c.HitDice,
		HitPoints:          c.HitPoints,
		ProficiencyBonus:   prof,
		PassivePerception:  PassivePerception(c.Skills, c.AbilityScores, prof),
		Attacks:            CalculateAttackBonuses(prof, c.AbilityScores, c.Spellcasting),
		FeaturesAndTraits:  c.FeaturesAndTraits,
		CustomAbilities:    c.CustomAbilities,
		Languages:          c.Languages,
		OtherProficiencies: c.OtherProficiencies,
		Conditions:         c.Conditions,
		CombatNotes:        c.CombatNotes,
		InventoryCount:     len(c.Inventory),
	}

	if next, ok := ExperienceForLevel(c.Level + 1); ok {
		sheet.NextLevelExperience = next
	}

	for _, a := range dnd5e.Abilities {
		score := c.AbilityScores.Get(a)
		sheet.Abilities = append(sheet.Abilities, AbilityLine{Ability: a, Score: score, Modifier: Modifier(score)})
		sheet.SavingThrows = append(sheet.SavingThrows, SavingThrowLine{
			Ability:    a,
			Modifier:   SavingThrowModifier(score, c.SavingThrows[a], prof),
			Proficient: c.SavingThrows[a],
		})
	}

	for _, s := range dnd5e.Skills {
		ability, _ := s.Ability()
		sheet.Skills = append(sheet.Skills, SkillLine{
			Skill:      s,
			Ability:    ability,
			Modifier:   SkillModifier(c.Skills, c.AbilityScores, prof, s),
			Proficient: c.Skills[s],
		})
	}

	if sc := c.Spellcasting; sc != nil {
		block := &SpellcastingSheet{
			Class:          sc.Class,
			Ability:        sc.Ability,
			SaveDC:         sc.SaveDC,
			AttackBonus:    sc.AttackBonus,
			SpellsKnown:    sc.SpellsKnown,
			SpellsPrepared: sc.SpellsPrepared,
		}
		for _, level := range dnd5e.SpellSlotLevels {
			slot := sc.Slots[level-1]
			block.Slots = append(block.Slots, SpellSlotLine{
				Level:     level,
				Total:     slot.Total,
				Expended:  slot.Expended,
				Remaining: slot.Remaining(),
			})
		}
		sheet.Spellcasting = block
	}

	return sheet
}
