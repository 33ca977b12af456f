package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Skill is one of the eighteen skills
type Skill string

// Skills
const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal_handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight_of_hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// Skills lists every skill in alphabetical (sheet) order
var Skills = []Skill{
	SkillAcrobatics, SkillAnimalHandling, SkillArcana, SkillAthletics,
	SkillDeception, SkillHistory, SkillInsight, SkillIntimidation,
	SkillInvestigation, SkillMedicine, SkillNature, SkillPerception,
	SkillPerformance, SkillPersuasion, SkillReligion, SkillSleightOfHand,
	SkillStealth, SkillSurvival,
}

var skillAbility = map[Skill]Ability{
	SkillAcrobatics:     AbilityDexterity,
	SkillAnimalHandling: AbilityWisdom,
	SkillArcana:         AbilityIntelligence,
	SkillAthletics:      AbilityStrength,
	SkillDeception:      AbilityCharisma,
	SkillHistory:        AbilityIntelligence,
	SkillInsight:        AbilityWisdom,
	SkillIntimidation:   AbilityCharisma,
	SkillInvestigation:  AbilityIntelligence,
	SkillMedicine:       AbilityWisdom,
	SkillNature:         AbilityIntelligence,
	SkillPerception:     AbilityWisdom,
	SkillPerformance:    AbilityCharisma,
	SkillPersuasion:     AbilityCharisma,
	SkillReligion:       AbilityIntelligence,
	SkillSleightOfHand:  AbilityDexterity,
	SkillStealth:        AbilityDexterity,
	SkillSurvival:       AbilityWisdom,
}

// Ability returns the governing ability. ok is false for unknown skills.
func (s Skill) Ability() (Ability, bool) {
	a, ok := skillAbility[s]
	return a, ok
}

// Valid reports whether s is a known skill
func (s Skill) Valid() bool {
	_, ok := skillAbility[s]
	return ok
}

// DisplayName returns e.g. "Sleight Of Hand"
func (s Skill) DisplayName() string {
	return titleCase(string(s))
}

// ParseSkill accepts the key ("sleight_of_hand") or the display form ("Sleight of Hand")
func ParseSkill(s string) (Skill, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	if Skill(key).Valid() {
		return Skill(key), nil
	}
	return "", errors.InvalidArgumentf("unknown skill %q", s)
}

// MaxSkillPicksPerGroup is the number of skill proficiencies accepted from
// each selection group during creation
const MaxSkillPicksPerGroup = 2

// SkillSelectionGroups are the groups the creation wizard offers skills in
var SkillSelectionGroups = [][]Skill{
	{SkillAcrobatics, SkillAnimalHandling, SkillArcana, SkillAthletics},
	{SkillDeception, SkillHistory, SkillInsight, SkillIntimidation},
	{SkillInvestigation, SkillMedicine, SkillNature, SkillPerception},
	{SkillPerformance, SkillPersuasion, SkillReligion, SkillSleightOfHand},
	{SkillStealth, SkillSurvival},
}

// SkillSelectionGroup returns the index of the selection group holding s, or -1
func SkillSelectionGroup(s Skill) int {
	for i, group := range SkillSelectionGroups {
		for _, member := range group {
			if member == s {
				return i
			}
		}
	}
	return -1
}

// ValidateSkillSelection enforces the per-group pick budget
func ValidateSkillSelection(picks []Skill) error {
	vb := errors.NewValidationBuilder()
	counts := make([]int, len(SkillSelectionGroups))
	seen := make(map[Skill]bool, len(picks))
	for _, s := range picks {
		group := SkillSelectionGroup(s)
		if group < 0 {
			vb.InvalidField("skills", "unknown skill "+string(s))
			continue
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		counts[group]++
	}
	for i, n := range counts {
		if n > MaxSkillPicksPerGroup {
			vb.Fieldf("skills", "at most %d picks allowed from group %d, got %d", MaxSkillPicksPerGroup, i+1, n)
		}
	}
	return vb.Build()
}

// SkillDisplayGroup is a heading on the skills view and the skills under it
type SkillDisplayGroup struct {
	Ability Ability
	Skills  []Skill
}

// SkillDisplayGroups groups skills by governing ability. Constitution governs none.
var SkillDisplayGroups = []SkillDisplayGroup{
	{Ability: AbilityStrength, Skills: []Skill{SkillAthletics}},
	{Ability: AbilityDexterity, Skills: []Skill{SkillAcrobatics, SkillSleightOfHand, SkillStealth}},
	{Ability: AbilityIntelligence, Skills: []Skill{SkillArcana, SkillHistory, SkillInvestigation, SkillNature, SkillReligion}},
	{Ability: AbilityWisdom, Skills: []Skill{SkillAnimalHandling, SkillInsight, SkillMedicine, SkillPerception, SkillSurvival}},
	{Ability: AbilityCharisma, Skills: []Skill{SkillDeception, SkillIntimidation, SkillPerformance, SkillPersuasion}},
}

// SavingThrowProficiencies maps every ability to a proficient flag
type SavingThrowProficiencies map[Ability]bool

// NewSavingThrowProficiencies returns a full map with nothing proficient,
// then marks the given abilities
func NewSavingThrowProficiencies(proficient ...Ability) SavingThrowProficiencies {
	p := make(SavingThrowProficiencies, len(Abilities))
	for _, a := range Abilities {
		p[a] = false
	}
	for _, a := range proficient {
		if a.Valid() {
			p[a] = true
		}
	}
	return p
}

// Normalize drops unknown keys and fills missing ones with false
func (p SavingThrowProficiencies) Normalize() SavingThrowProficiencies {
	out := NewSavingThrowProficiencies()
	for a, v := range p {
		if a.Valid() {
			out[a] = v
		}
	}
	return out
}

// Proficient lists the proficient abilities in sheet order
func (p SavingThrowProficiencies) Proficient() []Ability {
	var out []Ability
	for _, a := range Abilities {
		if p[a] {
			out = append(out, a)
		}
	}
	return out
}

// SkillProficiencies maps every skill to a proficient flag
type SkillProficiencies map[Skill]bool

// NewSkillProficiencies returns a full map with the given skills marked
func NewSkillProficiencies(proficient ...Skill) SkillProficiencies {
	p := make(SkillProficiencies, len(Skills))
	for _, s := range Skills {
		p[s] = false
	}
	for _, s := range proficient {
		if s.Valid() {
			p[s] = true
		}
	}
	return p
}

// Normalize drops unknown keys and fills missing ones with false
func (p SkillProficiencies) Normalize() SkillProficiencies {
	out := NewSkillProficiencies()
	for s, v := range p {
		if s.Valid() {
			out[s] = v
		}
	}
	return out
}

// Proficient lists the proficient skills in sheet order
func (p SkillProficiencies) Proficient() []Skill {
	var out []Skill
	for _, s := range Skills {
		if p[s] {
			out = append(out, s)
		}
	}
	return out
}
