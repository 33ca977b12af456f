// Package dnd5e holds the character data model: ability scores, skills, the
// class catalog, the hit point and spell slot ledgers, and the character record.
//
// Derived numbers (modifiers, DCs, hit point formulas) are computed by the
// engine package; the types here only carry state and enforce the ledger rules.
package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Ability is one of the six base attributes
type Ability string

// Abilities
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Ability score bounds accepted at entry
const (
	MinAbilityScore     = 1
	MaxAbilityScore     = 30
	DefaultAbilityScore = 10
)

// Abilities lists the abilities in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// CastingAbilities are the abilities a spellcasting profile may use
var CastingAbilities = []Ability{
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityShort = map[Ability]string{
	AbilityStrength:     "STR",
	AbilityDexterity:    "DEX",
	AbilityConstitution: "CON",
	AbilityIntelligence: "INT",
	AbilityWisdom:       "WIS",
	AbilityCharisma:     "CHA",
}

// Short returns the three letter abbreviation, e.g. "DEX"
func (a Ability) Short() string {
	return abilityShort[a]
}

// DisplayName returns the capitalized name, e.g. "Dexterity"
func (a Ability) DisplayName() string {
	return titleCase(string(a))
}

// Valid reports whether a is one of the six abilities
func (a Ability) Valid() bool {
	_, ok := abilityShort[a]
	return ok
}

// IsCastingAbility reports whether a may be used as a spellcasting ability
func (a Ability) IsCastingAbility() bool {
	for _, c := range CastingAbilities {
		if a == c {
			return true
		}
	}
	return false
}

// ParseAbility accepts the full name or the abbreviation in any case
func ParseAbility(s string) (Ability, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Abilities {
		if key == string(a) || key == strings.ToLower(a.Short()) {
			return a, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown ability %q", s)
}

// AbilityScores holds the six raw attribute values
type AbilityScores struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// DefaultAbilityScores returns every score at 10
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{
		Strength:     DefaultAbilityScore,
		Dexterity:    DefaultAbilityScore,
		Constitution: DefaultAbilityScore,
		Intelligence: DefaultAbilityScore,
		Wisdom:       DefaultAbilityScore,
		Charisma:     DefaultAbilityScore,
	}
}

// Get returns the score for an ability. Unknown abilities read as the neutral 10.
func (s AbilityScores) Get(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	default:
		return DefaultAbilityScore
	}
}

// Set validates and stores a score. The previous value is kept on error.
func (s *AbilityScores) Set(a Ability, score int) error {
	if err := ValidateAbilityScore(a, score); err != nil {
		return err
	}
	switch a {
	case AbilityStrength:
		s.Strength = score
	case AbilityDexterity:
		s.Dexterity = score
	case AbilityConstitution:
		s.Constitution = score
	case AbilityIntelligence:
		s.Intelligence = score
	case AbilityWisdom:
		s.Wisdom = score
	case AbilityCharisma:
		s.Charisma = score
	}
	return nil
}

// Validate checks every score is inside [1,30]
func (s AbilityScores) Validate() error {
	vb := errors.NewValidationBuilder()
	for _, a := range Abilities {
		errors.ValidateRange(string(a), s.Get(a), MinAbilityScore, MaxAbilityScore, vb)
	}
	return vb.Build()
}

// ValidateAbilityScore checks a single entry
func ValidateAbilityScore(a Ability, score int) error {
	if !a.Valid() {
		return errors.InvalidArgumentf("unknown ability %q", a)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRange(string(a), score, MinAbilityScore, MaxAbilityScore, vb)
	return vb.Build()
}
