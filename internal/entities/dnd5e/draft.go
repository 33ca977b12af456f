package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/character-maker/internal/errors"
)

// HitPointMethod selects how maximum hit points are computed
type HitPointMethod string

// Hit point methods
const (
	HitPointMethodMaximum HitPointMethod = "max"
	HitPointMethodAverage HitPointMethod = "average"
	HitPointMethodRolled  HitPointMethod = "rolled"
	HitPointMethodCustom  HitPointMethod = "custom"
)

// HitPointMethods lists the methods in menu order
var HitPointMethods = []HitPointMethod{
	HitPointMethodMaximum,
	HitPointMethodAverage,
	HitPointMethodRolled,
	HitPointMethodCustom,
}

// ParseHitPointMethod accepts a method name in any case
func ParseHitPointMethod(s string) (HitPointMethod, error) {
	key := HitPointMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range HitPointMethods {
		if key == m {
			return m, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown hit point method %q", s)
}

// DraftSpellcasting is the spellcasting block collected by the wizard
type DraftSpellcasting struct {
	Class   string
	Ability Ability
	// SlotTotals is indexed by level-1
	SlotTotals [MaxSpellSlotLevel]int
}

// CharacterDraft is everything the creation wizard gathers before a record
// exists. It is never persisted.
type CharacterDraft struct {
	Name       string
	PlayerName string
	Race       string
	Class      string
	Subclass   string
	Level      int
	Background string
	Alignment  string

	AbilityScores AbilityScores

	HitPointMethod HitPointMethod
	// CustomHitPoints is used when HitPointMethod is custom
	CustomHitPoints int

	SavingThrows []Ability
	Skills       []Skill

	// ArmorClass nil means 10 + DEX modifier
	ArmorClass *int
	// Speed 0 means DefaultSpeed
	Speed int

	Spellcasting *DraftSpellcasting

	Languages          []string
	OtherProficiencies []string
}

// NewCharacterDraft returns a draft with the wizard's defaults filled in
func NewCharacterDraft(name string) *CharacterDraft {
	return &CharacterDraft{
		Name:           name,
		Level:          MinLevel,
		AbilityScores:  DefaultAbilityScores(),
		HitPointMethod: HitPointMethodAverage,
		Speed:          DefaultSpeed,
	}
}
