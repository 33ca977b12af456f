package dnd5e

import "fmt"

// CharacterStatus is the lifecycle state of a record
type CharacterStatus string

// Lifecycle states. Drafts live only in the creation wizard; a deleted record
// is gone from the store and the status only travels on the deletion event.
const (
	CharacterStatusDraft   CharacterStatus = "draft"
	CharacterStatusActive  CharacterStatus = "active"
	CharacterStatusDeleted CharacterStatus = "deleted"
)

// Defaults for new and migrated records
const (
	DefaultSpeed      = 30
	DefaultArmorClass = 10
	MinLevel          = 1
	MaxLevel          = 20
)

// Character is a persisted character record.
// NOTE: derived fields (ProficiencyBonus, Initiative, HitDice, spell DC/attack)
// are stored for display and refreshed by the engine on recalculation triggers.
type Character struct {
	ID   string
	Name string

	PlayerName       string
	Race             string
	Background       string
	Alignment        string
	Class            string
	Subclass         string
	Level            int
	ExperiencePoints int

	AbilityScores AbilityScores

	ProficiencyBonus int
	ArmorClass       int
	Initiative       int
	Speed            int
	HitDice          string
	HitPoints        HitPointState

	SavingThrows SavingThrowProficiencies
	Skills       SkillProficiencies

	// Spellcasting is nil for characters that do not cast
	Spellcasting *SpellcastingProfile

	FeaturesAndTraits  []string
	CustomAbilities    []string
	Languages          []string
	OtherProficiencies []string
	Conditions         []string
	CombatNotes        []string

	Inventory []InventoryItem

	Status    CharacterStatus
	CreatedAt int64
	UpdatedAt int64
}

// ClassLevel renders the combined "Fighter 3" label older records stored
func (c *Character) ClassLevel() string {
	if c.Class == "" {
		return fmt.Sprintf("Level %d", c.Level)
	}
	return fmt.Sprintf("%s %d", c.Class, c.Level)
}

// IsSpellcaster reports whether the record carries a spellcasting profile
func (c *Character) IsSpellcaster() bool {
	return c.Spellcasting != nil
}

// Clone returns a deep copy so callers never share slices or maps with the store
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c

	out.SavingThrows = make(SavingThrowProficiencies, len(c.SavingThrows))
	for k, v := range c.SavingThrows {
		out.SavingThrows[k] = v
	}
	out.Skills = make(SkillProficiencies, len(c.Skills))
	for k, v := range c.Skills {
		out.Skills[k] = v
	}

	out.Spellcasting = c.Spellcasting.Clone()

	out.FeaturesAndTraits = cloneStrings(c.FeaturesAndTraits)
	out.CustomAbilities = cloneStrings(c.CustomAbilities)
	out.Languages = cloneStrings(c.Languages)
	out.OtherProficiencies = cloneStrings(c.OtherProficiencies)
	out.Conditions = cloneStrings(c.Conditions)
	out.CombatNotes = cloneStrings(c.CombatNotes)

	if c.Inventory != nil {
		out.Inventory = append([]InventoryItem(nil), c.Inventory...)
	}

	return &out
}
