// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/character-maker/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// Service defines the interface for character operations. Every operation
// names its character explicitly; a failed operation leaves the record unchanged.
type Service interface {
	// Store lifecycle
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Creation
	PreviewHitPoints(ctx context.Context, input *PreviewHitPointsInput) (*PreviewHitPointsOutput, error)
	FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error)

	// Records
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	RenameCharacter(ctx context.Context, input *RenameCharacterInput) (*RenameCharacterOutput, error)
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)

	// Section updates
	UpdateBasicInfo(ctx context.Context, input *UpdateBasicInfoInput) (*UpdateCharacterOutput, error)
	UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateCharacterOutput, error)
	UpdateAbilityScores(ctx context.Context, input *UpdateAbilityScoresInput) (*UpdateCharacterOutput, error)
	UpdateCombatStats(ctx context.Context, input *UpdateCombatStatsInput) (*UpdateCharacterOutput, error)
	SetSavingThrowProficiency(ctx context.Context, input *SetSavingThrowProficiencyInput) (*UpdateCharacterOutput, error)
	SetSkillProficiency(ctx context.Context, input *SetSkillProficiencyInput) (*UpdateCharacterOutput, error)
	SetLanguages(ctx context.Context, input *SetListInput) (*UpdateCharacterOutput, error)
	SetOtherProficiencies(ctx context.Context, input *SetListInput) (*UpdateCharacterOutput, error)

	// Hit points
	SetHitPoints(ctx context.Context, input *SetHitPointsInput) (*SetHitPointsOutput, error)
	Damage(ctx context.Context, input *DamageInput) (*DamageOutput, error)
	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)
	GrantTemporaryHitPoints(ctx context.Context, input *HitPointAmountInput) (*HitPointsOutput, error)
	ClearTemporaryHitPoints(ctx context.Context, input *CharacterNameInput) (*HitPointsOutput, error)
	SetCurrentHitPoints(ctx context.Context, input *HitPointAmountInput) (*HitPointsOutput, error)
	ChangeMaximumHitPoints(ctx context.Context, input *HitPointAmountInput) (*HitPointsOutput, error)

	// Spellcasting
	EnableSpellcasting(ctx context.Context, input *EnableSpellcastingInput) (*UpdateCharacterOutput, error)
	DisableSpellcasting(ctx context.Context, input *CharacterNameInput) (*UpdateCharacterOutput, error)
	SetSpellList(ctx context.Context, input *SetSpellListInput) (*UpdateCharacterOutput, error)
	SetSpellSlotTotal(ctx context.Context, input *SetSpellSlotTotalInput) (*SpellSlotOutput, error)
	UseSpellSlot(ctx context.Context, input *SpellSlotInput) (*SpellSlotOutput, error)
	RecoverSpellSlot(ctx context.Context, input *SpellSlotInput) (*SpellSlotOutput, error)
	ResetSpellSlots(ctx context.Context, input *CharacterNameInput) (*UpdateCharacterOutput, error)

	// Features, conditions and notes
	AddFeature(ctx context.Context, input *AddEntryInput) (*UpdateCharacterOutput, error)
	RemoveFeature(ctx context.Context, input *RemoveEntryInput) (*RemoveEntryOutput, error)
	EditFeature(ctx context.Context, input *EditEntryInput) (*UpdateCharacterOutput, error)
	AddCondition(ctx context.Context, input *AddEntryInput) (*UpdateCharacterOutput, error)
	RemoveCondition(ctx context.Context, input *RemoveEntryInput) (*RemoveEntryOutput, error)
	AddNote(ctx context.Context, input *AddEntryInput) (*UpdateCharacterOutput, error)
	RemoveNote(ctx context.Context, input *RemoveEntryInput) (*RemoveEntryOutput, error)
	ClearConditionsAndNotes(ctx context.Context, input *CharacterNameInput) (*UpdateCharacterOutput, error)
}

// Store lifecycle types

// LoadInput defines the request for loading the store
type LoadInput struct{}

// LoadOutput reports how many records were loaded
type LoadOutput struct {
	Count int
}

// SaveInput defines the request for saving the store
type SaveInput struct{}

// SaveOutput reports how many records were saved
type SaveOutput struct {
	Count int
}

// Creation types

// PreviewHitPointsInput computes hit points without touching any record
type PreviewHitPointsInput struct {
	Class             string
	Level             int
	ConstitutionScore int
	Method            dnd5e.HitPointMethod
	Custom            int
}

// PreviewHitPointsOutput carries the computed hit points
type PreviewHitPointsOutput struct {
	HitDie    int
	HitPoints *engine.CalculateHitPointsOutput
}

// FinalizeDraftInput defines the request for turning a wizard draft into a record
type FinalizeDraftInput struct {
	Draft *dnd5e.CharacterDraft
}

// FinalizeDraftOutput carries the new record and how its hit points came about
type FinalizeDraftOutput struct {
	Character *dnd5e.Character
	HitPoints *engine.CalculateHitPointsOutput
}

// Record types

// CharacterNameInput names the character an operation applies to
type CharacterNameInput struct {
	Name string
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	Name string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// CharacterSummary is one line of the character list
type CharacterSummary struct {
	Name       string
	Race       string
	Class      string
	Level      int
	ClassLevel string
}

// ListCharactersOutput lists characters sorted by name
type ListCharactersOutput struct {
	Characters []*CharacterSummary
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	Name string
}

// DeleteCharacterOutput carries the removed record
type DeleteCharacterOutput struct {
	Character *dnd5e.Character
}

// RenameCharacterInput defines the request for renaming a character
type RenameCharacterInput struct {
	OldName string
	NewName string
}

// RenameCharacterOutput carries the renamed record
type RenameCharacterOutput struct {
	Character *dnd5e.Character
}

// GetSheetInput defines the request for the character sheet
type GetSheetInput struct {
	Name string
}

// GetSheetOutput carries the resolved sheet
type GetSheetOutput struct {
	Sheet *engine.CharacterSheet
}

// Section update types

// UpdateCharacterOutput carries the record after an update
type UpdateCharacterOutput struct {
	Character *dnd5e.Character
	// Changed lists derived fields the engine refreshed
	Changed []string
}

// UpdateBasicInfoInput changes identity fields; nil fields are left alone.
// A new name renames the record.
type UpdateBasicInfoInput struct {
	Name             string
	NewName          *string
	PlayerName       *string
	Race             *string
	Background       *string
	Alignment        *string
	ExperiencePoints *int
}

// UpdateClassInput changes class, subclass or level and triggers recalculation
type UpdateClassInput struct {
	Name     string
	Class    *string
	Subclass *string
	Level    *int
}

// UpdateAbilityScoresInput replaces some scores; every score is validated
// before any is applied
type UpdateAbilityScoresInput struct {
	Name   string
	Scores map[dnd5e.Ability]int
}

// UpdateCombatStatsInput changes stored combat numbers; nil fields are left alone
type UpdateCombatStatsInput struct {
	Name       string
	ArmorClass *int
	// UseDefaultArmorClass resets armor class to 10 + DEX modifier
	UseDefaultArmorClass bool
	Speed                *int
	HitDice              *string
	ProficiencyBonus     *int
}

// SetSavingThrowProficiencyInput toggles one saving throw
type SetSavingThrowProficiencyInput struct {
	Name       string
	Ability    dnd5e.Ability
	Proficient bool
}

// SetSkillProficiencyInput toggles one skill
type SetSkillProficiencyInput struct {
	Name       string
	Skill      dnd5e.Skill
	Proficient bool
}

// SetListInput replaces a free-form list
type SetListInput struct {
	Name   string
	Values []string
}

// Hit point types

// SetHitPointsInput re-applies a hit point method at the current level and
// resets current hit points to the new maximum
type SetHitPointsInput struct {
	Name   string
	Method dnd5e.HitPointMethod
	Custom int
}

// SetHitPointsOutput carries the record and the computation
type SetHitPointsOutput struct {
	Character *dnd5e.Character
	HitPoints *engine.CalculateHitPointsOutput
}

// DamageInput defines the request for damaging a character
type DamageInput struct {
	Name   string
	Amount int
}

// DamageOutput reports how the damage was split
type DamageOutput struct {
	Result    *dnd5e.DamageResult
	HitPoints dnd5e.HitPointState
}

// HealInput defines the request for healing a character
type HealInput struct {
	Name   string
	Amount int
}

// HealOutput reports how much was actually healed
type HealOutput struct {
	Healed    int
	HitPoints dnd5e.HitPointState
}

// HitPointAmountInput carries one hit point value
type HitPointAmountInput struct {
	Name   string
	Amount int
}

// HitPointsOutput carries the hit point state after a change
type HitPointsOutput struct {
	HitPoints dnd5e.HitPointState
}

// Spellcasting types

// EnableSpellcastingInput adds or replaces the spellcasting profile.
// Slot totals are kept from an existing profile when SlotTotals is nil.
type EnableSpellcastingInput struct {
	Name       string
	Class      string
	Ability    dnd5e.Ability
	SlotTotals *[dnd5e.MaxSpellSlotLevel]int
}

// SpellList selects the known or prepared spell list
type SpellList string

// Spell lists
const (
	SpellListKnown    SpellList = "known"
	SpellListPrepared SpellList = "prepared"
)

// SetSpellListInput replaces one spell list
type SetSpellListInput struct {
	Name   string
	List   SpellList
	Spells []string
}

// SetSpellSlotTotalInput changes a slot total, resetting expended slots
type SetSpellSlotTotalInput struct {
	Name  string
	Level dnd5e.SpellSlotLevel
	Total int
}

// SpellSlotInput names one slot level
type SpellSlotInput struct {
	Name  string
	Level dnd5e.SpellSlotLevel
}

// SpellSlotOutput carries the slot after a change
type SpellSlotOutput struct {
	Level dnd5e.SpellSlotLevel
	Slot  dnd5e.SpellSlot
}

// Entry list types

// EntryList selects which free-form list a feature operation edits
type EntryList string

// Entry lists
const (
	EntryListFeatures        EntryList = "features"
	EntryListCustomAbilities EntryList = "custom_abilities"
)

// AddEntryInput appends text to a list
type AddEntryInput struct {
	Name string
	// List is only read by feature operations; empty means features
	List EntryList
	Text string
}

// RemoveEntryInput removes the entry at a 1-based index
type RemoveEntryInput struct {
	Name  string
	List  EntryList
	Index int
}

// RemoveEntryOutput carries the removed text
type RemoveEntryOutput struct {
	Removed   string
	Character *dnd5e.Character
}

// EditEntryInput replaces the entry at a 1-based index
type EditEntryInput struct {
	Name  string
	List  EntryList
	Index int
	Text  string
}
