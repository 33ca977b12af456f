package testutils

import (
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// Fixture names and timestamps
const (
	TestCharacterName   = "Thorin Oakenshield"
	TestSpellcasterName = "Elara Moonwhisper"
	TestPlayerName      = "Alex"
	TestTimestamp       = int64(1700000000)
)

// NewCharacterFixture returns a level 1 dwarf fighter whose derived fields
// are already consistent, so recalculation reports no changes
func NewCharacterFixture() *dnd5e.Character {
	return &dnd5e.Character{
		ID:         "char_1",
		Name:       TestCharacterName,
		PlayerName: TestPlayerName,
		Race:       "Mountain Dwarf",
		Background: "Soldier",
		Alignment:  "Lawful Good",
		Class:      dnd5e.ClassFighter,
		Level:      1,
		AbilityScores: dnd5e.AbilityScores{
			Strength:     16,
			Dexterity:    14,
			Constitution: 14,
			Intelligence: 8,
			Wisdom:       12,
			Charisma:     10,
		},
		ProficiencyBonus: 2,
		ArmorClass:       16,
		Initiative:       2,
		Speed:            25,
		HitDice:          "1d10",
		HitPoints:        dnd5e.HitPointState{Maximum: 12, Current: 12},
		SavingThrows:     dnd5e.NewSavingThrowProficiencies(dnd5e.AbilityStrength, dnd5e.AbilityConstitution),
		Skills:           dnd5e.NewSkillProficiencies(dnd5e.SkillAthletics, dnd5e.SkillPerception),
		Languages:        []string{"Common", "Dwarvish"},
		OtherProficiencies: []string{
			"All armor", "Shields", "Simple weapons", "Martial weapons",
		},
		Status:    dnd5e.CharacterStatusActive,
		CreatedAt: TestTimestamp,
		UpdatedAt: TestTimestamp,
	}
}

// NewSpellcasterFixture returns a level 3 elf wizard with first and second
// level slots and consistent spell numbers
func NewSpellcasterFixture() *dnd5e.Character {
	c := &dnd5e.Character{
		ID:         "char_2",
		Name:       TestSpellcasterName,
		PlayerName: TestPlayerName,
		Race:       "High Elf",
		Background: "Sage",
		Alignment:  "Neutral Good",
		Class:      dnd5e.ClassWizard,
		Subclass:   "School of Evocation",
		Level:      3,
		AbilityScores: dnd5e.AbilityScores{
			Strength:     8,
			Dexterity:    14,
			Constitution: 12,
			Intelligence: 16,
			Wisdom:       13,
			Charisma:     10,
		},
		ProficiencyBonus: 2,
		ArmorClass:       12,
		Initiative:       2,
		Speed:            dnd5e.DefaultSpeed,
		HitDice:          "3d6",
		HitPoints:        dnd5e.HitPointState{Maximum: 17, Current: 17},
		SavingThrows:     dnd5e.NewSavingThrowProficiencies(dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom),
		Skills:           dnd5e.NewSkillProficiencies(dnd5e.SkillArcana, dnd5e.SkillHistory),
		Spellcasting: &dnd5e.SpellcastingProfile{
			Class:       dnd5e.ClassWizard,
			Ability:     dnd5e.AbilityIntelligence,
			SaveDC:      13,
			AttackBonus: 5,
			SpellsKnown: []string{"Magic Missile", "Shield", "Misty Step"},
		},
		Languages: []string{"Common", "Elvish"},
		Status:    dnd5e.CharacterStatusActive,
		CreatedAt: TestTimestamp,
		UpdatedAt: TestTimestamp,
	}
	c.Spellcasting.Slots[0] = dnd5e.SpellSlot{Total: 4}
	c.Spellcasting.Slots[1] = dnd5e.SpellSlot{Total: 2}
	return c
}

// NewInventoryFixture returns a small pack covering stacking, rarity and fractional weights
func NewInventoryFixture() []dnd5e.InventoryItem {
	return []dnd5e.InventoryItem{
		{Name: "Rope, hempen (50 feet)", Weight: 10, Rarity: dnd5e.RarityCommon, Quantity: 1, ValueGP: 1, ItemType: "Adventuring Gear"},
		{Name: "Potion of Healing", Weight: 0.5, Rarity: dnd5e.RarityCommon, Quantity: 3, ValueGP: 50, ItemType: "Potion", Magical: true},
		{Name: "Cloak of Protection", Weight: 1, Rarity: dnd5e.RarityUncommon, Quantity: 1, ValueGP: 500, ItemType: "Wondrous Item", Magical: true, Attuned: true},
		{Name: "Arrows", Weight: 0.05, Rarity: dnd5e.RarityCommon, Quantity: 20, ValueGP: 0.05, ItemType: "Ammunition"},
	}
}
