package character_test

import (
	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	character "github.com/KirkDiggler/character-maker/internal/orchestrators/character"
	charactersvc "github.com/KirkDiggler/character-maker/internal/services/character"
	"github.com/KirkDiggler/character-maker/internal/testutils"
)

func ptr[T any](v T) *T { return &v }

func (s *OrchestratorTestSuite) TestUpdateBasicInfo() {
	s.seed(testutils.NewCharacterFixture(), testutils.NewSpellcasterFixture())

	s.Run("partial update", func() {
		out, err := s.orchestrator.UpdateBasicInfo(s.ctx, &charactersvc.UpdateBasicInfoInput{
			Name:             testutils.TestCharacterName,
			Race:             ptr(" Hill Dwarf "),
			ExperiencePoints: ptr(900),
		})
		s.Require().NoError(err)
		s.Equal("Hill Dwarf", out.Character.Race)
		s.Equal(900, out.Character.ExperiencePoints)
		s.Equal(testutils.TestPlayerName, out.Character.PlayerName)
	})

	s.Run("negative experience", func() {
		_, err := s.orchestrator.UpdateBasicInfo(s.ctx, &charactersvc.UpdateBasicInfoInput{
			Name:             testutils.TestCharacterName,
			ExperiencePoints: ptr(-5),
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("taken name changes nothing", func() {
		_, err := s.orchestrator.UpdateBasicInfo(s.ctx, &charactersvc.UpdateBasicInfoInput{
			Name:      testutils.TestCharacterName,
			NewName:   ptr(testutils.TestSpellcasterName),
			Alignment: ptr("Chaotic Neutral"),
		})
		s.True(errors.IsAlreadyExists(err))
		s.Equal("Lawful Good", s.get(testutils.TestCharacterName).Alignment)
	})

	s.Run("new name renames", func() {
		out, err := s.orchestrator.UpdateBasicInfo(s.ctx, &charactersvc.UpdateBasicInfoInput{
			Name:       testutils.TestCharacterName,
			NewName:    ptr("Thorin Stonehelm"),
			PlayerName: ptr("Sam"),
		})
		s.Require().NoError(err)
		s.Equal("Thorin Stonehelm", out.Character.Name)
		s.Equal("Sam", out.Character.PlayerName)
		s.Len(s.received[rpgtoolkit.EventCharacterRenamed], 1)
	})
}

func (s *OrchestratorTestSuite) TestUpdateClassRecalculates() {
	s.seed(testutils.NewSpellcasterFixture())

	out, err := s.orchestrator.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{
		Name:  testutils.TestSpellcasterName,
		Level: ptr(5),
	})
	s.Require().NoError(err)

	c := out.Character
	s.Equal(3, c.ProficiencyBonus)
	s.Equal("5d6", c.HitDice)
	s.Equal(14, c.Spellcasting.SaveDC)
	s.Equal(6, c.Spellcasting.AttackBonus)
	s.ElementsMatch([]string{
		engine.FieldProficiencyBonus,
		engine.FieldHitDice,
		engine.FieldSpellSaveDC,
		engine.FieldSpellAttackBonus,
	}, out.Changed)
	s.Len(s.received[rpgtoolkit.EventCharacterRecalculated], 1)

	// hit points are left to SetHitPoints
	s.Equal(17, c.HitPoints.Maximum)
}

func (s *OrchestratorTestSuite) TestUpdateClassChangesHitDie() {
	s.seed(testutils.NewSpellcasterFixture())

	out, err := s.orchestrator.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{
		Name:     testutils.TestSpellcasterName,
		Class:    ptr("sorcerer"),
		Subclass: ptr("Draconic Bloodline"),
	})
	s.Require().NoError(err)
	s.Equal(dnd5e.ClassSorcerer, out.Character.Class)
	s.Equal("Draconic Bloodline", out.Character.Subclass)
	s.Empty(out.Changed)
}

func (s *OrchestratorTestSuite) TestUpdateClassRejects() {
	s.seed(testutils.NewSpellcasterFixture())

	_, err := s.orchestrator.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{
		Name:  testutils.TestSpellcasterName,
		Class: ptr("Gunslinger"),
		Level: ptr(4),
	})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{
		Name:  testutils.TestSpellcasterName,
		Level: ptr(0),
	})
	s.True(errors.IsInvalidArgument(err))

	s.Equal(3, s.get(testutils.TestSpellcasterName).Level)
}

func (s *OrchestratorTestSuite) TestUpdateAbilityScores() {
	s.seed(testutils.NewSpellcasterFixture())

	s.Run("all or nothing", func() {
		_, err := s.orchestrator.UpdateAbilityScores(s.ctx, &charactersvc.UpdateAbilityScoresInput{
			Name: testutils.TestSpellcasterName,
			Scores: map[dnd5e.Ability]int{
				dnd5e.AbilityDexterity:    18,
				dnd5e.AbilityIntelligence: 40,
			},
		})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(errors.ValidationFields(err), "intelligence")
		s.Equal(14, s.get(testutils.TestSpellcasterName).AbilityScores.Dexterity)
	})

	s.Run("recalculates dependents", func() {
		out, err := s.orchestrator.UpdateAbilityScores(s.ctx, &charactersvc.UpdateAbilityScoresInput{
			Name: testutils.TestSpellcasterName,
			Scores: map[dnd5e.Ability]int{
				dnd5e.AbilityDexterity:    16,
				dnd5e.AbilityIntelligence: 18,
			},
		})
		s.Require().NoError(err)
		s.Equal(3, out.Character.Initiative)
		s.Equal(14, out.Character.Spellcasting.SaveDC)
		s.Equal(6, out.Character.Spellcasting.AttackBonus)
		s.ElementsMatch([]string{
			engine.FieldInitiative,
			engine.FieldSpellSaveDC,
			engine.FieldSpellAttackBonus,
		}, out.Changed)
	})

	s.Run("armor class is left alone", func() {
		s.Equal(12, s.get(testutils.TestSpellcasterName).ArmorClass)
	})

	s.Run("empty batch", func() {
		_, err := s.orchestrator.UpdateAbilityScores(s.ctx, &charactersvc.UpdateAbilityScoresInput{
			Name: testutils.TestSpellcasterName,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateCombatStats() {
	s.seed(testutils.NewSpellcasterFixture())

	s.Run("explicit values", func() {
		out, err := s.orchestrator.UpdateCombatStats(s.ctx, &charactersvc.UpdateCombatStatsInput{
			Name:       testutils.TestSpellcasterName,
			ArmorClass: ptr(15),
			Speed:      ptr(35),
			HitDice:    ptr("3d6 "),
		})
		s.Require().NoError(err)
		s.Equal(15, out.Character.ArmorClass)
		s.Equal(35, out.Character.Speed)
		s.Equal("3d6", out.Character.HitDice)
	})

	s.Run("default armor class", func() {
		out, err := s.orchestrator.UpdateCombatStats(s.ctx, &charactersvc.UpdateCombatStatsInput{
			Name:                 testutils.TestSpellcasterName,
			UseDefaultArmorClass: true,
		})
		s.Require().NoError(err)
		s.Equal(12, out.Character.ArmorClass)
	})

	s.Run("proficiency override refreshes spell numbers", func() {
		out, err := s.orchestrator.UpdateCombatStats(s.ctx, &charactersvc.UpdateCombatStatsInput{
			Name:             testutils.TestSpellcasterName,
			ProficiencyBonus: ptr(4),
		})
		s.Require().NoError(err)
		s.Equal(4, out.Character.ProficiencyBonus)
		s.Equal(15, out.Character.Spellcasting.SaveDC)
		s.Equal(7, out.Character.Spellcasting.AttackBonus)
	})

	s.Run("next level change supersedes the override", func() {
		out, err := s.orchestrator.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{
			Name:  testutils.TestSpellcasterName,
			Level: ptr(4),
		})
		s.Require().NoError(err)
		s.Equal(2, out.Character.ProficiencyBonus)
		s.Equal(13, out.Character.Spellcasting.SaveDC)
	})

	s.Run("rejects negative values", func() {
		_, err := s.orchestrator.UpdateCombatStats(s.ctx, &charactersvc.UpdateCombatStatsInput{
			Name:  testutils.TestSpellcasterName,
			Speed: ptr(-10),
		})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(errors.ValidationFields(err), "speed")
	})
}

func (s *OrchestratorTestSuite) TestProficiencyToggles() {
	s.seed(testutils.NewCharacterFixture())

	out, err := s.orchestrator.SetSavingThrowProficiency(s.ctx, &charactersvc.SetSavingThrowProficiencyInput{
		Name:       testutils.TestCharacterName,
		Ability:    dnd5e.AbilityWisdom,
		Proficient: true,
	})
	s.Require().NoError(err)
	s.Equal([]dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution, dnd5e.AbilityWisdom},
		out.Character.SavingThrows.Proficient())

	out, err = s.orchestrator.SetSkillProficiency(s.ctx, &charactersvc.SetSkillProficiencyInput{
		Name:       testutils.TestCharacterName,
		Skill:      dnd5e.SkillAthletics,
		Proficient: false,
	})
	s.Require().NoError(err)
	s.Equal([]dnd5e.Skill{dnd5e.SkillPerception}, out.Character.Skills.Proficient())

	_, err = s.orchestrator.SetSkillProficiency(s.ctx, &charactersvc.SetSkillProficiencyInput{
		Name:  testutils.TestCharacterName,
		Skill: dnd5e.Skill("basket_weaving"),
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetSavingThrowProficiency(s.ctx, &charactersvc.SetSavingThrowProficiencyInput{
		Name:    testutils.TestCharacterName,
		Ability: dnd5e.Ability("luck"),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestLists() {
	s.seed(testutils.NewCharacterFixture())

	out, err := s.orchestrator.SetLanguages(s.ctx, &charactersvc.SetListInput{
		Name:   testutils.TestCharacterName,
		Values: character.SplitList("Common, Dwarvish, , Giant"),
	})
	s.Require().NoError(err)
	s.Equal([]string{"Common", "Dwarvish", "Giant"}, out.Character.Languages)

	out, err = s.orchestrator.SetOtherProficiencies(s.ctx, &charactersvc.SetListInput{
		Name:   testutils.TestCharacterName,
		Values: character.SplitList(" "),
	})
	s.Require().NoError(err)
	s.Nil(out.Character.OtherProficiencies)
}
