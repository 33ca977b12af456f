package character_test

import (
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	charactersvc "github.com/KirkDiggler/character-maker/internal/services/character"
	"github.com/KirkDiggler/character-maker/internal/testutils"
	"github.com/KirkDiggler/character-maker/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) finalize(draft *dnd5e.CharacterDraft) (*charactersvc.FinalizeDraftOutput, error) {
	return s.orchestrator.FinalizeDraft(s.ctx, &charactersvc.FinalizeDraftInput{Draft: draft})
}

func (s *OrchestratorTestSuite) TestFinalizeDraftFighter() {
	out, err := s.finalize(builders.NewCharacterDraftBuilder().AsFighter().Build())
	s.Require().NoError(err)

	c := out.Character
	s.Equal("char_1", c.ID)
	s.Equal(testutils.TestCharacterName, c.Name)
	s.Equal(dnd5e.ClassFighter, c.Class)
	s.Equal(1, c.Level)
	s.Equal(2, c.ProficiencyBonus)
	s.Equal("1d10", c.HitDice)
	s.Equal(2, c.Initiative)
	s.Equal(16, c.ArmorClass)
	s.Equal(25, c.Speed)
	s.Equal(dnd5e.HitPointState{Maximum: 12, Current: 12}, c.HitPoints)
	s.Equal([]dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution}, c.SavingThrows.Proficient())
	s.Equal([]dnd5e.Skill{dnd5e.SkillAthletics, dnd5e.SkillPerception}, c.Skills.Proficient())
	s.Len(c.Skills, len(dnd5e.Skills))
	s.Nil(c.Spellcasting)
	s.Equal(dnd5e.CharacterStatusActive, c.Status)
	s.Equal(testutils.TestTimestamp, c.CreatedAt)

	s.Equal(dnd5e.HitPointMethodMaximum, out.HitPoints.Method)
	s.Equal(c, s.get(testutils.TestCharacterName))
}

func (s *OrchestratorTestSuite) TestFinalizeDraftWizard() {
	out, err := s.finalize(builders.NewCharacterDraftBuilder().AsWizard().Build())
	s.Require().NoError(err)

	c := out.Character
	// d6 with CON 12: 7 at first level, then 3 + 1 + 1 for levels 2 and 3
	s.Equal(17, c.HitPoints.Maximum)
	s.Equal("3d6", c.HitDice)
	s.Equal("School of Evocation", c.Subclass)
	s.Equal(12, c.ArmorClass)
	s.Equal(dnd5e.DefaultSpeed, c.Speed)

	s.Require().NotNil(c.Spellcasting)
	s.Equal(dnd5e.ClassWizard, c.Spellcasting.Class)
	s.Equal(13, c.Spellcasting.SaveDC)
	s.Equal(5, c.Spellcasting.AttackBonus)
	s.Equal(dnd5e.SpellSlot{Total: 4}, c.Spellcasting.Slots[0])
	s.Equal(dnd5e.SpellSlot{Total: 2}, c.Spellcasting.Slots[1])
	s.Equal(dnd5e.SpellSlot{}, c.Spellcasting.Slots[2])
}

func (s *OrchestratorTestSuite) TestFinalizeDraftRolledHitPoints() {
	s.useRoller(7, 4)

	out, err := s.finalize(builders.NewCharacterDraftBuilder().
		AsFighter().
		WithClass("fighter", 3).
		WithHitPointMethod(dnd5e.HitPointMethodRolled).
		Build())
	s.Require().NoError(err)

	s.Equal(dnd5e.ClassFighter, out.Character.Class)
	s.Equal([]int{7, 4}, out.HitPoints.Rolls)
	s.Equal(12+(7+2)+(4+2), out.Character.HitPoints.Maximum)
	s.Equal([]int{10, 10}, s.roller.Sizes())
}

func (s *OrchestratorTestSuite) TestFinalizeDraftDefaults() {
	draft := dnd5e.NewCharacterDraft("Brother Aldous")
	draft.Class = "cleric"
	draft.AbilityScores.Dexterity = 8

	out, err := s.finalize(draft)
	s.Require().NoError(err)

	c := out.Character
	s.Equal(dnd5e.ClassCleric, c.Class)
	s.Equal(9, c.ArmorClass)
	s.Equal(-1, c.Initiative)
	s.Equal([]dnd5e.Ability{dnd5e.AbilityWisdom, dnd5e.AbilityCharisma}, c.SavingThrows.Proficient())
	s.Empty(c.Skills.Proficient())
}

func (s *OrchestratorTestSuite) TestFinalizeDraftRejectsTakenNameBeforeRolling() {
	s.seed(testutils.NewCharacterFixture())

	_, err := s.finalize(builders.NewCharacterDraftBuilder().
		AsFighter().
		WithClass(dnd5e.ClassFighter, 5).
		WithHitPointMethod(dnd5e.HitPointMethodRolled).
		Build())
	s.True(errors.IsAlreadyExists(err))
	s.Empty(s.roller.Sizes())
}

func (s *OrchestratorTestSuite) TestFinalizeDraftValidation() {
	testCases := []struct {
		name   string
		draft  *dnd5e.CharacterDraft
		check  func(error) bool
		fields []string
	}{
		{
			name:   "blank name",
			draft:  builders.NewCharacterDraftBuilder().AsFighter().WithName(" ").Build(),
			check:  errors.IsInvalidArgument,
			fields: []string{"name"},
		},
		{
			name:   "level out of range",
			draft:  builders.NewCharacterDraftBuilder().AsFighter().WithClass(dnd5e.ClassFighter, 21).Build(),
			check:  errors.IsInvalidArgument,
			fields: []string{"level"},
		},
		{
			name:   "ability score out of range",
			draft:  builders.NewCharacterDraftBuilder().AsFighter().WithAbilityScores(31, 14, 14, 8, 12, 0).Build(),
			check:  errors.IsInvalidArgument,
			fields: []string{"strength", "charisma"},
		},
		{
			name: "skill budget exceeded",
			draft: builders.NewCharacterDraftBuilder().AsFighter().
				WithSkills(dnd5e.SkillAcrobatics, dnd5e.SkillAnimalHandling, dnd5e.SkillArcana).
				Build(),
			check:  errors.IsInvalidArgument,
			fields: []string{"skills"},
		},
		{
			name: "non casting ability",
			draft: builders.NewCharacterDraftBuilder().AsFighter().
				WithSpellcasting(dnd5e.ClassFighter, dnd5e.AbilityStrength, 2).
				Build(),
			check:  errors.IsInvalidArgument,
			fields: []string{"spellcasting_ability"},
		},
		{
			name:  "unknown class",
			draft: builders.NewCharacterDraftBuilder().AsFighter().WithClass("Gunslinger", 1).Build(),
			check: errors.IsNotFound,
		},
		{
			name:  "custom hit points must be positive",
			draft: builders.NewCharacterDraftBuilder().AsFighter().WithCustomHitPoints(0).Build(),
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.finalize(tc.draft)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error %v", err)

			fields := errors.ValidationFields(err)
			for _, f := range tc.fields {
				s.Contains(fields, f)
			}

			list, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{})
			s.Require().NoError(err)
			s.Empty(list.Characters)
		})
	}
}

func (s *OrchestratorTestSuite) TestPreviewHitPoints() {
	s.Run("maximum for a d8 class", func() {
		out, err := s.orchestrator.PreviewHitPoints(s.ctx, &charactersvc.PreviewHitPointsInput{
			Class:             dnd5e.ClassCleric,
			Level:             4,
			ConstitutionScore: 14,
			Method:            dnd5e.HitPointMethodMaximum,
		})
		s.Require().NoError(err)
		s.Equal(8, out.HitDie)
		s.Equal(40, out.HitPoints.Maximum)
	})

	s.Run("raised to one", func() {
		// 1 + 2*(3 + 1 - 5) = -1
		out, err := s.orchestrator.PreviewHitPoints(s.ctx, &charactersvc.PreviewHitPointsInput{
			Class:             dnd5e.ClassWizard,
			Level:             3,
			ConstitutionScore: 1,
			Method:            dnd5e.HitPointMethodAverage,
		})
		s.Require().NoError(err)
		s.Equal(1, out.HitPoints.Maximum)
		s.True(out.HitPoints.Raised)
	})

	s.Run("unknown class", func() {
		_, err := s.orchestrator.PreviewHitPoints(s.ctx, &charactersvc.PreviewHitPointsInput{
			Class:             "Mystic",
			Level:             1,
			ConstitutionScore: 10,
			Method:            dnd5e.HitPointMethodAverage,
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("constitution out of range", func() {
		_, err := s.orchestrator.PreviewHitPoints(s.ctx, &charactersvc.PreviewHitPointsInput{
			Class:             dnd5e.ClassWizard,
			Level:             1,
			ConstitutionScore: 31,
			Method:            dnd5e.HitPointMethodAverage,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}
