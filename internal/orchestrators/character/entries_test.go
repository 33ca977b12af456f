package character_test

import (
	"github.com/KirkDiggler/character-maker/internal/errors"
	charactersvc "github.com/KirkDiggler/character-maker/internal/services/character"
	"github.com/KirkDiggler/character-maker/internal/testutils"
	"github.com/KirkDiggler/character-maker/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) TestFeatures() {
	s.seed(builders.NewCharacterBuilder().WithFeatures("Second Wind", "Fighting Style: Defense").Build())
	name := testutils.TestCharacterName

	s.Run("add", func() {
		out, err := s.orchestrator.AddFeature(s.ctx, &charactersvc.AddEntryInput{Name: name, Text: " Action Surge "})
		s.Require().NoError(err)
		s.Equal([]string{"Second Wind", "Fighting Style: Defense", "Action Surge"}, out.Character.FeaturesAndTraits)
	})

	s.Run("blank text", func() {
		_, err := s.orchestrator.AddFeature(s.ctx, &charactersvc.AddEntryInput{Name: name, Text: "  "})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("edit", func() {
		out, err := s.orchestrator.EditFeature(s.ctx, &charactersvc.EditEntryInput{
			Name:  name,
			Index: 2,
			Text:  "Fighting Style: Dueling",
		})
		s.Require().NoError(err)
		s.Equal("Fighting Style: Dueling", out.Character.FeaturesAndTraits[1])
	})

	s.Run("remove", func() {
		out, err := s.orchestrator.RemoveFeature(s.ctx, &charactersvc.RemoveEntryInput{Name: name, Index: 1})
		s.Require().NoError(err)
		s.Equal("Second Wind", out.Removed)
		s.Equal([]string{"Fighting Style: Dueling", "Action Surge"}, out.Character.FeaturesAndTraits)
	})

	s.Run("index out of range", func() {
		for _, index := range []int{0, 3} {
			_, err := s.orchestrator.RemoveFeature(s.ctx, &charactersvc.RemoveEntryInput{Name: name, Index: index})
			s.True(errors.IsNotFound(err))
		}
		s.Len(s.get(name).FeaturesAndTraits, 2)
	})

	s.Run("custom abilities are a separate list", func() {
		out, err := s.orchestrator.AddFeature(s.ctx, &charactersvc.AddEntryInput{
			Name: name,
			List: charactersvc.EntryListCustomAbilities,
			Text: "Stonecunning",
		})
		s.Require().NoError(err)
		s.Equal([]string{"Stonecunning"}, out.Character.CustomAbilities)
		s.Len(out.Character.FeaturesAndTraits, 2)

		removed, err := s.orchestrator.RemoveFeature(s.ctx, &charactersvc.RemoveEntryInput{
			Name:  name,
			List:  charactersvc.EntryListCustomAbilities,
			Index: 1,
		})
		s.Require().NoError(err)
		s.Nil(removed.Character.CustomAbilities)
	})

	s.Run("unknown list", func() {
		_, err := s.orchestrator.AddFeature(s.ctx, &charactersvc.AddEntryInput{Name: name, List: "feats", Text: "Alert"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestConditionsAndNotes() {
	s.seed(builders.NewCharacterBuilder().
		WithConditions("Poisoned").
		WithCombatNotes("Concentrating on Bless").
		Build())
	name := testutils.TestCharacterName

	out, err := s.orchestrator.AddCondition(s.ctx, &charactersvc.AddEntryInput{Name: name, Text: "Prone"})
	s.Require().NoError(err)
	s.Equal([]string{"Poisoned", "Prone"}, out.Character.Conditions)

	removed, err := s.orchestrator.RemoveCondition(s.ctx, &charactersvc.RemoveEntryInput{Name: name, Index: 1})
	s.Require().NoError(err)
	s.Equal("Poisoned", removed.Removed)
	s.Equal([]string{"Prone"}, removed.Character.Conditions)

	out, err = s.orchestrator.AddNote(s.ctx, &charactersvc.AddEntryInput{Name: name, Text: "Rage: 2 uses left"})
	s.Require().NoError(err)
	s.Len(out.Character.CombatNotes, 2)

	_, err = s.orchestrator.RemoveNote(s.ctx, &charactersvc.RemoveEntryInput{Name: name, Index: 5})
	s.True(errors.IsNotFound(err))

	out, err = s.orchestrator.ClearConditionsAndNotes(s.ctx, &charactersvc.CharacterNameInput{Name: name})
	s.Require().NoError(err)
	s.Nil(out.Character.Conditions)
	s.Nil(out.Character.CombatNotes)
}
