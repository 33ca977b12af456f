package character_test

import (
	"github.com/KirkDiggler/character-maker/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	charactersvc "github.com/KirkDiggler/character-maker/internal/services/character"
	"github.com/KirkDiggler/character-maker/internal/testutils"
	"github.com/KirkDiggler/character-maker/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) TestDamageTemporaryFirst() {
	s.seed(builders.NewCharacterBuilder().WithHitPoints(10, 10, 4).Build())

	out, err := s.orchestrator.Damage(s.ctx, &charactersvc.DamageInput{Name: testutils.TestCharacterName, Amount: 6})
	s.Require().NoError(err)
	s.Equal(dnd5e.HitPointState{Maximum: 10, Current: 8, Temporary: 0}, out.HitPoints)
	s.Equal(4, out.Result.Absorbed)
	s.Equal(2, out.Result.Applied)
	s.False(out.Result.Unconscious)

	s.Require().Len(s.received[rpgtoolkit.EventCharacterDamaged], 1)
	e := s.received[rpgtoolkit.EventCharacterDamaged][0]
	s.Equal(6, rpgtoolkit.EventInt(e, rpgtoolkit.KeyAmount))
	s.Equal(4, rpgtoolkit.EventInt(e, rpgtoolkit.KeyAbsorbed))
	s.Equal(8, rpgtoolkit.EventInt(e, rpgtoolkit.KeyCurrentHP))
	s.Empty(s.received[rpgtoolkit.EventCharacterUnconscious])

	s.Equal(8, s.get(testutils.TestCharacterName).HitPoints.Current)
}

func (s *OrchestratorTestSuite) TestDamageToZeroAnnouncesUnconscious() {
	s.seed(testutils.NewCharacterFixture())

	out, err := s.orchestrator.Damage(s.ctx, &charactersvc.DamageInput{Name: testutils.TestCharacterName, Amount: 50})
	s.Require().NoError(err)
	s.Equal(0, out.HitPoints.Current)
	s.True(out.Result.Unconscious)
	s.Len(s.received[rpgtoolkit.EventCharacterUnconscious], 1)

	// already down: damaged again, but no second unconscious event
	_, err = s.orchestrator.Damage(s.ctx, &charactersvc.DamageInput{Name: testutils.TestCharacterName, Amount: 3})
	s.Require().NoError(err)
	s.Len(s.received[rpgtoolkit.EventCharacterDamaged], 2)
	s.Len(s.received[rpgtoolkit.EventCharacterUnconscious], 1)
}

func (s *OrchestratorTestSuite) TestDamageRejectsNegative() {
	s.seed(testutils.NewCharacterFixture())

	_, err := s.orchestrator.Damage(s.ctx, &charactersvc.DamageInput{Name: testutils.TestCharacterName, Amount: -3})
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.received[rpgtoolkit.EventCharacterDamaged])
	s.Equal(12, s.get(testutils.TestCharacterName).HitPoints.Current)
}

func (s *OrchestratorTestSuite) TestHeal() {
	s.seed(builders.NewCharacterBuilder().WithHitPoints(12, 5, 0).Build())

	out, err := s.orchestrator.Heal(s.ctx, &charactersvc.HealInput{Name: testutils.TestCharacterName, Amount: 20})
	s.Require().NoError(err)
	s.Equal(7, out.Healed)
	s.Equal(12, out.HitPoints.Current)
	s.Require().Len(s.received[rpgtoolkit.EventCharacterHealed], 1)
	s.Equal(7, rpgtoolkit.EventInt(s.received[rpgtoolkit.EventCharacterHealed][0], rpgtoolkit.KeyAmount))

	out, err = s.orchestrator.Heal(s.ctx, &charactersvc.HealInput{Name: testutils.TestCharacterName, Amount: 4})
	s.Require().NoError(err)
	s.Equal(0, out.Healed)
	s.Len(s.received[rpgtoolkit.EventCharacterHealed], 1)
}

func (s *OrchestratorTestSuite) TestTemporaryHitPointsDoNotStack() {
	s.seed(testutils.NewCharacterFixture())
	name := testutils.TestCharacterName

	out, err := s.orchestrator.GrantTemporaryHitPoints(s.ctx, &charactersvc.HitPointAmountInput{Name: name, Amount: 5})
	s.Require().NoError(err)
	s.Equal(5, out.HitPoints.Temporary)

	out, err = s.orchestrator.GrantTemporaryHitPoints(s.ctx, &charactersvc.HitPointAmountInput{Name: name, Amount: 3})
	s.Require().NoError(err)
	s.Equal(5, out.HitPoints.Temporary)

	out, err = s.orchestrator.GrantTemporaryHitPoints(s.ctx, &charactersvc.HitPointAmountInput{Name: name, Amount: 8})
	s.Require().NoError(err)
	s.Equal(8, out.HitPoints.Temporary)

	out, err = s.orchestrator.ClearTemporaryHitPoints(s.ctx, &charactersvc.CharacterNameInput{Name: name})
	s.Require().NoError(err)
	s.Equal(0, out.HitPoints.Temporary)
}

func (s *OrchestratorTestSuite) TestSetCurrentAndMaximum() {
	s.seed(testutils.NewCharacterFixture())
	name := testutils.TestCharacterName

	s.Run("current outside range", func() {
		_, err := s.orchestrator.SetCurrentHitPoints(s.ctx, &charactersvc.HitPointAmountInput{Name: name, Amount: 13})
		s.True(errors.IsStateConflict(err))
		s.Equal(12, s.get(name).HitPoints.Current)
	})

	s.Run("current inside range", func() {
		out, err := s.orchestrator.SetCurrentHitPoints(s.ctx, &charactersvc.HitPointAmountInput{Name: name, Amount: 0})
		s.Require().NoError(err)
		s.Equal(0, out.HitPoints.Current)
	})

	s.Run("lower maximum leaves current", func() {
		_, err := s.orchestrator.SetCurrentHitPoints(s.ctx, &charactersvc.HitPointAmountInput{Name: name, Amount: 12})
		s.Require().NoError(err)

		out, err := s.orchestrator.ChangeMaximumHitPoints(s.ctx, &charactersvc.HitPointAmountInput{Name: name, Amount: 8})
		s.Require().NoError(err)
		s.Equal(dnd5e.HitPointState{Maximum: 8, Current: 12}, out.HitPoints)
	})

	s.Run("maximum must be positive", func() {
		_, err := s.orchestrator.ChangeMaximumHitPoints(s.ctx, &charactersvc.HitPointAmountInput{Name: name, Amount: 0})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSetHitPoints() {
	s.seed(builders.NewCharacterBuilder().WithLevel(3).WithHitPoints(20, 4, 2).Build())
	name := testutils.TestCharacterName

	s.Run("maximum at current level", func() {
		out, err := s.orchestrator.SetHitPoints(s.ctx, &charactersvc.SetHitPointsInput{
			Name:   name,
			Method: dnd5e.HitPointMethodMaximum,
		})
		s.Require().NoError(err)
		s.Equal(36, out.HitPoints.Maximum)
		s.Equal(dnd5e.HitPointState{Maximum: 36, Current: 36, Temporary: 2}, out.Character.HitPoints)
	})

	s.Run("rolled", func() {
		s.useRoller(10, 1)
		out, err := s.orchestrator.SetHitPoints(s.ctx, &charactersvc.SetHitPointsInput{
			Name:   name,
			Method: dnd5e.HitPointMethodRolled,
		})
		s.Require().NoError(err)
		s.Equal([]int{10, 1}, out.HitPoints.Rolls)
		s.Equal(12+12+3, out.Character.HitPoints.Maximum)
	})

	s.Run("custom must be positive", func() {
		_, err := s.orchestrator.SetHitPoints(s.ctx, &charactersvc.SetHitPointsInput{
			Name:   name,
			Method: dnd5e.HitPointMethodCustom,
		})
		s.True(errors.IsInvalidArgument(err))
		s.Equal(27, s.get(name).HitPoints.Maximum)
	})
}
