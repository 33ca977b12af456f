package character_test

import (
	"github.com/KirkDiggler/character-maker/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	charactersvc "github.com/KirkDiggler/character-maker/internal/services/character"
	"github.com/KirkDiggler/character-maker/internal/testutils"
	"github.com/KirkDiggler/character-maker/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) TestSpellSlotLedger() {
	s.seed(builders.NewSpellcasterBuilder().WithSpellSlot(2, 2, 1).Build())
	name := testutils.TestSpellcasterName

	s.Run("use until empty", func() {
		out, err := s.orchestrator.UseSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 2})
		s.Require().NoError(err)
		s.Equal(dnd5e.SpellSlot{Total: 2, Expended: 2}, out.Slot)

		_, err = s.orchestrator.UseSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 2})
		s.True(errors.IsStateConflict(err))

		s.Require().Len(s.received[rpgtoolkit.EventSpellSlotUsed], 1)
		e := s.received[rpgtoolkit.EventSpellSlotUsed][0]
		s.Equal("2nd", rpgtoolkit.EventString(e, rpgtoolkit.KeySpellLevel))
		s.Equal(0, rpgtoolkit.EventInt(e, rpgtoolkit.KeyRemaining))
	})

	s.Run("level without slots", func() {
		_, err := s.orchestrator.UseSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 5})
		s.True(errors.IsStateConflict(err))
	})

	s.Run("unknown level", func() {
		_, err := s.orchestrator.UseSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 10})
		s.True(errors.IsNotFound(err))
	})

	s.Run("recover", func() {
		out, err := s.orchestrator.RecoverSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 2})
		s.Require().NoError(err)
		s.Equal(1, out.Slot.Remaining())

		_, err = s.orchestrator.RecoverSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 1})
		s.True(errors.IsStateConflict(err))
	})

	s.Run("long rest", func() {
		_, err := s.orchestrator.UseSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 1})
		s.Require().NoError(err)

		out, err := s.orchestrator.ResetSpellSlots(s.ctx, &charactersvc.CharacterNameInput{Name: name})
		s.Require().NoError(err)
		for _, slot := range out.Character.Spellcasting.Slots {
			s.Zero(slot.Expended)
		}
		s.Len(s.received[rpgtoolkit.EventLongRest], 1)
	})

	s.Run("changing a total resets expended", func() {
		_, err := s.orchestrator.UseSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 1})
		s.Require().NoError(err)

		out, err := s.orchestrator.SetSpellSlotTotal(s.ctx, &charactersvc.SetSpellSlotTotalInput{Name: name, Level: 1, Total: 3})
		s.Require().NoError(err)
		s.Equal(dnd5e.SpellSlot{Total: 3}, out.Slot)

		_, err = s.orchestrator.SetSpellSlotTotal(s.ctx, &charactersvc.SetSpellSlotTotalInput{Name: name, Level: 1, Total: -1})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSpellSlotsWithoutProfile() {
	s.seed(testutils.NewCharacterFixture())

	_, err := s.orchestrator.UseSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: testutils.TestCharacterName, Level: 1})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.ResetSpellSlots(s.ctx, &charactersvc.CharacterNameInput{Name: testutils.TestCharacterName})
	s.True(errors.IsNotFound(err))
	s.Empty(s.received[rpgtoolkit.EventLongRest])
}

func (s *OrchestratorTestSuite) TestEnableAndDisableSpellcasting() {
	s.seed(testutils.NewCharacterFixture())
	name := testutils.TestCharacterName

	s.Run("rejects non casting ability", func() {
		_, err := s.orchestrator.EnableSpellcasting(s.ctx, &charactersvc.EnableSpellcastingInput{
			Name:    name,
			Ability: dnd5e.AbilityStrength,
		})
		s.True(errors.IsInvalidArgument(err))
		s.Nil(s.get(name).Spellcasting)
	})

	s.Run("enable", func() {
		slots := [dnd5e.MaxSpellSlotLevel]int{2}
		out, err := s.orchestrator.EnableSpellcasting(s.ctx, &charactersvc.EnableSpellcastingInput{
			Name:       name,
			Ability:    dnd5e.AbilityIntelligence,
			SlotTotals: &slots,
		})
		s.Require().NoError(err)

		profile := out.Character.Spellcasting
		s.Require().NotNil(profile)
		s.Equal(dnd5e.ClassFighter, profile.Class)
		// INT 8
		s.Equal(9, profile.SaveDC)
		s.Equal(1, profile.AttackBonus)
		s.Equal(dnd5e.SpellSlot{Total: 2}, profile.Slots[0])
	})

	s.Run("switching ability keeps slots and spells", func() {
		_, err := s.orchestrator.UseSpellSlot(s.ctx, &charactersvc.SpellSlotInput{Name: name, Level: 1})
		s.Require().NoError(err)
		_, err = s.orchestrator.SetSpellList(s.ctx, &charactersvc.SetSpellListInput{
			Name:   name,
			List:   charactersvc.SpellListKnown,
			Spells: []string{"Shield", " Magic Missile "},
		})
		s.Require().NoError(err)

		out, err := s.orchestrator.EnableSpellcasting(s.ctx, &charactersvc.EnableSpellcastingInput{
			Name:    name,
			Class:   "Eldritch Knight",
			Ability: dnd5e.AbilityWisdom,
		})
		s.Require().NoError(err)

		profile := out.Character.Spellcasting
		s.Equal("Eldritch Knight", profile.Class)
		s.Equal(11, profile.SaveDC)
		s.Equal(dnd5e.SpellSlot{Total: 2, Expended: 1}, profile.Slots[0])
		s.Equal([]string{"Shield", "Magic Missile"}, profile.SpellsKnown)
	})

	s.Run("disable", func() {
		out, err := s.orchestrator.DisableSpellcasting(s.ctx, &charactersvc.CharacterNameInput{Name: name})
		s.Require().NoError(err)
		s.Nil(out.Character.Spellcasting)
	})
}

func (s *OrchestratorTestSuite) TestSetSpellList() {
	s.seed(testutils.NewSpellcasterFixture())

	out, err := s.orchestrator.SetSpellList(s.ctx, &charactersvc.SetSpellListInput{
		Name:   testutils.TestSpellcasterName,
		List:   charactersvc.SpellListPrepared,
		Spells: []string{"Magic Missile", "Shield"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Magic Missile", "Shield"}, out.Character.Spellcasting.SpellsPrepared)
	s.Len(out.Character.Spellcasting.SpellsKnown, 3)

	_, err = s.orchestrator.SetSpellList(s.ctx, &charactersvc.SetSpellListInput{
		Name: testutils.TestSpellcasterName,
		List: charactersvc.SpellList("forgotten"),
	})
	s.True(errors.IsInvalidArgument(err))
}
