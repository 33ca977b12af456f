package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
)

type SpellSlotsTestSuite struct {
	suite.Suite
	slots dnd5e.SpellSlots
}

func TestSpellSlotsSuite(t *testing.T) {
	suite.Run(t, new(SpellSlotsTestSuite))
}

func (s *SpellSlotsTestSuite) SetupTest() {
	s.slots = dnd5e.SpellSlots{}
}

func (s *SpellSlotsTestSuite) TestUseAndRecoverStayInBounds() {
	s.Require().NoError(s.slots.ChangeTotal(1, 3))

	for i := 0; i < 3; i++ {
		_, err := s.slots.Use(1)
		s.Require().NoError(err)
	}
	remaining, err := s.slots.Use(1)
	s.True(errors.IsStateConflict(err))
	s.Equal(0, remaining)

	slot, err := s.slots.Get(1)
	s.Require().NoError(err)
	s.Equal(dnd5e.SpellSlot{Total: 3, Expended: 3}, slot)

	for i := 0; i < 3; i++ {
		_, err := s.slots.Recover(1)
		s.Require().NoError(err)
	}
	_, err = s.slots.Recover(1)
	s.True(errors.IsStateConflict(err))

	slot, _ = s.slots.Get(1)
	s.Equal(dnd5e.SpellSlot{Total: 3, Expended: 0}, slot)
}

func (s *SpellSlotsTestSuite) TestMixedSequenceNeverLeavesRange() {
	s.Require().NoError(s.slots.ChangeTotal(2, 3))
	ops := []bool{true, true, false, true, true, true, false, false, false, false, true}
	for _, use := range ops {
		if use {
			_, _ = s.slots.Use(2)
		} else {
			_, _ = s.slots.Recover(2)
		}
		slot, _ := s.slots.Get(2)
		s.GreaterOrEqual(slot.Expended, 0)
		s.LessOrEqual(slot.Expended, slot.Total)
	}
}

func (s *SpellSlotsTestSuite) TestUseWithZeroTotal() {
	_, err := s.slots.Use(5)
	s.True(errors.IsStateConflict(err))
	s.Contains(err.Error(), "no 5th level slots remaining")
}

func (s *SpellSlotsTestSuite) TestChangeTotalResetsExpended() {
	s.Require().NoError(s.slots.ChangeTotal(3, 2))
	_, _ = s.slots.Use(3)
	_, _ = s.slots.Use(3)

	s.Require().NoError(s.slots.ChangeTotal(3, 4))
	slot, _ := s.slots.Get(3)
	s.Equal(dnd5e.SpellSlot{Total: 4, Expended: 0}, slot)

	s.True(errors.IsInvalidArgument(s.slots.ChangeTotal(3, -1)))
}

func (s *SpellSlotsTestSuite) TestResetAll() {
	s.Require().NoError(s.slots.ChangeTotal(1, 4))
	s.Require().NoError(s.slots.ChangeTotal(2, 2))
	_, _ = s.slots.Use(1)
	_, _ = s.slots.Use(2)

	s.slots.ResetAll()
	for _, level := range dnd5e.SpellSlotLevels {
		slot, _ := s.slots.Get(level)
		s.Equal(0, slot.Expended)
	}
	slot, _ := s.slots.Get(1)
	s.Equal(4, slot.Total)
}

func (s *SpellSlotsTestSuite) TestUnknownLevel() {
	_, err := s.slots.Use(0)
	s.True(errors.IsNotFound(err))
	_, err = s.slots.Recover(10)
	s.True(errors.IsNotFound(err))
	s.True(errors.IsNotFound(s.slots.ChangeTotal(12, 1)))
}

func (s *SpellSlotsTestSuite) TestParseSpellSlotLevel() {
	testCases := []struct {
		input    string
		expected dnd5e.SpellSlotLevel
		notFound bool
	}{
		{input: "1st", expected: 1},
		{input: "3RD", expected: 3},
		{input: " 9th ", expected: 9},
		{input: "4", expected: 4},
		{input: "10th", notFound: true},
		{input: "0", notFound: true},
		{input: "cantrip", notFound: true},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			level, err := dnd5e.ParseSpellSlotLevel(tc.input)
			if tc.notFound {
				s.True(errors.IsNotFound(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.expected, level)
		})
	}
}

func (s *SpellSlotsTestSuite) TestLevelString() {
	s.Equal("1st", dnd5e.SpellSlotLevel(1).String())
	s.Equal("2nd", dnd5e.SpellSlotLevel(2).String())
	s.Equal("9th", dnd5e.SpellSlotLevel(9).String())
}
