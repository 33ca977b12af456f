package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
)

type HitPointStateTestSuite struct {
	suite.Suite
}

func TestHitPointStateSuite(t *testing.T) {
	suite.Run(t, new(HitPointStateTestSuite))
}

func (s *HitPointStateTestSuite) TestDamage() {
	testCases := []struct {
		name     string
		start    dnd5e.HitPointState
		amount   int
		expected dnd5e.HitPointState
		result   dnd5e.DamageResult
	}{
		{
			name:     "temporary absorbs first",
			start:    dnd5e.HitPointState{Maximum: 10, Current: 10, Temporary: 4},
			amount:   6,
			expected: dnd5e.HitPointState{Maximum: 10, Current: 8, Temporary: 0},
			result:   dnd5e.DamageResult{Absorbed: 4, Applied: 2},
		},
		{
			name:     "temporary absorbs everything",
			start:    dnd5e.HitPointState{Maximum: 10, Current: 10, Temporary: 8},
			amount:   5,
			expected: dnd5e.HitPointState{Maximum: 10, Current: 10, Temporary: 3},
			result:   dnd5e.DamageResult{Absorbed: 5},
		},
		{
			name:     "floors at zero and reports unconscious",
			start:    dnd5e.HitPointState{Maximum: 12, Current: 5},
			amount:   20,
			expected: dnd5e.HitPointState{Maximum: 12, Current: 0},
			result:   dnd5e.DamageResult{Applied: 5, Unconscious: true},
		},
		{
			name:     "exactly zero is unconscious",
			start:    dnd5e.HitPointState{Maximum: 12, Current: 5},
			amount:   5,
			expected: dnd5e.HitPointState{Maximum: 12, Current: 0},
			result:   dnd5e.DamageResult{Applied: 5, Unconscious: true},
		},
		{
			name:     "zero damage is a no-op",
			start:    dnd5e.HitPointState{Maximum: 12, Current: 7, Temporary: 2},
			amount:   0,
			expected: dnd5e.HitPointState{Maximum: 12, Current: 7, Temporary: 2},
			result:   dnd5e.DamageResult{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			hp := tc.start
			result, err := hp.Damage(tc.amount)
			s.Require().NoError(err)
			s.Equal(tc.expected, hp)
			s.Equal(tc.result, *result)
		})
	}
}

func (s *HitPointStateTestSuite) TestDamageRejectsNegative() {
	hp := dnd5e.HitPointState{Maximum: 10, Current: 10}
	_, err := hp.Damage(-1)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(dnd5e.HitPointState{Maximum: 10, Current: 10}, hp)
}

func (s *HitPointStateTestSuite) TestHeal() {
	hp := dnd5e.HitPointState{Maximum: 10, Current: 4, Temporary: 0}

	healed, err := hp.Heal(0)
	s.Require().NoError(err)
	s.Equal(0, healed)
	s.Equal(4, hp.Current)

	healed, err = hp.Heal(3)
	s.Require().NoError(err)
	s.Equal(3, healed)
	s.Equal(7, hp.Current)

	healed, err = hp.Heal(50)
	s.Require().NoError(err)
	s.Equal(3, healed)
	s.Equal(10, hp.Current)

	_, err = hp.Heal(-2)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HitPointStateTestSuite) TestHealNeverRestoresTemporary() {
	hp := dnd5e.HitPointState{Maximum: 10, Current: 10, Temporary: 5}
	_, err := hp.Damage(3)
	s.Require().NoError(err)
	_, err = hp.Heal(3)
	s.Require().NoError(err)
	s.Equal(2, hp.Temporary)
	s.Equal(10, hp.Current)
}

func (s *HitPointStateTestSuite) TestDamageThenHealIsSymmetric() {
	for amount := 0; amount <= 9; amount++ {
		hp := dnd5e.HitPointState{Maximum: 20, Current: 10}
		_, err := hp.Damage(amount)
		s.Require().NoError(err)
		_, err = hp.Heal(amount)
		s.Require().NoError(err)
		s.Equal(10, hp.Current, "amount %d", amount)
	}
}

func (s *HitPointStateTestSuite) TestTemporaryDoesNotStack() {
	hp := dnd5e.HitPointState{Maximum: 10, Current: 10}
	s.Require().NoError(hp.GrantTemporary(5))
	s.Require().NoError(hp.GrantTemporary(3))
	s.Equal(5, hp.Temporary)

	s.Require().NoError(hp.GrantTemporary(8))
	s.Equal(8, hp.Temporary)

	hp.ClearTemporary()
	s.Equal(0, hp.Temporary)

	s.True(errors.IsInvalidArgument(hp.GrantTemporary(-1)))
}

func (s *HitPointStateTestSuite) TestSetCurrent() {
	hp := dnd5e.HitPointState{Maximum: 10, Current: 10}

	s.Require().NoError(hp.SetCurrent(0))
	s.Equal(0, hp.Current)
	s.Require().NoError(hp.SetCurrent(10))
	s.Equal(10, hp.Current)

	err := hp.SetCurrent(11)
	s.True(errors.IsStateConflict(err))
	s.Equal(10, hp.Current)

	err = hp.SetCurrent(-1)
	s.True(errors.IsStateConflict(err))
	s.Equal(10, hp.Current)
}

func (s *HitPointStateTestSuite) TestChangeMaximumDoesNotClamp() {
	hp := dnd5e.HitPointState{Maximum: 20, Current: 18}

	s.Require().NoError(hp.ChangeMaximum(12))
	s.Equal(12, hp.Maximum)
	s.Equal(18, hp.Current)

	s.True(errors.IsInvalidArgument(hp.ChangeMaximum(0)))
	s.Equal(12, hp.Maximum)
}

func (s *HitPointStateTestSuite) TestHealAfterLoweredMaximum() {
	hp := dnd5e.HitPointState{Maximum: 20, Current: 20}
	s.Require().NoError(hp.ChangeMaximum(10))

	healed, err := hp.Heal(0)
	s.Require().NoError(err)
	s.Zero(healed)
	s.Equal(20, hp.Current)

	healed, err = hp.Heal(5)
	s.Require().NoError(err)
	s.Zero(healed)
	s.Equal(dnd5e.HitPointState{Maximum: 10, Current: 10}, hp)
}

func (s *HitPointStateTestSuite) TestNewHitPointState() {
	hp, err := dnd5e.NewHitPointState(9)
	s.Require().NoError(err)
	s.Equal(dnd5e.HitPointState{Maximum: 9, Current: 9}, hp)

	_, err = dnd5e.NewHitPointState(0)
	s.True(errors.IsInvalidArgument(err))
}
