package dnd5e

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/errors"
)

// SpellSlotLevel is a spell level from 1 to 9
type SpellSlotLevel int

// MaxSpellSlotLevel is the highest spell level
const MaxSpellSlotLevel SpellSlotLevel = 9

var spellSlotKeys = [...]string{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "9th"}

// SpellSlotLevels lists levels 1 through 9
var SpellSlotLevels = []SpellSlotLevel{1, 2, 3, 4, 5, 6, 7, 8, 9}

// String returns the ordinal key, e.g. "3rd"
func (l SpellSlotLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return spellSlotKeys[l-1]
}

// Valid reports whether l is in [1,9]
func (l SpellSlotLevel) Valid() bool {
	return l >= 1 && l <= MaxSpellSlotLevel
}

// ParseSpellSlotLevel accepts an ordinal key ("1st") or a bare number ("1")
func ParseSpellSlotLevel(s string) (SpellSlotLevel, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range spellSlotKeys {
		if key == k {
			return SpellSlotLevel(i + 1), nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil && SpellSlotLevel(n).Valid() {
		return SpellSlotLevel(n), nil
	}
	return 0, errors.NotFoundf("unknown spell slot level %q", s)
}

// SpellSlot is the pool for one spell level
type SpellSlot struct {
	Total    int
	Expended int
}

// Remaining returns the unused slots
func (s SpellSlot) Remaining() int {
	return s.Total - s.Expended
}

// SpellSlots holds the nine pools, indexed by level-1.
// For every level 0 <= Expended <= Total.
type SpellSlots [MaxSpellSlotLevel]SpellSlot

func (s *SpellSlots) slot(level SpellSlotLevel) (*SpellSlot, error) {
	if !level.Valid() {
		return nil, errors.NotFoundf("unknown spell slot level %d", int(level))
	}
	return &s[level-1], nil
}

// Get returns the pool for a level
func (s *SpellSlots) Get(level SpellSlotLevel) (SpellSlot, error) {
	slot, err := s.slot(level)
	if err != nil {
		return SpellSlot{}, err
	}
	return *slot, nil
}

// ChangeTotal sets the pool size and resets expended to 0
func (s *SpellSlots) ChangeTotal(level SpellSlotLevel, total int) error {
	slot, err := s.slot(level)
	if err != nil {
		return err
	}
	if total < 0 {
		return errors.InvalidArgumentf("%s level slot total must not be negative, got %d", level, total)
	}
	slot.Total = total
	slot.Expended = 0
	return nil
}

// Use expends one slot and returns the slots remaining at that level
func (s *SpellSlots) Use(level SpellSlotLevel) (int, error) {
	slot, err := s.slot(level)
	if err != nil {
		return 0, err
	}
	if slot.Total == 0 || slot.Expended >= slot.Total {
		return 0, errors.StateConflictf("no %s level slots remaining", level)
	}
	slot.Expended++
	return slot.Remaining(), nil
}

// Recover restores one expended slot and returns the slots remaining at that level
func (s *SpellSlots) Recover(level SpellSlotLevel) (int, error) {
	slot, err := s.slot(level)
	if err != nil {
		return 0, err
	}
	if slot.Expended == 0 {
		return 0, errors.StateConflictf("no expended %s level slots", level)
	}
	slot.Expended--
	return slot.Remaining(), nil
}

// ResetAll recovers every expended slot (a long rest)
func (s *SpellSlots) ResetAll() {
	for i := range s {
		s[i].Expended = 0
	}
}

// HasAny reports whether any level has a non-zero total
func (s *SpellSlots) HasAny() bool {
	for _, slot := range s {
		if slot.Total > 0 {
			return true
		}
	}
	return false
}
