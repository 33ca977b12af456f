package dnd5e

import (
	"github.com/KirkDiggler/character-maker/internal/errors"
)

// HitPointState is the run-time hit point ledger.
//
// Maximum is at least 1, Temporary is never negative and Current stays in
// [0, Maximum] except after ChangeMaximum lowers the ceiling, which leaves
// Current alone until the next SetCurrent.
type HitPointState struct {
	Maximum   int
	Current   int
	Temporary int
}

// NewHitPointState returns a full-health ledger
func NewHitPointState(maximum int) (HitPointState, error) {
	if maximum < 1 {
		return HitPointState{}, errors.InvalidArgumentf("maximum hit points must be at least 1, got %d", maximum)
	}
	return HitPointState{Maximum: maximum, Current: maximum}, nil
}

// DamageResult describes how damage was split between temporary and current hit points
type DamageResult struct {
	Absorbed    int
	Applied     int
	Unconscious bool
}

// Damage removes hit points, temporary first. Current never drops below 0.
func (h *HitPointState) Damage(amount int) (*DamageResult, error) {
	if amount < 0 {
		return nil, errors.InvalidArgumentf("damage must not be negative, got %d", amount)
	}

	absorbed := min(amount, h.Temporary)
	h.Temporary -= absorbed
	remaining := amount - absorbed

	applied := min(remaining, h.Current)
	h.Current -= applied

	return &DamageResult{
		Absorbed:    absorbed,
		Applied:     applied,
		Unconscious: h.Current == 0,
	}, nil
}

// Heal sets current to min(maximum, current+amount) and returns the amount
// actually restored. Current left above a lowered maximum is pulled down to it.
// Temporary hit points are never restored.
func (h *HitPointState) Heal(amount int) (int, error) {
	if amount < 0 {
		return 0, errors.InvalidArgumentf("healing must not be negative, got %d", amount)
	}
	if amount == 0 {
		return 0, nil
	}
	next := min(h.Maximum, h.Current+amount)
	healed := max(0, next-h.Current)
	h.Current = next
	return healed, nil
}

// GrantTemporary keeps the larger of the current and incoming temporary hit points
func (h *HitPointState) GrantTemporary(amount int) error {
	if amount < 0 {
		return errors.InvalidArgumentf("temporary hit points must not be negative, got %d", amount)
	}
	h.Temporary = max(h.Temporary, amount)
	return nil
}

// ClearTemporary drops all temporary hit points
func (h *HitPointState) ClearTemporary() {
	h.Temporary = 0
}

// SetCurrent sets current hit points directly
func (h *HitPointState) SetCurrent(value int) error {
	if value < 0 || value > h.Maximum {
		return errors.StateConflictf("current hit points must be between 0 and %d, got %d", h.Maximum, value)
	}
	h.Current = value
	return nil
}

// ChangeMaximum sets a new ceiling. Current is deliberately not clamped.
func (h *HitPointState) ChangeMaximum(maximum int) error {
	if maximum < 1 {
		return errors.InvalidArgumentf("maximum hit points must be at least 1, got %d", maximum)
	}
	h.Maximum = maximum
	return nil
}

// Reset sets both maximum and current, as a hit point method does
func (h *HitPointState) Reset(maximum int) error {
	if maximum < 1 {
		return errors.InvalidArgumentf("maximum hit points must be at least 1, got %d", maximum)
	}
	h.Maximum = maximum
	h.Current = maximum
	return nil
}

// IsUnconscious reports whether current hit points are at 0
func (h HitPointState) IsUnconscious() bool {
	return h.Current == 0
}
