package dnd5e

// SpellcastingProfile is the optional casting block of a character.
// SaveDC and AttackBonus are derived and refreshed by the engine.
type SpellcastingProfile struct {
	Class          string
	Ability        Ability
	SaveDC         int
	AttackBonus    int
	Slots          SpellSlots
	SpellsKnown    []string
	SpellsPrepared []string
}

// Clone returns a deep copy
func (p *SpellcastingProfile) Clone() *SpellcastingProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.SpellsKnown = cloneStrings(p.SpellsKnown)
	out.SpellsPrepared = cloneStrings(p.SpellsPrepared)
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
