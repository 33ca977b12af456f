package dice

// DiceRoll is one rolled notation with every die kept or dropped
type DiceRoll struct {
	RollID      string
	Notation    string
	Dice        []int
	Dropped     []int
	Total       int
	Description string
}

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	Notation    string
	Description string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll *DiceRoll
}

// RollAbilityScoresInput defines the request for rolling six ability scores
type RollAbilityScoresInput struct {
	// Method is "4d6_drop_lowest" (default) or "3d6"
	Method string
}

// RollAbilityScoresOutput carries six rolls in strength..charisma order
type RollAbilityScoresOutput struct {
	Method string
	Rolls  []*DiceRoll
}

// Scores returns the six totals
func (o *RollAbilityScoresOutput) Scores() []int {
	out := make([]int, 0, len(o.Rolls))
	for _, r := range o.Rolls {
		out = append(out, r.Total)
	}
	return out
}
