// Package dice implements the dice orchestrator behind the roll command and
// the wizard's rolled ability scores
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/character-maker/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/pkg/idgen"
)

const (
	// Dice rolling methods
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"

	// Standard ability score dice notation
	AbilityScoreNotation = "4d6"

	// MaxDiceCount bounds a single notation
	MaxDiceCount = 100
)

var (
	// Regex for parsing simple dice notation like "2d6", "1d20", "3d8"
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)
)

// Service defines the interface for dice operations
type Service interface {
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// RollAbilityScores rolls six scores for character creation
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceRoller  dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	roller dice.Roller
	idGen  idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.DiceRoller,
		idGen:  cfg.IDGenerator,
	}, nil
}

// ParseNotation parses simple dice notation like "2d6" and returns count and size
func ParseNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if count > MaxDiceCount {
		return 0, 0, errors.InvalidArgumentf("at most %d dice per roll: %s", MaxDiceCount, notation)
	}

	return count, size, nil
}

// roll rolls count dice and drops the lowest dropLowest of them
func (o *orchestrator) roll(count, size, dropLowest int) (kept, dropped []int, total int, err error) {
	results, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, nil, 0, errors.Wrapf(err, "failed to roll %dd%d", count, size)
	}

	kept = results
	if dropLowest > 0 && len(results) > dropLowest {
		sorted := append([]int(nil), results...)
		sort.Ints(sorted)
		dropped = sorted[:dropLowest]

		// keep roll order for the survivors
		kept = make([]int, 0, len(results)-dropLowest)
		skip := append([]int(nil), dropped...)
		for _, r := range results {
			if i := indexOf(skip, r); i >= 0 {
				skip = append(skip[:i], skip[i+1:]...)
				continue
			}
			kept = append(kept, r)
		}
	}

	for _, r := range kept {
		total += r
	}
	return kept, dropped, total, nil
}

// RollDice rolls dice using the specified notation
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil || input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	count, size, err := ParseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	kept, _, total, err := o.roll(count, size, 0)
	if err != nil {
		return nil, err
	}

	description := input.Description
	if description == "" {
		description = describe(input.Notation, kept, total)
	}

	roll := &DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    strings.ToLower(strings.TrimSpace(input.Notation)),
		Dice:        kept,
		Total:       total,
		Description: description,
	}

	slog.DebugContext(ctx, "dice rolled",
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID)

	return &RollDiceOutput{Roll: roll}, nil
}

// RollAbilityScores handles specialized ability score rolling for character creation
func (o *orchestrator) RollAbilityScores(
	ctx context.Context,
	input *RollAbilityScoresInput,
) (*RollAbilityScoresOutput, error) {
	method := MethodStandard
	if input != nil && input.Method != "" {
		method = input.Method
	}

	notation := ""
	dropLowest := 0
	switch method {
	case MethodStandard:
		notation = AbilityScoreNotation
		dropLowest = 1
	case MethodClassic:
		notation = "3d6"
	default:
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", method)
	}

	count, size, err := ParseNotation(notation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse ability score notation")
	}

	rolls := make([]*DiceRoll, 0, 6)
	for i := 0; i < 6; i++ {
		kept, dropped, total, err := o.roll(count, size, dropLowest)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll ability score %d", i+1)
		}

		rolls = append(rolls, &DiceRoll{
			RollID:      o.idGen.Generate(),
			Notation:    notation,
			Dice:        kept,
			Dropped:     dropped,
			Total:       total,
			Description: fmt.Sprintf("Ability Score %d (%s)", i+1, method),
		})
	}

	slog.DebugContext(ctx, "ability scores rolled",
		"method", method,
		"rolls_count", len(rolls))

	return &RollAbilityScoresOutput{Method: method, Rolls: rolls}, nil
}

func describe(notation string, dice []int, total int) string {
	parts := make([]string, 0, len(dice))
	for _, d := range dice {
		parts = append(parts, strconv.Itoa(d))
	}
	return fmt.Sprintf("%s[%s]=%d", strings.ToLower(strings.TrimSpace(notation)), strings.Join(parts, ","), total)
}

func indexOf(values []int, v int) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
