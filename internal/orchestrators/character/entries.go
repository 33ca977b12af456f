package character

import (
	"context"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

type listSelector func(c *dnd5e.Character) (*[]string, string)

func featureList(list character.EntryList) (listSelector, error) {
	switch list {
	case "", character.EntryListFeatures:
		return func(c *dnd5e.Character) (*[]string, string) { return &c.FeaturesAndTraits, "feature" }, nil
	case character.EntryListCustomAbilities:
		return func(c *dnd5e.Character) (*[]string, string) { return &c.CustomAbilities, "custom ability" }, nil
	default:
		return nil, errors.InvalidArgumentf("unknown feature list %q", list)
	}
}

func conditions(c *dnd5e.Character) (*[]string, string) { return &c.Conditions, "condition" }

func combatNotes(c *dnd5e.Character) (*[]string, string) { return &c.CombatNotes, "note" }

// AddFeature appends to the features and traits or the custom abilities
func (o *Orchestrator) AddFeature(ctx context.Context, input *character.AddEntryInput) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	sel, err := featureList(input.List)
	if err != nil {
		return nil, err
	}
	return o.addEntry(ctx, input, sel)
}

// RemoveFeature removes a feature by its 1-based position
func (o *Orchestrator) RemoveFeature(
	ctx context.Context,
	input *character.RemoveEntryInput,
) (*character.RemoveEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	sel, err := featureList(input.List)
	if err != nil {
		return nil, err
	}
	return o.removeEntry(ctx, input, sel)
}

// EditFeature replaces the text of a feature by its 1-based position
func (o *Orchestrator) EditFeature(ctx context.Context, input *character.EditEntryInput) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	sel, err := featureList(input.List)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.InvalidArgument("text cannot be empty")
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		list, kind := sel(c)
		if err := checkIndex(*list, input.Index, kind); err != nil {
			return err
		}
		(*list)[input.Index-1] = text
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

// AddCondition appends a condition such as "Poisoned"
func (o *Orchestrator) AddCondition(ctx context.Context, input *character.AddEntryInput) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.addEntry(ctx, input, conditions)
}

// RemoveCondition removes a condition by its 1-based position
func (o *Orchestrator) RemoveCondition(
	ctx context.Context,
	input *character.RemoveEntryInput,
) (*character.RemoveEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.removeEntry(ctx, input, conditions)
}

// AddNote appends a combat note
func (o *Orchestrator) AddNote(ctx context.Context, input *character.AddEntryInput) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.addEntry(ctx, input, combatNotes)
}

// RemoveNote removes a combat note by its 1-based position
func (o *Orchestrator) RemoveNote(
	ctx context.Context,
	input *character.RemoveEntryInput,
) (*character.RemoveEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.removeEntry(ctx, input, combatNotes)
}

// ClearConditionsAndNotes empties both combat lists
func (o *Orchestrator) ClearConditionsAndNotes(
	ctx context.Context,
	input *character.CharacterNameInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		c.Conditions = nil
		c.CombatNotes = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

func (o *Orchestrator) addEntry(
	ctx context.Context,
	input *character.AddEntryInput,
	sel listSelector,
) (*character.UpdateCharacterOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.InvalidArgument("text cannot be empty")
	}

	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		list, _ := sel(c)
		*list = append(*list, text)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateCharacterOutput{Character: c}, nil
}

func (o *Orchestrator) removeEntry(
	ctx context.Context,
	input *character.RemoveEntryInput,
	sel listSelector,
) (*character.RemoveEntryOutput, error) {
	var removed string
	c, err := o.mutate(ctx, input.Name, func(c *dnd5e.Character) error {
		list, kind := sel(c)
		if err := checkIndex(*list, input.Index, kind); err != nil {
			return err
		}
		removed = (*list)[input.Index-1]
		rest := append((*list)[:input.Index-1:input.Index-1], (*list)[input.Index:]...)
		if len(rest) == 0 {
			rest = nil
		}
		*list = rest
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.RemoveEntryOutput{Removed: removed, Character: c}, nil
}

func checkIndex(list []string, index int, kind string) error {
	if index < 1 || index > len(list) {
		return errors.NotFoundf("no %s number %d", kind, index).
			WithMeta("count", len(list))
	}
	return nil
}
