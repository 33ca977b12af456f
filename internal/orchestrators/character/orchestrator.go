// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/engine"
	"github.com/KirkDiggler/character-maker/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/character-maker/internal/repositories/character"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	// Publisher is optional; without one no events are sent
	Publisher   *rpgtoolkit.Publisher
	IDGenerator idgen.Generator
	// AutoSave writes the whole store after every successful change
	AutoSave bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	engine        engine.Engine
	publisher     *rpgtoolkit.Publisher
	idGenerator   idgen.Generator
	autoSave      bool
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID(idgen.PrefixCharacter)
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		engine:        cfg.Engine,
		publisher:     cfg.Publisher,
		idGenerator:   gen,
		autoSave:      cfg.AutoSave,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Load replaces the in-memory store with the persisted document. On failure the
// store is left empty and the error is returned so the caller can warn and go on.
func (o *Orchestrator) Load(ctx context.Context, _ *character.LoadInput) (*character.LoadOutput, error) {
	if err := o.characterRepo.Load(ctx); err != nil {
		return nil, err
	}

	list, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, err
	}
	return &character.LoadOutput{Count: len(list.Characters)}, nil
}

// Save writes every record to the backend
func (o *Orchestrator) Save(ctx context.Context, _ *character.SaveInput) (*character.SaveOutput, error) {
	if err := o.characterRepo.Save(ctx); err != nil {
		return nil, err
	}

	list, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, err
	}
	return &character.SaveOutput{Count: len(list.Characters)}, nil
}

// GetCharacter returns a copy of the named record
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.get(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return &character.GetCharacterOutput{Character: c}, nil
}

// ListCharacters summarizes every record, sorted by name
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	_ *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	list, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	out := &character.ListCharactersOutput{
		Characters: make([]*character.CharacterSummary, 0, len(list.Characters)),
	}
	for _, c := range list.Characters {
		out.Characters = append(out.Characters, &character.CharacterSummary{
			Name:       c.Name,
			Race:       c.Race,
			Class:      c.Class,
			Level:      c.Level,
			ClassLevel: c.ClassLevel(),
		})
	}
	return out, nil
}

// DeleteCharacter removes the record and announces the deletion
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireName(input.Name); err != nil {
		return nil, err
	}

	removed, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{Name: input.Name})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character deleted", "name", input.Name)
	o.publish(ctx, rpgtoolkit.EventCharacterDeleted, removed.Character, nil)
	o.save(ctx)

	return &character.DeleteCharacterOutput{Character: removed.Character}, nil
}

// RenameCharacter re-keys the record under a new name
func (o *Orchestrator) RenameCharacter(
	ctx context.Context,
	input *character.RenameCharacterInput,
) (*character.RenameCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	renamed, err := o.rename(ctx, input.OldName, input.NewName)
	if err != nil {
		return nil, err
	}
	o.save(ctx)

	return &character.RenameCharacterOutput{Character: renamed}, nil
}

// GetSheet resolves the read-only character sheet
func (o *Orchestrator) GetSheet(ctx context.Context, input *character.GetSheetInput) (*character.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.get(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	sheet, err := o.engine.CalculateCharacterSheet(ctx, &engine.CalculateCharacterSheetInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate character sheet")
	}
	return &character.GetSheetOutput{Sheet: sheet.Sheet}, nil
}

func (o *Orchestrator) get(ctx context.Context, name string) (*dnd5e.Character, error) {
	if err := requireName(name); err != nil {
		return nil, err
	}
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{Name: name})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

func (o *Orchestrator) rename(ctx context.Context, oldName, newName string) (*dnd5e.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("old_name", strings.TrimSpace(oldName), vb)
	errors.ValidateRequired("new_name", strings.TrimSpace(newName), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Rename(ctx, characterrepo.RenameInput{OldName: oldName, NewName: newName})
	if err != nil {
		return nil, err
	}

	if out.Character.Name != oldName {
		slog.InfoContext(ctx, "character renamed", "old_name", oldName, "new_name", out.Character.Name)
		o.publish(ctx, rpgtoolkit.EventCharacterRenamed, out.Character, map[string]any{
			rpgtoolkit.KeyOldName: oldName,
			rpgtoolkit.KeyNewName: out.Character.Name,
		})
	}
	return out.Character, nil
}

// mutate applies fn to a copy of the named record and stores the result.
// When fn fails nothing is written, so the record is unchanged.
func (o *Orchestrator) mutate(
	ctx context.Context,
	name string,
	fn func(c *dnd5e.Character) error,
) (*dnd5e.Character, error) {
	c, err := o.get(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %q", name)
	}
	o.save(ctx)

	return updated.Character, nil
}

// save writes the store when autosave is on. A failed write is only logged;
// the change stays in memory and the next save retries it.
func (o *Orchestrator) save(ctx context.Context) {
	if !o.autoSave {
		return
	}
	if err := o.characterRepo.Save(ctx); err != nil {
		slog.WarnContext(ctx, "autosave failed", "error", err)
	}
}

func (o *Orchestrator) publish(ctx context.Context, eventType string, c *dnd5e.Character, data map[string]any) {
	// Publisher logs handler failures; the change itself already happened.
	_ = o.publisher.Publish(ctx, eventType, c, data)
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument("character name is required")
	}
	return nil
}
