// Package inventory implements the inventory orchestrator
package inventory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	characterrepo "github.com/KirkDiggler/character-maker/internal/repositories/character"
	"github.com/KirkDiggler/character-maker/internal/services/inventory"
)

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
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
	return vb.Build()
}

// Orchestrator implements the inventory.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	autoSave      bool
}

// New creates a new inventory orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		autoSave:      cfg.AutoSave,
	}, nil
}

var _ inventory.Service = (*Orchestrator)(nil)

func (o *Orchestrator) get(ctx context.Context, name string) (*dnd5e.Character, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("character name is required")
	}
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{Name: name})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

// mutate edits the inventory of a copy of the record and stores it when fn succeeds
func (o *Orchestrator) mutate(
	ctx context.Context,
	name string,
	fn func(c *dnd5e.Character) error,
) error {
	c, err := o.get(ctx, name)
	if err != nil {
		return err
	}

	if err := fn(c); err != nil {
		return err
	}

	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: c}); err != nil {
		return errors.Wrapf(err, "failed to update inventory of %q", name)
	}

	if o.autoSave {
		if err := o.characterRepo.Save(ctx); err != nil {
			slog.WarnContext(ctx, "autosave failed", "error", err)
		}
	}
	return nil
}

// findIndex returns the first stack whose name matches case-insensitively, or -1
func findIndex(items []dnd5e.InventoryItem, name string) int {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := range items {
		if strings.ToLower(items[i].Name) == key {
			return i
		}
	}
	return -1
}
