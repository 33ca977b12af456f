package character

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/pkg/clock"
	"github.com/KirkDiggler/character-maker/internal/storage"
)

const (
	errCharacterNil = "character cannot be nil"
	errNameEmpty    = "character name cannot be empty"
)

type store struct {
	mu         sync.RWMutex
	characters map[string]*dnd5e.Character
	backend    storage.Backend
	clock      clock.Clock
}

// Config contains configuration for the character store
type Config struct {
	Backend storage.Backend
	Clock   clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Backend == nil {
		return errors.InvalidArgument("backend cannot be nil")
	}
	return nil
}

// New creates an empty store over backend. Call Load to read existing records.
func New(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &store{
		characters: make(map[string]*dnd5e.Character),
		backend:    cfg.Backend,
		clock:      c,
	}, nil
}

func (s *store) Load(ctx context.Context) error {
	loaded, err := s.backend.LoadAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.characters = make(map[string]*dnd5e.Character)
		slog.WarnContext(ctx, "failed to load characters, starting with an empty store",
			"error", err)
		return errors.WrapWithCode(err, errors.CodePersistence, "failed to load characters")
	}

	s.characters = make(map[string]*dnd5e.Character, len(loaded))
	for name, c := range loaded {
		if c == nil {
			continue
		}
		s.characters[name] = c
	}

	slog.InfoContext(ctx, "characters loaded", "count", len(s.characters))
	return nil
}

func (s *store) Save(ctx context.Context) error {
	s.mu.RLock()
	snapshot := make(map[string]*dnd5e.Character, len(s.characters))
	for name, c := range s.characters {
		snapshot[name] = c.Clone()
	}
	s.mu.RUnlock()

	if err := s.backend.SaveAll(ctx, snapshot); err != nil {
		return errors.WrapWithCode(err, errors.CodePersistence, "failed to save characters")
	}

	slog.InfoContext(ctx, "characters saved", "count", len(snapshot))
	return nil
}

func (s *store) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	name := input.Character.Name
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.characters[name]; exists {
		return nil, errors.AlreadyExistsf("a character named %q already exists", name)
	}

	record := input.Character.Clone()
	now := s.clock.Now().Unix()
	if record.CreatedAt == 0 {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	if record.Status == "" || record.Status == dnd5e.CharacterStatusDraft {
		record.Status = dnd5e.CharacterStatusActive
	}
	s.characters[name] = record

	return &CreateOutput{Character: record.Clone()}, nil
}

func (s *store) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.characters[input.Name]
	if !ok {
		return nil, errors.NotFoundf("character %q not found", input.Name)
	}
	return &GetOutput{Character: record.Clone()}, nil
}

func (s *store) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	name := input.Character.Name

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.characters[name]; !ok {
		return nil, errors.NotFoundf("character %q not found", name)
	}

	record := input.Character.Clone()
	record.UpdatedAt = s.clock.Now().Unix()
	s.characters[name] = record

	return &UpdateOutput{Character: record.Clone()}, nil
}

func (s *store) Rename(_ context.Context, input RenameInput) (*RenameOutput, error) {
	newName := strings.TrimSpace(input.NewName)
	if newName == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.characters[input.OldName]
	if !ok {
		return nil, errors.NotFoundf("character %q not found", input.OldName)
	}
	if newName == input.OldName {
		return &RenameOutput{Character: record.Clone()}, nil
	}
	if _, taken := s.characters[newName]; taken {
		return nil, errors.AlreadyExistsf("a character named %q already exists", newName)
	}

	renamed := record.Clone()
	renamed.Name = newName
	renamed.UpdatedAt = s.clock.Now().Unix()
	delete(s.characters, input.OldName)
	s.characters[newName] = renamed

	return &RenameOutput{Character: renamed.Clone()}, nil
}

func (s *store) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.characters[input.Name]
	if !ok {
		return nil, errors.NotFoundf("character %q not found", input.Name)
	}
	delete(s.characters, input.Name)

	removed := record.Clone()
	removed.Status = dnd5e.CharacterStatusDeleted
	return &DeleteOutput{Character: removed}, nil
}

func (s *store) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*dnd5e.Character, 0, len(s.characters))
	for _, c := range s.characters {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return &ListOutput{Characters: out}, nil
}
