// Package srd is the location for the dnd5e-api (SRD) reference client.
// It is only used to compare or seed data; the core never calls it.
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/KirkDiggler/character-maker/internal/clients/srd Client

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	characters "github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Defaults for the SRD client
const (
	DefaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultCacheTTL    = 24 * time.Hour
)

var (
	slugPattern   = regexp.MustCompile(`[^a-z0-9-]+`)
	dashesPattern = regexp.MustCompile(`-+`)
)

// generateSlug turns a display name into an API key, "Very Rare" -> "very-rare"
func generateSlug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = dashesPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Client defines the SRD lookups
type Client interface {
	// GetClass fetches hit die and saving throws for a class
	// Returns errors.InvalidArgument for a blank name
	// Returns errors.Unavailable if the API cannot answer
	GetClass(ctx context.Context, name string) (*ClassData, error)

	// GetSpellSlots fetches the slot totals of a class at a level
	// Returns errors.InvalidArgument for a blank class or a level outside [1,20]
	// Returns errors.Unavailable if the API cannot answer
	GetSpellSlots(ctx context.Context, class string, level int) (*SpellSlotTable, error)
}

// ClassData is the SRD view of a class
type ClassData struct {
	Key          string
	Name         string
	HitDie       int
	SavingThrows []characters.Ability
}

// SpellSlotTable holds the slot totals for one class level
type SpellSlotTable struct {
	Class  string
	Level  int
	Totals [characters.MaxSpellSlotLevel]int
}

// api is the part of dnd5e.Interface this client uses
type api interface {
	GetClass(key string) (*entities.Class, error)
	GetClassLevel(key string, level int) (*entities.Level, error)
}

type client struct {
	dnd5eClient api
}

// Config contains configuration options for the SRD client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

// New creates a new SRD client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetClass(ctx context.Context, name string) (*ClassData, error) {
	key := generateSlug(name)
	if key == "" {
		return nil, errors.InvalidArgument("class name is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "lookup canceled")
	}

	slog.DebugContext(ctx, "Calling D&D 5e API to get class", "class", name, "api", key)
	class, err := c.dnd5eClient.GetClass(key)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get class %q from the SRD", name)
	}
	if class == nil {
		return nil, errors.Unavailablef("the SRD returned no data for class %q", name)
	}

	return convertClass(class), nil
}

func (c *client) GetSpellSlots(ctx context.Context, class string, level int) (*SpellSlotTable, error) {
	key := generateSlug(class)

	vb := errors.NewValidationBuilder()
	if key == "" {
		vb.RequiredField("class")
	}
	errors.ValidateRange("level", level, characters.MinLevel, characters.MaxLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "lookup canceled")
	}

	slog.DebugContext(ctx, "Calling D&D 5e API to get class level", "class", class, "level", level)
	lvl, err := c.dnd5eClient.GetClassLevel(key, level)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable,
			"failed to get %s level %d from the SRD", class, level)
	}

	table := &SpellSlotTable{Class: class, Level: level}
	if lvl == nil || lvl.SpellCasting == nil {
		return table, nil
	}

	sc := lvl.SpellCasting
	table.Totals = [characters.MaxSpellSlotLevel]int{
		sc.SpellSlotsLevel1,
		sc.SpellSlotsLevel2,
		sc.SpellSlotsLevel3,
		sc.SpellSlotsLevel4,
		sc.SpellSlotsLevel5,
		sc.SpellSlotsLevel6,
		sc.SpellSlotsLevel7,
		sc.SpellSlotsLevel8,
		sc.SpellSlotsLevel9,
	}
	return table, nil
}

// convertClass keeps the saving throws the catalog can name
func convertClass(class *entities.Class) *ClassData {
	data := &ClassData{
		Key:    class.Key,
		Name:   class.Name,
		HitDie: class.HitDie,
	}

	for _, st := range class.SavingThrows {
		if st == nil {
			continue
		}
		if ability, err := characters.ParseAbility(st.Key); err == nil {
			data.SavingThrows = append(data.SavingThrows, ability)
		}
	}
	return data
}
