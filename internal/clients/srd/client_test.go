package srd

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	apperrors "github.com/KirkDiggler/character-maker/internal/errors"
)

// mockDND5eClient is a testify mock of the dnd5e-api calls the client makes
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "wizard", generateSlug("Wizard"))
	assert.Equal(t, "very-rare", generateSlug(" Very  Rare "))
	assert.Equal(t, "sorcerer", generateSlug("Sorcerer!"))
	assert.Equal(t, "", generateSlug("  "))
}

func TestGetClass(t *testing.T) {
	t.Run("converts hit die and saving throws", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := &client{dnd5eClient: mockClient}

		mockClient.On("GetClass", "wizard").Return(&entities.Class{
			Key:    "wizard",
			Name:   "Wizard",
			HitDie: 6,
			SavingThrows: []*entities.ReferenceItem{
				{Key: "int", Name: "INT"},
				{Key: "wis", Name: "WIS"},
			},
		}, nil)

		class, err := c.GetClass(context.Background(), "Wizard")
		require.NoError(t, err)
		assert.Equal(t, "Wizard", class.Name)
		assert.Equal(t, 6, class.HitDie)
		assert.Equal(t, []dnd5e.Ability{dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom}, class.SavingThrows)

		mockClient.AssertExpectations(t)
	})

	t.Run("class without saving throws", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := &client{dnd5eClient: mockClient}

		mockClient.On("GetClass", "fighter").Return(&entities.Class{Key: "fighter", Name: "Fighter", HitDie: 10}, nil)

		class, err := c.GetClass(context.Background(), "fighter")
		require.NoError(t, err)
		assert.Equal(t, "fighter", class.Key)
		assert.Equal(t, 10, class.HitDie)
		assert.Empty(t, class.SavingThrows)
	})

	t.Run("nil body is unavailable", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := &client{dnd5eClient: mockClient}

		mockClient.On("GetClass", "bard").Return((*entities.Class)(nil), nil)

		_, err := c.GetClass(context.Background(), "Bard")
		assert.True(t, apperrors.IsUnavailable(err))
	})

	t.Run("API error is unavailable", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := &client{dnd5eClient: mockClient}

		mockClient.On("GetClass", "wizard").Return((*entities.Class)(nil), errors.New("dial tcp: no such host"))

		_, err := c.GetClass(context.Background(), "wizard")
		assert.True(t, apperrors.IsUnavailable(err))
	})

	t.Run("blank name never reaches the API", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := &client{dnd5eClient: mockClient}

		_, err := c.GetClass(context.Background(), " ")
		assert.True(t, apperrors.IsInvalidArgument(err))
		mockClient.AssertNotCalled(t, "GetClass", mock.Anything)
	})

	t.Run("canceled context", func(t *testing.T) {
		c := &client{dnd5eClient: new(mockDND5eClient)}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.GetClass(ctx, "wizard")
		assert.True(t, apperrors.IsCanceled(err))
	})
}

func TestConvertClass(t *testing.T) {
	data := convertClass(&entities.Class{
		Key:    "paladin",
		Name:   "Paladin",
		HitDie: 10,
		SavingThrows: []*entities.ReferenceItem{
			{Key: "wis", Name: "WIS"},
			nil,
			{Key: "luck", Name: "LCK"},
			{Key: "cha", Name: "CHA"},
		},
	})

	assert.Equal(t, &ClassData{
		Key:          "paladin",
		Name:         "Paladin",
		HitDie:       10,
		SavingThrows: []dnd5e.Ability{dnd5e.AbilityWisdom, dnd5e.AbilityCharisma},
	}, data)
}

func TestGetSpellSlots(t *testing.T) {
	t.Run("non-caster level has no slots", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := &client{dnd5eClient: mockClient}

		mockClient.On("GetClassLevel", "fighter", 3).Return(&entities.Level{}, nil)

		table, err := c.GetSpellSlots(context.Background(), "Fighter", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, table.Level)
		assert.Equal(t, [dnd5e.MaxSpellSlotLevel]int{}, table.Totals)
	})

	t.Run("level out of range", func(t *testing.T) {
		c := &client{dnd5eClient: new(mockDND5eClient)}

		_, err := c.GetSpellSlots(context.Background(), "Wizard", 21)
		assert.True(t, apperrors.IsInvalidArgument(err))
		assert.Contains(t, apperrors.ValidationFields(err), "level")
	})

	t.Run("API error is unavailable", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		c := &client{dnd5eClient: mockClient}

		mockClient.On("GetClassLevel", "cleric", 1).Return((*entities.Level)(nil), errors.New("timeout"))

		_, err := c.GetSpellSlots(context.Background(), "Cleric", 1)
		assert.True(t, apperrors.IsUnavailable(err))
	})
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPTimeout)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)

	assert.Error(t, (&Config{CacheTTL: -1}).Validate())
}
