package rpgtoolkit

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

func TestPublisherCarriesCharacterAndData(t *testing.T) {
	bus := events.NewBus()
	publisher := NewPublisher(bus)
	character := &dnd5e.Character{ID: "char_1", Name: "Thorin"}

	var got events.Event
	bus.SubscribeFunc(EventCharacterDamaged, 100, func(_ context.Context, e events.Event) error {
		got = e
		return nil
	})

	err := publisher.Publish(context.Background(), EventCharacterDamaged, character, map[string]any{
		KeyAmount:    7,
		KeyCurrentHP: 3,
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, EventCharacterDamaged, got.Type())
	assert.Equal(t, "Thorin", EventString(got, KeyCharacterName))
	assert.Equal(t, 7, EventInt(got, KeyAmount))
	assert.Equal(t, 3, EventInt(got, KeyCurrentHP))
	assert.Equal(t, 0, EventInt(got, KeyRemaining))
	assert.Equal(t, "", EventString(got, KeyOldName))
	assert.Same(t, character, EventCharacter(got))
	assert.Equal(t, EntityTypeCharacter, got.Source().GetType())
	assert.Equal(t, "char_1", got.Source().GetID())
}

func TestPublisherWithoutBusDropsEvents(t *testing.T) {
	var nilPublisher *Publisher
	assert.NoError(t, nilPublisher.Publish(context.Background(), EventLongRest, nil, nil))
	assert.NoError(t, NewPublisher(nil).Publish(context.Background(), EventLongRest, nil, nil))
}

func TestPublisherReportsHandlerFailure(t *testing.T) {
	bus := events.NewBus()
	bus.SubscribeFunc(EventCharacterDeleted, 100, func(_ context.Context, _ events.Event) error {
		return fmt.Errorf("subscriber exploded")
	})

	err := NewPublisher(bus).Publish(context.Background(), EventCharacterDeleted, &dnd5e.Character{Name: "Gone"}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), EventCharacterDeleted)
}

func TestEventCharacterWithoutSource(t *testing.T) {
	assert.Nil(t, EventCharacter(nil))
	assert.Nil(t, EventCharacter(events.NewGameEvent(EventLongRest, nil, nil)))
}

func TestLogEventsSubscribesEveryType(t *testing.T) {
	bus := events.NewBus()
	ids := LogEvents(bus)
	require.Len(t, ids, len(AllEvents))

	for _, eventType := range AllEvents {
		assert.NoError(t, NewPublisher(bus).Publish(context.Background(), eventType, &dnd5e.Character{Name: "Thorin"}, nil))
	}
	for _, id := range ids {
		assert.NoError(t, bus.Unsubscribe(id))
	}
}
