package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Event types published on the bus
const (
	EventCharacterRecalculated = "charmaker.character.recalculated"
	EventCharacterDamaged      = "charmaker.character.damaged"
	EventCharacterUnconscious  = "charmaker.character.unconscious"
	EventCharacterHealed       = "charmaker.character.healed"
	EventSpellSlotUsed         = "charmaker.spellslot.used"
	EventLongRest              = "charmaker.rest.long"
	EventCharacterDeleted      = "charmaker.character.deleted"
	EventCharacterRenamed      = "charmaker.character.renamed"
)

// AllEvents lists every event type, for subscribers that want everything
var AllEvents = []string{
	EventCharacterRecalculated,
	EventCharacterDamaged,
	EventCharacterUnconscious,
	EventCharacterHealed,
	EventSpellSlotUsed,
	EventLongRest,
	EventCharacterDeleted,
	EventCharacterRenamed,
}

// Event context keys
const (
	KeyCharacterName = "character_name"
	KeyChanged       = "changed"
	KeyAmount        = "amount"
	KeyAbsorbed      = "absorbed"
	KeyCurrentHP     = "current_hp"
	KeyMaximumHP     = "maximum_hp"
	KeySpellLevel    = "spell_level"
	KeyRemaining     = "remaining"
	KeyOldName       = "old_name"
	KeyNewName       = "new_name"
)

// Publisher puts character events on an rpg-toolkit bus. A nil Publisher
// or one without a bus drops events.
type Publisher struct {
	bus events.EventBus
}

// NewPublisher creates a publisher over bus
func NewPublisher(bus events.EventBus) *Publisher {
	return &Publisher{bus: bus}
}

// Publish sends an event with the character as source and data in the event context
func (p *Publisher) Publish(ctx context.Context, eventType string, character *dnd5e.Character, data map[string]any) error {
	if p == nil || p.bus == nil {
		return nil
	}

	var source core.Entity
	if character != nil {
		source = WrapCharacter(character)
	}

	event := events.NewGameEvent(eventType, source, nil)
	if character != nil {
		event.Context().Set(KeyCharacterName, character.Name)
	}
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := p.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "event handler failed",
			"event", eventType,
			"error", err)
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}
	return nil
}

// EventCharacter returns the character an event was published for, if any
func EventCharacter(e events.Event) *dnd5e.Character {
	if e == nil || e.Source() == nil {
		return nil
	}
	if entity, ok := e.Source().(*CharacterEntity); ok {
		return entity.Character
	}
	return nil
}

// EventString reads a string value from the event context
func EventString(e events.Event, key string) string {
	v, ok := e.Context().Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// EventInt reads an int value from the event context
func EventInt(e events.Event, key string) int {
	v, ok := e.Context().Get(key)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// LogEvents subscribes a debug logger to every event type and returns the
// subscription ids
func LogEvents(bus events.EventBus) []string {
	ids := make([]string, 0, len(AllEvents))
	for _, eventType := range AllEvents {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			slog.DebugContext(ctx, "event",
				"type", e.Type(),
				"character", EventString(e, KeyCharacterName))
			return nil
		}))
	}
	return ids
}
