package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/character-maker/internal/errors"
)

// Rarity is an item rarity tier
type Rarity string

// Rarities in ascending rank
const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityVeryRare  Rarity = "Very Rare"
	RarityLegendary Rarity = "Legendary"
	RarityArtifact  Rarity = "Artifact"
)

// Rarities lists every tier in rank order
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityVeryRare,
	RarityLegendary,
	RarityArtifact,
}

// DefaultItemType is used when an item is added without a type
const DefaultItemType = "Miscellaneous"

// Rank orders rarities from Common (0) to Artifact (5). Unknown rarities rank last.
func (r Rarity) Rank() int {
	for i, known := range Rarities {
		if r == known {
			return i
		}
	}
	return len(Rarities)
}

// ParseRarity accepts any case; empty input is Common
func ParseRarity(s string) (Rarity, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if key == "" {
		return RarityCommon, nil
	}
	for _, r := range Rarities {
		if strings.ToLower(string(r)) == key {
			return r, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown rarity %q", s)
}

// InventoryItem is one stack of items carried by a character
type InventoryItem struct {
	Name        string
	Weight      float64
	Rarity      Rarity
	Quantity    int
	Description string
	ValueGP     float64
	ItemType    string
	Magical     bool
	Attuned     bool
}

// TotalWeight is the weight of the whole stack
func (i InventoryItem) TotalWeight() float64 {
	return i.Weight * float64(i.Quantity)
}

// TotalValue is the value of the whole stack in gold pieces
func (i InventoryItem) TotalValue() float64 {
	return i.ValueGP * float64(i.Quantity)
}

// Validate checks the item invariants
func (i InventoryItem) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", i.Name, vb)
	if i.Weight < 0 {
		vb.Field("weight", "must not be negative")
	}
	if i.Quantity < 1 {
		vb.Field("quantity", "must be at least 1")
	}
	if i.ValueGP < 0 {
		vb.Field("value_gp", "must not be negative")
	}
	if _, err := ParseRarity(string(i.Rarity)); err != nil {
		vb.InvalidField("rarity", errors.GetMessage(err))
	}
	return vb.Build()
}

// CanStackWith reports whether other may merge into this stack: every field
// except quantity and attunement must match
func (i InventoryItem) CanStackWith(other InventoryItem) bool {
	return i.Name == other.Name &&
		i.Weight == other.Weight &&
		i.Rarity == other.Rarity &&
		i.Description == other.Description &&
		i.ValueGP == other.ValueGP &&
		i.ItemType == other.ItemType &&
		i.Magical == other.Magical
}
