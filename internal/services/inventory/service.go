// Package inventory defines the interface for inventory operations.
// Items live on the character record; every operation names its character.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/KirkDiggler/character-maker/internal/services/inventory Service

import (
	"context"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// Service defines the interface for inventory operations
type Service interface {
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	FindItem(ctx context.Context, input *FindItemInput) (*FindItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error)
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)
	ImportInventory(ctx context.Context, input *ImportInventoryInput) (*ImportInventoryOutput, error)
}

// SortKey selects the list order
type SortKey string

// Sort keys
const (
	SortByName        SortKey = "name"
	SortByWeight      SortKey = "weight"
	SortByRarity      SortKey = "rarity"
	SortByQuantity    SortKey = "quantity"
	SortByValue       SortKey = "value"
	SortByType        SortKey = "type"
	SortByTotalWeight SortKey = "total_weight"
)

// SortKeys lists the accepted sort keys in menu order
var SortKeys = []SortKey{
	SortByName,
	SortByWeight,
	SortByRarity,
	SortByQuantity,
	SortByValue,
	SortByType,
	SortByTotalWeight,
}

// AddItemInput adds a stack to a character's inventory
type AddItemInput struct {
	CharacterName string
	Item          dnd5e.InventoryItem
}

// AddItemOutput reports where the item ended up
type AddItemOutput struct {
	// Item is the resulting stack
	Item dnd5e.InventoryItem
	// Stacked is true when the item merged into an existing stack
	Stacked bool
}

// RemoveItemInput removes some or all of a stack
type RemoveItemInput struct {
	CharacterName string
	ItemName      string
	// Quantity defaults to 1
	Quantity int
}

// RemoveItemOutput reports what was removed
type RemoveItemOutput struct {
	Removed   int
	Remaining int
	// StackRemoved is true when the whole stack is gone
	StackRemoved bool
}

// FindItemInput looks an item up by name, case-insensitively
type FindItemInput struct {
	CharacterName string
	ItemName      string
}

// FindItemOutput carries the found stack
type FindItemOutput struct {
	Item dnd5e.InventoryItem
}

// ListItemsInput lists a character's items in a chosen order
type ListItemsInput struct {
	CharacterName string
	// SortBy defaults to name
	SortBy  SortKey
	Reverse bool
}

// ListItemsOutput carries the sorted items and the inventory totals
type ListItemsOutput struct {
	CharacterName string
	Items         []dnd5e.InventoryItem
	Summary       *Summary
}

// SearchItemsInput matches a query against name, description and type
type SearchItemsInput struct {
	CharacterName string
	Query         string
}

// SearchItemsOutput carries the matches in inventory order
type SearchItemsOutput struct {
	Items []dnd5e.InventoryItem
}

// GetSummaryInput requests the inventory totals
type GetSummaryInput struct {
	CharacterName string
}

// Summary holds the inventory totals
type Summary struct {
	// ItemCount counts stacks, not individual items
	ItemCount    int
	TotalWeight  float64
	TotalValue   float64
	MagicalCount int
	AttunedCount int
}

// GetSummaryOutput carries the totals
type GetSummaryOutput struct {
	Summary *Summary
}

// ImportInventoryInput merges a standalone inventory document
type ImportInventoryInput struct {
	CharacterName string
	Data          []byte
}

// ImportInventoryOutput reports what the import did
type ImportInventoryOutput struct {
	// DocumentCharacter is the character_name the document was written for
	DocumentCharacter string
	Added             int
	Stacked           int
}
