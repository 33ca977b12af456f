package inventory

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/services/inventory"
	"github.com/KirkDiggler/character-maker/internal/storage"
)

// AddItem appends a stack, or merges it into the stack found by name when
// every field but quantity and attunement matches
func (o *Orchestrator) AddItem(ctx context.Context, input *inventory.AddItemInput) (*inventory.AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := normalizeItem(input.Item)
	if err != nil {
		return nil, err
	}

	var out *inventory.AddItemOutput
	err = o.mutate(ctx, input.CharacterName, func(c *dnd5e.Character) error {
		out = addItem(c, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item added",
		"character", input.CharacterName,
		"item", item.Name,
		"quantity", item.Quantity,
		"stacked", out.Stacked)
	return out, nil
}

// RemoveItem takes quantity items off a stack; the stack goes when nothing is left
func (o *Orchestrator) RemoveItem(
	ctx context.Context,
	input *inventory.RemoveItemInput,
) (*inventory.RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, errors.InvalidArgumentf("quantity must be at least 1, got %d", quantity)
	}

	out := &inventory.RemoveItemOutput{}
	err := o.mutate(ctx, input.CharacterName, func(c *dnd5e.Character) error {
		i := findIndex(c.Inventory, input.ItemName)
		if i < 0 {
			return errors.NotFoundf("item %q not found in inventory", input.ItemName).
				WithMeta("character", input.CharacterName)
		}

		stack := &c.Inventory[i]
		if quantity >= stack.Quantity {
			out.Removed = stack.Quantity
			out.StackRemoved = true
			c.Inventory = append(c.Inventory[:i:i], c.Inventory[i+1:]...)
			return nil
		}
		stack.Quantity -= quantity
		out.Removed = quantity
		out.Remaining = stack.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindItem looks up a stack by name, case-insensitively
func (o *Orchestrator) FindItem(ctx context.Context, input *inventory.FindItemInput) (*inventory.FindItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.get(ctx, input.CharacterName)
	if err != nil {
		return nil, err
	}

	i := findIndex(c.Inventory, input.ItemName)
	if i < 0 {
		return nil, errors.NotFoundf("item %q not found in inventory", input.ItemName)
	}
	return &inventory.FindItemOutput{Item: c.Inventory[i]}, nil
}

// ListItems returns the items in the requested order with the inventory totals
func (o *Orchestrator) ListItems(ctx context.Context, input *inventory.ListItemsInput) (*inventory.ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = inventory.SortByName
	}
	less, err := lessFunc(sortBy)
	if err != nil {
		return nil, err
	}

	c, err := o.get(ctx, input.CharacterName)
	if err != nil {
		return nil, err
	}

	items := c.Inventory
	sort.SliceStable(items, func(i, j int) bool {
		if input.Reverse {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})

	return &inventory.ListItemsOutput{
		CharacterName: c.Name,
		Items:         items,
		Summary:       summarize(c.Inventory),
	}, nil
}

// SearchItems matches a case-insensitive substring of name, description or type
func (o *Orchestrator) SearchItems(
	ctx context.Context,
	input *inventory.SearchItemsInput,
) (*inventory.SearchItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.get(ctx, input.CharacterName)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(input.Query)
	out := &inventory.SearchItemsOutput{}
	for _, item := range c.Inventory {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Description), query) ||
			strings.Contains(strings.ToLower(item.ItemType), query) {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

// GetSummary returns the inventory totals
func (o *Orchestrator) GetSummary(ctx context.Context, input *inventory.GetSummaryInput) (*inventory.GetSummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.get(ctx, input.CharacterName)
	if err != nil {
		return nil, err
	}
	return &inventory.GetSummaryOutput{Summary: summarize(c.Inventory)}, nil
}

// ImportInventory merges a standalone inventory document item by item, with
// the same stacking rules as AddItem. A bad document imports nothing.
func (o *Orchestrator) ImportInventory(
	ctx context.Context,
	input *inventory.ImportInventoryInput,
) (*inventory.ImportInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	doc, err := storage.DecodeInventoryDocument(input.Data)
	if err != nil {
		return nil, err
	}

	out := &inventory.ImportInventoryOutput{DocumentCharacter: doc.CharacterName}
	err = o.mutate(ctx, input.CharacterName, func(c *dnd5e.Character) error {
		for _, item := range doc.Items {
			if addItem(c, item).Stacked {
				out.Stacked++
			} else {
				out.Added++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "inventory imported",
		"character", input.CharacterName,
		"document_character", doc.CharacterName,
		"added", out.Added,
		"stacked", out.Stacked)
	return out, nil
}

func addItem(c *dnd5e.Character, item dnd5e.InventoryItem) *inventory.AddItemOutput {
	if i := findIndex(c.Inventory, item.Name); i >= 0 && c.Inventory[i].CanStackWith(item) {
		c.Inventory[i].Quantity += item.Quantity
		return &inventory.AddItemOutput{Item: c.Inventory[i], Stacked: true}
	}
	c.Inventory = append(c.Inventory, item)
	return &inventory.AddItemOutput{Item: item}
}

// normalizeItem applies the entry defaults and validates the result
func normalizeItem(item dnd5e.InventoryItem) (dnd5e.InventoryItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.ItemType = strings.TrimSpace(item.ItemType)
	if item.ItemType == "" {
		item.ItemType = dnd5e.DefaultItemType
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	rarity, err := dnd5e.ParseRarity(string(item.Rarity))
	if err != nil {
		return item, err
	}
	item.Rarity = rarity
	if !item.Magical {
		item.Attuned = false
	}
	return item, item.Validate()
}

func lessFunc(key inventory.SortKey) (func(a, b dnd5e.InventoryItem) bool, error) {
	switch key {
	case inventory.SortByName:
		return func(a, b dnd5e.InventoryItem) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }, nil
	case inventory.SortByWeight:
		return func(a, b dnd5e.InventoryItem) bool { return a.Weight < b.Weight }, nil
	case inventory.SortByRarity:
		return func(a, b dnd5e.InventoryItem) bool { return a.Rarity.Rank() < b.Rarity.Rank() }, nil
	case inventory.SortByQuantity:
		return func(a, b dnd5e.InventoryItem) bool { return a.Quantity < b.Quantity }, nil
	case inventory.SortByValue:
		return func(a, b dnd5e.InventoryItem) bool { return a.ValueGP < b.ValueGP }, nil
	case inventory.SortByType:
		return func(a, b dnd5e.InventoryItem) bool { return strings.ToLower(a.ItemType) < strings.ToLower(b.ItemType) }, nil
	case inventory.SortByTotalWeight:
		return func(a, b dnd5e.InventoryItem) bool { return a.TotalWeight() < b.TotalWeight() }, nil
	default:
		keys := make([]string, len(inventory.SortKeys))
		for i, k := range inventory.SortKeys {
			keys[i] = string(k)
		}
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("sort_by", string(key), keys, vb)
		return nil, vb.Build()
	}
}

func summarize(items []dnd5e.InventoryItem) *inventory.Summary {
	s := &inventory.Summary{ItemCount: len(items)}
	for _, item := range items {
		s.TotalWeight += item.TotalWeight()
		s.TotalValue += item.TotalValue()
		if item.Magical {
			s.MagicalCount++
		}
		if item.Attuned {
			s.AttunedCount++
		}
	}
	return s
}
