package prompt

import (
	"context"
	"os"
	"strings"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	invorch "github.com/KirkDiggler/character-maker/internal/orchestrators/inventory"
	"github.com/KirkDiggler/character-maker/internal/services/inventory"
)

func (s *Session) inventoryMenu(ctx context.Context) error {
	actions := map[string]func(context.Context) error{
		"1": s.viewInventory,
		"2": s.addItem,
		"3": s.removeItem,
		"4": s.searchItems,
		"5": s.sortInventory,
		"6": s.inventorySummary,
		"7": s.importInventory,
	}

	for s.current != "" {
		s.printf("\n--- INVENTORY: %s ---\n", s.current)
		s.println("1. View Inventory")
		s.println("2. Add Item")
		s.println("3. Remove Item")
		s.println("4. Search Items")
		s.println("5. Sort Inventory")
		s.println("6. Inventory Summary")
		s.println("7. Import Inventory File")
		s.println("0. Return to Main Menu")

		choice, err := s.ask("\nChoose: ")
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		action, ok := actions[choice]
		if !ok {
			s.println("Invalid choice.")
			continue
		}
		if err := s.report(action(ctx)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) viewInventory(ctx context.Context) error {
	return s.listInventory(ctx, inventory.SortByName, false)
}

func (s *Session) listInventory(ctx context.Context, sortBy inventory.SortKey, reverse bool) error {
	out, err := s.inventory.ListItems(ctx, &inventory.ListItemsInput{
		CharacterName: s.current,
		SortBy:        sortBy,
		Reverse:       reverse,
	})
	if err != nil {
		return err
	}
	RenderInventory(s.out, out.Items)
	return nil
}

func (s *Session) addItem(ctx context.Context) error {
	name, err := s.ask("Item name: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument("item name is required")
	}

	item := dnd5e.InventoryItem{Name: name}

	weight, err := s.ask("Weight per item in lb (e.g. 0.5 or 1/4, Enter for 0): ")
	if err != nil {
		return err
	}
	if weight != "" {
		if item.Weight, err = invorch.ParseWeight(weight); err != nil {
			return err
		}
	}

	if item.Quantity, err = s.askIntInRange("Quantity [1]: ", 1, 1<<20, 1); err != nil {
		return err
	}

	value, err := s.ask("Value per item in gp (Enter for 0): ")
	if err != nil {
		return err
	}
	if value != "" {
		if item.ValueGP, err = invorch.ParseWeight(value); err != nil {
			return errors.InvalidArgumentf("invalid value %q", value)
		}
	}

	if item.ItemType, err = s.ask("Item type [Miscellaneous]: "); err != nil {
		return err
	}

	rarity, err := s.ask("Rarity [Common]: ")
	if err != nil {
		return err
	}
	if item.Rarity, err = dnd5e.ParseRarity(rarity); err != nil {
		return err
	}

	if item.Description, err = s.ask("Description: "); err != nil {
		return err
	}
	if item.Magical, err = s.askYesNo("Magical? (y/N): "); err != nil {
		return err
	}
	if item.Magical {
		if item.Attuned, err = s.askYesNo("Attuned? (y/N): "); err != nil {
			return err
		}
	}

	out, err := s.inventory.AddItem(ctx, &inventory.AddItemInput{CharacterName: s.current, Item: item})
	if err != nil {
		return err
	}
	if out.Stacked {
		s.printf("Added to existing stack: %s (x%d)\n", out.Item.Name, out.Item.Quantity)
	} else {
		s.printf("Added %s (x%d)\n", out.Item.Name, out.Item.Quantity)
	}
	return nil
}

func (s *Session) removeItem(ctx context.Context) error {
	name, err := s.ask("Item name to remove: ")
	if err != nil {
		return err
	}
	found, err := s.inventory.FindItem(ctx, &inventory.FindItemInput{CharacterName: s.current, ItemName: name})
	if err != nil {
		return err
	}

	quantity := 1
	if found.Item.Quantity > 1 {
		quantity, err = s.askIntInRange("Quantity to remove [1]: ", 1, found.Item.Quantity, 1)
		if err != nil {
			return err
		}
	}

	out, err := s.inventory.RemoveItem(ctx, &inventory.RemoveItemInput{
		CharacterName: s.current,
		ItemName:      found.Item.Name,
		Quantity:      quantity,
	})
	if err != nil {
		return err
	}
	if out.StackRemoved {
		s.printf("Removed all %s.\n", found.Item.Name)
	} else {
		s.printf("Removed %d %s, %d remaining.\n", out.Removed, found.Item.Name, out.Remaining)
	}
	return nil
}

func (s *Session) searchItems(ctx context.Context) error {
	query, err := s.ask("Search for: ")
	if err != nil {
		return err
	}
	out, err := s.inventory.SearchItems(ctx, &inventory.SearchItemsInput{CharacterName: s.current, Query: query})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		s.printf("No items match %q.\n", query)
		return nil
	}
	for _, item := range out.Items {
		RenderItem(s.out, item)
	}
	return nil
}

func (s *Session) sortInventory(ctx context.Context) error {
	s.println("Sort by:")
	for i, key := range inventory.SortKeys {
		s.printf("  %d. %s\n", i+1, strings.ReplaceAll(string(key), "_", " "))
	}
	pick, err := s.askIntInRange("Choose [1]: ", 1, len(inventory.SortKeys), 1)
	if err != nil {
		return err
	}
	reverse, err := s.askYesNo("Descending? (y/N): ")
	if err != nil {
		return err
	}
	return s.listInventory(ctx, inventory.SortKeys[pick-1], reverse)
}

func (s *Session) inventorySummary(ctx context.Context) error {
	out, err := s.inventory.GetSummary(ctx, &inventory.GetSummaryInput{CharacterName: s.current})
	if err != nil {
		return err
	}
	RenderSummary(s.out, out.Summary)
	return nil
}

func (s *Session) importInventory(ctx context.Context) error {
	path, err := s.ask("Inventory file path: ")
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodePersistence, "failed to read %s", path)
	}

	out, err := s.inventory.ImportInventory(ctx, &inventory.ImportInventoryInput{CharacterName: s.current, Data: data})
	if err != nil {
		return err
	}
	if out.DocumentCharacter != "" && !strings.EqualFold(out.DocumentCharacter, s.current) {
		s.printf("Note: file was written for %s.\n", out.DocumentCharacter)
	}
	s.printf("Imported %d new item(s), %d merged into existing stacks.\n", out.Added, out.Stacked)
	return nil
}
