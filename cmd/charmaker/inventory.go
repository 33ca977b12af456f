package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/handlers/prompt"
	invorch "github.com/KirkDiggler/character-maker/internal/orchestrators/inventory"
	"github.com/KirkDiggler/character-maker/internal/services/inventory"
)

var inventoryCmd = &cobra.Command{
	Use:     "inventory",
	Aliases: []string{"inv"},
	Short:   "Manage a character's inventory",
}

var itemFlags struct {
	weight      string
	quantity    int
	value       string
	itemType    string
	rarity      string
	description string
	magical     bool
	attuned     bool
}

var (
	removeQuantity int
	listSort       string
	listReverse    bool
)

var inventoryAddCmd = &cobra.Command{
	Use:   "add NAME ITEM",
	Short: "Add an item; identical items stack",
	Args:  exactArgs(2),
	RunE:  withStore(true, runInventoryAdd),
}

var inventoryRemoveCmd = &cobra.Command{
	Use:   "remove NAME ITEM",
	Short: "Remove some or all of a stack",
	Args:  exactArgs(2),
	RunE: withStore(true, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		out, err := a.inventory.RemoveItem(ctx, &inventory.RemoveItemInput{
			CharacterName: args[0],
			ItemName:      args[1],
			Quantity:      removeQuantity,
		})
		if err != nil {
			return err
		}
		if out.StackRemoved {
			cmd.Printf("Removed all %s.\n", args[1])
		} else {
			cmd.Printf("Removed %d %s, %d remaining.\n", out.Removed, args[1], out.Remaining)
		}
		return nil
	}),
}

var inventoryListCmd = &cobra.Command{
	Use:   "list NAME",
	Short: "List items",
	Args:  exactArgs(1),
	RunE: withStore(false, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		out, err := a.inventory.ListItems(ctx, &inventory.ListItemsInput{
			CharacterName: args[0],
			SortBy:        inventory.SortKey(listSort),
			Reverse:       listReverse,
		})
		if err != nil {
			return err
		}
		prompt.RenderInventory(cmd.OutOrStdout(), out.Items)
		return nil
	}),
}

var inventorySearchCmd = &cobra.Command{
	Use:   "search NAME QUERY",
	Short: "Find items by name, description or type",
	Args:  exactArgs(2),
	RunE: withStore(false, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		out, err := a.inventory.SearchItems(ctx, &inventory.SearchItemsInput{CharacterName: args[0], Query: args[1]})
		if err != nil {
			return err
		}
		if len(out.Items) == 0 {
			cmd.Printf("No items match %q.\n", args[1])
			return nil
		}
		for _, item := range out.Items {
			prompt.RenderItem(cmd.OutOrStdout(), item)
		}
		return nil
	}),
}

var inventorySummaryCmd = &cobra.Command{
	Use:   "summary NAME",
	Short: "Show inventory totals",
	Args:  exactArgs(1),
	RunE: withStore(false, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		out, err := a.inventory.GetSummary(ctx, &inventory.GetSummaryInput{CharacterName: args[0]})
		if err != nil {
			return err
		}
		prompt.RenderSummary(cmd.OutOrStdout(), out.Summary)
		return nil
	}),
}

var inventoryImportCmd = &cobra.Command{
	Use:   "import NAME FILE",
	Short: "Merge a standalone inventory file into a character's inventory",
	Args:  exactArgs(2),
	RunE: withStore(true, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return errors.WrapWithCodef(err, errors.CodePersistence, "failed to read %s", args[1])
		}
		out, err := a.inventory.ImportInventory(ctx, &inventory.ImportInventoryInput{CharacterName: args[0], Data: data})
		if err != nil {
			return err
		}
		cmd.Printf("Imported %d new item(s), %d merged into existing stacks.\n", out.Added, out.Stacked)
		return nil
	}),
}

func init() {
	f := inventoryAddCmd.Flags()
	f.StringVar(&itemFlags.weight, "weight", "0", "weight per item in lb, decimals or fractions like 1/4")
	f.IntVar(&itemFlags.quantity, "qty", 1, "quantity")
	f.StringVar(&itemFlags.value, "value", "0", "value per item in gp")
	f.StringVar(&itemFlags.itemType, "type", dnd5e.DefaultItemType, "item type")
	f.StringVar(&itemFlags.rarity, "rarity", string(dnd5e.RarityCommon), "rarity")
	f.StringVar(&itemFlags.description, "desc", "", "description")
	f.BoolVar(&itemFlags.magical, "magical", false, "item is magical")
	f.BoolVar(&itemFlags.attuned, "attuned", false, "item is attuned (magical items only)")

	inventoryRemoveCmd.Flags().IntVar(&removeQuantity, "qty", 1, "quantity to remove")

	inventoryListCmd.Flags().StringVar(&listSort, "sort", string(inventory.SortByName),
		"sort key: name, weight, rarity, quantity, value, type or total_weight")
	inventoryListCmd.Flags().BoolVar(&listReverse, "reverse", false, "descending order")

	inventoryCmd.AddCommand(inventoryAddCmd, inventoryRemoveCmd, inventoryListCmd,
		inventorySearchCmd, inventorySummaryCmd, inventoryImportCmd)
}

func runInventoryAdd(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
	weight, err := invorch.ParseWeight(itemFlags.weight)
	if err != nil {
		return err
	}
	value, err := invorch.ParseWeight(itemFlags.value)
	if err != nil {
		return errors.InvalidArgumentf("invalid value %q", itemFlags.value)
	}
	rarity, err := dnd5e.ParseRarity(itemFlags.rarity)
	if err != nil {
		return err
	}

	out, err := a.inventory.AddItem(ctx, &inventory.AddItemInput{
		CharacterName: args[0],
		Item: dnd5e.InventoryItem{
			Name:        args[1],
			Weight:      weight,
			Rarity:      rarity,
			Quantity:    itemFlags.quantity,
			Description: itemFlags.description,
			ValueGP:     value,
			ItemType:    itemFlags.itemType,
			Magical:     itemFlags.magical,
			Attuned:     itemFlags.attuned,
		},
	})
	if err != nil {
		return err
	}
	if out.Stacked {
		cmd.Printf("Added to existing stack: %s (x%d)\n", out.Item.Name, out.Item.Quantity)
	} else {
		cmd.Printf("Added %s (x%d)\n", out.Item.Name, out.Item.Quantity)
	}
	return nil
}
