package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Track spell slots",
}

var slotsUseCmd = &cobra.Command{
	Use:   "use NAME LEVEL",
	Short: "Spend one spell slot",
	Args:  exactArgs(2),
	RunE: withStore(true, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		level, err := dnd5e.ParseSpellSlotLevel(args[1])
		if err != nil {
			return err
		}
		out, err := a.characters.UseSpellSlot(ctx, &character.SpellSlotInput{Name: args[0], Level: level})
		if err != nil {
			return err
		}
		printSlot(cmd, out)
		return nil
	}),
}

var slotsRecoverCmd = &cobra.Command{
	Use:   "recover NAME LEVEL",
	Short: "Recover one expended spell slot",
	Args:  exactArgs(2),
	RunE: withStore(true, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		level, err := dnd5e.ParseSpellSlotLevel(args[1])
		if err != nil {
			return err
		}
		out, err := a.characters.RecoverSpellSlot(ctx, &character.SpellSlotInput{Name: args[0], Level: level})
		if err != nil {
			return err
		}
		printSlot(cmd, out)
		return nil
	}),
}

var slotsSetCmd = &cobra.Command{
	Use:   "set NAME LEVEL TOTAL",
	Short: "Change a slot total; expended slots at that level reset",
	Args:  exactArgs(3),
	RunE: withStore(true, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		level, err := dnd5e.ParseSpellSlotLevel(args[1])
		if err != nil {
			return err
		}
		total, err := parseAmount("total", args[2])
		if err != nil {
			return err
		}
		out, err := a.characters.SetSpellSlotTotal(ctx, &character.SetSpellSlotTotalInput{
			Name: args[0], Level: level, Total: total,
		})
		if err != nil {
			return err
		}
		printSlot(cmd, out)
		return nil
	}),
}

var slotsRestCmd = &cobra.Command{
	Use:   "rest NAME",
	Short: "Long rest: restore every spell slot",
	Args:  exactArgs(1),
	RunE: withStore(true, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		out, err := a.characters.ResetSpellSlots(ctx, &character.CharacterNameInput{Name: args[0]})
		if err != nil {
			return err
		}
		cmd.Printf("%s finished a long rest.\n", out.Character.Name)
		printSlots(cmd, out.Character.Spellcasting)
		return nil
	}),
}

var slotsListCmd = &cobra.Command{
	Use:   "list NAME",
	Short: "Show spell slots",
	Args:  exactArgs(1),
	RunE: withStore(false, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		out, err := a.characters.GetCharacter(ctx, &character.GetCharacterInput{Name: args[0]})
		if err != nil {
			return err
		}
		if out.Character.Spellcasting == nil {
			return errors.NotFoundf("%s has no spellcasting", out.Character.Name)
		}
		printSlots(cmd, out.Character.Spellcasting)
		return nil
	}),
}

var slotsSRDCmd = &cobra.Command{
	Use:   "srd NAME",
	Short: "Set slot totals from the SRD table for the character's class and level",
	Long: `Look up the SRD spell slot table for the character's spellcasting class at
its current level and replace every slot total. A character without
spellcasting gets a profile using its class's casting ability from the catalog.`,
	Args: exactArgs(1),
	RunE: withStore(true, runSlotsSRD),
}

func init() {
	slotsCmd.AddCommand(slotsUseCmd, slotsRecoverCmd, slotsSetCmd, slotsRestCmd, slotsListCmd, slotsSRDCmd)
}

func runSlotsSRD(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
	got, err := a.characters.GetCharacter(ctx, &character.GetCharacterInput{Name: args[0]})
	if err != nil {
		return err
	}
	c := got.Character

	client, err := newSRD(a.cfg)
	if err != nil {
		return err
	}

	in := &character.EnableSpellcastingInput{Name: c.Name}
	if c.Spellcasting != nil {
		in.Class = c.Spellcasting.Class
		in.Ability = c.Spellcasting.Ability
	} else {
		class, err := dnd5e.ClassInfo(c.Class)
		if err != nil || !class.IsSpellcaster() {
			return errors.InvalidArgumentf("no spellcasting ability known for %s; enable spellcasting first", c.Class)
		}
		in.Class = class.Name
		in.Ability = class.SpellcastingAbility
	}

	table, err := client.GetSpellSlots(ctx, in.Class, c.Level)
	if err != nil {
		return err
	}
	in.SlotTotals = &table.Totals

	out, err := a.characters.EnableSpellcasting(ctx, in)
	if err != nil {
		return err
	}
	cmd.Printf("%s: %s level %d slots from the SRD\n", out.Character.Name, in.Class, c.Level)
	printSlots(cmd, out.Character.Spellcasting)
	return nil
}

func printSlot(cmd *cobra.Command, out *character.SpellSlotOutput) {
	cmd.Printf("%s level slots: %d/%d remaining\n", out.Level, out.Slot.Remaining(), out.Slot.Total)
}

func printSlots(cmd *cobra.Command, sc *dnd5e.SpellcastingProfile) {
	if sc == nil {
		return
	}
	shown := false
	for _, level := range dnd5e.SpellSlotLevels {
		slot, err := sc.Slots.Get(level)
		if err != nil || slot.Total == 0 {
			continue
		}
		cmd.Printf("  %s: %d/%d remaining\n", level, slot.Remaining(), slot.Total)
		shown = true
	}
	if !shown {
		cmd.Println("  no spell slots")
	}
}
