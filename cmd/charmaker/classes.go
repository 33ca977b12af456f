package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
)

var srdLevel int

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Browse the class catalog",
}

var classesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every class with its hit die and saving throws",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CLASS\tHIT DIE\tSAVES\tSPELLCASTING\t")
		for _, c := range dnd5e.Classes() {
			fmt.Fprintf(tw, "%s\td%d\t%s\t%s\t\n", c.Name, c.HitDie, formatSaves(c.SavingThrows[:]), formatCasting(c.SpellcastingAbility))
		}
		return tw.Flush()
	},
}

var classesShowCmd = &cobra.Command{
	Use:   "show CLASS",
	Short: "Show a class and its subclasses",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := dnd5e.ClassInfo(args[0])
		if err != nil {
			return err
		}

		cmd.Printf("%s\n", c.Name)
		cmd.Printf("  Hit die: d%d\n", c.HitDie)
		primary := make([]string, len(c.PrimaryAbilities))
		for i, a := range c.PrimaryAbilities {
			primary[i] = a.DisplayName()
		}
		cmd.Printf("  Primary abilities: %s\n", strings.Join(primary, ", "))
		cmd.Printf("  Saving throws: %s\n", formatSaves(c.SavingThrows[:]))
		cmd.Printf("  Spellcasting: %s\n", formatCasting(c.SpellcastingAbility))
		if len(c.Subclasses) > 0 {
			cmd.Println("  Subclasses:")
			for _, sc := range c.Subclasses {
				cmd.Printf("    • %s: %s\n", sc.Name, sc.Description)
			}
		}
		return nil
	},
}

var classesSRDCmd = &cobra.Command{
	Use:   "srd CLASS",
	Short: "Compare a catalog class with the SRD reference API",
	Args:  exactArgs(1),
	RunE:  runClassesSRD,
}

func init() {
	classesSRDCmd.Flags().IntVar(&srdLevel, "level", 0, "also show the SRD spell slot table at this level")
	classesCmd.AddCommand(classesListCmd, classesShowCmd, classesSRDCmd)
}

func runClassesSRD(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := newSRD(settings)
	if err != nil {
		return err
	}

	remote, err := client.GetClass(ctx, args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s (SRD key %s)\n", remote.Name, remote.Key)
	local, err := dnd5e.ClassInfo(args[0])
	switch {
	case errors.IsNotFound(err):
		cmd.Printf("  Hit die: d%d\n", remote.HitDie)
		cmd.Printf("  Saving throws: %s\n", formatSaves(remote.SavingThrows))
		cmd.Println("  Not in the local catalog.")
	case err != nil:
		return err
	default:
		compare(cmd, "Hit die", fmt.Sprintf("d%d", local.HitDie), fmt.Sprintf("d%d", remote.HitDie))
		compare(cmd, "Saving throws", formatSaves(local.SavingThrows[:]), formatSaves(remote.SavingThrows))
	}

	if srdLevel == 0 {
		return nil
	}
	table, err := client.GetSpellSlots(ctx, args[0], srdLevel)
	if err != nil {
		return err
	}
	cmd.Printf("Spell slots at level %d:", srdLevel)
	shown := false
	for i, total := range table.Totals {
		if total > 0 {
			cmd.Printf(" %s=%d", dnd5e.SpellSlotLevel(i+1), total)
			shown = true
		}
	}
	if !shown {
		cmd.Print(" none")
	}
	cmd.Println()
	return nil
}

func compare(cmd *cobra.Command, label, local, remote string) {
	if local == remote {
		cmd.Printf("  %s: %s (matches)\n", label, local)
		return
	}
	cmd.Printf("  %s: catalog %s, SRD %s\n", label, local, remote)
}

func formatSaves(saves []dnd5e.Ability) string {
	names := make([]string, 0, len(saves))
	for _, a := range saves {
		names = append(names, a.Short())
	}
	return strings.Join(names, ", ")
}

func formatCasting(a dnd5e.Ability) string {
	if a == "" {
		return "none"
	}
	return a.DisplayName()
}
