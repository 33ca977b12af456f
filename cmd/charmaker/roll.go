package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	diceorch "github.com/KirkDiggler/character-maker/internal/orchestrators/dice"
)

var (
	rollDescription string
	rollMethod      string
)

var rollCmd = &cobra.Command{
	Use:   "roll NOTATION",
	Short: "Roll dice, e.g. 2d6 or 1d20",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newDice()
		if err != nil {
			return err
		}
		out, err := svc.RollDice(cmd.Context(), &diceorch.RollDiceInput{Notation: args[0], Description: rollDescription})
		if err != nil {
			return err
		}
		printRoll(cmd, out.Roll, out.Roll.Notation)
		return nil
	},
}

var rollAbilitiesCmd = &cobra.Command{
	Use:   "abilities",
	Short: "Roll six ability scores",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newDice()
		if err != nil {
			return err
		}
		out, err := svc.RollAbilityScores(cmd.Context(), &diceorch.RollAbilityScoresInput{Method: rollMethod})
		if err != nil {
			return err
		}
		cmd.Printf("Method: %s\n", out.Method)
		for i, roll := range out.Rolls {
			label := roll.Notation
			if i < len(dnd5e.Abilities) {
				label = dnd5e.Abilities[i].DisplayName()
			}
			printRoll(cmd, roll, label)
		}
		return nil
	},
}

func init() {
	rollCmd.Flags().StringVar(&rollDescription, "description", "", "what the roll is for")
	rollAbilitiesCmd.Flags().StringVar(&rollMethod, "method", diceorch.MethodStandard,
		"rolling method: "+diceorch.MethodStandard+" or "+diceorch.MethodClassic)
	rollCmd.AddCommand(rollAbilitiesCmd)
}

func printRoll(cmd *cobra.Command, roll *diceorch.DiceRoll, label string) {
	cmd.Printf("%s: %d %v", label, roll.Total, roll.Dice)
	if len(roll.Dropped) > 0 {
		cmd.Printf(" dropped %v", roll.Dropped)
	}
	if roll.Description != "" {
		cmd.Printf(" (%s)", roll.Description)
	}
	cmd.Println()
}
