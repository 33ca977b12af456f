package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/services/character"
)

var hpCmd = &cobra.Command{
	Use:   "hp",
	Short: "Track hit points",
}

// hpAction applies one amount-taking hit point change
type hpAction func(ctx context.Context, svc character.Service, name string, amount int) (dnd5e.HitPointState, error)

func init() {
	actions := []struct {
		use   string
		short string
		run   hpAction
	}{
		{"damage NAME AMOUNT", "Apply damage, temporary hit points first", func(ctx context.Context, svc character.Service, name string, amount int) (dnd5e.HitPointState, error) {
			out, err := svc.Damage(ctx, &character.DamageInput{Name: name, Amount: amount})
			if err != nil {
				return dnd5e.HitPointState{}, err
			}
			return out.HitPoints, nil
		}},
		{"heal NAME AMOUNT", "Heal up to maximum hit points", func(ctx context.Context, svc character.Service, name string, amount int) (dnd5e.HitPointState, error) {
			out, err := svc.Heal(ctx, &character.HealInput{Name: name, Amount: amount})
			if err != nil {
				return dnd5e.HitPointState{}, err
			}
			return out.HitPoints, nil
		}},
		{"temp NAME AMOUNT", "Grant temporary hit points (the higher value wins)", func(ctx context.Context, svc character.Service, name string, amount int) (dnd5e.HitPointState, error) {
			out, err := svc.GrantTemporaryHitPoints(ctx, &character.HitPointAmountInput{Name: name, Amount: amount})
			if err != nil {
				return dnd5e.HitPointState{}, err
			}
			return out.HitPoints, nil
		}},
		{"set NAME AMOUNT", "Set current hit points", func(ctx context.Context, svc character.Service, name string, amount int) (dnd5e.HitPointState, error) {
			out, err := svc.SetCurrentHitPoints(ctx, &character.HitPointAmountInput{Name: name, Amount: amount})
			if err != nil {
				return dnd5e.HitPointState{}, err
			}
			return out.HitPoints, nil
		}},
		{"max NAME AMOUNT", "Change maximum hit points", func(ctx context.Context, svc character.Service, name string, amount int) (dnd5e.HitPointState, error) {
			out, err := svc.ChangeMaximumHitPoints(ctx, &character.HitPointAmountInput{Name: name, Amount: amount})
			if err != nil {
				return dnd5e.HitPointState{}, err
			}
			return out.HitPoints, nil
		}},
	}

	for _, action := range actions {
		run := action.run
		hpCmd.AddCommand(&cobra.Command{
			Use:   action.use,
			Short: action.short,
			Args:  exactArgs(2),
			RunE: withStore(true, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
				amount, err := parseAmount("amount", args[1])
				if err != nil {
					return err
				}
				hp, err := run(ctx, a.characters, args[0], amount)
				if err != nil {
					return err
				}
				printHitPoints(cmd, args[0], hp)
				return nil
			}),
		})
	}

	hpCmd.AddCommand(&cobra.Command{
		Use:   "clear-temp NAME",
		Short: "Remove temporary hit points",
		Args:  exactArgs(1),
		RunE: withStore(true, func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			out, err := a.characters.ClearTemporaryHitPoints(ctx, &character.CharacterNameInput{Name: args[0]})
			if err != nil {
				return err
			}
			printHitPoints(cmd, args[0], out.HitPoints)
			return nil
		}),
	})
}

func printHitPoints(cmd *cobra.Command, name string, hp dnd5e.HitPointState) {
	cmd.Printf("%s: %d/%d HP", name, hp.Current, hp.Maximum)
	if hp.Temporary > 0 {
		cmd.Printf(" (+%d temp)", hp.Temporary)
	}
	cmd.Println()
	if hp.IsUnconscious() {
		cmd.Println("⚠️  Unconscious!")
	}
}

func parseAmount(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidArgumentf("%s must be a whole number, got %q", field, s)
	}
	return n, nil
}
