package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/handlers/prompt"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start the interactive character maker",
	Long: `Start the interactive menus: create, load, edit, combat reference and inventory.
End of input (Ctrl-D) saves and exits.`,
	Args: exactArgs(0),
	RunE: runSession,
}

func runSession(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(settings)
	if err != nil {
		return err
	}
	defer a.close()

	// an unreadable store starts the session empty, as the original tool did
	if err := a.load(ctx); err != nil {
		if !errors.IsPersistence(err) {
			return err
		}
		slog.WarnContext(ctx, "starting with an empty store", "error", err)
		cmd.PrintErrf("Warning: %s. Starting with no characters.\n", errors.GetMessage(err))
	}

	session, err := prompt.New(&prompt.Config{
		Input:      os.Stdin,
		Output:     os.Stdout,
		Characters: a.characters,
		Inventory:  a.inventory,
		Dice:       a.dice,
		EventBus:   a.bus,
	})
	if err != nil {
		return err
	}
	return session.Run(ctx)
}
