package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/handlers/prompt"
	"github.com/KirkDiggler/character-maker/internal/services/character"
	"github.com/KirkDiggler/character-maker/internal/storage"
)

var (
	showJSON  bool
	deleteYes bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	Args:  exactArgs(0),
	RunE:  withStore(false, runList),
}

var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a character sheet",
	Args:  exactArgs(1),
	RunE:  withStore(false, runShow),
}

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a character",
	Args:  exactArgs(1),
	RunE:  withStore(true, runDelete),
}

var renameCmd = &cobra.Command{
	Use:   "rename OLD NEW",
	Short: "Rename a character",
	Args:  exactArgs(2),
	RunE:  withStore(true, runRename),
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the stored record as JSON")
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "delete without asking")
}

func runList(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
	out, err := a.characters.ListCharacters(ctx, &character.ListCharactersInput{})
	if err != nil {
		return err
	}
	if len(out.Characters) == 0 {
		cmd.Println("No characters found.")
		return nil
	}
	for _, c := range out.Characters {
		cmd.Printf("• %s - %s %s\n", c.Name, c.Race, c.ClassLevel)
	}
	return nil
}

func runShow(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
	if showJSON {
		out, err := a.characters.GetCharacter(ctx, &character.GetCharacterInput{Name: args[0]})
		if err != nil {
			return err
		}
		data, err := storage.EncodeCharacter(out.Character)
		if err != nil {
			return err
		}
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, data, "", "  "); err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "failed to format record")
		}
		cmd.Println(pretty.String())
		return nil
	}

	out, err := a.characters.GetSheet(ctx, &character.GetSheetInput{Name: args[0]})
	if err != nil {
		return err
	}
	prompt.RenderSheet(cmd.OutOrStdout(), out.Sheet)
	return nil
}

func runDelete(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
	name := args[0]
	if !deleteYes {
		cmd.Printf("Delete '%s'? (y/N): ", name)
		var answer string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
		if !strings.HasPrefix(strings.ToLower(answer), "y") {
			cmd.Println("Deletion cancelled.")
			return nil
		}
	}

	out, err := a.characters.DeleteCharacter(ctx, &character.DeleteCharacterInput{Name: name})
	if err != nil {
		return err
	}
	cmd.Printf("Character '%s' deleted.\n", out.Character.Name)
	return nil
}

func runRename(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
	out, err := a.characters.RenameCharacter(ctx, &character.RenameCharacterInput{OldName: args[0], NewName: args[1]})
	if err != nil {
		return err
	}
	cmd.Printf("Renamed '%s' to '%s'.\n", args[0], out.Character.Name)
	return nil
}
