package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/storage"
)

var (
	checkFix bool
	checkYes bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Find stored character records that no longer load",
	Long: `Decode every stored record on its own and list the ones that fail.
A single bad record stops every other command from loading the store;
--fix removes the bad records and keeps the rest.`,
	Args: exactArgs(0),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkFix, "fix", false, "remove records that fail to decode")
	checkCmd.Flags().BoolVar(&checkYes, "yes", false, "remove without asking")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a := &app{cfg: settings}
	defer a.close()

	backend, err := a.openBackend()
	if err != nil {
		return err
	}
	inspector, ok := backend.(storage.Inspector)
	if !ok {
		return errors.Newf(errors.CodeUnimplemented, "the %s store cannot be checked", settings.Store)
	}

	report, err := inspector.Inspect(ctx)
	if err != nil {
		return err
	}

	cmd.Printf("Checked %d records, found %d that do not load.\n", report.Checked, len(report.Problems))
	if report.OK() {
		return nil
	}
	for _, p := range report.Problems {
		cmd.Printf("  ✗ %s: %s\n", p.Key, describeProblem(p.Err))
	}

	if !checkFix {
		return errors.Persistencef("%d unreadable records (run with --fix to remove them)", len(report.Problems))
	}
	if !checkYes {
		cmd.Print("Remove these records? (yes/no): ")
		var answer string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
		if strings.ToLower(answer) != "yes" {
			cmd.Println("Aborted, no changes made.")
			return nil
		}
	}

	keys := report.Keys()
	if err := inspector.Remove(ctx, keys); err != nil {
		return err
	}
	cmd.Printf("Removed %d records.\n", len(keys))
	return nil
}

// describeProblem adds the innermost cause, which names the bad field
func describeProblem(err error) string {
	root := err
	for next := stderrors.Unwrap(root); next != nil; next = stderrors.Unwrap(root) {
		root = next
	}
	if root == err {
		return errors.GetMessage(err)
	}
	return fmt.Sprintf("%s (%v)", errors.GetMessage(err), root)
}
