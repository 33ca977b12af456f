// Package main is the entry point for the charmaker command line
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-maker/internal/config"
	"github.com/KirkDiggler/character-maker/internal/errors"
)

var (
	storeFlag    string
	dataFileFlag string
	logLevelFlag string

	// settings is filled in before any command runs
	settings *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "charmaker",
	Short: "D&D 5e character maker",
	Long: `charmaker creates, edits and maintains D&D 5e character records and their
inventories. Run "charmaker session" for the interactive menus.

Environment: ` + strings.Join(config.Environ(), ", "),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		printError(err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "storage backend: json, redis or bolt")
	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "data-file", "", "character file for the json and bolt backends")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")

	// cmd.Print* writes to stderr unless an output is set
	rootCmd.SetOut(os.Stdout)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, err.Error())
	})

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(listCmd, showCmd, deleteCmd, renameCmd)
	rootCmd.AddCommand(hpCmd, slotsCmd, inventoryCmd)
	rootCmd.AddCommand(classesCmd, rollCmd, checkCmd)
}

// setup loads configuration, applies flag overrides and installs the logger
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = config.Store(strings.ToLower(storeFlag))
	}
	if flags.Changed("data-file") {
		if cfg.Store == config.StoreBolt {
			cfg.BoltPath = dataFileFlag
		} else {
			cfg.DataFile = dataFileFlag
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	settings = cfg
	slog.Debug("configuration loaded", "store", cfg.Store, "data", cfg.DataPath(), "autosave", cfg.AutoSave)
	return nil
}

// printError writes the user-facing message and any per-field problems
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))

	fields := errors.ValidationFields(err)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", name, strings.Join(fields[name], "; "))
	}
}

// exactArgs reports a wrong argument count as an invalid argument
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errors.InvalidArgumentf("%s (usage: %s)", err.Error(), cmd.UseLine())
		}
		return nil
	}
}
