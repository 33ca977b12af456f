// Package prompt implements the interactive, line-based charmaker session.
//
// A Session owns the "current character" handle; every service call names
// the character explicitly. Reaching the end of input saves and exits.
package prompt

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/character-maker/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/orchestrators/dice"
	"github.com/KirkDiggler/character-maker/internal/services/character"
	"github.com/KirkDiggler/character-maker/internal/services/inventory"
)

// errExit ends the menu loop after an explicit "save and exit"
var errExit = stderrors.New("exit requested")

// Config holds the dependencies for a session
type Config struct {
	Input      io.Reader
	Output     io.Writer
	Characters character.Service
	Inventory  inventory.Service
	Dice       dice.Service
	// EventBus is optional; without it the session gets no unconscious,
	// deleted or renamed notifications
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Input == nil {
		vb.RequiredField("Input")
	}
	if c.Output == nil {
		vb.RequiredField("Output")
	}
	if c.Characters == nil {
		vb.RequiredField("Characters")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	return vb.Build()
}

// Session is one interactive run
type Session struct {
	in         *bufio.Scanner
	out        io.Writer
	characters character.Service
	inventory  inventory.Service
	dice       dice.Service
	bus        events.EventBus

	current       string
	subscriptions []string
}

// New creates a session
func New(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Session{
		in:         bufio.NewScanner(cfg.Input),
		out:        cfg.Output,
		characters: cfg.Characters,
		inventory:  cfg.Inventory,
		dice:       cfg.Dice,
		bus:        cfg.EventBus,
	}, nil
}

// Current returns the name of the current character, or ""
func (s *Session) Current() string {
	return s.current
}

// Run shows the main menu until the user saves and exits or input ends
func (s *Session) Run(ctx context.Context) error {
	s.subscribe()
	defer s.unsubscribe()

	err := s.mainMenu(ctx)
	switch {
	case stderrors.Is(err, errExit):
		s.println("Thank you for using D&D Character Maker!")
		return nil
	case stderrors.Is(err, io.EOF):
		s.println("\n\nExiting...")
		return s.save(ctx)
	default:
		return err
	}
}

func (s *Session) mainMenu(ctx context.Context) error {
	for {
		s.println("\n" + strings.Repeat("=", 50))
		s.println("D&D 5E CHARACTER MAKER")
		s.println(strings.Repeat("=", 50))
		s.println("1. Create New Character")
		s.println("2. Load Existing Character")
		s.println("3. List All Characters")
		s.println("4. Delete Character")
		if s.current != "" {
			s.println("5. Edit Current Character")
			s.println("6. Combat Reference")
			s.println("7. Inventory")
			s.printf("   Current: %s\n", s.current)
		}
		s.println("8. Save")
		s.println("0. Save and Exit")

		choice, err := s.ask("\nEnter your choice: ")
		if err != nil {
			return err
		}

		switch {
		case choice == "1":
			err = s.createCharacter(ctx)
		case choice == "2":
			err = s.loadCharacter(ctx)
		case choice == "3":
			err = s.listCharacters(ctx)
		case choice == "4":
			err = s.deleteCharacter(ctx)
		case choice == "5" && s.current != "":
			err = s.editMenu(ctx)
		case choice == "6" && s.current != "":
			err = s.combatReference(ctx)
		case choice == "7" && s.current != "":
			err = s.inventoryMenu(ctx)
		case choice == "8":
			if err = s.save(ctx); err == nil {
				s.println("Characters saved.")
			}
		case choice == "0":
			if err = s.save(ctx); err == nil {
				return errExit
			}
		default:
			s.println("Invalid choice. Please try again.")
		}

		if err := s.report(err); err != nil {
			return err
		}
	}
}

// report prints a service error and swallows it. End of input passes through.
func (s *Session) report(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, errExit) {
		return err
	}
	s.printf("Error: %s\n", errors.GetMessage(err))
	return nil
}

func (s *Session) save(ctx context.Context) error {
	out, err := s.characters.Save(ctx, &character.SaveInput{})
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "session saved", "characters", out.Count)
	return nil
}

// chooseCharacter lists the stored names and reads a 1-based selection.
// ok is false when nothing was chosen.
func (s *Session) chooseCharacter(ctx context.Context, title, prompt, empty string) (string, bool, error) {
	list, err := s.characters.ListCharacters(ctx, &character.ListCharactersInput{})
	if err != nil {
		return "", false, err
	}
	if len(list.Characters) == 0 {
		s.println(empty)
		return "", false, nil
	}

	s.printf("\n--- %s ---\n", title)
	for i, c := range list.Characters {
		s.printf("%d. %s\n", i+1, c.Name)
	}

	n, err := s.askInt(prompt)
	if err != nil {
		return "", false, err
	}
	if n < 1 || n > len(list.Characters) {
		s.println("Invalid selection.")
		return "", false, nil
	}
	return list.Characters[n-1].Name, true, nil
}

func (s *Session) loadCharacter(ctx context.Context) error {
	name, ok, err := s.chooseCharacter(ctx, "LOAD CHARACTER", "Select character number: ", "No characters available.")
	if err != nil || !ok {
		return err
	}
	s.current = name
	s.printf("Loaded character: %s\n", name)
	return nil
}

func (s *Session) listCharacters(ctx context.Context) error {
	list, err := s.characters.ListCharacters(ctx, &character.ListCharactersInput{})
	if err != nil {
		return err
	}
	if len(list.Characters) == 0 {
		s.println("No characters found.")
		return nil
	}

	s.println("\n--- ALL CHARACTERS ---")
	for _, c := range list.Characters {
		s.printf("• %s - %s %s\n", c.Name, c.Race, c.ClassLevel)
	}
	return nil
}

func (s *Session) deleteCharacter(ctx context.Context) error {
	name, ok, err := s.chooseCharacter(ctx, "DELETE CHARACTER", "Select character number to delete: ", "No characters to delete.")
	if err != nil || !ok {
		return err
	}

	confirm, err := s.askYesNo(fmt.Sprintf("Delete '%s'? (y/N): ", name))
	if err != nil {
		return err
	}
	if !confirm {
		s.println("Deletion cancelled.")
		return nil
	}

	if _, err := s.characters.DeleteCharacter(ctx, &character.DeleteCharacterInput{Name: name}); err != nil {
		return err
	}
	if name == s.current {
		s.current = ""
	}
	s.printf("Character '%s' deleted.\n", name)
	return nil
}

// subscribe keeps the current handle in step with deletes and renames and
// warns when a character drops to 0 hit points
func (s *Session) subscribe() {
	if s.bus == nil {
		return
	}

	s.subscriptions = append(s.subscriptions,
		s.bus.SubscribeFunc(rpgtoolkit.EventCharacterUnconscious, 50, func(_ context.Context, e events.Event) error {
			s.printf("⚠️  %s IS UNCONSCIOUS!\n", strings.ToUpper(rpgtoolkit.EventString(e, rpgtoolkit.KeyCharacterName)))
			return nil
		}),
		s.bus.SubscribeFunc(rpgtoolkit.EventCharacterDeleted, 50, func(_ context.Context, e events.Event) error {
			if rpgtoolkit.EventString(e, rpgtoolkit.KeyCharacterName) == s.current {
				s.current = ""
			}
			return nil
		}),
		s.bus.SubscribeFunc(rpgtoolkit.EventCharacterRenamed, 50, func(_ context.Context, e events.Event) error {
			if rpgtoolkit.EventString(e, rpgtoolkit.KeyOldName) == s.current {
				s.current = rpgtoolkit.EventString(e, rpgtoolkit.KeyNewName)
			}
			return nil
		}),
	)
}

func (s *Session) unsubscribe() {
	for _, id := range s.subscriptions {
		if err := s.bus.Unsubscribe(id); err != nil {
			slog.Warn("failed to unsubscribe", "id", id, "error", err)
		}
	}
	s.subscriptions = nil
}
