package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/storage"
	"github.com/KirkDiggler/character-maker/internal/testutils"
	"github.com/KirkDiggler/character-maker/internal/testutils/builders"
)

type CommandTestSuite struct {
	suite.Suite
	dataFile string
	out      *bytes.Buffer
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) SetupTest() {
	s.dataFile = filepath.Join(s.T().TempDir(), "characters.json")
	s.T().Setenv("CHARMAKER_STORE", "json")
	s.T().Setenv("CHARMAKER_DATA_FILE", s.dataFile)
	s.T().Setenv("CHARMAKER_LOG_LEVEL", "error")

	s.out = &bytes.Buffer{}
	rootCmd.SetOut(s.out)
	rootCmd.SetErr(s.out)
}

func (s *CommandTestSuite) TearDownTest() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.SetArgs(nil)
}

func (s *CommandTestSuite) write(characters ...*dnd5e.Character) {
	doc := make(map[string]*dnd5e.Character, len(characters))
	for _, c := range characters {
		doc[c.Name] = c
	}
	data, err := storage.EncodeDocument(doc)
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(s.dataFile, data, 0o600))
}

func (s *CommandTestSuite) read() map[string]*dnd5e.Character {
	data, err := os.ReadFile(s.dataFile)
	s.Require().NoError(err)
	doc, err := storage.DecodeDocument(data)
	s.Require().NoError(err)
	return doc
}

func (s *CommandTestSuite) execute(args ...string) error {
	s.out.Reset()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func (s *CommandTestSuite) TestListEmptyStore() {
	s.Require().NoError(s.execute("list"))
	s.Contains(s.out.String(), "No characters found.")
}

func (s *CommandTestSuite) TestListAndShow() {
	s.write(testutils.NewCharacterFixture(), testutils.NewSpellcasterFixture())

	s.Require().NoError(s.execute("list"))
	s.Contains(s.out.String(), "• "+testutils.TestSpellcasterName+" - High Elf Wizard 3")
	s.Contains(s.out.String(), "• "+testutils.TestCharacterName+" - Mountain Dwarf Fighter 1")

	s.Require().NoError(s.execute("show", testutils.TestSpellcasterName))
	s.Contains(s.out.String(), "CHARACTER SHEET: ELARA MOONWHISPER")
	s.Contains(s.out.String(), "SPELLCASTING")
}

func (s *CommandTestSuite) TestDamageIsSaved() {
	s.write(builders.NewCharacterBuilder().WithHitPoints(12, 12, 3).Build())

	s.Require().NoError(s.execute("hp", "damage", testutils.TestCharacterName, "5"))
	s.Contains(s.out.String(), "10/12 HP")

	hp := s.read()[testutils.TestCharacterName].HitPoints
	s.Equal(dnd5e.HitPointState{Maximum: 12, Current: 10}, hp)
}

func (s *CommandTestSuite) TestSpellSlotRefusalLeavesFileAlone() {
	s.write(builders.NewSpellcasterBuilder().WithSpellSlot(2, 2, 2).Build())

	err := s.execute("slots", "use", testutils.TestSpellcasterName, "2nd")
	s.True(errors.IsStateConflict(err))
	s.Equal(5, errors.GetCode(err).ExitCode())

	slot, getErr := s.read()[testutils.TestSpellcasterName].Spellcasting.Slots.Get(2)
	s.Require().NoError(getErr)
	s.Equal(2, slot.Expended)
}

func (s *CommandTestSuite) TestErrorCodes() {
	s.write(testutils.NewCharacterFixture())

	s.Run("unknown character", func() {
		err := s.execute("show", "Nobody")
		s.True(errors.IsNotFound(err))
		s.Equal(3, errors.GetCode(err).ExitCode())
	})

	s.Run("wrong argument count", func() {
		err := s.execute("rename", "only-one")
		s.True(errors.IsInvalidArgument(err))
		s.Equal(2, errors.GetCode(err).ExitCode())
	})

	s.Run("rename onto an existing name", func() {
		s.write(testutils.NewCharacterFixture(), testutils.NewSpellcasterFixture())
		err := s.execute("rename", testutils.TestCharacterName, testutils.TestSpellcasterName)
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *CommandTestSuite) TestInventoryCommands() {
	s.write(testutils.NewCharacterFixture())

	s.Require().NoError(s.execute("inventory", "add", testutils.TestCharacterName, "Torch", "--weight", "1", "--qty", "5"))
	s.Contains(s.out.String(), "Added Torch (x5)")

	s.Require().NoError(s.execute("inventory", "summary", testutils.TestCharacterName))
	s.Contains(s.out.String(), "Total weight: 5 lb")

	items := s.read()[testutils.TestCharacterName].Inventory
	s.Require().Len(items, 1)
	s.Equal(5, items[0].Quantity)
}

func (s *CommandTestSuite) TestCheckRemovesUnreadableRecords() {
	s.write(testutils.NewCharacterFixture())
	data, err := os.ReadFile(s.dataFile)
	s.Require().NoError(err)
	var doc map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &doc))
	doc["Broken"] = json.RawMessage(`{"level": "three"}`)
	data, err = json.Marshal(doc)
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(s.dataFile, data, 0o600))

	err = s.execute("list")
	s.True(errors.IsPersistence(err))

	err = s.execute("check")
	s.True(errors.IsPersistence(err))
	s.Contains(s.out.String(), "Checked 2 records, found 1 that do not load.")
	s.Contains(s.out.String(), "✗ Broken")

	s.Require().NoError(s.execute("check", "--fix", "--yes"))
	s.Contains(s.out.String(), "Removed 1 records.")

	s.Require().NoError(s.execute("check"))
	s.Contains(s.out.String(), "Checked 1 records, found 0 that do not load.")
	s.Contains(s.read(), testutils.TestCharacterName)
}

func (s *CommandTestSuite) TestClassesList() {
	s.Require().NoError(s.execute("classes", "list"))
	s.Contains(s.out.String(), "Wizard")
	s.Contains(s.out.String(), "d12")
}

func (s *CommandTestSuite) TestInvalidStoreSetting() {
	s.T().Setenv("CHARMAKER_STORE", "floppy")

	err := s.execute("list")
	s.True(errors.IsInvalidArgument(err))
	s.Contains(errors.ValidationFields(err), "CHARMAKER_STORE")
}
