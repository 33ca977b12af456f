package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/storage/jsonfile"
	"github.com/KirkDiggler/character-maker/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	dir   string
	path  string
	store *jsonfile.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "characters.json")
	s.store = jsonfile.New(&jsonfile.Config{Path: s.path})
}

func (s *StoreTestSuite) TestDefaultPath() {
	s.Equal(jsonfile.DefaultPath, jsonfile.New(nil).Path())
	s.Equal(s.path, s.store.Path())
}

func (s *StoreTestSuite) TestMissingFileIsEmpty() {
	characters, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(characters)
}

func (s *StoreTestSuite) TestSaveThenLoad() {
	fighter := testutils.NewCharacterFixture()
	wizard := testutils.NewSpellcasterFixture()

	err := s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{
		fighter.Name: fighter,
		wizard.Name:  wizard,
	})
	s.Require().NoError(err)

	loaded, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(fighter, loaded[fighter.Name])
	s.Equal(wizard, loaded[wizard.Name])

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Len(entries, 1, "temporary files are cleaned up")
}

func (s *StoreTestSuite) TestSaveReplacesDocument() {
	fighter := testutils.NewCharacterFixture()
	s.Require().NoError(s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{fighter.Name: fighter}))
	s.Require().NoError(s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{}))

	loaded, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded)
}

func (s *StoreTestSuite) TestMalformedFile() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o600))

	_, err := s.store.LoadAll(s.ctx)
	s.Error(err)
	s.True(errors.IsPersistence(err))
}

func (s *StoreTestSuite) TestInspectAndRemove() {
	report, err := s.store.Inspect(s.ctx)
	s.Require().NoError(err)
	s.True(report.OK())

	fighter := testutils.NewCharacterFixture()
	s.Require().NoError(s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{fighter.Name: fighter}))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	var doc map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &doc))
	doc["Broken"] = json.RawMessage(`{"strength": "high"}`)
	data, err = json.Marshal(doc)
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(s.path, data, 0o600))

	_, err = s.store.LoadAll(s.ctx)
	s.True(errors.IsPersistence(err))

	report, err = s.store.Inspect(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, report.Checked)
	s.Equal([]string{"Broken"}, report.Keys())

	s.Require().NoError(s.store.Remove(s.ctx, report.Keys()))

	loaded, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(fighter, loaded[fighter.Name])
}

func (s *StoreTestSuite) TestRepeatedNameInDocument() {
	s.Require().NoError(os.WriteFile(s.path, []byte(`{
  "Aria": {"name": "Aria", "class_level": "Bard 2"},
  "Aria (copy)": {"name": "Aria", "class_level": "Bard 3"}
}`), 0o600))

	_, err := s.store.LoadAll(s.ctx)
	s.True(errors.IsPersistence(err), "got %v", err)

	report, err := s.store.Inspect(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Aria (copy)"}, report.Keys())
}

func (s *StoreTestSuite) TestInspectMalformedDocument() {
	s.Require().NoError(os.WriteFile(s.path, []byte("[1, 2]"), 0o600))

	_, err := s.store.Inspect(s.ctx)
	s.True(errors.IsPersistence(err))
}

func (s *StoreTestSuite) TestUnwritableLocation() {
	store := jsonfile.New(&jsonfile.Config{Path: filepath.Join(s.dir, "missing", "characters.json")})

	err := store.SaveAll(s.ctx, map[string]*dnd5e.Character{})
	s.Error(err)
	s.True(errors.IsPersistence(err))
}

func (s *StoreTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.store.LoadAll(ctx)
	s.True(errors.IsCanceled(err))
	s.True(errors.IsCanceled(s.store.SaveAll(ctx, nil)))
}
