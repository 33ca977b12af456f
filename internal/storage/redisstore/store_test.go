package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	redisclient "github.com/KirkDiggler/character-maker/internal/redis"
	"github.com/KirkDiggler/character-maker/internal/storage/redisstore"
	"github.com/KirkDiggler/character-maker/internal/testutils"
)

const testKey = "test:characters"

func TestNew(t *testing.T) {
	_, err := redisstore.New(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redisstore.New(&redisstore.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}

type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	client  redisclient.Client
	mr      *miniredis.Miniredis
	cleanup func()
	store   *redisstore.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisServer(s.T(), nil)

	var err error
	s.store, err = redisstore.New(&redisstore.Config{Client: s.client, Key: testKey})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *StoreTestSuite) TestEmptyHash() {
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

	keys, err := s.mr.HKeys(testKey)
	s.Require().NoError(err)
	s.ElementsMatch([]string{fighter.Name, wizard.Name}, keys)

	loaded, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(fighter, loaded[fighter.Name])
	s.Equal(wizard, loaded[wizard.Name])
}

func (s *StoreTestSuite) TestSaveDropsRemovedCharacters() {
	fighter := testutils.NewCharacterFixture()
	wizard := testutils.NewSpellcasterFixture()
	s.Require().NoError(s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{
		fighter.Name: fighter,
		wizard.Name:  wizard,
	}))

	s.Require().NoError(s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{wizard.Name: wizard}))

	loaded, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(loaded, 1)
	s.Contains(loaded, wizard.Name)

	s.Require().NoError(s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{}))
	s.False(s.mr.Exists(testKey))
}

func (s *StoreTestSuite) TestMalformedField() {
	s.mr.HSet(testKey, "Broken", "{nope")

	_, err := s.store.LoadAll(s.ctx)
	s.Error(err)
	s.True(errors.IsPersistence(err))
}

func (s *StoreTestSuite) TestRepeatedNameAcrossFields() {
	s.mr.HSet(testKey, "Aria", `{"name": "Aria", "class_level": "Bard 2"}`)
	s.mr.HSet(testKey, "Aria (copy)", `{"name": "Aria", "class_level": "Bard 3"}`)

	_, err := s.store.LoadAll(s.ctx)
	s.True(errors.IsPersistence(err), "got %v", err)

	report, err := s.store.Inspect(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Aria (copy)"}, report.Keys())

	s.Require().NoError(s.store.Remove(s.ctx, report.Keys()))

	loaded, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Contains(loaded, "Aria")
	s.Equal(2, loaded["Aria"].Level)
}

func (s *StoreTestSuite) TestServerErrors() {
	s.mr.SetError("ERR server unavailable")

	_, err := s.store.LoadAll(s.ctx)
	s.True(errors.IsPersistence(err))

	err = s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{"x": testutils.NewCharacterFixture()})
	s.True(errors.IsPersistence(err))
}

func (s *StoreTestSuite) TestInspectAndRemove() {
	fighter := testutils.NewCharacterFixture()
	s.Require().NoError(s.store.SaveAll(s.ctx, map[string]*dnd5e.Character{fighter.Name: fighter}))
	s.mr.HSet(testKey, "Broken", "{nope")
	s.mr.HSet(testKey, "Future", `{"schema_version": 99}`)

	report, err := s.store.Inspect(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, report.Checked)
	s.False(report.OK())
	s.Equal([]string{"Broken", "Future"}, report.Keys())

	s.Require().NoError(s.store.Remove(s.ctx, report.Keys()))

	loaded, err := s.store.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(loaded, 1)
	s.Equal(fighter, loaded[fighter.Name])
}

func TestRemoveWithRedisMock(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store, err := redisstore.New(&redisstore.Config{Client: db})
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), nil))

	mock.ExpectHDel(redisstore.DefaultKey, "Broken").SetErr(assert.AnError)
	err = store.Remove(context.Background(), []string{"Broken"})
	assert.True(t, errors.IsPersistence(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadAllWithRedisMock(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store, err := redisstore.New(&redisstore.Config{Client: db})
	assert.NoError(t, err)

	mock.ExpectHGetAll(redisstore.DefaultKey).SetErr(assert.AnError)
	_, err = store.LoadAll(context.Background())
	assert.True(t, errors.IsPersistence(err))

	mock.ExpectHGetAll(redisstore.DefaultKey).SetVal(map[string]string{
		"Grimm": `{"class_level": "Wizard 2", "intelligence": 15}`,
	})
	loaded, err := store.LoadAll(context.Background())
	assert.NoError(t, err)
	if assert.Contains(t, loaded, "Grimm") {
		assert.Equal(t, 2, loaded["Grimm"].Level)
		assert.Equal(t, 15, loaded["Grimm"].AbilityScores.Intelligence)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
