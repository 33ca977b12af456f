package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/pkg/clock"
	character "github.com/KirkDiggler/character-maker/internal/repositories/character"
	storagemock "github.com/KirkDiggler/character-maker/internal/storage/mock"
	"github.com/KirkDiggler/character-maker/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBackend *storagemock.MockBackend
	clock       *clock.Fixed
	repo        character.Repository
	ctx         context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBackend = storagemock.NewMockBackend(s.ctrl)
	s.clock = clock.NewFixed(time.Unix(1800000000, 0))
	s.ctx = context.Background()

	repo, err := character.New(&character.Config{Backend: s.mockBackend, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *StoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StoreTestSuite) seed(characters ...*dnd5e.Character) {
	loaded := make(map[string]*dnd5e.Character, len(characters))
	for _, c := range characters {
		loaded[c.Name] = c
	}
	s.mockBackend.EXPECT().LoadAll(s.ctx).Return(loaded, nil)
	s.Require().NoError(s.repo.Load(s.ctx))
}

func (s *StoreTestSuite) TestNewValidatesConfig() {
	_, err := character.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.New(&character.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestLoadFailureResetsToEmpty() {
	s.seed(testutils.NewCharacterFixture())

	s.mockBackend.EXPECT().LoadAll(s.ctx).Return(nil, errors.Persistence("malformed character document"))
	err := s.repo.Load(s.ctx)
	s.Error(err)
	s.True(errors.IsPersistence(err))

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *StoreTestSuite) TestSaveWritesSnapshot() {
	fighter := testutils.NewCharacterFixture()
	s.seed(fighter)

	s.mockBackend.EXPECT().
		SaveAll(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, characters map[string]*dnd5e.Character) error {
			s.Len(characters, 1)
			s.Equal(fighter.Name, characters[fighter.Name].Name)
			return nil
		})

	s.NoError(s.repo.Save(s.ctx))
}

func (s *StoreTestSuite) TestSaveFailureKeepsMemory() {
	s.seed(testutils.NewCharacterFixture())

	s.mockBackend.EXPECT().SaveAll(s.ctx, gomock.Any()).Return(errors.Persistence("disk full"))
	err := s.repo.Save(s.ctx)
	s.True(errors.IsPersistence(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{Name: testutils.TestCharacterName})
	s.NoError(err)
}

func (s *StoreTestSuite) TestCreate() {
	s.Run("stamps and activates", func() {
		draft := testutils.NewCharacterFixture()
		draft.CreatedAt = 0
		draft.Status = dnd5e.CharacterStatusDraft

		out, err := s.repo.Create(s.ctx, character.CreateInput{Character: draft})
		s.Require().NoError(err)
		s.Equal(int64(1800000000), out.Character.CreatedAt)
		s.Equal(int64(1800000000), out.Character.UpdatedAt)
		s.Equal(dnd5e.CharacterStatusActive, out.Character.Status)
	})

	s.Run("duplicate name", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: testutils.NewCharacterFixture()})
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("blank name", func() {
		c := testutils.NewCharacterFixture()
		c.Name = "  "
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil character", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *StoreTestSuite) TestGetReturnsCopies() {
	s.seed(testutils.NewCharacterFixture())

	out, err := s.repo.Get(s.ctx, character.GetInput{Name: testutils.TestCharacterName})
	s.Require().NoError(err)
	out.Character.HitPoints.Current = 0
	out.Character.Languages[0] = "Orcish"

	again, err := s.repo.Get(s.ctx, character.GetInput{Name: testutils.TestCharacterName})
	s.Require().NoError(err)
	s.Equal(12, again.Character.HitPoints.Current)
	s.Equal("Common", again.Character.Languages[0])

	_, err = s.repo.Get(s.ctx, character.GetInput{Name: "thorin oakenshield"})
	s.True(errors.IsNotFound(err))
	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestUpdate() {
	s.seed(testutils.NewCharacterFixture())

	c := testutils.NewCharacterFixture()
	c.HitPoints.Current = 3
	out, err := s.repo.Update(s.ctx, character.UpdateInput{Character: c})
	s.Require().NoError(err)
	s.Equal(3, out.Character.HitPoints.Current)
	s.Equal(int64(1800000000), out.Character.UpdatedAt)

	missing := testutils.NewSpellcasterFixture()
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: missing})
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestRename() {
	s.seed(testutils.NewCharacterFixture(), testutils.NewSpellcasterFixture())

	s.Run("re-keys the record", func() {
		out, err := s.repo.Rename(s.ctx, character.RenameInput{OldName: testutils.TestCharacterName, NewName: "Thorin II"})
		s.Require().NoError(err)
		s.Equal("Thorin II", out.Character.Name)

		_, err = s.repo.Get(s.ctx, character.GetInput{Name: testutils.TestCharacterName})
		s.True(errors.IsNotFound(err))
		got, err := s.repo.Get(s.ctx, character.GetInput{Name: "Thorin II"})
		s.Require().NoError(err)
		s.Equal("Thorin II", got.Character.Name)
	})

	s.Run("taken name leaves both untouched", func() {
		_, err := s.repo.Rename(s.ctx, character.RenameInput{OldName: "Thorin II", NewName: testutils.TestSpellcasterName})
		s.True(errors.IsAlreadyExists(err))

		list, err := s.repo.List(s.ctx, character.ListInput{})
		s.Require().NoError(err)
		s.Len(list.Characters, 2)
	})

	s.Run("unknown old name", func() {
		_, err := s.repo.Rename(s.ctx, character.RenameInput{OldName: "Nobody", NewName: "Somebody"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("blank new name", func() {
		_, err := s.repo.Rename(s.ctx, character.RenameInput{OldName: "Thorin II", NewName: " "})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("same name is a no-op", func() {
		out, err := s.repo.Rename(s.ctx, character.RenameInput{OldName: "Thorin II", NewName: "Thorin II"})
		s.Require().NoError(err)
		s.Equal("Thorin II", out.Character.Name)
	})
}

func (s *StoreTestSuite) TestDelete() {
	s.seed(testutils.NewCharacterFixture())

	out, err := s.repo.Delete(s.ctx, character.DeleteInput{Name: testutils.TestCharacterName})
	s.Require().NoError(err)
	s.Equal(dnd5e.CharacterStatusDeleted, out.Character.Status)

	_, err = s.repo.Get(s.ctx, character.GetInput{Name: testutils.TestCharacterName})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{Name: testutils.TestCharacterName})
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestListSortedByName() {
	zed := testutils.NewCharacterFixture()
	zed.Name = "Zed"
	s.seed(zed, testutils.NewSpellcasterFixture(), testutils.NewCharacterFixture())

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 3)
	s.Equal(testutils.TestSpellcasterName, out.Characters[0].Name)
	s.Equal(testutils.TestCharacterName, out.Characters[1].Name)
	s.Equal("Zed", out.Characters[2].Name)
}
