// Package mocks provides common mock expectations for tests
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	storagemock "github.com/KirkDiggler/character-maker/internal/storage/mock"
)

// ExpectLoad sets up a single LoadAll returning the given characters keyed by name
func ExpectLoad(mockBackend *storagemock.MockBackend, characters ...*dnd5e.Character) *gomock.Call {
	loaded := make(map[string]*dnd5e.Character, len(characters))
	for _, c := range characters {
		loaded[c.Name] = c
	}
	return mockBackend.EXPECT().LoadAll(gomock.Any()).Return(loaded, nil)
}

// ExpectLoadError sets up a single LoadAll failing with err
func ExpectLoadError(mockBackend *storagemock.MockBackend, err error) *gomock.Call {
	return mockBackend.EXPECT().LoadAll(gomock.Any()).Return(nil, err)
}

// SaveRecorder captures every snapshot handed to SaveAll
type SaveRecorder struct {
	Calls int
	Last  map[string]*dnd5e.Character
}

// Get returns the last saved character with name, or nil
func (r *SaveRecorder) Get(name string) *dnd5e.Character {
	if r.Last == nil {
		return nil
	}
	return r.Last[name]
}

// Reset forgets every recorded save
func (r *SaveRecorder) Reset() {
	r.Calls = 0
	r.Last = nil
}

// ExpectSaves accepts any number of SaveAll calls and records them
func ExpectSaves(mockBackend *storagemock.MockBackend) *SaveRecorder {
	rec := &SaveRecorder{}
	mockBackend.EXPECT().SaveAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, characters map[string]*dnd5e.Character) error {
			rec.Calls++
			rec.Last = characters
			return nil
		}).
		AnyTimes()
	return rec
}

// ExpectSaveError sets up a single SaveAll failing with err
func ExpectSaveError(mockBackend *storagemock.MockBackend, err error) *gomock.Call {
	return mockBackend.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(err)
}
