package storage

import (
	"context"
	"sort"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
)

// Problem is one stored record that does not decode
type Problem struct {
	Key string
	Err error
}

// Report lists the records a backend could not decode
type Report struct {
	Checked  int
	Problems []Problem

	names map[string]*dnd5e.Character
}

// Inspector is implemented by backends that can check records one at a time
// and drop the ones that fail, leaving the rest untouched
type Inspector interface {
	// Inspect decodes every stored record without loading the store.
	// Returns errors.Persistence when the store itself cannot be read
	Inspect(ctx context.Context) (*Report, error)

	// Remove deletes the records stored under keys
	Remove(ctx context.Context, keys []string) error
}

// Check decodes one record and notes it when it fails or repeats the name of
// a record checked earlier
func (r *Report) Check(key string, data []byte) {
	r.Checked++
	c, err := DecodeCharacter(key, data)
	if err == nil {
		if r.names == nil {
			r.names = make(map[string]*dnd5e.Character)
		}
		err = AddRecord(r.names, key, c)
	}
	if err != nil {
		r.Problems = append(r.Problems, Problem{Key: key, Err: err})
	}
}

// Keys returns the keys of every failing record, sorted
func (r *Report) Keys() []string {
	keys := make([]string, 0, len(r.Problems))
	for _, p := range r.Problems {
		keys = append(keys, p.Key)
	}
	sort.Strings(keys)
	return keys
}

// OK reports whether every record decoded
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}
