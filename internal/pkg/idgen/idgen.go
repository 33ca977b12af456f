// Package idgen provides the ids stamped on character records and dice rolls.
// New records get random ids; records saved before ids existed get one derived
// from their name, so every load of the same store agrees on it.
package idgen

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Id prefixes
const (
	PrefixCharacter = "char"
	PrefixRoll      = "roll"
)

var characterNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("charmaker/characters"))

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Sequential counts up from 1. Tests use it for predictable ids.
type Sequential struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a sequential generator
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate returns the next id
func (g *Sequential) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

// Random generates a version 4 UUID per call
type Random struct {
	prefix string
}

// NewUUID creates a random generator
func NewUUID(prefix string) *Random {
	return &Random{prefix: prefix}
}

// Generate returns a fresh id
func (g *Random) Generate() string {
	return join(g.prefix, uuid.NewString())
}

// ForCharacterName derives the id of a record that was saved without one
func ForCharacterName(name string) string {
	key := strings.TrimSpace(name)
	return join(PrefixCharacter, uuid.NewSHA1(characterNamespace, []byte(key)).String())
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
