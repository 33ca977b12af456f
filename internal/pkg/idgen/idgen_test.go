package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-maker/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential(idgen.PrefixCharacter)
	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	gen := idgen.NewUUID(idgen.PrefixRoll)
	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "roll_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "roll_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}

func TestForCharacterName(t *testing.T) {
	id := idgen.ForCharacterName("Grimm")
	require.True(t, strings.HasPrefix(id, "char_"))

	parsed, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())

	assert.Equal(t, id, idgen.ForCharacterName(" Grimm "))
	assert.NotEqual(t, id, idgen.ForCharacterName("Elara"))
}
