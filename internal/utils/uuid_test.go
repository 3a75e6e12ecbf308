package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, g.Generate())
}

func TestRandomHex(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]+$`)

	short := RandomHex(6)
	assert.Len(t, short, 6)
	assert.Regexp(t, hexRe, short)

	assert.Len(t, RandomHex(100), 32)
	assert.Empty(t, RandomHex(0))
}
