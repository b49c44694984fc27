package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	t.Run("produces a parseable UUID", func(t *testing.T) {
		id := g.Generate()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := g.Generate()
			assert.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	})
}
