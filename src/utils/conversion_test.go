package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToNearest(t *testing.T) {
	t.Run("rounds down below the midpoint", func(t *testing.T) {
		assert.Equal(t, 12300.0, RoundToNearest(12345, 100))
	})

	t.Run("rounds the midpoint away from zero", func(t *testing.T) {
		assert.Equal(t, 12400.0, RoundToNearest(12350, 100))
	})

	t.Run("rounds up above the midpoint", func(t *testing.T) {
		assert.Equal(t, 12400.0, RoundToNearest(12351, 100))
	})

	t.Run("exact multiples are unchanged", func(t *testing.T) {
		assert.Equal(t, 20000.0, RoundToNearest(20000, 100))
	})
}
