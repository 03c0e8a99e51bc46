package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllHasNinetyNineEntries(t *testing.T) {
	require.Len(t, All, 99)
	for i, n := range All {
		assert.Equal(t, i+1, n.ID)
		assert.NotEmpty(t, n.Arabic)
		assert.NotEmpty(t, n.Transliteration)
		assert.NotEmpty(t, n.Meaning)
	}
}

func TestByID(t *testing.T) {
	n, ok := ByID(2)
	require.True(t, ok)
	assert.Equal(t, "الرحمن", n.Arabic)

	_, ok = ByID(0)
	assert.False(t, ok)
	_, ok = ByID(100)
	assert.False(t, ok)
}
