package tasbih

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noorhq/noor-server/internal/model"
)

func TestAdvanceCompletesCycleExactlyOnce(t *testing.T) {
	d, ok := model.DhikrByID(6) // target 10
	require.True(t, ok)

	s := model.TasbihState{DhikrID: d.ID}
	var completions int
	for i := 0; i < 25; i++ {
		var done bool
		s, done = Advance(s, d)
		if done {
			completions++
		}
	}

	assert.Equal(t, 2, completions)
	assert.Equal(t, 2, s.Laps)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 25, s.Total)
}

func TestAdvanceBoundaryNeverDoubleCounts(t *testing.T) {
	d, _ := model.DhikrByID(1) // target 33

	s := model.TasbihState{DhikrID: d.ID, Count: 32, Total: 32}
	s, done := Advance(s, d)
	require.True(t, done)
	assert.Equal(t, 1, s.Laps)
	assert.Equal(t, 0, s.Count)

	// The immediately following tap starts the next cycle.
	s, done = Advance(s, d)
	assert.False(t, done)
	assert.Equal(t, 1, s.Laps)
	assert.Equal(t, 1, s.Count)
}

func TestFreeModeNeverCompletes(t *testing.T) {
	d, _ := model.DhikrByID(99) // target 0

	s := model.TasbihState{DhikrID: d.ID}
	for i := 0; i < 500; i++ {
		var done bool
		s, done = Advance(s, d)
		assert.False(t, done)
	}
	assert.Equal(t, 500, s.Count)
	assert.Equal(t, 0, s.Laps)
}

func TestResetKeepsLifetimeTotal(t *testing.T) {
	s := model.TasbihState{Count: 12, Total: 250, Laps: 4}
	s = Reset(s)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 0, s.Laps)
	assert.Equal(t, 250, s.Total)
}

func TestSelectSwitchesDhikrAndResets(t *testing.T) {
	d, _ := model.DhikrByID(4)
	s := model.TasbihState{DhikrID: 1, Count: 20, Total: 99, Laps: 2}
	s = Select(s, d)
	assert.Equal(t, 4, s.DhikrID)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 0, s.Laps)
	assert.Equal(t, 99, s.Total)
}
