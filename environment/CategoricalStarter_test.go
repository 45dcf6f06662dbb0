package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleStart(t *testing.T) {
	s := NewSingleStart(4)
	for i := 0; i < 5; i++ {
		assert.Equal(t, 4, s.Start())
	}
}

func TestCategoricalStarter(t *testing.T) {
	states := []int{2, 7, 11}
	s, err := NewCategoricalStarter(states, 1923)
	require.NoError(t, err)

	seen := make(map[int]int)
	for i := 0; i < 300; i++ {
		seen[s.Start()]++
	}

	assert.Len(t, seen, len(states))
	for _, state := range states {
		assert.Greater(t, seen[state], 0, "state %d never sampled", state)
	}
}

func TestCategoricalStarterDeterministic(t *testing.T) {
	a, err := NewCategoricalStarter([]int{0, 1, 2, 3}, 42)
	require.NoError(t, err)
	b, err := NewCategoricalStarter([]int{0, 1, 2, 3}, 42)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Start(), b.Start())
	}
}

func TestCategoricalStarterEmpty(t *testing.T) {
	_, err := NewCategoricalStarter(nil, 0)
	assert.Error(t, err)
}
