package policy

import (
	"testing"

	"github.com/samuelfneumann/godp/dp"
	"github.com/samuelfneumann/godp/environment"
	"github.com/samuelfneumann/godp/environment/chain"
	"github.com/samuelfneumann/godp/environment/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateValueGreedyTieBreak(t *testing.T) {
	values := dp.NewStateValues([]float64{1, 1, 0})

	tests := []struct {
		order []string
		want  string
	}{
		{[]string{chain.Left, chain.Right}, chain.Left},
		{[]string{chain.Right, chain.Left}, chain.Right},
	}

	for _, test := range tests {
		c, err := chain.New(3, 0, 2, 1.0, test.order...)
		require.NoError(t, err)

		// Both actions in state 0 have value 1
		p := NewStateValueGreedy(c, values)
		actionValues, err := p.ActionValues(0)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1}, actionValues.RawVector().Data)

		action, err := p.SelectAction(0)
		require.NoError(t, err)
		assert.Equal(t, test.want, action, "order %v", test.order)
	}
}

func TestStateValueGreedyIgnoresDiscount(t *testing.T) {
	c, err := chain.New(3, 0, 2, 1.0, chain.Left, chain.Right)
	require.NoError(t, err)

	// r + V(s') for the middle cell: left = 0 + 0.5, right = 1 + 0
	p := NewStateValueGreedy(c, dp.NewStateValues([]float64{0.5, 0, 0}))
	action, err := p.SelectAction(1)
	require.NoError(t, err)
	assert.Equal(t, chain.Right, action)
}

func TestStateValueGreedyErrors(t *testing.T) {
	c, err := chain.New(3, 0, 2, 1.0)
	require.NoError(t, err)

	p := NewStateValueGreedy(c, dp.NewStateValues([]float64{0, 0, 0}))
	_, err = p.SelectAction(7)
	assert.ErrorIs(t, err, environment.ErrInvalidState)

	// A table too short for the environment
	p = NewStateValueGreedy(c, dp.NewStateValues([]float64{0}))
	_, err = p.SelectAction(0)
	assert.ErrorIs(t, err, environment.ErrInvalidState)
}

func TestActionValueGreedy(t *testing.T) {
	c, err := chain.New(3, 0, 2, 1.0, chain.Left, chain.Right)
	require.NoError(t, err)

	q := dp.NewActionValues([][]float64{
		{1, 1},
		{0, 2},
		{0, 0},
	})
	p := NewActionValueGreedy(c, q)

	tests := map[int]string{0: chain.Left, 1: chain.Right, 2: chain.Left}
	for state, want := range tests {
		action, err := p.SelectAction(state)
		require.NoError(t, err)
		assert.Equal(t, want, action, "state %d", state)
	}

	_, err = p.SelectAction(3)
	assert.ErrorIs(t, err, environment.ErrInvalidState)

	p = NewActionValueGreedy(c, dp.NewActionValues([][]float64{{1}}))
	_, err = p.SelectAction(0)
	assert.Error(t, err)
}

func TestActionsOnGridWorld(t *testing.T) {
	g, err := gridworld.New([]string{
		"S..",
		".#.",
		"..G",
	}, gridworld.DefaultRewards(), 0)
	require.NoError(t, err)
	g.SetColour(false)

	v, err := dp.ValueIteration(g, dp.DefaultConfig())
	require.NoError(t, err)
	q, err := dp.QValueIteration(g, dp.DefaultConfig())
	require.NoError(t, err)

	fromV, err := Actions(NewStateValueGreedy(g, v), g)
	require.NoError(t, err)
	fromQ, err := Actions(NewActionValueGreedy(g, q), g)
	require.NoError(t, err)

	// Both tables share the fixed point and the tie-breaking rule
	assert.Equal(t, fromV, fromQ)
	assert.Equal(t, "v>v\nv#v\n>>G\n", g.FormatPolicy(fromV))
}
