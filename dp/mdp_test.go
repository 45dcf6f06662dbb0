package dp

import (
	"fmt"

	"github.com/samuelfneumann/godp/environment"
)

// tableMDP is an MDP defined by explicit transition and reward tables,
// indexed by [state][action]
type tableMDP struct {
	actions []string
	next    [][]int
	reward  [][]float64
	err     error
}

func (m *tableMDP) NumStates() int    { return len(m.next) }
func (m *tableMDP) NumActions() int   { return len(m.actions) }
func (m *tableMDP) Actions() []string { return m.actions }

func (m *tableMDP) States() []int {
	states := make([]int, len(m.next))
	for i := range states {
		states[i] = i
	}
	return states
}

func (m *tableMDP) Transition(state int, action string) (int, float64,
	error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	for i, a := range m.actions {
		if a == action {
			return m.next[state][i], m.reward[state][i], nil
		}
	}
	return 0, 0, fmt.Errorf("%q: %w", action, environment.ErrInvalidAction)
}

// selfLoop returns a single-state MDP with one action that loops back to
// the state with the given reward
func selfLoop(reward float64) *tableMDP {
	return &tableMDP{
		actions: []string{"stay"},
		next:    [][]int{{0}},
		reward:  [][]float64{{reward}},
	}
}
