// Package policy implements greedy policies derived from solved value
// tables and an interactive executor for them
package policy

import (
	"fmt"

	"github.com/samuelfneumann/godp/dp"
	"github.com/samuelfneumann/godp/environment"
	"github.com/samuelfneumann/godp/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Policy selects an action in a state
type Policy interface {
	SelectAction(state int) (string, error)
}

// StateValueGreedy is the greedy policy with respect to a state-value
// table. The value of an action is r + V(s') where (s', r) is the
// environment's transition for the action.
//
// If several actions have the same value, the first one in the
// environment's action ordering is selected.
type StateValueGreedy struct {
	env    environment.MDP
	values *dp.StateValues
}

// NewStateValueGreedy returns a new StateValueGreedy policy
func NewStateValueGreedy(env environment.MDP,
	values *dp.StateValues) *StateValueGreedy {
	return &StateValueGreedy{env, values}
}

// ActionValues returns the value of each action in state, in the
// environment's action ordering
func (p *StateValueGreedy) ActionValues(state int) (*mat.VecDense, error) {
	actions := p.env.Actions()
	if len(actions) == 0 {
		return nil, fmt.Errorf("actionValues: %w", dp.ErrNoActions)
	}

	actionValues := mat.NewVecDense(len(actions), nil)
	for i, a := range actions {
		next, reward, err := p.env.Transition(state, a)
		if err != nil {
			return nil, fmt.Errorf("actionValues: %w", err)
		}
		if next < 0 || next >= p.values.Len() {
			return nil, fmt.Errorf("actionValues: T(%d, %v) = %d: %w",
				state, a, next, environment.ErrInvalidState)
		}
		actionValues.SetVec(i, reward+p.values.At(next))
	}
	return actionValues, nil
}

// SelectAction returns the greedy action in state
func (p *StateValueGreedy) SelectAction(state int) (string, error) {
	actionValues, err := p.ActionValues(state)
	if err != nil {
		return "", fmt.Errorf("selectAction: %w", err)
	}
	return p.env.Actions()[matutils.MaxVec(actionValues)], nil
}

// ActionValueGreedy is the greedy policy with respect to an action-value
// table. It selects the action with the largest value in the table
// without querying the environment.
//
// If several actions have the same value, the first one in the
// environment's action ordering is selected.
type ActionValueGreedy struct {
	env    environment.MDP
	values *dp.ActionValues
}

// NewActionValueGreedy returns a new ActionValueGreedy policy
func NewActionValueGreedy(env environment.MDP,
	values *dp.ActionValues) *ActionValueGreedy {
	return &ActionValueGreedy{env, values}
}

// SelectAction returns the greedy action in state
func (p *ActionValueGreedy) SelectAction(state int) (string, error) {
	states, actions := p.values.Dims()
	if state < 0 || state >= states {
		return "", fmt.Errorf("selectAction: state %d: %w", state,
			environment.ErrInvalidState)
	}

	names := p.env.Actions()
	if actions == 0 || actions != len(names) {
		return "", fmt.Errorf("selectAction: table has %d actions, "+
			"environment has %d", actions, len(names))
	}

	return names[matutils.MaxVec(p.values.Row(state))], nil
}

// Actions returns the action p selects in every state of env, indexed by
// state id
func Actions(p Policy, env environment.MDP) ([]string, error) {
	actions := make([]string, env.NumStates())
	for _, s := range env.States() {
		a, err := p.SelectAction(s)
		if err != nil {
			return nil, fmt.Errorf("actions: %w", err)
		}
		actions[s] = a
	}
	return actions, nil
}
