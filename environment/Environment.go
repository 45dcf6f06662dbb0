// Package environment outlines the interfaces and sturcts needed to implement
// concrete finite, deterministic environments
package environment

import (
	"errors"
	"io"

	"github.com/samuelfneumann/godp/timestep"
)

var (
	// ErrInvalidAction is returned when an action name is not one of the
	// actions of an environment
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidState is returned when a state id is out of range
	ErrInvalidState = errors.New("invalid state")
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() int
}

// MDP implements a finite Markov Decision Process with a deterministic
// transition function. States are identified by the integers
// 0, 1, ..., NumStates()-1. Actions are identified by name and the order
// returned by Actions() is stable across calls.
type MDP interface {
	NumStates() int
	NumActions() int
	States() []int
	Actions() []string

	// Transition returns the next state and reward for taking action in
	// state. It must not modify the live state of the environment.
	Transition(state int, action string) (next int, reward float64, err error)
}

// Environment implements a simulated environment built on an MDP that an
// agent can act in
type Environment interface {
	MDP
	Reset() timestep.TimeStep // Resets between episodes
	CurrentState() int
	Step(action string) (timestep.TimeStep, error)
	Terminal() bool
	Render(w io.Writer) error
}

// ActionIndex returns the index of action in the action ordering of m
func ActionIndex(m MDP, action string) (int, bool) {
	for i, a := range m.Actions() {
		if a == action {
			return i, true
		}
	}
	return -1, false
}
