// Package chain implements a one-dimensional corridor environment
package chain

import (
	"fmt"
	"io"
	"strings"

	env "github.com/samuelfneumann/godp/environment"
	ts "github.com/samuelfneumann/godp/timestep"
)

// Available actions
const (
	Left  string = "left"
	Right string = "right"
)

// Chain is a corridor of cells 0, 1, ..., n-1. The agent moves one cell
// left or right, staying in place at either end. Entering the goal cell
// gives the goal reward, every other move gives a reward of 0. The goal
// is absorbing.
type Chain struct {
	length     int
	start      int
	goal       int
	goalReward float64
	actions    []string

	discount    float64
	position    int
	currentStep ts.TimeStep
}

// New returns a new Chain of the given length. The agent starts each
// episode in cell start and the episode ends in cell goal. Actions
// determines the action ordering and must be a permutation of
// {Left, Right}; if empty, the ordering is Left, Right.
func New(length, start, goal int, goalReward float64,
	actions ...string) (*Chain, error) {
	if length < 1 {
		return nil, fmt.Errorf("new: chain length must be positive, have %d",
			length)
	}
	if start < 0 || start >= length {
		return nil, fmt.Errorf("new: start %d out of range [0, %d)", start,
			length)
	}
	if goal < 0 || goal >= length {
		return nil, fmt.Errorf("new: goal %d out of range [0, %d)", goal,
			length)
	}

	if len(actions) == 0 {
		actions = []string{Left, Right}
	}
	if len(actions) != 2 || actions[0] == actions[1] {
		return nil, fmt.Errorf("new: actions must be a permutation of "+
			"[%s %s], have %v", Left, Right, actions)
	}
	for _, a := range actions {
		if a != Left && a != Right {
			return nil, fmt.Errorf("new: unknown action %q: %w", a,
				env.ErrInvalidAction)
		}
	}
	order := make([]string, len(actions))
	copy(order, actions)

	c := &Chain{
		length:     length,
		start:      start,
		goal:       goal,
		goalReward: goalReward,
		actions:    order,
		discount:   1.0,
	}
	c.Reset()

	return c, nil
}

// NumStates returns the number of cells
func (c *Chain) NumStates() int {
	return c.length
}

// NumActions returns the number of actions
func (c *Chain) NumActions() int {
	return len(c.actions)
}

// States returns the state ids in ascending order
func (c *Chain) States() []int {
	states := make([]int, c.length)
	for i := range states {
		states[i] = i
	}
	return states
}

// Actions returns the action ordering
func (c *Chain) Actions() []string {
	actions := make([]string, len(c.actions))
	copy(actions, c.actions)
	return actions
}

// Transition returns the next state and reward of taking action in state
func (c *Chain) Transition(state int, action string) (int, float64, error) {
	if state < 0 || state >= c.length {
		return 0, 0, fmt.Errorf("transition: state %d: %w", state,
			env.ErrInvalidState)
	}
	if state == c.goal {
		if action != Left && action != Right {
			return 0, 0, fmt.Errorf("transition: %q: %w", action,
				env.ErrInvalidAction)
		}
		return state, 0, nil
	}

	next := state
	switch action {
	case Left:
		if next > 0 {
			next--
		}
	case Right:
		if next < c.length-1 {
			next++
		}
	default:
		return 0, 0, fmt.Errorf("transition: %q: %w", action,
			env.ErrInvalidAction)
	}

	if next == c.goal {
		return next, c.goalReward, nil
	}
	return next, 0, nil
}

// Reset resets the agent to the starting cell
func (c *Chain) Reset() ts.TimeStep {
	c.position = c.start
	stepType := ts.First
	if c.Terminal() {
		stepType = ts.Last
	}
	c.currentStep = ts.New(stepType, 0, c.discount, c.position, "", 0)
	return c.currentStep
}

// CurrentState returns the cell the agent is in
func (c *Chain) CurrentState() int {
	return c.position
}

// Step moves the agent
func (c *Chain) Step(action string) (ts.TimeStep, error) {
	next, reward, err := c.Transition(c.position, action)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}
	c.position = next

	stepType := ts.Mid
	if c.Terminal() {
		stepType = ts.Last
	}
	c.currentStep = ts.New(stepType, reward, c.discount, next, action,
		c.currentStep.Number+1)

	return c.currentStep, nil
}

// Terminal returns whether the agent is in the goal cell
func (c *Chain) Terminal() bool {
	return c.position == c.goal
}

// Render writes the corridor to w, marking the agent with A and the goal
// with G
func (c *Chain) Render(w io.Writer) error {
	var b strings.Builder
	for i := 0; i < c.length; i++ {
		switch {
		case i == c.position:
			b.WriteByte('A')
		case i == c.goal:
			b.WriteByte('G')
		default:
			b.WriteByte('.')
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the Chain as a string
func (c *Chain) String() string {
	str := "Chain | At: %d  |  Goal: %d  |  Length: %d"
	return fmt.Sprintf(str, c.position, c.goal, c.length)
}
