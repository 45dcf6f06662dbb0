// Package gridworld implements 2D gridworld environments loaded from text
// maps
package gridworld

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/godp/environment"
	ts "github.com/samuelfneumann/godp/timestep"
)

// Available actions, in their fixed ordering
const (
	Up    string = "up"
	Down  string = "down"
	Left  string = "left"
	Right string = "right"
)

var actions = []string{Up, Down, Left, Right}

// GridWorld represents a gridworld environment
//
// A gridworld is represented as a flattened matrix of cells. Every cell,
// including walls, is a state with id row*cols + col. Walls can never be
// entered and transition to themselves with reward 0. Goal and pit cells
// are terminal and absorbing.
type GridWorld struct {
	environment.Starter
	rewards Rewards

	r, c     int
	cells    []Cell
	position int

	discount    float64
	currentStep ts.TimeStep
	au          aurora.Aurora
}

// New creates a new GridWorld from the rows of a map
func New(rows []string, rewards Rewards, seed uint64) (*GridWorld, error) {
	cells, r, c, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("new: invalid map: %w", err)
	}

	starter, err := newStarter(cells, seed)
	if err != nil {
		return nil, fmt.Errorf("new: invalid map: %w", err)
	}

	g := &GridWorld{
		Starter:  starter,
		rewards:  rewards,
		r:        r,
		c:        c,
		cells:    cells,
		discount: 1.0,
		au:       aurora.NewAurora(true),
	}
	g.Reset()

	return g, nil
}

// SetColour enables or disables coloured rendering
func (g *GridWorld) SetColour(colour bool) {
	g.au = aurora.NewAurora(colour)
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Rewards returns the reward scheme of the GridWorld
func (g *GridWorld) Rewards() Rewards {
	return g.rewards
}

// At returns the cell at row i, column j
func (g *GridWorld) At(i, j int) Cell {
	return g.cells[g.State(i, j)]
}

// State converts (row, col) coordinates to a state id
func (g *GridWorld) State(row, col int) int {
	return row*g.c + col
}

// Coordinates converts a state id to (row, col) coordinates
func (g *GridWorld) Coordinates(state int) (row, col int) {
	return state / g.c, state % g.c
}

// NumStates returns the number of states
func (g *GridWorld) NumStates() int {
	return g.r * g.c
}

// NumActions returns the number of actions
func (g *GridWorld) NumActions() int {
	return len(actions)
}

// States returns the state ids in ascending order
func (g *GridWorld) States() []int {
	states := make([]int, len(g.cells))
	for i := range states {
		states[i] = i
	}
	return states
}

// Actions returns the action ordering
func (g *GridWorld) Actions() []string {
	a := make([]string, len(actions))
	copy(a, actions)
	return a
}

// Transition returns the next state and reward for taking action in
// state
func (g *GridWorld) Transition(state int, action string) (int, float64,
	error) {
	if state < 0 || state >= len(g.cells) {
		return 0, 0, fmt.Errorf("transition: state %d: %w", state,
			environment.ErrInvalidState)
	}

	row, col := g.Coordinates(state)
	switch action {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col++
	default:
		return 0, 0, fmt.Errorf("transition: %q: %w", action,
			environment.ErrInvalidAction)
	}

	cell := g.cells[state]
	if cell.Terminal() || cell == Wall {
		return state, 0, nil
	}

	next := state
	if row >= 0 && row < g.r && col >= 0 && col < g.c {
		if candidate := g.State(row, col); g.cells[candidate] != Wall {
			next = candidate
		}
	}

	return next, g.rewards.rewardFor(g.cells[next]), nil
}

// Reset resets the agent to a starting cell
func (g *GridWorld) Reset() ts.TimeStep {
	g.position = g.Start()

	stepType := ts.First
	if g.Terminal() {
		stepType = ts.Last
	}
	g.currentStep = ts.New(stepType, 0, g.discount, g.position, "", 0)
	return g.currentStep
}

// CurrentState returns the state the agent is in
func (g *GridWorld) CurrentState() int {
	return g.position
}

// CurrentTimeStep returns the last TimeStep of the environment
func (g *GridWorld) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// Step takes a single action in the environment
func (g *GridWorld) Step(action string) (ts.TimeStep, error) {
	next, reward, err := g.Transition(g.position, action)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}
	g.position = next

	// Check if this transition is to the end state
	stepType := ts.Mid
	if g.Terminal() {
		stepType = ts.Last
	}

	step := ts.New(stepType, reward, g.discount, next, action,
		g.currentStep.Number+1)
	g.currentStep = step

	return step, nil
}

// Terminal returns whether the agent is in a terminal cell
func (g *GridWorld) Terminal() bool {
	return g.cells[g.position].Terminal()
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: (%d, %d)  |  Rewards: %v  |  Bounds: (%d, %d)"
	row, col := g.Coordinates(g.position)

	return fmt.Sprintf(str, row, col, g.rewards, g.r, g.c)
}
