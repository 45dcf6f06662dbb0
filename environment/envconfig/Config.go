// Package envconfig provides configuration structs for configuring
// environments with default parameters. Environment configurations in
// this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/godp/environment"
	"github.com/samuelfneumann/godp/environment/chain"
	"github.com/samuelfneumann/godp/environment/gridworld"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorld EnvName = "GridWorld"
	Chain     EnvName = "Chain"
)

// DefaultMap is the map used by GridWorld configurations that name
// neither a map file nor map rows
var DefaultMap = []string{
	"##########",
	"#S...#...#",
	"#.##.#.#.#",
	"#.#..P.#.#",
	"#.#.####.#",
	"#...#..G.#",
	"##.....#.#",
	"##########",
}

// Config implements a specific configuration of a specific environment.
//
// GridWorld environments are read from the map file Map if set, from
// the map rows Rows otherwise, and from DefaultMap if neither is set.
// Chain environments use Length, Start, Goal, GoalReward and Actions.
type Config struct {
	Environment EnvName `json:"environment"`

	Map     string            `json:"map,omitempty"`
	Rows    []string          `json:"rows,omitempty"`
	Rewards gridworld.Rewards `json:"rewards"`

	Length     int      `json:"length,omitempty"`
	Start      int      `json:"start,omitempty"`
	Goal       int      `json:"goal,omitempty"`
	GoalReward float64  `json:"goal_reward,omitempty"`
	Actions    []string `json:"actions,omitempty"`

	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the configuration of a GridWorld on DefaultMap
// with the default rewards
func DefaultConfig() Config {
	return Config{
		Environment: GridWorld,
		Rewards:     gridworld.DefaultRewards(),
	}
}

// NewCorridor returns the configuration of a Chain of the given length
// which starts in the leftmost cell and ends in the rightmost cell,
// rewarding 1 for reaching it
func NewCorridor(length int) Config {
	return Config{
		Environment: Chain,
		Length:      length,
		Start:       0,
		Goal:        length - 1,
		GoalReward:  1.0,
		Actions:     []string{chain.Right, chain.Left},
	}
}

// Create returns the environment described by the Config
func (c Config) Create() (env.Environment, error) {
	switch c.Environment {
	case GridWorld, "":
		return c.CreateGridWorld()

	case Chain:
		e, err := chain.New(c.Length, c.Start, c.Goal, c.GoalReward,
			c.Actions...)
		if err != nil {
			return nil, fmt.Errorf("create: %w", err)
		}
		return e, nil
	}

	return nil, fmt.Errorf("create: cannot create environment %v, no such "+
		"environment", c.Environment)
}

// CreateGridWorld returns the GridWorld described by the Config
func (c Config) CreateGridWorld() (*gridworld.GridWorld, error) {
	if c.Environment != GridWorld && c.Environment != "" {
		return nil, fmt.Errorf("createGridWorld: environment is %v",
			c.Environment)
	}

	var g *gridworld.GridWorld
	var err error
	switch {
	case c.Map != "":
		g, err = gridworld.Load(c.Map, c.Rewards, c.Seed)
	case len(c.Rows) > 0:
		g, err = gridworld.New(c.Rows, c.Rewards, c.Seed)
	default:
		g, err = gridworld.New(DefaultMap, c.Rewards, c.Seed)
	}
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %w", err)
	}
	return g, nil
}
