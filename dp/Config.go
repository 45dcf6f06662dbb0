// Package dp implements dynamic programming solvers for finite MDPs with
// deterministic transitions.
//
// Two solvers are provided. ValueIteration computes a state-value table
// with synchronous (Jacobi) sweeps: every update within a sweep reads the
// values of the previous sweep. QValueIteration computes an action-value
// table with in-place (Gauss-Seidel) sweeps: an update reads the table as
// it currently is, including entries already updated in the same sweep.
// The two solvers therefore may need a different number of sweeps on the
// same MDP, even though they share the same fixed point.
package dp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Default solver parameters
const (
	DefaultGamma float64 = 1.0
	DefaultTheta float64 = 0.001
)

var (
	// ErrInvalidConfig is returned when a solver is run with invalid
	// parameters
	ErrInvalidConfig = errors.New("invalid solver configuration")

	// ErrNoActions is returned when an environment exposes no actions
	ErrNoActions = errors.New("environment has no actions")

	// ErrNoStates is returned when an environment exposes no states
	ErrNoStates = errors.New("environment has no states")

	// ErrNotConverged is returned when the sweep limit is reached before
	// the largest change in a sweep dropped below theta
	ErrNotConverged = errors.New("did not converge")
)

// Config configures a solver. Gamma is the discount factor and Theta the
// convergence threshold: iteration stops after the first sweep whose
// largest change is below Theta. MaxSweeps limits the number of sweeps;
// zero means iterate until convergence, however long that takes.
type Config struct {
	Gamma     float64 `json:"gamma"`
	Theta     float64 `json:"theta"`
	MaxSweeps int     `json:"max_sweeps,omitempty"`

	// Logger receives one record per sweep. A nil Logger discards them.
	Logger *slog.Logger `json:"-"`
}

// DefaultConfig returns a Config with gamma = 1 and theta = 0.001
func DefaultConfig() Config {
	return Config{Gamma: DefaultGamma, Theta: DefaultTheta}
}

// Validate checks that gamma is in (0, 1], theta is positive and the
// sweep limit is not negative
func (c Config) Validate() error {
	if c.Gamma <= 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in (0, 1], have %v: %w", c.Gamma,
			ErrInvalidConfig)
	}
	if c.Theta <= 0 {
		return fmt.Errorf("theta must be positive, have %v: %w", c.Theta,
			ErrInvalidConfig)
	}
	if c.MaxSweeps < 0 {
		return fmt.Errorf("max sweeps must not be negative, have %d: %w",
			c.MaxSweeps, ErrInvalidConfig)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}
