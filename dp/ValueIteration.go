package dp

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/godp/environment"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ValueIteration runs value iteration on m, starting from a table of
// zeros, and returns the converged state-value table.
//
// Each sweep updates every state in ascending order of id to the best
// one-step lookahead value max_a r(s, a) + gamma * V(s') over the actions
// of m in their declared order. Lookahead values are read from a snapshot
// of the table taken at the start of the sweep. Iteration stops after the
// first sweep whose largest change is below c.Theta.
//
// Errors returned by m.Transition are not recovered: they abort the
// iteration and are returned wrapped.
func ValueIteration(m environment.MDP, c Config) (*StateValues, error) {
	return ValueIterationFrom(m, c, nil)
}

// ValueIterationFrom runs value iteration like ValueIteration, but starts
// from a copy of init instead of a table of zeros. If init is nil, the
// iteration starts from zeros.
func ValueIterationFrom(m environment.MDP, c Config,
	init *StateValues) (*StateValues, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("valueIteration: %w", err)
	}

	n := m.NumStates()
	actions := m.Actions()
	if n <= 0 {
		return nil, fmt.Errorf("valueIteration: %w", ErrNoStates)
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("valueIteration: %w", ErrNoActions)
	}

	values := mat.NewVecDense(n, nil)
	if init != nil {
		if init.Len() != n {
			return nil, fmt.Errorf("valueIteration: initial table has %d "+
				"states, environment has %d: %w", init.Len(), n,
				ErrInvalidConfig)
		}
		values.CopyVec(init.values)
	}
	old := mat.NewVecDense(n, nil)

	log := c.logger()
	log.Info("starting value iteration", "states", n, "actions",
		len(actions), "gamma", c.Gamma, "theta", c.Theta)

	var deltas []float64
	for sweep := 1; ; sweep++ {
		old.CopyVec(values)

		for s := 0; s < n; s++ {
			best := math.Inf(-1)
			for _, a := range actions {
				next, reward, err := m.Transition(s, a)
				if err != nil {
					return nil, fmt.Errorf("valueIteration: sweep %d: %w",
						sweep, err)
				}
				if next < 0 || next >= n {
					return nil, fmt.Errorf("valueIteration: sweep %d: "+
						"T(%d, %v) = %d: %w", sweep, s, a, next,
						environment.ErrInvalidState)
				}

				if value := reward + c.Gamma*old.AtVec(next); value > best {
					best = value
				}
			}
			values.SetVec(s, best)
		}

		delta := floats.Distance(old.RawVector().Data,
			values.RawVector().Data, math.Inf(1))
		deltas = append(deltas, delta)
		log.Info("sweep", "solver", "VI", "sweep", sweep, "delta", delta)

		if delta < c.Theta {
			log.Info("converged", "solver", "VI", "sweeps", sweep)
			return &StateValues{values: values, deltas: deltas}, nil
		}
		if c.MaxSweeps > 0 && sweep >= c.MaxSweeps {
			return nil, fmt.Errorf("valueIteration: delta %v after %d "+
				"sweeps: %w", delta, sweep, ErrNotConverged)
		}
	}
}
