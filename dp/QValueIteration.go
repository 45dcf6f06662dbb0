package dp

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/godp/environment"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// QValueIteration runs Q-value iteration on m, starting from a table of
// zeros, and returns the converged action-value table. Row s of the
// table holds the values of state s, column a the values of the action
// m.Actions()[a].
//
// Each sweep visits the states in the order of m.States() and, for each
// state, the actions in their declared order, setting
// Q(s, a) = r(s, a) + gamma * max_a' Q(s', a'). Updates are made in place,
// so the lookahead reads entries already updated earlier in the same
// sweep. Iteration stops after the first sweep whose largest change is
// below c.Theta.
//
// Errors returned by m.Transition are not recovered: they abort the
// iteration and are returned wrapped.
func QValueIteration(m environment.MDP, c Config) (*ActionValues, error) {
	return QValueIterationFrom(m, c, nil)
}

// QValueIterationFrom runs Q-value iteration like QValueIteration, but
// starts from a copy of init instead of a table of zeros. If init is nil,
// the iteration starts from zeros.
func QValueIterationFrom(m environment.MDP, c Config,
	init *ActionValues) (*ActionValues, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("qValueIteration: %w", err)
	}

	n := m.NumStates()
	actions := m.Actions()
	if n <= 0 {
		return nil, fmt.Errorf("qValueIteration: %w", ErrNoStates)
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("qValueIteration: %w", ErrNoActions)
	}

	values := mat.NewDense(n, len(actions), nil)
	if init != nil {
		if rows, cols := init.Dims(); rows != n || cols != len(actions) {
			return nil, fmt.Errorf("qValueIteration: initial table has "+
				"shape (%d, %d), environment has (%d, %d): %w", rows, cols, n,
				len(actions), ErrInvalidConfig)
		}
		values.Copy(init.values)
	}

	log := c.logger()
	log.Info("starting q-value iteration", "states", n, "actions",
		len(actions), "gamma", c.Gamma, "theta", c.Theta)

	var deltas []float64
	for sweep := 1; ; sweep++ {
		delta := 0.0

		for _, s := range m.States() {
			if s < 0 || s >= n {
				return nil, fmt.Errorf("qValueIteration: state %d: %w", s,
					environment.ErrInvalidState)
			}

			for a := range actions {
				x := values.At(s, a)
				next, reward, err := m.Transition(s, actions[a])
				if err != nil {
					return nil, fmt.Errorf("qValueIteration: sweep %d: %w",
						sweep, err)
				}
				if next < 0 || next >= n {
					return nil, fmt.Errorf("qValueIteration: sweep %d: "+
						"T(%d, %v) = %d: %w", sweep, s, actions[a], next,
						environment.ErrInvalidState)
				}

				updated := reward + c.Gamma*floats.Max(values.RawRowView(next))
				values.Set(s, a, updated)
				delta = math.Max(delta, math.Abs(x-updated))
			}
		}

		deltas = append(deltas, delta)
		log.Info("sweep", "solver", "QI", "sweep", sweep, "delta", delta)

		if delta < c.Theta {
			log.Info("converged", "solver", "QI", "sweeps", sweep)
			return &ActionValues{values: values, deltas: deltas}, nil
		}
		if c.MaxSweeps > 0 && sweep >= c.MaxSweeps {
			return nil, fmt.Errorf("qValueIteration: delta %v after %d "+
				"sweeps: %w", delta, sweep, ErrNotConverged)
		}
	}
}
