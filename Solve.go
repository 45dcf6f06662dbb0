package main

import (
	"fmt"
	"io"
	"os"

	"github.com/samuelfneumann/godp/dp"
	"github.com/samuelfneumann/godp/environment"
	"github.com/samuelfneumann/godp/policy"
	"github.com/samuelfneumann/godp/report"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func newSolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Solve with VI and QI and print the tables and greedy policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return solve(conf, cmd.OutOrStdout())
		},
	}
}

// gridFormatter is implemented by environments which can lay value
// tables and policies out over their map
type gridFormatter interface {
	FormatValues(mat.Vector) string
	FormatPolicy([]string) string
}

// valueDrawer is implemented by environments which can draw a heat map
// of a state-value table
type valueDrawer interface {
	DrawValues(io.Writer, mat.Vector, int) error
}

// colourer is implemented by environments with coloured output
type colourer interface {
	SetColour(bool)
}

// createEnvironment creates the configured environment
func createEnvironment(conf Config) (environment.Environment, error) {
	env, err := conf.Environment.Create()
	if err != nil {
		return nil, err
	}
	if c, ok := env.(colourer); ok {
		c.SetColour(conf.Colour)
	}
	return env, nil
}

// solve solves the configured environment with both solvers, prints the
// tables and greedy policies to out and writes the configured reports
func solve(conf Config, out io.Writer) error {
	env, err := createEnvironment(conf)
	if err != nil {
		return err
	}

	v, err := dp.ValueIteration(env, conf.Solver)
	if err != nil {
		return err
	}
	q, err := dp.QValueIteration(env, conf.Solver)
	if err != nil {
		return err
	}

	vActions, err := policy.Actions(policy.NewStateValueGreedy(env, v), env)
	if err != nil {
		return err
	}
	qActions, err := policy.Actions(policy.NewActionValueGreedy(env, q), env)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "State values (VI, %d sweeps):\n", v.Sweeps())
	if g, ok := env.(gridFormatter); ok {
		fmt.Fprint(out, g.FormatValues(v.Vector()))
		fmt.Fprintf(out, "\nGreedy policy according to V:\n%v",
			g.FormatPolicy(vActions))
	} else {
		fmt.Fprintln(out, v)
		fmt.Fprintf(out, "\nGreedy policy according to V:\n%v\n", vActions)
	}

	fmt.Fprintf(out, "\nAction values (QI, %d sweeps) over actions %v:\n%v\n",
		q.Sweeps(), env.Actions(), q)
	if g, ok := env.(gridFormatter); ok {
		fmt.Fprintf(out, "\nGreedy policy according to Q:\n%v",
			g.FormatPolicy(qActions))
	} else {
		fmt.Fprintf(out, "\nGreedy policy according to Q:\n%v\n", qActions)
	}

	if conf.Chart != "" {
		if err := writeChart(conf.Chart, v, q); err != nil {
			return err
		}
	}
	if conf.Image != "" {
		if err := writeImage(conf.Image, env, v); err != nil {
			return err
		}
	}
	return nil
}

// writeChart writes the convergence chart of both solves to path
func writeChart(path string, v *dp.StateValues, q *dp.ActionValues) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeChart: %w", err)
	}
	defer f.Close()

	err = report.Convergence(f, "Convergence",
		report.Series{Name: "VI", Deltas: v.Deltas()},
		report.Series{Name: "QI", Deltas: q.Deltas()},
	)
	if err != nil {
		return fmt.Errorf("writeChart: %w", err)
	}
	return f.Close()
}

// writeImage writes a heat map of v over the environment to path
func writeImage(path string, env environment.Environment,
	v *dp.StateValues) error {
	d, ok := env.(valueDrawer)
	if !ok {
		return fmt.Errorf("writeImage: environment cannot draw value heat " +
			"maps")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeImage: %w", err)
	}
	defer f.Close()

	if err := d.DrawValues(f, v.Vector(), 0); err != nil {
		return fmt.Errorf("writeImage: %w", err)
	}
	return f.Close()
}
