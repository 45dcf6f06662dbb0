package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samuelfneumann/godp/dp"
	"github.com/samuelfneumann/godp/experiment/tracker"
	"github.com/samuelfneumann/godp/policy"
	"github.com/spf13/cobra"
)

// both runs the V and then the Q policy
const both = "both"

func newRunCmd(opts *options) *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve and step through the greedy policy interactively",
		Long: `Run solves the environment and executes the greedy policy of the
solved table one step at a time. At each step hit enter to execute the
greedy action, or type the name of another action.

With --table both, value iteration and its policy run first, followed by
Q-value iteration and its policy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return run(conf, table, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&table, "table", both,
		"Table driving the greedy policy: V, Q or both")
	return cmd
}

// run solves the configured environment for each requested table and
// executes the corresponding greedy policy, pausing for the operator
// before each solve and each execution
func run(conf Config, table string, in io.Reader, out io.Writer) error {
	var tables []policy.Table
	if strings.EqualFold(strings.TrimSpace(table), both) {
		tables = []policy.Table{policy.V, policy.Q}
	} else {
		t, err := policy.ParseTable(table)
		if err != nil {
			return err
		}
		tables = []policy.Table{t}
	}

	env, err := createEnvironment(conf)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	executor := policy.NewExecutor(env, reader, out)

	var returns *tracker.Return
	if conf.Returns != "" {
		returns = tracker.NewReturn(conf.Returns)
		executor.Register(returns)
	}

	for _, t := range tables {
		switch t {
		case policy.V:
			if err := pause(reader, out, "Press enter to run value "+
				"iteration"); err != nil {
				return err
			}
			v, err := dp.ValueIteration(env, conf.Solver)
			if err != nil {
				return err
			}
			executor.SetStateValues(v)
			fmt.Fprintf(out, "Value iteration converged after %d sweeps\n",
				v.Sweeps())

		case policy.Q:
			if err := pause(reader, out, "Press enter to run Q-value "+
				"iteration"); err != nil {
				return err
			}
			q, err := dp.QValueIteration(env, conf.Solver)
			if err != nil {
				return err
			}
			executor.SetActionValues(q)
			fmt.Fprintf(out, "Q-value iteration converged after %d sweeps\n",
				q.Sweeps())
		}

		if err := pause(reader, out, "Press enter to start execution of "+
			"optimal policy according to "+string(t)); err != nil {
			return err
		}
		if err := executor.Execute(t); err != nil {
			return err
		}
	}

	if returns != nil {
		return returns.Save()
	}
	return nil
}

// pause prints prompt and waits for the operator to enter a line
func pause(reader *bufio.Reader, out io.Writer, prompt string) error {
	fmt.Fprint(out, prompt)
	_, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("pause: operator input closed: %w",
			io.ErrUnexpectedEOF)
	} else if err != nil {
		return fmt.Errorf("pause: %w", err)
	}
	return nil
}
