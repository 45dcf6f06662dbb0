package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/samuelfneumann/godp/dp"
	"github.com/samuelfneumann/godp/experiment"
	"github.com/samuelfneumann/godp/experiment/tracker"
	"github.com/samuelfneumann/godp/policy"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newEvaluateCmd(opts *options) *cobra.Command {
	var table string
	var episodes, maxEpisodeSteps int
	var progress bool

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Solve and run the greedy policy for a number of episodes",
		Long: `Evaluate solves the environment and runs the greedy policy of the
solved table without operator input, then reports the mean return and
episode length. Maps with several start cells yield one return per
sampled start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.config(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("episodes") {
				conf.Experiment.Episodes = episodes
			}
			if cmd.Flags().Changed("max-episode-steps") {
				conf.Experiment.MaxEpisodeSteps = maxEpisodeSteps
			}

			t, err := policy.ParseTable(table)
			if err != nil {
				return err
			}

			var bar io.Writer
			if progress {
				bar = cmd.ErrOrStderr()
			}
			return evaluate(conf, t, cmd.OutOrStdout(), bar)
		},
	}

	defaults := experiment.DefaultConfig()
	cmd.Flags().StringVar(&table, "table", string(policy.V),
		"Table driving the greedy policy: V or Q")
	cmd.Flags().IntVar(&episodes, "episodes", defaults.Episodes,
		"Number of episodes")
	cmd.Flags().IntVar(&maxEpisodeSteps, "max-episode-steps",
		defaults.MaxEpisodeSteps, "Episodes are cut off after this many steps")
	cmd.Flags().BoolVar(&progress, "progress", false,
		"Display a progress bar")
	return cmd
}

// evaluate solves the configured environment for table and runs its
// greedy policy for the configured number of episodes. If progress is
// not nil, a progress bar is displayed on it.
func evaluate(conf Config, table policy.Table, out,
	progress io.Writer) error {
	env, err := createEnvironment(conf)
	if err != nil {
		return err
	}

	var p policy.Policy
	switch table {
	case policy.V:
		v, err := dp.ValueIteration(env, conf.Solver)
		if err != nil {
			return err
		}
		p = policy.NewStateValueGreedy(env, v)
	case policy.Q:
		q, err := dp.QValueIteration(env, conf.Solver)
		if err != nil {
			return err
		}
		p = policy.NewActionValueGreedy(env, q)
	default:
		return fmt.Errorf("evaluate: unknown table %q", table)
	}

	// Lengths are only saved alongside returns
	returnsFile, lengthsFile := conf.Returns, ""
	if returnsFile != "" {
		ext := filepath.Ext(returnsFile)
		lengthsFile = returnsFile[:len(returnsFile)-len(ext)] + "_lengths" + ext
	}
	returns := tracker.NewReturn(returnsFile)
	lengths := tracker.NewEpisodeLength(lengthsFile)

	e, err := experiment.NewOnline(env, p, conf.Experiment, returns, lengths)
	if err != nil {
		return err
	}
	if progress != nil {
		e.ShowProgress(progress)
	}
	if err := e.Run(); err != nil {
		return err
	}

	started, truncated := e.Episodes()
	fmt.Fprintf(out, "Episodes: %d, cut off at %d steps: %d\n", started,
		conf.Experiment.MaxEpisodeSteps, truncated)
	if data := returns.Data(); len(data) > 0 {
		fmt.Fprintf(out, "Mean return: %.2f\n", stat.Mean(data, nil))
		fmt.Fprintf(out, "Mean episode length: %.2f\n",
			stat.Mean(lengths.Data(), nil))
	}

	if conf.Returns != "" {
		return e.Save()
	}
	return nil
}
