// Command godp solves finite deterministic MDPs with value iteration and
// Q-value iteration and executes the resulting greedy policies
// interactively.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// options holds the values of the persistent command line flags
type options struct {
	configFile string
	mapFile    string
	seed       uint64
	gamma      float64
	theta      float64
	maxSweeps  int
	logLevel   string
	colour     bool
	chart      string
	image      string
	returns    string
}

// newRootCmd returns the godp command with all subcommands attached
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "godp",
		Short: "Dynamic programming solvers for finite deterministic MDPs",
		Long: `godp computes optimal value tables of a grid world or chain with
value iteration (VI) and Q-value iteration (QI):

- solve:    solve with VI and QI and print the tables and greedy policies
- run:      solve and step through the greedy policy interactively
- evaluate: solve and run the greedy policy for a number of episodes

Use 'godp help <command>' for more information on a specific command.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Configuration file (JSON)")
	flags.StringVar(&opts.mapFile, "map", "", "Grid world map file")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed for start state selection")
	flags.Float64Var(&opts.gamma, "gamma", 1.0, "Discount factor in (0, 1]")
	flags.Float64Var(&opts.theta, "theta", 0.001, "Convergence threshold")
	flags.IntVar(&opts.maxSweeps, "max-sweeps", 0,
		"Maximum number of sweeps per solve, 0 for no limit")
	flags.StringVar(&opts.logLevel, "log-level", "info",
		"Log level: debug, info, warn or error")
	flags.BoolVar(&opts.colour, "colour", false, "Colour map output")
	flags.StringVar(&opts.chart, "chart", "",
		"Write an HTML convergence chart to this file")
	flags.StringVar(&opts.image, "image", "",
		"Write a PNG heat map of the state values to this file")
	flags.StringVar(&opts.returns, "returns", "",
		"Save episode returns to this file")

	rootCmd.AddCommand(newSolveCmd(opts), newRunCmd(opts),
		newEvaluateCmd(opts))
	return rootCmd
}

// config loads the configuration file, if any, and overrides its values
// with the flags set on the command line
func (o *options) config(cmd *cobra.Command) (Config, error) {
	conf := DefaultConfig()
	if o.configFile != "" {
		var err error
		conf, err = LoadConfig(o.configFile)
		if err != nil {
			return Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("map") {
		conf.Environment.Map = o.mapFile
	}
	if changed("seed") {
		conf.Environment.Seed = o.seed
	}
	if changed("gamma") {
		conf.Solver.Gamma = o.gamma
	}
	if changed("theta") {
		conf.Solver.Theta = o.theta
	}
	if changed("max-sweeps") {
		conf.Solver.MaxSweeps = o.maxSweeps
	}
	if changed("colour") {
		conf.Colour = o.colour
	}
	if changed("chart") {
		conf.Chart = o.chart
	}
	if changed("image") {
		conf.Image = o.image
	}
	if changed("returns") {
		conf.Returns = o.returns
	}

	logger, err := newLogger(o.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return Config{}, err
	}
	conf.Solver.Logger = logger

	if err := conf.Solver.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// newLogger returns a text logger writing to w at the named level
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("newLogger: unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})),
		nil
}
