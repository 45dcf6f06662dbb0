package policy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samuelfneumann/godp/dp"
	"github.com/samuelfneumann/godp/environment"
	"github.com/samuelfneumann/godp/experiment/tracker"
	ts "github.com/samuelfneumann/godp/timestep"
)

// Table determines which solved table drives greedy action selection
type Table string

// Available tables
const (
	V Table = "V" // State-value table
	Q Table = "Q" // Action-value table
)

// ParseTable converts a string to a Table
func ParseTable(s string) (Table, error) {
	switch t := Table(strings.ToUpper(strings.TrimSpace(s))); t {
	case V, Q:
		return t, nil
	}
	return "", fmt.Errorf("parseTable: unknown table %q, want %v or %v", s,
		V, Q)
}

// Executor executes greedy policies interactively. At every step it
// suggests the greedy action of the selected table to an operator, who
// either accepts it with an empty line or types the name of another
// action to execute.
//
// Executor is not safe for concurrent use. Execution blocks on operator
// input.
type Executor struct {
	env          environment.Environment
	stateValues  *dp.StateValues
	actionValues *dp.ActionValues

	in       *bufio.Reader
	out      io.Writer
	trackers []tracker.Tracker
}

// NewExecutor returns a new Executor acting in env. Operator input is
// read line by line from in and all output is written to out. Every
// TimeStep generated during execution is sent to each tracker.
func NewExecutor(env environment.Environment, in io.Reader, out io.Writer,
	trackers ...tracker.Tracker) *Executor {
	return &Executor{
		env:      env,
		in:       bufio.NewReader(in),
		out:      out,
		trackers: trackers,
	}
}

// SetStateValues sets the state-value table used when executing with V
func (e *Executor) SetStateValues(values *dp.StateValues) {
	e.stateValues = values
}

// SetActionValues sets the action-value table used when executing with Q
func (e *Executor) SetActionValues(values *dp.ActionValues) {
	e.actionValues = values
}

// Register registers a new tracker with the Executor
func (e *Executor) Register(t tracker.Tracker) {
	e.trackers = append(e.trackers, t)
}

// Execute runs a single episode. The environment is reset and the
// operator chooses an action at each step until the environment reaches
// a terminal state. If the requested table has not been set, no greedy
// action is suggested and the operator must name every action.
//
// Invalid action names are re-prompted. Any other error from the
// environment, or the end of operator input, aborts the episode.
func (e *Executor) Execute(table Table) error {
	if table != V && table != Q {
		return fmt.Errorf("execute: unknown table %q", table)
	}

	step := e.env.Reset()
	e.track(step)

	fmt.Fprintln(e.out, "Start executing. Current map:")
	if err := e.env.Render(e.out); err != nil {
		return fmt.Errorf("execute: could not render: %w", err)
	}

	for !e.env.Terminal() {
		policy := e.policy(table)
		greedyAction := ""
		if policy == nil {
			fmt.Fprintln(e.out, "No optimal value table was detected. Only "+
				"manual execution possible.")
		} else {
			var err error
			greedyAction, err = policy.SelectAction(e.env.CurrentState())
			if err != nil {
				return fmt.Errorf("execute: %w", err)
			}
		}

		action, step, err := e.choose(greedyAction)
		if err != nil {
			return fmt.Errorf("execute: %w", err)
		}
		e.track(step)

		fmt.Fprintf(e.out, "Executed action: %v\n", action)
		fmt.Fprintln(e.out, "--------------------------------------\nNew map:")
		if err := e.env.Render(e.out); err != nil {
			return fmt.Errorf("execute: could not render: %w", err)
		}
	}

	fmt.Fprintln(e.out, "Reached a terminal state! Exiting")
	return nil
}

// policy returns the greedy policy of table, or nil if that table has
// not been set
func (e *Executor) policy(table Table) Policy {
	switch {
	case table == V && e.stateValues != nil:
		return NewStateValueGreedy(e.env, e.stateValues)
	case table == Q && e.actionValues != nil:
		return NewActionValueGreedy(e.env, e.actionValues)
	}
	return nil
}

// choose prompts the operator until an action is successfully executed
// in the environment. If greedyAction is not empty, an empty line
// executes it.
func (e *Executor) choose(greedyAction string) (string, ts.TimeStep, error) {
	for {
		if greedyAction != "" {
			fmt.Fprintf(e.out, "Greedy action= %v\n", greedyAction)
			fmt.Fprint(e.out, "Choose an action by typing it in full, then "+
				"hit enter. Just hit enter to execute the greedy action: ")
		} else {
			fmt.Fprintf(e.out, "Choose an action by typing it in full, then "+
				"hit enter. Available are %v: ", e.env.Actions())
		}

		choice, err := e.readLine()
		if err != nil {
			return "", ts.TimeStep{}, err
		}
		if choice == "" && greedyAction != "" {
			choice = greedyAction
		}

		step, err := e.env.Step(choice)
		if errors.Is(err, environment.ErrInvalidAction) {
			fmt.Fprintf(e.out, "%v is not a valid action. Available actions "+
				"are %v. Try again\n", choice, e.env.Actions())
			continue
		} else if err != nil {
			return "", ts.TimeStep{}, err
		}
		return choice, step, nil
	}
}

// readLine reads a single line of operator input without its line
// ending and surrounding white space
func (e *Executor) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("operator input closed: %w",
				io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("could not read operator input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// track sends a TimeStep to all trackers
func (e *Executor) track(step ts.TimeStep) {
	for _, t := range e.trackers {
		t.Track(step)
	}
}
