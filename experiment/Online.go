package experiment

import (
	"fmt"
	"io"

	env "github.com/samuelfneumann/godp/environment"
	"github.com/samuelfneumann/godp/experiment/tracker"
	"github.com/samuelfneumann/godp/policy"
	ts "github.com/samuelfneumann/godp/timestep"
	"github.com/samuelfneumann/godp/utils/progressbar"
)

// progressWidth is the width in characters of the progress bar
const progressWidth = 40

// Online is an experiment that runs a policy online, always taking the
// action the policy selects.
type Online struct {
	env.Environment
	policy.Policy
	config   Config
	trackers []tracker.Tracker

	episodes  int
	truncated int
	progress  io.Writer
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The t parameter is a slice of
// tracker.Tracker which determine what data is tracked.
func NewOnline(e env.Environment, p policy.Policy, c Config,
	t ...tracker.Tracker) (*Online, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newOnline: %w", err)
	}
	return &Online{Environment: e, Policy: p, config: c, trackers: t}, nil
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// ShowProgress displays a progress bar of the episodes run on w
func (o *Online) ShowProgress(w io.Writer) {
	o.progress = w
}

// RunEpisode runs a single episode of the experiment and returns whether
// the episode reached a terminal state before the step limit
func (o *Online) RunEpisode() (bool, error) {
	step := o.Environment.Reset()
	o.track(step)
	o.episodes++

	for steps := 0; !step.Last(); steps++ {
		if steps >= o.config.MaxEpisodeSteps {
			o.truncated++
			return false, nil
		}

		action, err := o.Policy.SelectAction(o.Environment.CurrentState())
		if err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
		step, err = o.Environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}

		o.track(step)
	}
	return true, nil
}

// Run runs all episodes of the experiment
func (o *Online) Run() error {
	var bar *progressbar.ManualProgressBar
	if o.progress != nil {
		bar = progressbar.NewManualProgressBar(o.progress, progressWidth,
			o.config.Episodes)
		defer bar.Close()
	}

	for i := 0; i < o.config.Episodes; i++ {
		if _, err := o.RunEpisode(); err != nil {
			return fmt.Errorf("run: episode %d: %w", i, err)
		}

		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}
	return nil
}

// Episodes returns the number of episodes started and the number of
// those episodes cut off by the step limit
func (o *Online) Episodes() (started, truncated int) {
	return o.episodes, o.truncated
}

// Save saves all the data cached by the trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}
