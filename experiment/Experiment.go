// Package experiment implements functionality for running greedy
// policies in an environment without operator input
package experiment

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when an experiment is configured with
// invalid parameters
var ErrInvalidConfig = errors.New("invalid experiment configuration")

// Config represents a configuration of an experiment
type Config struct {
	// Number of episodes to run
	Episodes int `json:"episodes"`

	// Episodes are cut off after this many steps. Greedy policies of
	// tables that have not converged may never reach a terminal state.
	MaxEpisodeSteps int `json:"max_episode_steps"`
}

// DefaultConfig returns a Config of 100 episodes of at most 1000 steps
func DefaultConfig() Config {
	return Config{Episodes: 100, MaxEpisodeSteps: 1000}
}

// Validate checks that the number of episodes and the step limit are
// positive
func (c Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive, have %d: %w",
			c.Episodes, ErrInvalidConfig)
	}
	if c.MaxEpisodeSteps <= 0 {
		return fmt.Errorf("max episode steps must be positive, have %d: %w",
			c.MaxEpisodeSteps, ErrInvalidConfig)
	}
	return nil
}
