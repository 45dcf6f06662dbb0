package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/godp/dp"
	"github.com/samuelfneumann/godp/environment/envconfig"
	"github.com/samuelfneumann/godp/experiment"
)

// Config configures a run of godp
type Config struct {
	Environment envconfig.Config  `json:"environment"`
	Solver      dp.Config         `json:"solver"`
	Experiment  experiment.Config `json:"experiment"`

	// Output files, empty to skip
	Chart   string `json:"chart,omitempty"`
	Image   string `json:"image,omitempty"`
	Returns string `json:"returns,omitempty"`

	Colour bool `json:"colour"`
}

// DefaultConfig returns the default grid world with the default solver
// configuration
func DefaultConfig() Config {
	return Config{
		Environment: envconfig.DefaultConfig(),
		Solver:      dp.DefaultConfig(),
		Experiment:  experiment.DefaultConfig(),
	}
}

// LoadConfig reads a JSON configuration file. Fields missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}

	conf := DefaultConfig()
	if err := json.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode %v: %w",
			path, err)
	}
	return conf, nil
}
