package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/godp/environment"
)

// newStarter returns the start-state distribution of a map. A map with a
// single start cell always starts there, a map with several start cells
// samples one uniformly at the beginning of each episode.
func newStarter(cells []Cell, seed uint64) (environment.Starter, error) {
	var starts []int
	for i, cell := range cells {
		if cell == Start {
			starts = append(starts, i)
		}
	}

	switch len(starts) {
	case 0:
		return nil, fmt.Errorf("map has no start cell %q", Start)
	case 1:
		return environment.NewSingleStart(starts[0]), nil
	}
	return environment.NewCategoricalStarter(starts, seed)
}
