package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Default rewards
const (
	TimeStepReward float64 = -1.0
	GoalReward     float64 = 10.0
	PitReward      float64 = -10.0
)

// Rewards is the reward scheme of a GridWorld. Entering a goal cell
// gives Goal, entering a pit cell gives Pit and every other move,
// including bumping into a wall, gives Step.
type Rewards struct {
	Step float64 `json:"step"`
	Goal float64 `json:"goal"`
	Pit  float64 `json:"pit"`
}

// DefaultRewards returns the default reward scheme
func DefaultRewards() Rewards {
	return Rewards{Step: TimeStepReward, Goal: GoalReward, Pit: PitReward}
}

// Min returns the minimum reward attainable
func (r Rewards) Min() float64 {
	return floats.Min([]float64{r.Step, r.Goal, r.Pit})
}

// Max returns the maximum reward attainable
func (r Rewards) Max() float64 {
	return floats.Max([]float64{r.Step, r.Goal, r.Pit})
}

// String returns the Rewards as a string
func (r Rewards) String() string {
	return fmt.Sprintf("step: %.2f  goal: %.2f  pit: %.2f", r.Step, r.Goal,
		r.Pit)
}

// rewardFor returns the reward for entering a cell
func (r Rewards) rewardFor(c Cell) float64 {
	switch c {
	case Goal:
		return r.Goal
	case Pit:
		return r.Pit
	default:
		return r.Step
	}
}
