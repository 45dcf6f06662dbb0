package gridworld

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/godp/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var testMap = []string{
	"S..",
	".#P",
	"..G",
}

func newTestWorld(t *testing.T) *GridWorld {
	g, err := New(testMap, DefaultRewards(), 1)
	require.NoError(t, err)
	g.SetColour(false)
	return g
}

func TestNew(t *testing.T) {
	g := newTestWorld(t)

	r, c := g.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 9, g.NumStates())
	assert.Equal(t, 4, g.NumActions())
	assert.Equal(t, []string{Up, Down, Left, Right}, g.Actions())
	assert.Equal(t, 0, g.CurrentState())
	assert.Equal(t, Wall, g.At(1, 1))
	assert.Equal(t, Goal, g.At(2, 2))
}

func TestNewInvalid(t *testing.T) {
	tests := map[string][]string{
		"empty":        {},
		"ragged":       {"S..", ".."},
		"unknown cell": {"S.x"},
		"no start":     {"..G"},
		"empty row":    {""},
	}
	for name, rows := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(rows, DefaultRewards(), 0)
			assert.Error(t, err)
		})
	}
}

func TestTransition(t *testing.T) {
	g := newTestWorld(t)
	rw := g.Rewards()

	tests := []struct {
		name   string
		state  int
		action string
		next   int
		reward float64
	}{
		{"off the map", g.State(0, 0), Up, g.State(0, 0), rw.Step},
		{"floor", g.State(0, 0), Right, g.State(0, 1), rw.Step},
		{"into wall", g.State(0, 1), Down, g.State(0, 1), rw.Step},
		{"into pit", g.State(0, 2), Down, g.State(1, 2), rw.Pit},
		{"into goal", g.State(2, 1), Right, g.State(2, 2), rw.Goal},
		{"goal absorbing", g.State(2, 2), Left, g.State(2, 2), 0},
		{"pit absorbing", g.State(1, 2), Up, g.State(1, 2), 0},
		{"wall self loop", g.State(1, 1), Up, g.State(1, 1), 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			next, reward, err := g.Transition(test.state, test.action)
			require.NoError(t, err)
			assert.Equal(t, test.next, next)
			assert.Equal(t, test.reward, reward)
		})
	}

	_, _, err := g.Transition(-1, Up)
	assert.ErrorIs(t, err, environment.ErrInvalidState)
	_, _, err = g.Transition(0, "jump")
	assert.ErrorIs(t, err, environment.ErrInvalidAction)

	// Transition must not move the agent
	assert.Equal(t, 0, g.CurrentState())
}

func TestEpisode(t *testing.T) {
	g := newTestWorld(t)

	path := []string{Down, Down, Right, Right}
	for i, action := range path {
		step, err := g.Step(action)
		require.NoError(t, err)
		assert.Equal(t, i+1, step.Number)
		if i < len(path)-1 {
			assert.True(t, step.Mid())
			assert.False(t, g.Terminal())
		} else {
			assert.True(t, step.Last())
			assert.Equal(t, GoalReward, step.Reward)
		}
	}
	assert.True(t, g.Terminal())

	step := g.Reset()
	assert.True(t, step.First())
	assert.Equal(t, 0, g.CurrentState())
	assert.False(t, g.Terminal())
}

func TestMultipleStarts(t *testing.T) {
	g, err := New([]string{"S.S", "..G"}, DefaultRewards(), 7)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		g.Reset()
		seen[g.CurrentState()] = true
	}
	assert.Equal(t, map[int]bool{0: true, 2: true}, seen)
}

func TestParseAndLoad(t *testing.T) {
	input := "S.\r\n.G\n\n"
	g, err := Parse(strings.NewReader(input), DefaultRewards(), 0)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)

	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("S G\n"), 0644))
	g, err = Load(path, DefaultRewards(), 0)
	require.NoError(t, err)
	assert.Equal(t, Floor, g.At(0, 1))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"),
		DefaultRewards(), 0)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	g := newTestWorld(t)

	var buf bytes.Buffer
	require.NoError(t, g.Render(&buf))
	assert.Equal(t, "A..\n.#P\n..G\n", buf.String())
}

func TestFormatPolicy(t *testing.T) {
	g := newTestWorld(t)
	policy := []string{Right, Right, Left, Down, "", "", Right, Right, ""}

	assert.Equal(t, ">><\nv#P\n>>G\n", g.FormatPolicy(policy))
}

func TestFormatValues(t *testing.T) {
	g := newTestWorld(t)
	values := mat.NewVecDense(9, []float64{1, 2, 3, 4, 0, 0, 7, 8, 0})

	lines := strings.Split(strings.TrimRight(g.FormatValues(values), "\n"),
		"\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "   1.00|   2.00|   3.00", lines[0])
	assert.Equal(t, "   4.00|#######|   0.00", lines[1])
}

func TestDrawValues(t *testing.T) {
	g := newTestWorld(t)
	values := mat.NewVecDense(9, []float64{1, 2, 3, 4, 0, -10, 7, 8, 0})

	var buf bytes.Buffer
	require.NoError(t, g.DrawValues(&buf, values, 10))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	err = g.DrawValues(&buf, mat.NewVecDense(2, nil), 10)
	assert.Error(t, err)
}

func TestRewards(t *testing.T) {
	r := DefaultRewards()
	assert.Equal(t, PitReward, r.Min())
	assert.Equal(t, GoalReward, r.Max())
}
