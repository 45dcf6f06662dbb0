package experiment

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/godp/dp"
	"github.com/samuelfneumann/godp/environment/chain"
	"github.com/samuelfneumann/godp/experiment/tracker"
	"github.com/samuelfneumann/godp/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constant is a policy which always selects the same action
type constant string

func (c constant) SelectAction(int) (string, error) {
	if c == "" {
		return "", errors.New("no action")
	}
	return string(c), nil
}

func corridor(t *testing.T) *chain.Chain {
	c, err := chain.New(3, 0, 2, 1.0, chain.Right, chain.Left)
	require.NoError(t, err)
	return c
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.ErrorIs(t, Config{Episodes: 0, MaxEpisodeSteps: 1}.Validate(),
		ErrInvalidConfig)
	assert.ErrorIs(t, Config{Episodes: 1, MaxEpisodeSteps: -1}.Validate(),
		ErrInvalidConfig)

	_, err := NewOnline(corridor(t), constant(chain.Right), Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOnlineGreedy(t *testing.T) {
	c := corridor(t)
	v, err := dp.ValueIteration(c, dp.DefaultConfig())
	require.NoError(t, err)

	dir := t.TempDir()
	returns := tracker.NewReturn(filepath.Join(dir, "returns.bin"))
	lengths := tracker.NewEpisodeLength(filepath.Join(dir, "lengths.bin"))

	e, err := NewOnline(c, policy.NewStateValueGreedy(c, v),
		Config{Episodes: 3, MaxEpisodeSteps: 10}, returns)
	require.NoError(t, err)
	e.Register(lengths)

	var progress bytes.Buffer
	e.ShowProgress(&progress)
	require.NoError(t, e.Run())
	require.NoError(t, e.Save())

	started, truncated := e.Episodes()
	assert.Equal(t, 3, started)
	assert.Zero(t, truncated)
	assert.Contains(t, progress.String(), "[100.00%")

	data, err := tracker.LoadData(filepath.Join(dir, "returns.bin"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, data)
	assert.Equal(t, []float64{2, 2, 2}, lengths.Data())
}

func TestOnlineStepLimit(t *testing.T) {
	returns := tracker.NewReturn(filepath.Join(t.TempDir(), "returns.bin"))
	e, err := NewOnline(corridor(t), constant(chain.Left),
		Config{Episodes: 2, MaxEpisodeSteps: 5}, returns)
	require.NoError(t, err)

	finished, err := e.RunEpisode()
	require.NoError(t, err)
	assert.False(t, finished)

	require.NoError(t, e.Run())
	started, truncated := e.Episodes()
	assert.Equal(t, 3, started)
	assert.Equal(t, 3, truncated)
	assert.Empty(t, returns.Data())
}

func TestOnlineErrors(t *testing.T) {
	e, err := NewOnline(corridor(t), constant(""), DefaultConfig())
	require.NoError(t, err)
	assert.Error(t, e.Run())

	e, err = NewOnline(corridor(t), constant("jump"), DefaultConfig())
	require.NoError(t, err)
	_, err = e.RunEpisode()
	assert.Error(t, err)
}
