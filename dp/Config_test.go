package dp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		conf  Config
		valid bool
	}{
		{"default", DefaultConfig(), true},
		{"discounted", Config{Gamma: 0.9, Theta: 1e-6}, true},
		{"capped", Config{Gamma: 1, Theta: 0.1, MaxSweeps: 5}, true},
		{"zero gamma", Config{Gamma: 0, Theta: 0.1}, false},
		{"gamma above one", Config{Gamma: 1.01, Theta: 0.1}, false},
		{"negative theta", Config{Gamma: 1, Theta: -0.1}, false},
		{"negative sweeps", Config{Gamma: 1, Theta: 0.1, MaxSweeps: -1}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.conf.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestConfigJSON(t *testing.T) {
	var conf Config
	err := json.Unmarshal([]byte(`{"gamma": 0.95, "theta": 0.01, "max_sweeps": 100}`),
		&conf)
	require.NoError(t, err)

	assert.Equal(t, Config{Gamma: 0.95, Theta: 0.01, MaxSweeps: 100}, conf)
}

func TestTables(t *testing.T) {
	v := NewStateValues([]float64{1, 2, 3})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2.0, v.At(1))
	assert.Equal(t, 0, v.Sweeps())

	vec := v.Vector()
	vec.SetVec(0, 10)
	assert.Equal(t, 1.0, v.At(0), "Vector must return a copy")

	q := NewActionValues([][]float64{{1, 3}, {4, 2}})
	states, actions := q.Dims()
	assert.Equal(t, 2, states)
	assert.Equal(t, 2, actions)
	assert.Equal(t, 3.0, q.Max(0))
	assert.Equal(t, 4.0, q.Max(1))
	assert.Equal(t, []float64{4, 2}, q.Row(1).RawVector().Data)

	m := q.Matrix()
	m.Set(0, 0, 10)
	assert.Equal(t, 1.0, q.At(0, 0), "Matrix must return a copy")

	states, actions = NewActionValues(nil).Dims()
	assert.Zero(t, states)
	assert.Zero(t, actions)
	assert.Zero(t, NewStateValues(nil).Len())
}
