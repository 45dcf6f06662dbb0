package matutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMaxVec(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"single", []float64{3}, 0},
		{"last", []float64{1, 2, 3}, 2},
		{"first of ties", []float64{1, 5, 5, 2}, 1},
		{"all equal", []float64{0, 0, 0}, 0},
		{"negative", []float64{-3, -1, -2}, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := mat.NewVecDense(len(test.values), test.values)
			assert.Equal(t, test.want, MaxVec(v))
		})
	}
}

func TestFormat(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	formatted := Format(m)
	assert.Contains(t, formatted, "1  2")
	assert.Contains(t, formatted, "3  4")
	assert.Equal(t, 1, strings.Count(formatted, "\n"))
}
