package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvergence(t *testing.T) {
	var buf bytes.Buffer
	err := Convergence(&buf, "corridor",
		Series{Name: "VI", Deltas: []float64{1, 1, 0}},
		Series{Name: "QI", Deltas: []float64{1, 0}},
	)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "corridor")
	assert.Contains(t, html, `"VI"`)
	assert.Contains(t, html, `"QI"`)
}

func TestConvergenceEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Convergence(&buf, "empty"))
	assert.Zero(t, buf.Len())
}
