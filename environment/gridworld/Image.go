package gridworld

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/mat"
)

// DefaultCellSize is the default side length in pixels of a cell in
// images drawn with DrawValues
const DefaultCellSize = 48

// DrawValues draws a heat map of a state-value table over the grid and
// writes it to w as a PNG. Low values are drawn red, high values green.
func (g *GridWorld) DrawValues(w io.Writer, values mat.Vector,
	cellSize int) error {
	if values.Len() != g.NumStates() {
		return fmt.Errorf("drawValues: have %d values for %d states",
			values.Len(), g.NumStates())
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	// Find the value range over enterable cells
	low, high := math.Inf(1), math.Inf(-1)
	for state, cell := range g.cells {
		if cell == Wall {
			continue
		}
		low = math.Min(low, values.AtVec(state))
		high = math.Max(high, values.AtVec(state))
	}

	size := float64(cellSize)
	dc := gg.NewContext(g.c*cellSize, g.r*cellSize)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	for state, cell := range g.cells {
		row, col := g.Coordinates(state)
		x, y := float64(col)*size, float64(row)*size

		dc.DrawRectangle(x, y, size, size)
		if cell == Wall {
			dc.SetRGB(0.2, 0.2, 0.2)
			dc.Fill()
			continue
		}

		frac := 0.5
		if high > low {
			frac = (values.AtVec(state) - low) / (high - low)
		}
		dc.SetRGB(1-frac, frac, 0.2)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.Stroke()

		label := fmt.Sprintf("%.1f", values.AtVec(state))
		if cell.Terminal() {
			label = string(cell)
		}
		dc.DrawStringAnchored(label, x+size/2, y+size/2, 0.5, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("drawValues: could not encode image: %w", err)
	}
	return nil
}
