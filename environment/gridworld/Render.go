package gridworld

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/mat"
)

// Agent is the character the agent is rendered as
const Agent = 'A'

var arrows = map[string]string{
	Up:    "^",
	Down:  "v",
	Left:  "<",
	Right: ">",
}

// Render writes the map with the agent's current position to w
func (g *GridWorld) Render(w io.Writer) error {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		for j := 0; j < g.c; j++ {
			state := g.State(i, j)
			if state == g.position {
				b.WriteString(g.au.Bold(g.au.Yellow(string(Agent))).String())
				continue
			}
			b.WriteString(g.paint(g.cells[state], string(g.cells[state])))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatValues formats a state-value table laid out over the grid. Wall
// cells are left blank.
func (g *GridWorld) FormatValues(values mat.Vector) string {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		for j := 0; j < g.c; j++ {
			state := g.State(i, j)
			if j > 0 {
				b.WriteString(g.au.White("|").String())
			}

			if g.cells[state] == Wall {
				b.WriteString(g.paint(Wall, strings.Repeat("#", 7)))
				continue
			}
			b.WriteString(g.paint(g.cells[state],
				fmt.Sprintf("%7.2f", values.AtVec(state))))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatPolicy formats a policy laid out over the grid. Actions holds the
// action chosen in each state; terminal and wall cells are shown as
// their map character.
func (g *GridWorld) FormatPolicy(actions []string) string {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		for j := 0; j < g.c; j++ {
			state := g.State(i, j)
			cell := g.cells[state]
			if cell == Wall || cell.Terminal() {
				b.WriteString(g.paint(cell, string(cell)))
				continue
			}

			arrow, ok := arrows[actions[state]]
			if !ok {
				arrow = "?"
			}
			b.WriteString(g.paint(cell, arrow))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// paint colours s according to the type of cell it represents
func (g *GridWorld) paint(c Cell, s string) string {
	var v aurora.Value
	switch c {
	case Wall:
		v = g.au.Blue(s)
	case Goal:
		v = g.au.Green(s)
	case Pit:
		v = g.au.Red(s)
	case Start:
		v = g.au.Cyan(s)
	default:
		v = g.au.White(s)
	}
	return v.String()
}
