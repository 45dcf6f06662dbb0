package gridworld

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Cell is the type of a single grid cell in a map
type Cell rune

// Cell types of a map
const (
	Floor Cell = '.'
	Wall  Cell = '#'
	Start Cell = 'S'
	Goal  Cell = 'G'
	Pit   Cell = 'P'
)

// Terminal returns whether an episode ends upon entering the cell
func (c Cell) Terminal() bool {
	return c == Goal || c == Pit
}

// parseCell converts a map character into a cell. Spaces are floor.
func parseCell(r rune) (Cell, bool) {
	switch Cell(r) {
	case Floor, Wall, Start, Goal, Pit:
		return Cell(r), true
	case ' ':
		return Floor, true
	}
	return 0, false
}

// Parse reads a map from r and returns the corresponding GridWorld. Each
// line of the input is a row of the map. Trailing empty lines are
// ignored.
func Parse(r io.Reader, rewards Rewards, seed uint64) (*GridWorld, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse: could not read map: %w", err)
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return New(rows, rewards, seed)
}

// Load reads the map file at path and returns the corresponding
// GridWorld
func Load(path string, rewards Rewards, seed uint64) (*GridWorld, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: could not open map: %w", err)
	}
	defer file.Close()

	g, err := Parse(file, rewards, seed)
	if err != nil {
		return nil, fmt.Errorf("load: %v: %w", path, err)
	}
	return g, nil
}

// parseRows converts the rows of a map into a flattened slice of cells
func parseRows(rows []string) (cells []Cell, r, c int, err error) {
	if len(rows) == 0 {
		return nil, 0, 0, fmt.Errorf("map is empty")
	}

	r, c = len(rows), len([]rune(rows[0]))
	if c == 0 {
		return nil, 0, 0, fmt.Errorf("row 0 is empty")
	}

	cells = make([]Cell, 0, r*c)
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != c {
			return nil, 0, 0, fmt.Errorf("row %d has length %d, want %d", i,
				len(runes), c)
		}

		for j, char := range runes {
			cell, ok := parseCell(char)
			if !ok {
				return nil, 0, 0, fmt.Errorf("unknown cell %q at (%d, %d)",
					char, i, j)
			}
			cells = append(cells, cell)
		}
	}
	return cells, r, c, nil
}
