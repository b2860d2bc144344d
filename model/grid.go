package model

import "fmt"

// RandMax is the largest value an injected random source may produce for
// interior randomization; draws are taken from [0, RandMax].
const RandMax = 32767

// Rand is the random source RandomizeInterior draws from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

/*
Grid holds the live/dead state of every cell in a fixed-size rectangular
field, including a one-cell border (row 0, row height-1, column 0,
column width-1) that the simulation rule reads but never writes.

Cells are stored row-major in a flat slice indexed y*width+x. Coordinates
are (y, x): y selects the row, x the column.
*/
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a grid with the given dimensions, all cells dead.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// index converts (y, x) to a flat offset, failing fast on out-of-range
// coordinates.
func (g *Grid) index(y, x int) int {
	if y < 0 || y >= g.height || x < 0 || x >= g.width {
		panic(fmt.Sprintf("model: cell (%d,%d) out of range for %dx%d grid", y, x, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the state of the cell at (y, x).
func (g *Grid) Get(y, x int) bool {
	return g.cells[g.index(y, x)]
}

// Set writes the state of the cell at (y, x).
func (g *Grid) Set(y, x int, alive bool) {
	g.cells[g.index(y, x)] = alive
}

// Fill sets every cell, border included, to the given state.
func (g *Grid) Fill(alive bool) {
	for i := range g.cells {
		g.cells[i] = alive
	}
}

/*
RandomizeInterior seeds every interior cell from src: a draw below limit
makes the cell dead, anything else alive. Border cells are left untouched.

limit ranges over [0, RandMax]: 0 fills the interior completely, RandMax
leaves very few live cells. Draws are taken uniformly from [0, RandMax].
*/
func (g *Grid) RandomizeInterior(limit int, src Rand) {
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			g.cells[y*g.width+x] = src.Intn(RandMax+1) >= limit
		}
	}
}

// Population returns the number of live cells in the grid.
func (g *Grid) Population() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]bool, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have identical dimensions and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, alive := range g.cells {
		if alive != other.cells[i] {
			return false
		}
	}
	return true
}
