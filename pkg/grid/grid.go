// Package grid implements a fixed-size Conway's Game of Life board with
// toroidal wrapping. It is pure computation: no I/O, no host assumptions.
package grid

import "fmt"

// Cell is the state of a single board position. The numeric values matter:
// Alive cells sum directly when counting neighbors.
type Cell uint8

const (
	// Dead is an empty cell.
	Dead Cell = 0
	// Alive is a populated cell.
	Alive Cell = 1
)

// Coord addresses one cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Grid holds the cell sequence for one universe in row-major order. The zero
// value is not usable; construct with New. A Grid is not safe for concurrent
// use, but independent Grids share no state.
type Grid struct {
	width      int
	height     int
	generation int
	cells      []Cell
	next       []Cell
}

// New allocates a width x height grid, all Dead except the listed
// coordinates. Dimensions must be positive and every coordinate must satisfy
// 0 <= Row < height and 0 <= Col < width. Duplicate coordinates are
// idempotent.
func New(width, height int, alive []Coord) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid: dimensions must be positive, got %dx%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		next:   make([]Cell, width*height),
	}
	for _, c := range alive {
		if c.Row < 0 || c.Row >= height || c.Col < 0 || c.Col >= width {
			return nil, fmt.Errorf("grid: coordinate (%d,%d) outside %dx%d grid", c.Row, c.Col, width, height)
		}
		g.cells[g.Index(c.Row, c.Col)] = Alive
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Generation returns how many times Advance has completed.
func (g *Grid) Generation() int { return g.generation }

// Index returns the row-major slice index for (row, col). Arguments must be
// in range; callers holding untrusted coordinates should use At instead.
func (g *Grid) Index(row, col int) int { return row*g.width + col }

// At reads a single cell, rejecting out-of-range coordinates.
func (g *Grid) At(row, col int) (Cell, error) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return Dead, fmt.Errorf("grid: coordinate (%d,%d) outside %dx%d grid", row, col, g.width, g.height)
	}
	return g.cells[g.Index(row, col)], nil
}

// Snapshot copies the current cell sequence into dst, reallocating when the
// length does not match, and returns it. The internal buffer never escapes.
func (g *Grid) Snapshot(dst []Cell) []Cell {
	if len(dst) != len(g.cells) {
		dst = make([]Cell, len(g.cells))
	}
	copy(dst, g.cells)
	return dst
}

// AliveNeighborCount sums the eight wrapped neighbors of (row, col). Each
// offset wraps independently on its axis, so when width or height is 1 an
// offset can land back on the queried cell or revisit a neighbor: the lone
// live cell of a 1x1 grid has a count of 8.
func (g *Grid) AliveNeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			// Additive bias keeps the modulo result non-negative.
			nr := (row + dr + g.height) % g.height
			nc := (col + dc + g.width) % g.width
			count += int(g.cells[g.Index(nr, nc)])
		}
	}
	return count
}

// Transform applies the Life rule to one cell given its live-neighbor count.
func Transform(current Cell, aliveNeighbors int) Cell {
	switch {
	case current == Alive && (aliveNeighbors == 2 || aliveNeighbors == 3):
		return Alive
	case current == Dead && aliveNeighbors == 3:
		return Alive
	default:
		return Dead
	}
}

// Advance replaces every cell with its next-generation value. Neighbor counts
// are taken against the pre-step sequence only; results accumulate in a second
// buffer that is swapped in once complete, so no read ever mixes generations.
func (g *Grid) Advance() {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			idx := g.Index(row, col)
			g.next[idx] = Transform(g.cells[idx], g.AliveNeighborCount(row, col))
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}
