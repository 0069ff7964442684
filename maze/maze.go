/*
Package maze generates rectangular mazes and answers questions about them.

A maze is built once by one of two randomized generators (depth-first search
or Kruskal), which carve symmetric passages between adjacent cells of an
implicit grid graph and pick a start and an end cell from opposite quadrants.
Construction also derives everything callers may ask for later: a
doubled-resolution render grid, a solvability flag, and one shortest
start-to-end path. A Maze is immutable after construction and therefore safe
to read from any number of goroutines.
*/
package maze

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInvalidDimension reports a requested maze smaller than one cell on
// either axis.
var ErrInvalidDimension = errors.New("maze dimensions must be at least 1x1")

// Maze is a generated maze together with its derived views. All fields are
// fixed at construction; a "new maze" is always a new value.
type Maze struct {
	height   int
	width    int
	graph    *passageGraph
	start    CellPosition
	end      CellPosition
	grid     [][]CellState
	solvable bool
	path     []CellPosition
}

func newMaze(g *passageGraph, start, end CellPosition) *Maze {
	path, ok := solve(g, start, end)
	return &Maze{
		height:   g.height,
		width:    g.width,
		graph:    g,
		start:    start,
		end:      end,
		grid:     buildRenderGrid(g, start, end),
		solvable: ok,
		path:     path,
	}
}

// Height returns the number of cell rows.
func (m *Maze) Height() int { return m.height }

// Width returns the number of cell columns.
func (m *Maze) Width() int { return m.width }

// Start returns the generated entry cell.
func (m *Maze) Start() CellPosition { return m.start }

// End returns the generated goal cell.
func (m *Maze) End() CellPosition { return m.end }

// Solvable reports whether the end cell is reachable from the start cell.
// An unsolvable maze is a normal outcome for Kruskal generation, not an
// error; callers decide whether to regenerate.
func (m *Maze) Solvable() bool { return m.solvable }

// ShortestPath returns a copy of one shortest start-to-end path, inclusive
// of both endpoints, or nil when the maze is unsolvable.
func (m *Maze) ShortestPath() []CellPosition {
	if m.path == nil {
		return nil
	}
	path := make([]CellPosition, len(m.path))
	copy(path, m.path)
	return path
}

// CanMove reports whether a passage exists from the given cell in direction
// d. Out-of-bounds cells have no passages.
func (m *Maze) CanMove(from CellPosition, d Direction) bool {
	return m.graph.hasPassage(from, d)
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// lowerQuadrantCell draws uniformly from the smaller-index half of both
// axes. The half is clamped to at least one cell so degenerate dimensions
// still yield a valid coordinate.
func lowerQuadrantCell(height, width int, rng *rand.Rand) CellPosition {
	return CellPosition{
		X: rng.Intn(max(width/2, 1)),
		Y: rng.Intn(max(height/2, 1)),
	}
}

// upperQuadrantCell draws uniformly from the larger-index half of both axes.
func upperQuadrantCell(height, width int, rng *rand.Rand) CellPosition {
	return CellPosition{
		X: width/2 + rng.Intn(width-width/2),
		Y: height/2 + rng.Intn(height-height/2),
	}
}
