package maze

// passages records, for one cell, the directions in which an opening to the
// neighboring cell exists.
type passages [dirCount]bool

// passageGraph is the adjacency structure of a maze. Openings are always
// carved in symmetric pairs, so the graph is undirected even though each cell
// stores its own half-edges. Generators build it once; it is read-only
// afterward.
type passageGraph struct {
	width  int
	height int
	cells  [][]passages
}

func newPassageGraph(height, width int) *passageGraph {
	cells := make([][]passages, height)
	for y := range cells {
		cells[y] = make([]passages, width)
	}
	return &passageGraph{width: width, height: height, cells: cells}
}

func (g *passageGraph) contains(p CellPosition) bool {
	return inBounds(p.X, p.Y, g.width, g.height)
}

// carve opens the wall between p and its neighbor in direction d, on both
// sides. The neighbor must be in bounds.
func (g *passageGraph) carve(p CellPosition, d Direction) {
	n := p.Step(d)
	g.cells[p.Y][p.X][d] = true
	g.cells[n.Y][n.X][d.Opposite()] = true
}

func (g *passageGraph) hasPassage(p CellPosition, d Direction) bool {
	return g.contains(p) && g.cells[p.Y][p.X][d]
}

// openNeighbors returns the cells reachable from p through carved passages.
func (g *passageGraph) openNeighbors(p CellPosition) []CellPosition {
	var out []CellPosition
	for _, d := range Directions {
		if g.cells[p.Y][p.X][d] {
			out = append(out, p.Step(d))
		}
	}
	return out
}
