package maze

// CellState is the content of one position in the doubled-resolution render
// grid. Even rows and columns hold wall junctions and wall segments, odd
// rows and columns hold cell interiors and inter-cell openings.
type CellState int

const (
	StateClosed CellState = iota
	StateOpen
	StateStart
	StateEnd
)

// Glyphs used by Render. Consumers that colorize output key off these.
const (
	GlyphWall     byte = '#'
	GlyphOpen     byte = ' '
	GlyphStart    byte = 'S'
	GlyphEnd      byte = 'E'
	GlyphFootstep byte = '.'
	GlyphPlayer   byte = '@'
)

// buildRenderGrid maps the passage graph onto a (2h+1) x (2w+1) grid. Cell
// (x, y) occupies position (2x+1, 2y+1); each carved passage opens the wall
// segment between the two interiors it joins.
func buildRenderGrid(g *passageGraph, start, end CellPosition) [][]CellState {
	grid := make([][]CellState, 2*g.height+1)
	for r := range grid {
		grid[r] = make([]CellState, 2*g.width+1) // zero value is StateClosed
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			grid[2*y+1][2*x+1] = StateOpen
			for _, d := range Directions {
				if g.cells[y][x][d] {
					dx, dy := d.Delta()
					grid[2*y+1+dy][2*x+1+dx] = StateOpen
				}
			}
		}
	}
	// Start takes precedence when start and end coincide.
	grid[2*end.Y+1][2*end.X+1] = StateEnd
	grid[2*start.Y+1][2*start.X+1] = StateStart
	return grid
}

// Render turns the maze into printable lines, one per render row. The
// overlay marks previously visited cells and the highlight marks a current
// cell; both are optional and affect only cell interiors, with precedence
// highlight > start > end > footstep. Coordinates outside the grid are
// silently ignored. Render is pure: identical arguments on the same maze
// always produce identical lines.
func (m *Maze) Render(overlay []CellPosition, highlight *CellPosition) []string {
	rows := make([][]byte, len(m.grid))
	for r, stateRow := range m.grid {
		row := make([]byte, len(stateRow))
		for c, s := range stateRow {
			switch s {
			case StateOpen:
				row[c] = GlyphOpen
			case StateStart:
				row[c] = GlyphStart
			case StateEnd:
				row[c] = GlyphEnd
			default:
				row[c] = GlyphWall
			}
		}
		rows[r] = row
	}

	for _, p := range overlay {
		if !inBounds(p.X, p.Y, m.width, m.height) {
			continue
		}
		if cell := &rows[2*p.Y+1][2*p.X+1]; *cell == GlyphOpen {
			*cell = GlyphFootstep
		}
	}
	if h := highlight; h != nil && inBounds(h.X, h.Y, m.width, m.height) {
		rows[2*h.Y+1][2*h.X+1] = GlyphPlayer
	}

	lines := make([]string, len(rows))
	for r, row := range rows {
		lines[r] = string(row)
	}
	return lines
}
