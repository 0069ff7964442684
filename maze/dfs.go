package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// GenerateDFS builds a maze with randomized depth-first search. The carved
// graph is a spanning tree of the grid, so every cell is reachable from
// every other and the result is always solvable.
func GenerateDFS(height, width int) (*Maze, error) {
	if height < 1 || width < 1 {
		return nil, ErrInvalidDimension
	}
	g, start, end := generateDFS(height, width, newRNG())
	return newMaze(g, start, end), nil
}

func generateDFS(height, width int, rng *rand.Rand) (g *passageGraph, start, end CellPosition) {
	g = newPassageGraph(height, width)
	start = lowerQuadrantCell(height, width, rng)

	visited := mapset.New[CellPosition]()
	visited.Put(start)
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var candidates []Direction
		for _, d := range Directions {
			if n := current.Step(d); g.contains(n) && !visited.Has(n) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			continue // dead end, backtrack to whatever is below on the stack
		}

		// Re-push the current cell so its remaining neighbors get a turn
		// after the branch below it is exhausted.
		stack = append(stack, current)
		d := candidates[rng.Intn(len(candidates))]
		next := current.Step(d)
		g.carve(current, d)
		visited.Put(next)
		stack = append(stack, next)
	}

	return g, start, upperQuadrantCell(height, width, rng)
}
