package maze

import (
	"math/rand"

	"github.com/spakin/disjoint"
)

// GenerateKruskal builds a maze Kruskal-style: cells are visited in a random
// order and each may carve one passage to a neighbor belonging to a
// different connected component. Unlike GenerateDFS this does not guarantee
// a single component, so the result can be unsolvable; callers must check
// Solvable and regenerate if they need a walkable maze.
func GenerateKruskal(height, width int) (*Maze, error) {
	if height < 1 || width < 1 {
		return nil, ErrInvalidDimension
	}
	g, start, end := generateKruskal(height, width, newRNG())
	return newMaze(g, start, end), nil
}

func generateKruskal(height, width int, rng *rand.Rand) (g *passageGraph, start, end CellPosition) {
	g = newPassageGraph(height, width)

	// One disjoint-set element per cell tracks component membership, so a
	// passage is never carved between cells that are already connected,
	// directly or transitively.
	sets := make([][]*disjoint.Element, height)
	for y := range sets {
		sets[y] = make([]*disjoint.Element, width)
		for x := range sets[y] {
			sets[y][x] = disjoint.NewElement()
		}
	}

	// A single up-front shuffle is distribution-equivalent to repeatedly
	// drawing and removing a uniformly random remaining cell.
	order := make([]CellPosition, 0, height*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			order = append(order, CellPosition{X: x, Y: y})
		}
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, cell := range order {
		var candidates []Direction
		for _, d := range Directions {
			if n := cell.Step(d); g.contains(n) && !g.hasPassage(cell, d) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		n := cell.Step(d)
		if sets[cell.Y][cell.X].Find() == sets[n.Y][n.X].Find() {
			continue // already connected
		}
		g.carve(cell, d)
		disjoint.Union(sets[cell.Y][cell.X], sets[n.Y][n.X])
	}

	return g, lowerQuadrantCell(height, width, rng), upperQuadrantCell(height, width, rng)
}
