package maze

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"
)

func TestGenerateKruskalRejectsInvalidDimensions(t *testing.T) {
	_, err := GenerateKruskal(0, 4)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = GenerateKruskal(4, 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestGenerateKruskalProperties(t *testing.T) {
	sizes := []struct{ height, width int }{
		{1, 1}, {1, 6}, {3, 3}, {7, 11}, {15, 15},
	}
	for _, size := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			name := fmt.Sprintf("%dx%d seed %d", size.height, size.width, seed)
			t.Run(name, func(t *testing.T) {
				rng := rand.New(rand.NewSource(seed))
				g, start, end := generateKruskal(size.height, size.width, rng)

				assertSymmetricPassages(t, g)

				// No passage is ever carved between already-connected cells,
				// so the graph is a forest: edges = cells - components.
				cells := size.height * size.width
				assert.Equal(t, cells-countComponents(g), countPassages(g))

				// Solvability must agree with actual reachability.
				m := newMaze(g, start, end)
				assert.Equal(t, reachableFrom(g, start).Has(end), m.Solvable())
				if !m.Solvable() {
					assert.Nil(t, m.ShortestPath())
				}
			})
		}
	}
}

// countPassages counts undirected edges; every edge is stored as two
// half-edges.
func countPassages(g *passageGraph) int {
	halves := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			for _, d := range Directions {
				if g.cells[y][x][d] {
					halves++
				}
			}
		}
	}
	return halves / 2
}

func countComponents(g *passageGraph) int {
	seen := mapset.New[CellPosition]()
	components := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := CellPosition{X: x, Y: y}
			if seen.Has(p) {
				continue
			}
			components++
			reachableFrom(g, p).Each(func(c CellPosition) {
				seen.Put(c)
			})
		}
	}
	return components
}
