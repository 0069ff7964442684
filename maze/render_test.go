package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOneByOne(t *testing.T) {
	g := newPassageGraph(1, 1)
	m := newMaze(g, CellPosition{}, CellPosition{})

	lines := m.Render(nil, nil)
	assert.Equal(t, []string{
		"###",
		"#S#",
		"###",
	}, lines, "start wins over end when the two coincide")
}

func TestRenderDimensionsAndGlyphs(t *testing.T) {
	g := fullTwoByTwo()
	m := newMaze(g, CellPosition{X: 0, Y: 0}, CellPosition{X: 1, Y: 1})

	lines := m.Render(nil, nil)
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Len(t, line, 5)
	}
	assert.Equal(t, "#####", lines[0])
	assert.Equal(t, "#S  #", lines[1], "the carved wall between the top cells is open")
	assert.Equal(t, "# # #", lines[2], "the center junction always stays closed")
	assert.Equal(t, "#  E#", lines[3])
	assert.Equal(t, "#####", lines[4])
}

func TestRenderOverlay(t *testing.T) {
	g := fullTwoByTwo()
	start := CellPosition{X: 0, Y: 0}
	end := CellPosition{X: 1, Y: 1}
	m := newMaze(g, start, end)

	t.Run("footsteps mark open interiors only", func(t *testing.T) {
		lines := m.Render([]CellPosition{{X: 1, Y: 0}, {X: 0, Y: 1}}, nil)
		assert.Equal(t, byte(GlyphFootstep), lines[1][3])
		assert.Equal(t, byte(GlyphFootstep), lines[3][1])
		// Walls and junctions are untouched.
		assert.Equal(t, "#####", lines[0])
		assert.Equal(t, "#####", lines[4])
	})

	t.Run("footsteps never cover start or end", func(t *testing.T) {
		lines := m.Render([]CellPosition{start, end}, nil)
		assert.Equal(t, byte(GlyphStart), lines[1][1])
		assert.Equal(t, byte(GlyphEnd), lines[3][3])
	})

	t.Run("highlight beats every marker", func(t *testing.T) {
		lines := m.Render(nil, &start)
		assert.Equal(t, byte(GlyphPlayer), lines[1][1])
	})

	t.Run("out of bounds coordinates are ignored", func(t *testing.T) {
		base := m.Render(nil, nil)
		bogus := CellPosition{X: 40, Y: -2}
		lines := m.Render([]CellPosition{{X: -1, Y: 0}, {X: 2, Y: 2}}, &bogus)
		assert.Equal(t, base, lines)
	})
}

func TestRenderIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, start, end := generateDFS(6, 6, rng)
	m := newMaze(g, start, end)

	overlay := m.ShortestPath()
	highlight := m.Start()
	first := m.Render(overlay, &highlight)
	second := m.Render(overlay, &highlight)
	assert.Equal(t, first, second)
}

func TestRenderSolutionOverlayStaysInsideCells(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, start, end := generateDFS(5, 8, rng)
	m := newMaze(g, start, end)

	lines := m.Render(m.ShortestPath(), nil)
	for r, line := range lines {
		if i := strings.IndexByte(line, GlyphFootstep); i >= 0 {
			assert.Equal(t, 1, r%2, "footstep on an even row")
			assert.Equal(t, 1, i%2, "footstep on an even column")
		}
	}
}
