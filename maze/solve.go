package maze

import "slices"

// solve computes one shortest start-to-end path over the passage graph.
// Every passage costs one step, so a breadth-first search finds shortest
// distances; predecessors recorded during the search reconstruct the path.
// The returned path includes both endpoints and is nil when end is
// unreachable. Which of several equal-length paths is returned is
// unspecified.
func solve(g *passageGraph, start, end CellPosition) ([]CellPosition, bool) {
	dist := make([][]int, g.height)
	prev := make([][]CellPosition, g.height)
	for y := range dist {
		dist[y] = make([]int, g.width)
		prev[y] = make([]CellPosition, g.width)
		for x := range dist[y] {
			dist[y][x] = -1 // unreached
		}
	}

	dist[start.Y][start.X] = 0
	queue := []CellPosition{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			break
		}
		for _, n := range g.openNeighbors(cur) {
			if dist[n.Y][n.X] >= 0 {
				continue
			}
			dist[n.Y][n.X] = dist[cur.Y][cur.X] + 1
			prev[n.Y][n.X] = cur
			queue = append(queue, n)
		}
	}

	if dist[end.Y][end.X] < 0 {
		return nil, false
	}

	path := make([]CellPosition, 0, dist[end.Y][end.X]+1)
	for at := end; ; at = prev[at.Y][at.X] {
		path = append(path, at)
		if at == start {
			break
		}
	}
	slices.Reverse(path)
	return path, true
}
