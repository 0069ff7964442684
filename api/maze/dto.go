// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/google/uuid"
)

// GenerateRequest asks for one maze of the given dimensions.
type GenerateRequest struct {
	Height    int    `json:"height" binding:"required,min=1"`
	Width     int    `json:"width" binding:"required,min=1"`
	Algorithm string `json:"algorithm"` // "dfs" (default) or "kruskal"
}

// Position mirrors a maze cell coordinate in responses.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GenerateResponse carries one generated maze. Mazes are ephemeral; the ID
// identifies this response, not stored state.
type GenerateResponse struct {
	ID           uuid.UUID  `json:"id"`
	Height       int        `json:"height"`
	Width        int        `json:"width"`
	Start        Position   `json:"start"`
	End          Position   `json:"end"`
	Solvable     bool       `json:"solvable"`
	ShortestPath []Position `json:"shortest_path,omitempty"`
	Lines        []string   `json:"lines"`
}
