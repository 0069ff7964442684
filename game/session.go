// Package game tracks a single player's run through a generated maze:
// position, footstep history, move count, and the win condition. It also
// owns the regeneration policy for algorithms that can produce unsolvable
// mazes.
package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/yared-h/maze-quest/maze"
)

// Game-related errors.
var (
	ErrUnknownAlgorithm = errors.New("unknown maze algorithm")
	ErrNoSolvableMaze   = errors.New("no solvable maze produced within the attempt budget")
	ErrBlockedMove      = errors.New("a wall blocks that move")
	ErrSessionOver      = errors.New("session is already won")
)

// Algorithm selects which generator a session uses.
type Algorithm string

const (
	AlgorithmDFS     Algorithm = "dfs"
	AlgorithmKruskal Algorithm = "kruskal"
)

// defaultMaxAttempts bounds regeneration when the generator keeps producing
// unsolvable mazes. Kruskal can fail repeatedly for small grids; 25 draws
// make that astronomically unlikely to exhaust.
const defaultMaxAttempts = 25

// Generate runs the named algorithm once. The result may be unsolvable;
// see NewSession for the retrying variant.
func Generate(a Algorithm, height, width int) (*maze.Maze, error) {
	switch a {
	case "", AlgorithmDFS:
		return maze.GenerateDFS(height, width)
	case AlgorithmKruskal:
		return maze.GenerateKruskal(height, width)
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// SessionConfig holds the settings for creating a new session.
type SessionConfig struct {
	Height      int
	Width       int
	Algorithm   Algorithm // empty means AlgorithmDFS
	MaxAttempts int       // generation retries; 0 means the default budget
}

// Session is one player's run through one maze. The maze itself is
// immutable; restarting means constructing a whole new Session.
type Session struct {
	id        uuid.UUID
	maze      *maze.Maze
	pos       maze.CellPosition
	footsteps []maze.CellPosition
	moves     int
	won       bool
}

// NewSession generates a solvable maze and places the player on its start
// cell. Generation is retried while the maze comes out unsolvable, up to
// the configured attempt budget; exhausting the budget returns
// ErrNoSolvableMaze.
func NewSession(cfg SessionConfig) (*Session, error) {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	for i := 0; i < attempts; i++ {
		m, err := Generate(cfg.Algorithm, cfg.Height, cfg.Width)
		if err != nil {
			// Bad dimensions or algorithm never get better with retries.
			return nil, err
		}
		if !m.Solvable() {
			continue
		}
		return &Session{
			id:        uuid.New(),
			maze:      m,
			pos:       m.Start(),
			footsteps: []maze.CellPosition{m.Start()},
			won:       m.Start() == m.End(),
		}, nil
	}
	return nil, ErrNoSolvableMaze
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Maze returns the session's maze.
func (s *Session) Maze() *maze.Maze { return s.maze }

// Position returns the player's current cell.
func (s *Session) Position() maze.CellPosition { return s.pos }

// Moves returns how many moves the player has made.
func (s *Session) Moves() int { return s.moves }

// Won reports whether the player has reached the end cell.
func (s *Session) Won() bool { return s.won }

// Move walks the player one cell in direction d. It fails with
// ErrBlockedMove when no passage exists and with ErrSessionOver once the
// maze is already won.
func (s *Session) Move(d maze.Direction) error {
	if s.won {
		return ErrSessionOver
	}
	if !s.maze.CanMove(s.pos, d) {
		return ErrBlockedMove
	}
	s.pos = s.pos.Step(d)
	s.moves++
	s.footsteps = append(s.footsteps, s.pos)
	if s.pos == s.maze.End() {
		s.won = true
	}
	return nil
}

// Frame renders the maze with the player's footsteps as the overlay and the
// player's cell highlighted. With showSolution set, the shortest path
// replaces the footsteps.
func (s *Session) Frame(showSolution bool) []string {
	overlay := s.footsteps
	if showSolution {
		overlay = s.maze.ShortestPath()
	}
	pos := s.pos
	return s.maze.Render(overlay, &pos)
}
