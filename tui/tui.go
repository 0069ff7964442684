/*
Package tui runs the interactive terminal game: it draws session frames
centered on the terminal, colorizes the maze glyphs, and reads single-letter
commands from standard input.
*/
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/yared-h/maze-quest/config"
	"github.com/yared-h/maze-quest/game"
	"github.com/yared-h/maze-quest/maze"
)

const (
	defaultTermWidth = 80

	helpLine = "move: w/a/s/d   n: new maze   p: toggle solution   q: quit"
)

var keyDirections = map[string]maze.Direction{
	"w": maze.Up,
	"s": maze.Down,
	"a": maze.Left,
	"d": maze.Right,
}

// UI drives one player session at a time on a terminal.
type UI struct {
	cfg          game.SessionConfig
	in           *bufio.Scanner
	out          io.Writer
	logger       *logrus.Logger
	showSolution bool
}

// New creates a UI reading from stdin and writing to stdout.
func New(cfg game.SessionConfig, logger *logrus.Logger) *UI {
	return &UI{
		cfg:    cfg,
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
		logger: logger,
	}
}

// Run loops until the player quits or input ends. Every "new maze" command
// swaps in a freshly constructed session; the old maze is never touched.
func (u *UI) Run() error {
	session, err := game.NewSession(u.cfg)
	if err != nil {
		return err
	}

	for {
		u.draw(session)

		if !u.in.Scan() {
			return u.in.Err()
		}
		switch cmd := strings.ToLower(strings.TrimSpace(u.in.Text())); cmd {
		case "q":
			return nil
		case "n":
			session, err = game.NewSession(u.cfg)
			if err != nil {
				return err
			}
			u.showSolution = false
		case "p":
			u.showSolution = !u.showSolution
		default:
			d, ok := keyDirections[cmd]
			if !ok {
				continue
			}
			if err := session.Move(d); err != nil {
				u.logger.WithField("direction", d).Debug(err)
			}
		}
	}
}

func (u *UI) draw(s *game.Session) {
	fmt.Fprint(u.out, "\033[2J\033[H") // clear screen, cursor home
	for _, line := range s.Frame(u.showSolution) {
		u.printCentered(colorize(line))
	}
	fmt.Fprintln(u.out)
	if s.Won() {
		u.printCentered(config.ColorGreen +
			fmt.Sprintf("You escaped in %d moves! Press n for a new maze.", s.Moves()) +
			config.ColorReset)
	}
	u.printCentered(helpLine)
}

// colorize wraps the marker glyphs in ANSI colors, leaving walls plain.
func colorize(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case maze.GlyphStart:
			b.WriteString(config.ColorGreen)
		case maze.GlyphEnd:
			b.WriteString(config.ColorRed)
		case maze.GlyphPlayer:
			b.WriteString(config.ColorCyan)
		case maze.GlyphFootstep:
			b.WriteString(config.ColorYellow)
		default:
			b.WriteByte(line[i])
			continue
		}
		b.WriteByte(line[i])
		b.WriteString(config.ColorReset)
	}
	return b.String()
}

func (u *UI) printCentered(line string) {
	pad := (u.terminalWidth() - visibleLen(line)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(u.out, strings.Repeat(" ", pad)+line)
}

// visibleLen counts the printable characters of a line, skipping ANSI
// escape sequences.
func visibleLen(line string) int {
	n := 0
	for i := 0; i < len(line); i++ {
		if line[i] == '\033' {
			for i < len(line) && line[i] != 'm' {
				i++
			}
			continue
		}
		n++
	}
	return n
}

func (u *UI) terminalWidth() int {
	f, ok := u.out.(*os.File)
	if !ok {
		return defaultTermWidth
	}
	width, _, err := terminal.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
