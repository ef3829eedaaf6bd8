package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/minesweep/game"
)

// Game owns the interactive loop around a single board: it parses and
// validates player input, renders after every change, and stops the loop on
// a mine hit, a win, or an explicit quit. All game logic stays in the
// board; the Game holds no grid state of its own.
type Game struct {
	Board *game.Board

	// Director, when set, plays the board instead of the prompt loop.
	Director game.Director
	// DirectorDelay paces director moves so a playout can be watched.
	DirectorDelay time.Duration

	out io.Writer
}

func NewGame(board *game.Board) *Game {
	return &Game{
		Board: board,
		out:   os.Stdout,
	}
}

// Run plays the board until it is finished or the player quits.
func (g *Game) Run() error {
	if g.Director != nil {
		return g.runDirector()
	}
	return g.runInteractive()
}

func (g *Game) runInteractive() error {
	rl, err := readline.New("> ")
	if err != nil {
		return fmt.Errorf("open prompt: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(g.out, "Commands: r <row> <col> to reveal, f <row> <col> to flag, q to quit.")

	for {
		g.printBoard(false)

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		cmd, ok := parseCommand(line)
		if !ok {
			fmt.Fprintln(g.out, "Unrecognized command; use r <row> <col>, f <row> <col>, or q.")
			continue
		}
		if cmd.quit {
			return nil
		}
		if !g.Board.InBounds(cmd.row, cmd.col) {
			fmt.Fprintf(g.out, "(%d, %d) is outside the %dx%d board.\n",
				cmd.row, cmd.col, g.Board.Rows(), g.Board.Cols())
			continue
		}

		move := game.Move{Cell: game.Cell{Row: cmd.row, Col: cmd.col}, Action: cmd.action}
		if done := g.apply(move); done {
			return nil
		}
	}
}

func (g *Game) runDirector() error {
	for {
		move, ok := g.Director.Act(g.Board)
		if !ok {
			logrus.Warn("director has no legal moves left")
			return nil
		}

		logrus.WithFields(logrus.Fields{
			"action": move.Action,
			"row":    move.Cell.Row,
			"col":    move.Cell.Col,
		}).Info("director move")

		if done := g.apply(move); done {
			return nil
		}

		g.printBoard(false)
		if g.DirectorDelay > 0 {
			time.Sleep(g.DirectorDelay)
		}
	}
}

// apply performs one move and reports whether the game is over. The board
// itself has no terminal gate; the loop stops issuing moves once a reveal
// comes back unsafe or the win condition holds.
func (g *Game) apply(move game.Move) (done bool) {
	switch move.Action {
	case game.ActionFlag:
		g.Board.ToggleFlag(move.Cell.Row, move.Cell.Col)
	case game.ActionReveal:
		if safe := g.Board.Reveal(move.Cell.Row, move.Cell.Col); !safe {
			g.printBoard(true)
			fmt.Fprintln(g.out, "Boom! You hit a mine.")
			return true
		}
	}

	if g.Board.IsWon() {
		g.printBoard(true)
		fmt.Fprintln(g.out, "All safe cells revealed. You win!")
		return true
	}
	return false
}

func (g *Game) printBoard(showMines bool) {
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, Render(g.Board, showMines))
	fmt.Fprintf(g.out, "Mines left: %d\n", g.Board.NumMines()-g.Board.NumFlags())
}
