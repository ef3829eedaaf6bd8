package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/minesweep/game"
)

// scriptedDirector replays a fixed move list.
type scriptedDirector struct {
	moves []game.Move
}

func (director *scriptedDirector) Act(*game.Board) (game.Move, bool) {
	if len(director.moves) == 0 {
		return game.Move{}, false
	}
	move := director.moves[0]
	director.moves = director.moves[1:]
	return move, true
}

func newTestGame(t *testing.T, rows, cols int, mines ...game.Cell) (*Game, *bytes.Buffer) {
	t.Helper()

	board, err := game.NewWithMines(rows, cols, mines...)
	require.NoError(t, err)

	g := NewGame(board)
	out := &bytes.Buffer{}
	g.out = out
	return g, out
}

func TestApplyRevealingMineEndsGame(t *testing.T) {
	g, out := newTestGame(t, 1, 2, game.Cell{Row: 0, Col: 0})

	done := g.apply(game.Move{Cell: game.Cell{Row: 0, Col: 0}, Action: game.ActionReveal})

	assert.True(t, done)
	assert.Contains(t, out.String(), "Boom")
	// The end-of-game display unmasks the mine.
	assert.Contains(t, out.String(), "*")
}

func TestApplyWinningRevealEndsGame(t *testing.T) {
	g, out := newTestGame(t, 1, 2, game.Cell{Row: 0, Col: 0})

	done := g.apply(game.Move{Cell: game.Cell{Row: 0, Col: 1}, Action: game.ActionReveal})

	assert.True(t, done)
	assert.Contains(t, out.String(), "You win!")
}

func TestApplyFlagContinuesGame(t *testing.T) {
	g, out := newTestGame(t, 1, 2, game.Cell{Row: 0, Col: 0})

	done := g.apply(game.Move{Cell: game.Cell{Row: 0, Col: 0}, Action: game.ActionFlag})

	assert.False(t, done)
	assert.True(t, g.Board.IsFlagged(0, 0))
	assert.Empty(t, out.String())
}

func TestRunDirectorPlaysToWin(t *testing.T) {
	g, out := newTestGame(t, 3, 1, game.Cell{Row: 2, Col: 0})
	g.Director = &scriptedDirector{moves: []game.Move{
		{Cell: game.Cell{Row: 0, Col: 0}, Action: game.ActionReveal},
	}}

	require.NoError(t, g.Run())
	assert.Contains(t, out.String(), "You win!")
}

func TestRunDirectorStopsWhenOutOfMoves(t *testing.T) {
	g, _ := newTestGame(t, 2, 2, game.Cell{Row: 0, Col: 0})
	g.Director = &scriptedDirector{}

	assert.NoError(t, g.Run())
}
