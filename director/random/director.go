package random

import (
	"math/rand"

	"github.com/they4kman/minesweep/game"
)

// Director reveals a uniformly random cell that is neither revealed nor
// flagged.
type Director struct {
	// Rand is the source of randomness; nil uses the global source.
	Rand *rand.Rand
}

func (director *Director) Act(board *game.Board) (game.Move, bool) {
	candidates := make([]game.Cell, 0, board.NumCells())
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if !board.IsRevealed(row, col) && !board.IsFlagged(row, col) {
				candidates = append(candidates, game.Cell{Row: row, Col: col})
			}
		}
	}

	if len(candidates) == 0 {
		return game.Move{}, false
	}

	cell := candidates[director.intn(len(candidates))]
	return game.Move{Cell: cell, Action: game.ActionReveal}, true
}

func (director *Director) intn(n int) int {
	if director.Rand != nil {
		return director.Rand.Intn(n)
	}
	return rand.Intn(n)
}
