package constraint

import (
	"github.com/sirupsen/logrus"

	"github.com/they4kman/minesweep/director/random"
	"github.com/they4kman/minesweep/game"
)

// Observation captures what a single revealed numbered cell says about its
// unrevealed neighbors: numMines of the cells are mines.
type Observation struct {
	origin   game.Cell
	numMines int
	cells    []game.Cell
}

// Director plays moves deduced from single-cell observations:
//
//   - a numbered cell whose count is covered by its flagged neighbors makes
//     every other unrevealed neighbor safe to reveal;
//   - a numbered cell whose count equals its flagged plus unrevealed
//     neighbors makes every unrevealed neighbor a certain mine.
//
// When no deduction applies, it falls back to a random reveal.
type Director struct {
	Random random.Director
}

func (director *Director) Act(board *game.Board) (game.Move, bool) {
	for _, observation := range observe(board) {
		if len(observation.cells) == 0 {
			continue
		}

		switch observation.numMines {
		case 0:
			logrus.WithFields(logrus.Fields{
				"origin": observation.origin,
				"cell":   observation.cells[0],
			}).Debug("revealing provably safe cell")
			return game.Move{Cell: observation.cells[0], Action: game.ActionReveal}, true

		case len(observation.cells):
			logrus.WithFields(logrus.Fields{
				"origin": observation.origin,
				"cell":   observation.cells[0],
			}).Debug("flagging certain mine")
			return game.Move{Cell: observation.cells[0], Action: game.ActionFlag}, true
		}
	}

	logrus.Debug("no deduction applies; guessing")
	return director.Random.Act(board)
}

// observe collects an Observation for every revealed numbered cell that
// still has unrevealed neighbors, scanning the grid in row-major order so
// deductions are deterministic for a given board state.
func observe(board *game.Board) []Observation {
	var observations []Observation

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if !board.IsRevealed(row, col) {
				continue
			}

			count := board.NeighborCount(row, col)
			if count == 0 {
				continue
			}

			observation := Observation{
				origin:   game.Cell{Row: row, Col: col},
				numMines: count,
			}
			for neighbor := range board.Neighbors(observation.origin) {
				switch {
				case board.IsFlagged(neighbor.Row, neighbor.Col):
					observation.numMines--
				case !board.IsRevealed(neighbor.Row, neighbor.Col):
					observation.cells = append(observation.cells, neighbor)
				}
			}

			// A negative count means the player has over-flagged around
			// this cell; nothing sound can be deduced from it.
			if observation.numMines >= 0 {
				observations = append(observations, observation)
			}
		}
	}

	return observations
}
