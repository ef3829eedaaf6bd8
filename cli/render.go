package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/they4kman/minesweep/game"
)

// Render draws the grid with column indexes across the top and row indexes
// down the left side. Mines stay masked unless showMines is set, which the
// game loop does for the end-of-game display.
func Render(board *game.Board, showMines bool) string {
	var out strings.Builder

	out.WriteString("  ")
	for col := 0; col < board.Cols(); col++ {
		fmt.Fprintf(&out, " %2d", col)
	}

	for row := 0; row < board.Rows(); row++ {
		fmt.Fprintf(&out, "\n%2d", row)
		for col := 0; col < board.Cols(); col++ {
			fmt.Fprintf(&out, "  %s", cellSymbol(board, row, col, showMines))
		}
	}

	return out.String()
}

func cellSymbol(board *game.Board, row, col int, showMines bool) string {
	switch {
	case showMines && board.IsMine(row, col):
		return "*"
	case board.IsRevealed(row, col):
		if count := board.NeighborCount(row, col); count > 0 {
			return strconv.Itoa(count)
		}
		return " "
	case board.IsFlagged(row, col):
		return "F"
	default:
		return "."
	}
}
