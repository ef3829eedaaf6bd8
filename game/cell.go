package game

import (
	"fmt"
	"iter"
)

// Cell is a board coordinate. Cells compare structurally, so they may be
// used as map and set keys.
type Cell struct {
	Row, Col int
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d)", cell.Row, cell.Col)
}

// neighbors yields the up-to-8 grid-adjacent cells of cell that lie within
// a rows x cols board, in fixed dr-then-dc order. The sequence is finite
// and recomputed on each range.
func (cell Cell) neighbors(rows, cols int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}

				neighbor := Cell{cell.Row + dr, cell.Col + dc}
				if neighbor.Row < 0 || neighbor.Row >= rows ||
					neighbor.Col < 0 || neighbor.Col >= cols {
					continue
				}
				if !yield(neighbor) {
					return
				}
			}
		}
	}
}
