package game

import "github.com/gammazero/deque"

// cascadeReveal performs a breadth-first flood fill from start. Cells are
// re-checked at dequeue time, so duplicate enqueues are harmless and each
// cell transitions to revealed at most once, which bounds the fill by the
// grid size.
//
// start must not be a mine. Enqueued cells never are: only neighbors of
// zero-count cells are enqueued, and a zero-count cell has no adjacent
// mines.
func (board *Board) cascadeReveal(start Cell) {
	var queue deque.Deque[Cell]
	queue.PushBack(start)

	for queue.Len() > 0 {
		cell := queue.PopFront()
		if board.revealed.Contains(cell) || board.flagged.Contains(cell) {
			continue
		}

		board.revealed.Add(cell)

		if board.counts[cell] != 0 {
			continue
		}
		for neighbor := range board.Neighbors(cell) {
			if !board.revealed.Contains(neighbor) && !board.flagged.Contains(neighbor) {
				queue.PushBack(neighbor)
			}
		}
	}
}
