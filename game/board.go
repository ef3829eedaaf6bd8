package game

import (
	"fmt"
	"iter"
	"math/rand"
	"time"

	"github.com/they4kman/minesweep/util/collections"
)

// Board holds the complete state of a single minesweeper game: dimensions,
// mine positions, precomputed neighbor mine counts, and the player's
// revealed and flagged cells. The mine set and counts are fixed at
// construction; only the revealed and flagged sets change afterwards.
//
// A Board is not safe for concurrent use. Callers must serialize Reveal and
// ToggleFlag; the read accessors may only run concurrently while no
// mutation is in flight.
type Board struct {
	rows, cols int
	numMines   int

	mines    collections.Set[Cell]
	counts   map[Cell]int
	revealed collections.Set[Cell]
	flagged  collections.Set[Cell]

	rand *rand.Rand
}

// New creates a board with config.NumMines mines placed uniformly at
// random. It fails with ErrInvalidDimensions when either dimension is not
// positive, and with ErrInvalidMineCount unless 0 < NumMines < Rows*Cols.
func New(config Config) (*Board, error) {
	if config.Rows <= 0 || config.Cols <= 0 {
		return nil, fmt.Errorf("%dx%d board: %w", config.Rows, config.Cols, ErrInvalidDimensions)
	}

	numCells := config.Rows * config.Cols
	if config.NumMines <= 0 || config.NumMines >= numCells {
		return nil, fmt.Errorf("%d mines on %d cells: %w", config.NumMines, numCells, ErrInvalidMineCount)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := newBoard(config.Rows, config.Cols, config.NumMines)
	board.rand = rand.New(rand.NewSource(seed))
	board.fillMines()
	board.computeCounts()

	return board, nil
}

// NewWithMines creates a board with an explicit mine layout instead of a
// random one. It enforces the same dimension and mine count rules as New;
// mines must be distinct, in-bounds cells.
func NewWithMines(rows, cols int, mines ...Cell) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d board: %w", rows, cols, ErrInvalidDimensions)
	}

	numCells := rows * cols
	if len(mines) == 0 || len(mines) >= numCells {
		return nil, fmt.Errorf("%d mines on %d cells: %w", len(mines), numCells, ErrInvalidMineCount)
	}

	board := newBoard(rows, cols, len(mines))
	for _, mine := range mines {
		if !board.InBounds(mine.Row, mine.Col) {
			return nil, fmt.Errorf("mine %v is outside the %dx%d board", mine, rows, cols)
		}
		if board.mines.Contains(mine) {
			return nil, fmt.Errorf("duplicate mine %v", mine)
		}
		board.mines.Add(mine)
	}
	board.computeCounts()

	return board, nil
}

func newBoard(rows, cols, numMines int) *Board {
	return &Board{
		rows:     rows,
		cols:     cols,
		numMines: numMines,
		mines:    make(collections.Set[Cell]),
		counts:   make(map[Cell]int),
		revealed: make(collections.Set[Cell]),
		flagged:  make(collections.Set[Cell]),
	}
}

// fillMines samples numMines distinct cells by shuffling the flattened cell
// indexes and taking a prefix.
func (board *Board) fillMines() {
	cellIndexes := make([]int, board.rows*board.cols)
	for i := range cellIndexes {
		cellIndexes[i] = i
	}

	board.rand.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	for _, cellIdx := range cellIndexes[:board.numMines] {
		board.mines.Add(Cell{cellIdx / board.cols, cellIdx % board.cols})
	}
}

// computeCounts fills the neighbor mine count for every non-mine cell.
// Counts are defined exactly for the complement of the mine set and never
// change after construction.
func (board *Board) computeCounts() {
	for row := 0; row < board.rows; row++ {
		for col := 0; col < board.cols; col++ {
			cell := Cell{row, col}
			if board.mines.Contains(cell) {
				continue
			}

			count := 0
			for neighbor := range board.Neighbors(cell) {
				if board.mines.Contains(neighbor) {
					count++
				}
			}
			board.counts[cell] = count
		}
	}
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

// NumRevealed returns how many cells have been revealed so far.
func (board *Board) NumRevealed() int {
	return board.revealed.Len()
}

// NumFlags returns how many cells are currently flagged.
func (board *Board) NumFlags() int {
	return board.flagged.Len()
}

// InBounds reports whether (row, col) lies on the board. The mutating
// operations do not bounds-check; callers validate coordinates with
// InBounds before issuing them.
func (board *Board) InBounds(row, col int) bool {
	return row >= 0 && row < board.rows && col >= 0 && col < board.cols
}

// IsMine reports whether the cell holds a mine. Only meaningful to a
// renderer for the end-of-game reveal-all display.
func (board *Board) IsMine(row, col int) bool {
	return board.mines.Contains(Cell{row, col})
}

func (board *Board) IsRevealed(row, col int) bool {
	return board.revealed.Contains(Cell{row, col})
}

func (board *Board) IsFlagged(row, col int) bool {
	return board.flagged.Contains(Cell{row, col})
}

// NeighborCount returns the precomputed number of mines adjacent to the
// cell (0-8). Mine cells have no count and report 0.
func (board *Board) NeighborCount(row, col int) int {
	return board.counts[Cell{row, col}]
}

// Neighbors yields the in-bounds neighbors of cell. The sequence is
// recomputed on each range.
func (board *Board) Neighbors(cell Cell) iter.Seq[Cell] {
	return cell.neighbors(board.rows, board.cols)
}

// Reveal uncovers the cell at (row, col) and returns whether it was safe.
//
// A flagged or already-revealed cell is left untouched and reported safe,
// which makes Reveal idempotent and flag-protected. Revealing a mine marks
// only that cell revealed and returns false; no cascade occurs. Otherwise
// the cell is revealed, and if its neighbor count is zero the reveal flood
// fills through the connected zero-count region and its numbered border.
//
// Coordinates must be in bounds.
func (board *Board) Reveal(row, col int) bool {
	cell := Cell{row, col}

	if board.flagged.Contains(cell) || board.revealed.Contains(cell) {
		return true
	}

	if board.mines.Contains(cell) {
		board.revealed.Add(cell)
		return false
	}

	board.cascadeReveal(cell)
	return true
}

// ToggleFlag flags the cell at (row, col), or unflags it if already
// flagged. Revealed cells cannot be flagged; the call is then a no-op.
//
// Coordinates must be in bounds.
func (board *Board) ToggleFlag(row, col int) {
	cell := Cell{row, col}

	if board.revealed.Contains(cell) {
		return
	}

	if board.flagged.Contains(cell) {
		board.flagged.Remove(cell)
	} else {
		board.flagged.Add(cell)
	}
}

// IsWon reports whether every non-mine cell has been revealed. Flags play
// no part in the win condition.
func (board *Board) IsWon() bool {
	return board.revealed.Len() == board.rows*board.cols-board.numMines
}
