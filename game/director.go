package game

// Action is a move kind a Director may take on a cell.
type Action int

const (
	ActionReveal Action = iota
	ActionFlag
)

func (action Action) String() string {
	switch action {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Move pairs a target cell with the action to take on it.
type Move struct {
	Cell   Cell
	Action Action
}

// Director chooses moves for computer-driven play.
type Director interface {
	// Act proposes the next move for board. ok is false when the director
	// has no legal move left.
	Act(board *Board) (move Move, ok bool)
}
