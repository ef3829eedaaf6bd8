package cli

import (
	"strconv"
	"strings"

	"github.com/they4kman/minesweep/game"
)

// command is one parsed line of player input.
type command struct {
	action   game.Action
	row, col int
	quit     bool
}

// parseCommand parses "r <row> <col>", "f <row> <col>", or "q". It does not
// bounds-check the coordinates; the game loop does that against the board.
func parseCommand(line string) (command, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, false
	}

	if fields[0] == "q" && len(fields) == 1 {
		return command{quit: true}, true
	}

	if len(fields) != 3 {
		return command{}, false
	}

	var action game.Action
	switch fields[0] {
	case "r":
		action = game.ActionReveal
	case "f":
		action = game.ActionFlag
	default:
		return command{}, false
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, false
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return command{}, false
	}

	return command{action: action, row: row, col: col}, true
}
