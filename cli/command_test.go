package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/they4kman/minesweep/game"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		want command
		ok   bool
	}{
		{
			name: "reveal",
			line: "r 3 4",
			want: command{action: game.ActionReveal, row: 3, col: 4},
			ok:   true,
		},
		{
			name: "flag",
			line: "f 0 0",
			want: command{action: game.ActionFlag},
			ok:   true,
		},
		{
			name: "quit",
			line: "q",
			want: command{quit: true},
			ok:   true,
		},
		{
			name: "uppercase with padding",
			line: "  R 1 2 ",
			want: command{action: game.ActionReveal, row: 1, col: 2},
			ok:   true,
		},
		{
			name: "negative coordinates parse",
			line: "r -1 0",
			want: command{action: game.ActionReveal, row: -1, col: 0},
			ok:   true,
		},
		{name: "empty", line: ""},
		{name: "blank", line: "   "},
		{name: "unknown action", line: "x 1 2"},
		{name: "missing column", line: "r 1"},
		{name: "extra field", line: "r 1 2 3"},
		{name: "non-numeric row", line: "r one 2"},
		{name: "non-numeric col", line: "r 1 two"},
		{name: "quit with arguments", line: "q 1 2"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := parseCommand(test.line)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.want, got)
			}
		})
	}
}
