package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandDelta(t *testing.T) {
	tests := []struct {
		cmd    Command
		dx, dy int
		ok     bool
	}{
		{CmdMoveUp, 0, -1, true},
		{CmdMoveDown, 0, 1, true},
		{CmdMoveLeft, -1, 0, true},
		{CmdMoveRight, 1, 0, true},
		{CmdToggleDisplay, 0, 0, false},
		{CmdQuit, 0, 0, false},
		{CmdNone, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			dx, dy, ok := tt.cmd.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDisplayModeToggle(t *testing.T) {
	assert.Equal(t, DisplayDetailed, DisplayNormal.Toggle())
	assert.Equal(t, DisplayNormal, DisplayDetailed.Toggle())
	assert.Equal(t, "detailed", DisplayDetailed.String())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "unknown", Command(99).String())
	assert.Equal(t, "took_turn", TookTurn.String())
	assert.Equal(t, "didnt_take_turn", DidntTakeTurn.String())
	assert.Equal(t, "exit", Exit.String())
	assert.Equal(t, "unknown", PlayerAction(99).String())
}

func TestMessageLogKeepsNewest(t *testing.T) {
	log := NewMessageLog(MessageLogSize)
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		log.Add(m)
	}

	assert.Equal(t, MessageLogSize, log.Len())
	assert.Equal(t, []string{"c", "d", "e", "f", "g"}, log.Lines())

	lines := log.Lines()
	lines[0] = "changed"
	assert.Equal(t, "c", log.Lines()[0], "Lines returns a copy")
}

func TestMessageLogZeroSize(t *testing.T) {
	log := NewMessageLog(0)
	log.Add("ignored")
	assert.Equal(t, 0, log.Len())
}
