package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchcrawl/internal/game"
)

// Input reads commands from terminal key events.
type Input struct {
	screen *Screen
}

// NewInput creates an input source reading from screen.
func NewInput(screen *Screen) *Input {
	return &Input{screen: screen}
}

// NextCommand blocks until a key event arrives and maps it to a command.
// Resize events redraw the screen and keep waiting. A closed screen reads
// as CmdQuit.
func (in *Input) NextCommand(ctx context.Context) (game.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.CmdNone, err
		}

		switch ev := in.screen.PollEvent().(type) {
		case nil:
			return game.CmdQuit, nil
		case *tcell.EventResize:
			in.screen.Sync()
		case *tcell.EventKey:
			return keyToCommand(ev.Key(), ev.Rune(), ev.Modifiers()), nil
		}
	}
}

// keyToCommand maps a key press to a command; unused keys map to CmdNone.
func keyToCommand(key tcell.Key, r rune, mod tcell.ModMask) game.Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdQuit
	case tcell.KeyUp:
		return game.CmdMoveUp
	case tcell.KeyDown:
		return game.CmdMoveDown
	case tcell.KeyLeft:
		return game.CmdMoveLeft
	case tcell.KeyRight:
		return game.CmdMoveRight
	case tcell.KeyTab:
		return game.CmdToggleDisplay
	case tcell.KeyEnter:
		if mod&tcell.ModAlt != 0 {
			return game.CmdToggleDisplay
		}
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return game.CmdQuit
		case 'k':
			return game.CmdMoveUp
		case 'j':
			return game.CmdMoveDown
		case 'h':
			return game.CmdMoveLeft
		case 'l':
			return game.CmdMoveRight
		}
	}
	return game.CmdNone
}
