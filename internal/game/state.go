// Package game provides the turn engine and the contracts it drives.
package game

// Command is one discrete input intent.
type Command int

const (
	// CmdNone is a key the game does not use.
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	// CmdToggleDisplay switches between display modes.
	CmdToggleDisplay
	CmdQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveUp:
		return "move_up"
	case CmdMoveDown:
		return "move_down"
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdToggleDisplay:
		return "toggle_display"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Delta returns the movement offset of a move command.
func (c Command) Delta() (dx, dy int, ok bool) {
	switch c {
	case CmdMoveUp:
		return 0, -1, true
	case CmdMoveDown:
		return 0, 1, true
	case CmdMoveLeft:
		return -1, 0, true
	case CmdMoveRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// PlayerAction classifies the outcome of one player command.
type PlayerAction int

const (
	// TookTurn means world time advanced and monsters get to act.
	TookTurn PlayerAction = iota
	// DidntTakeTurn means nothing in the world changed.
	DidntTakeTurn
	// Exit ends the game loop.
	Exit
)

// String returns a human-readable action name.
func (a PlayerAction) String() string {
	switch a {
	case TookTurn:
		return "took_turn"
	case DidntTakeTurn:
		return "didnt_take_turn"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// DisplayMode selects how much the renderer shows.
type DisplayMode int

const (
	// DisplayNormal shows the map, hp and the message log.
	DisplayNormal DisplayMode = iota
	// DisplayDetailed adds a side panel with visible monster stats.
	DisplayDetailed
)

// String returns a human-readable mode name.
func (m DisplayMode) String() string {
	switch m {
	case DisplayNormal:
		return "normal"
	case DisplayDetailed:
		return "detailed"
	default:
		return "unknown"
	}
}

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == DisplayDetailed {
		return DisplayNormal
	}
	return DisplayDetailed
}
