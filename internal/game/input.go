package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested viewer action.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionTurnLeft
	ActionTurnRight
	ActionLook
	ActionExamine
	ActionMinimap
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionForward
	case tcell.KeyDown:
		return ActionBack
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'w':
		return ActionForward
	case 'j', 's':
		return ActionBack
	case 'h', 'a':
		return ActionTurnLeft
	case 'l', 'd':
		return ActionTurnRight
	case 'x':
		return ActionLook
	case 'X':
		return ActionExamine
	case 'm', 'M':
		return ActionMinimap
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToTurn returns the turn direction of a turning action: +1 is
// anticlockwise seen from above.
func actionToTurn(a Action) float64 {
	switch a {
	case ActionTurnLeft:
		return 1
	case ActionTurnRight:
		return -1
	}
	return 0
}
