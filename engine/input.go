package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/render"
)

// Action is a user intent decoded from terminal input
type Action uint8

const (
	ActionNone Action = iota
	ActionAccept
	ActionDecline
	ActionToggleMute
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionDecline:
		return "decline"
	case ActionToggleMute:
		return "toggle-mute"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyAction maps a key press to an action
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionAccept
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			return ActionAccept
		case 'n', 'N':
			return ActionDecline
		case 'm', 'M':
			return ActionToggleMute
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// TargetAction maps a clicked element to an action
func TargetAction(t render.Target) Action {
	switch t {
	case render.TargetAccept:
		return ActionAccept
	case render.TargetDecline:
		return ActionDecline
	case render.TargetMute:
		return ActionToggleMute
	default:
		return ActionNone
	}
}
