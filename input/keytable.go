package input

import "github.com/gdamore/tcell/v2"

// Action is a bound control
type Action uint8

const (
	ActionNone Action = iota

	// Held directions
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Edges
	ActionStart
	ActionPause
	ActionRestart
	ActionMute
	ActionMusic
	ActionQuit
)

const heldCount = int(ActionRight) + 1

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionStart:   "start",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionMute:    "mute",
	ActionMusic:   "music",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// KeyTable maps keys to actions
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns arrows/WASD movement with single-key controls
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
			'W': ActionUp,
			'S': ActionDown,
			'A': ActionLeft,
			'D': ActionRight,
			' ': ActionStart,
			'p': ActionPause,
			'P': ActionPause,
			'r': ActionRestart,
			'R': ActionRestart,
			'm': ActionMute,
			'M': ActionMute,
			'b': ActionMusic,
			'B': ActionMusic,
		},
	}
}

// Lookup resolves a key event to its action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
