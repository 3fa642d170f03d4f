package event

// EventType represents the type of game event
type EventType uint8

const (
	EventNone EventType = iota

	// === Audio Event ===

	// EventCollect signals a collectible was picked up
	// Trigger: contact policy | Consumer: audio | Pos: collectible x
	EventCollect

	// EventCollision signals a non-lethal enemy contact or an enemy attack
	// Trigger: contact policy, agent attack | Consumer: audio | Pos: enemy x
	EventCollision

	// EventJump signals upward thrust while airborne
	// Trigger: player control | Consumer: audio | Pos: player x
	EventJump

	// EventGameOver signals run termination, emitted once per run
	// Trigger: lethal contact | Consumer: audio, renderer
	EventGameOver

	// === Visual Event ===

	// EventEffect requests a particle burst at (X, Y)
	// Trigger: collect | Consumer: renderer
	EventEffect

	// === Session Event ===

	// EventRunStart signals a fresh run (start or restart)
	EventRunStart

	// EventPause and EventResume signal the pause gate toggling
	EventPause
	EventResume

	// EventMuteToggle signals the mute button; the sink owns the mute state
	EventMuteToggle

	// EventMusicToggle signals the background loop switch; Value 1 is on
	EventMusicToggle

	// EventBestScore signals a new best score; Value carries it
	// Trigger: end of a tick that raised best | Consumer: score store
	EventBestScore
)

var eventNames = [...]string{
	EventNone:        "none",
	EventCollect:     "collect",
	EventCollision:   "collision",
	EventJump:        "jump",
	EventGameOver:    "game_over",
	EventEffect:      "effect",
	EventRunStart:    "run_start",
	EventPause:       "pause",
	EventResume:      "resume",
	EventMuteToggle:  "mute_toggle",
	EventMusicToggle: "music_toggle",
	EventBestScore:   "best_score",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// GameEvent is a discrete notification to external sinks
type GameEvent struct {
	Type EventType

	// X, Y are world coordinates when HasPos is set; X drives stereo pan
	X, Y   float64
	HasPos bool

	// Value carries a scalar payload (best score)
	Value int

	Frame int64
}

// At returns a positioned event
func At(t EventType, x, y float64, frame int64) GameEvent {
	return GameEvent{Type: t, X: x, Y: y, HasPos: true, Frame: frame}
}

// Plain returns an event with no position
func Plain(t EventType, frame int64) GameEvent {
	return GameEvent{Type: t, Frame: frame}
}
