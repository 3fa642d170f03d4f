package audio

import (
	"errors"

	"github.com/lixenwraith/star-dash/event"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundCollect   SoundType = iota // Star pickup chime
	SoundCollision                  // Enemy bump thud
	SoundJump                       // Airborne thrust chirp
	SoundGameOver                   // Descending run-end tone
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundCollect:   "collect",
	SoundCollision: "collision",
	SoundJump:      "jump",
	SoundGameOver:  "game_over",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// soundFor maps a game event to its voice
func soundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventCollect:
		return SoundCollect, true
	case event.EventCollision:
		return SoundCollision, true
	case event.EventJump:
		return SoundJump, true
	case event.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
)
