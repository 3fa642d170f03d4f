package parameter

import "time"

// Audio synthesis
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond
	AudioAttack       = 5 * time.Millisecond
	AudioRelease      = 40 * time.Millisecond
)

// Event voices
const (
	CollectVolume   = 0.3
	CollisionVolume = 0.5
	JumpVolume      = 0.4
	GameOverVolume  = 0.6
)

// Background loop
const (
	MusicDefaultLoop  = "cruise"
	MusicVolume       = 0.2
	MusicStepsPerBeat = 4 // Sixteenth-note grid
	MusicPolyphony    = 4
	MusicMinBPM       = 60
	MusicMaxBPM       = 200
)

// MusicSamplesPerStep returns the step length at bpm, clamped to the supported tempo range
func MusicSamplesPerStep(bpm int) int {
	bpm = min(max(bpm, MusicMinBPM), MusicMaxBPM)
	return AudioSampleRate * 60 / (bpm * MusicStepsPerBeat)
}
