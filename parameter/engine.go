package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the driver tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick delta after a stall (suspend, debugger)
	MaxFrameDelta = 100 * time.Millisecond

	// InputChannelSize is the buffered capacity between the poller and the loop
	InputChannelSize = 256
)

// Headless bench defaults
const (
	BenchDefaultTicks = 60 * 60 * 5 // Five minutes of reference frames
	BenchDodgeRange   = 120.0       // Bot reacts to obstacles ahead within this x distance
)
