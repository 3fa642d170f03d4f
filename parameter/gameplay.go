package parameter

import "time"

// FrameDuration is the reference frame; spawn intervals are expressed in these
const FrameDuration = time.Second / 60

// Difficulty
const (
	// BaseGameSpeed is the starting difficulty scalar
	BaseGameSpeed = 2.0

	// DifficultyPerTick is added to the difficulty scalar every running tick
	DifficultyPerTick = 0.001
)

// Spawn intervals in reference frames
const (
	ObstacleIntervalBase  = 60.0
	ObstacleIntervalSlope = 5.0
	ObstacleIntervalFloor = 12.0

	CollectibleInterval = 180.0

	EnemyIntervalBase  = 300.0
	EnemyIntervalSlope = 10.0
	EnemyIntervalFloor = 60.0
)

// Scoring
const (
	ScoreObstacleExit = 10
	ScoreCollect      = 50
)

// MaxTickDelta caps a single tick's delta so a stalled frame does not burst spawns
const MaxTickDelta = 250 * time.Millisecond
