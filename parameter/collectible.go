package parameter

// Obstacle Body
const (
	ObstacleRadius      = 15.0
	ObstacleMass        = 5.0
	ObstacleSpawnX      = 30.0 // Offset beyond the right edge
	ObstacleMarginY     = 30.0
	ObstacleSpeedJitter = 2.0
	ObstacleExitX       = -50.0
	ObstacleSpinPerTick = 0.02
)

// Collectible Body
const (
	CollectibleRadius      = 10.0
	CollectibleMass        = 0.5
	CollectibleSpawnX      = 20.0
	CollectibleExitX       = -20.0
	CollectibleSpinPerTick = 0.1
	CollectibleBobAmp      = 0.5
	CollectibleBobRate     = 0.3 // Radians per reference frame
)
