package parameter

// Playfield
const (
	// PlayfieldWidth is the horizontal extent in world units
	PlayfieldWidth = 800.0
	// PlayfieldHeight is the vertical extent in world units; the floor sits at this y
	PlayfieldHeight = 600.0
)

// Integration
const (
	// Gravity is added to vy every tick
	Gravity = 0.3

	// Friction scales vx each tick while grounded (0 < F < 1)
	Friction = 0.98

	// BounceDamping scales the reflected velocity on floor and wall contact (0 < D < 1)
	BounceDamping = 0.7

	// MaxVelocity caps each velocity axis independently
	MaxVelocity = 8.0

	// Restitution scales the collision impulse as (1 + e); 1 is fully elastic
	Restitution = 1.0

	// PositionCorrection is the de-penetration fraction applied on overlap
	// 0 preserves the one-frame overlap of pure impulse resolution
	PositionCorrection = 0.0
)
