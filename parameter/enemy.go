package parameter

import "time"

// Enemy Body
const (
	EnemyRadius  = 12.0
	EnemyMass    = 3.0
	EnemySpawnX  = 30.0 // Offset beyond the right edge
	EnemyMarginY = 30.0
	EnemyExitX   = -50.0
	EnemyMaxLive = 12 // Spawner skips while this many are alive
)

// Enemy Behavior
const (
	// EnemyDetectionRange is the distance below which IDLE turns to CHASE
	EnemyDetectionRange = 150.0

	// EnemyLoseInterest multiplies detection range for CHASE -> IDLE
	EnemyLoseInterest = 1.5

	// EnemyAttackRange is the distance below which CHASE turns to ATTACK
	EnemyAttackRange = 30.0

	// EnemyFleeRange is the distance above which FLEE settles to IDLE
	EnemyFleeRange = 80.0

	// EnemySpeed is the steering force magnitude
	EnemySpeed = 2.0

	// EnemyFleeMultiplier scales speed while fleeing
	EnemyFleeMultiplier = 1.5

	// EnemyHealth is the starting health counter
	EnemyHealth = 100

	// EnemyAttackCooldown is the minimum time between attacks
	EnemyAttackCooldown = 1000 * time.Millisecond

	// EnemyMaxStateTime forces IDLE once a state has been held this long
	EnemyMaxStateTime = 3000 * time.Millisecond

	// EnemyWanderChance is the per-tick probability of an IDLE random impulse
	EnemyWanderChance = 0.02

	// EnemyWanderImpulse bounds each axis of the IDLE random impulse
	EnemyWanderImpulse = 1.0
)
