package parameter

// Player Body
const (
	PlayerStartX = 100.0
	PlayerRadius = 15.0
	PlayerMass   = 2.0
)

// Player Controls (force per tick while held)
const (
	PlayerThrustUp   = 15.0
	PlayerThrustDown = 5.0
	PlayerThrustSide = 8.0
	PlayerDragFactor = 0.5
	PlayerEnemyRepel = 10.0
)

// Player Stats
const (
	PlayerHealthMax   = 100.0
	PlayerEnergyMax   = 100.0
	PlayerEnergyRegen = 0.1
)
