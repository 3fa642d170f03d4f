package physics

import (
	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/parameter"
	"github.com/lixenwraith/star-dash/vmath"
)

// Environment carries the integration constants and playfield bounds
type Environment struct {
	Gravity       float64
	Friction      float64 // 0 < F < 1, applied while grounded
	BounceDamping float64 // 0 < D < 1
	MaxVelocity   float64
	Restitution   float64 // 1 = elastic
	Width, Height float64

	// Correction is the de-penetration fraction for overlapping pairs (0 = off)
	Correction float64
}

// DefaultEnvironment returns the stock tuning
func DefaultEnvironment() Environment {
	return Environment{
		Gravity:       parameter.Gravity,
		Friction:      parameter.Friction,
		BounceDamping: parameter.BounceDamping,
		MaxVelocity:   parameter.MaxVelocity,
		Restitution:   parameter.Restitution,
		Width:         parameter.PlayfieldWidth,
		Height:        parameter.PlayfieldHeight,
		Correction:    parameter.PositionCorrection,
	}
}

// Integrate advances one body by one tick
// Order: gravity, ground friction, velocity cap, position, floor, walls
func Integrate(b *core.Body, env *Environment) {
	b.VY += env.Gravity * b.Profile.GravityScale

	// Grounded comes from the previous tick's floor contact
	if b.Grounded {
		b.VX *= env.Friction
	}

	ClampVelocity(b, env.MaxVelocity)

	b.X += b.VX
	b.Y += b.VY

	ReflectFloor(b, env)
	ReflectWalls(b, env)
}

// ApplyForce adds force/mass to velocity
// Mass is positive by construction
func ApplyForce(b *core.Body, fx, fy float64) {
	b.VX += fx / b.Mass
	b.VY += fy / b.Mass
}

// ApplyImpulse adds velocity delta directly, ignoring mass
func ApplyImpulse(b *core.Body, vx, vy float64) {
	b.VX += vx
	b.VY += vy
}

// ClampVelocity caps each axis independently to [-max, max]
func ClampVelocity(b *core.Body, max float64) {
	b.VX = vmath.Clamp(b.VX, -max, max)
	b.VY = vmath.Clamp(b.VY, -max, max)
}

// ReflectFloor handles floor contact and sets the grounded flag, returns true on contact
func ReflectFloor(b *core.Body, env *Environment) bool {
	if b.Y+b.Radius > env.Height {
		b.Y = env.Height - b.Radius
		b.VY = -b.VY * env.BounceDamping
		b.Grounded = true
		return true
	}
	b.Grounded = false
	return false
}

// ReflectWalls handles side wall contact for the walls in the body's profile, returns true if any reflection occurred
func ReflectWalls(b *core.Body, env *Environment) bool {
	hit := false
	if b.Profile.Walls.Has(core.WallLeft) && b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX = -b.VX * env.BounceDamping
		hit = true
	}
	if b.Profile.Walls.Has(core.WallRight) && b.X+b.Radius > env.Width {
		b.X = env.Width - b.Radius
		b.VX = -b.VX * env.BounceDamping
		hit = true
	}
	return hit
}
