package agent

import (
	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/physics"
	"github.com/lixenwraith/star-dash/vmath"
)

// Context is the per-tick view a Behavior acts through
type Context struct {
	Agent  *Agent
	Target *core.Body

	// DX, DY point from agent to target
	DX, DY   float64
	Distance float64

	Rand *vmath.FastRand
}

// Steer applies a force of the given magnitude toward the target (negative = away)
func (c *Context) Steer(magnitude float64) {
	if c.Distance <= 0 {
		return
	}
	physics.ApplyForce(c.Agent.Body, c.DX/c.Distance*magnitude, c.DY/c.Distance*magnitude)
}

// Force applies a raw force to the agent body
func (c *Context) Force(fx, fy float64) {
	physics.ApplyForce(c.Agent.Body, fx, fy)
}

// Wander applies a random force in [-impulse, impulse]² with the configured chance
func (c *Context) Wander() bool {
	if c.Rand == nil {
		return false
	}
	cfg := &c.Agent.Config
	if c.Rand.Float64() >= cfg.WanderChance {
		return false
	}
	c.Force(c.Rand.Symmetric(cfg.WanderImpulse), c.Rand.Symmetric(cfg.WanderImpulse))
	return true
}

// Transition moves to next if the table allows it, returns false when refused
func (c *Context) Transition(next State) bool {
	a := c.Agent
	if next == a.state {
		return false
	}
	if !Allowed(a.state, next) {
		return false
	}
	a.changeState(next)
	return true
}

// TryAttack fires the attack side effect if the cooldown has elapsed
func (c *Context) TryAttack() bool {
	a := c.Agent
	if !a.AttackReady() {
		return false
	}
	a.cooldown = a.Config.AttackCooldown
	if a.OnAttack != nil {
		a.OnAttack(a)
	}
	return true
}
