package agent

import (
	"time"

	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/parameter"
	"github.com/lixenwraith/star-dash/vmath"
)

// BodyResolver looks up a Body by handle; the agent never owns what it resolves
type BodyResolver interface {
	Body(id core.BodyID) (*core.Body, bool)
}

// Config holds per-agent tuning
type Config struct {
	DetectionRange float64
	LoseInterest   float64 // Multiplier on DetectionRange for CHASE -> IDLE
	AttackRange    float64
	FleeRange      float64
	Speed          float64
	FleeMultiplier float64
	Health         int
	AttackCooldown time.Duration
	MaxStateTime   time.Duration
	WanderChance   float64
	WanderImpulse  float64
}

// DefaultConfig returns the stock enemy tuning
func DefaultConfig() Config {
	return Config{
		DetectionRange: parameter.EnemyDetectionRange,
		LoseInterest:   parameter.EnemyLoseInterest,
		AttackRange:    parameter.EnemyAttackRange,
		FleeRange:      parameter.EnemyFleeRange,
		Speed:          parameter.EnemySpeed,
		FleeMultiplier: parameter.EnemyFleeMultiplier,
		Health:         parameter.EnemyHealth,
		AttackCooldown: parameter.EnemyAttackCooldown,
		MaxStateTime:   parameter.EnemyMaxStateTime,
		WanderChance:   parameter.EnemyWanderChance,
		WanderImpulse:  parameter.EnemyWanderImpulse,
	}
}

// Agent is a Body with an attached behavior record
type Agent struct {
	Body   *core.Body
	Target core.BodyID // Non-owning; zero means no target
	Config Config

	state    State
	health   int
	dwell    time.Duration // Time in current state
	cooldown time.Duration // Remaining until next attack is allowed

	behavior Behavior

	// OnAttack fires when an attack lands (cooldown elapsed in ATTACK)
	OnAttack func(a *Agent)
}

// New attaches a behavior record to body; nil behavior selects the FSM
func New(body *core.Body, cfg Config, behavior Behavior) *Agent {
	if behavior == nil {
		behavior = FSM{}
	}
	return &Agent{
		Body:     body,
		Config:   cfg,
		state:    StateIdle,
		health:   cfg.Health,
		behavior: behavior,
	}
}

// State returns the current state
func (a *Agent) State() State {
	return a.state
}

// Dwell returns time spent in the current state
func (a *Agent) Dwell() time.Duration {
	return a.dwell
}

// Health returns the remaining health counter
func (a *Agent) Health() int {
	return a.health
}

// Behavior returns the attached behavior
func (a *Agent) Behavior() Behavior {
	return a.behavior
}

// SetState assigns a state from outside the transition table and resets dwell
func (a *Agent) SetState(s State) {
	a.changeState(s)
}

func (a *Agent) changeState(s State) {
	a.state = s
	a.dwell = 0
}

// TakeDamage reduces health, returns true when the agent should be destroyed
func (a *Agent) TakeDamage(amount int) bool {
	a.health -= amount
	return a.health <= 0
}

// Update runs one behavior tick then advances dwell and cooldown clocks
// A cleared or unresolvable target skips behavior; clocks still advance
func (a *Agent) Update(dt time.Duration, bodies BodyResolver, rng *vmath.FastRand) {
	if target, ok := a.resolveTarget(bodies); ok {
		dx, dy := a.Body.Offset(target)
		ctx := &Context{
			Agent:    a,
			Target:   target,
			DX:       dx,
			DY:       dy,
			Distance: vmath.Magnitude(dx, dy),
			Rand:     rng,
		}
		a.behavior.Think(ctx)
	}

	if a.cooldown > 0 {
		a.cooldown -= dt
		if a.cooldown < 0 {
			a.cooldown = 0
		}
	}

	a.dwell += dt
	if a.dwell >= a.Config.MaxStateTime {
		a.changeState(StateIdle)
	}
}

func (a *Agent) resolveTarget(bodies BodyResolver) (*core.Body, bool) {
	if a.Target == 0 || bodies == nil {
		return nil, false
	}
	return bodies.Body(a.Target)
}

// AttackReady reports whether the cooldown has elapsed
func (a *Agent) AttackReady() bool {
	return a.cooldown <= 0
}
