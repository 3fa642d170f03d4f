package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/star-dash/event"
	"github.com/lixenwraith/star-dash/input"
	"github.com/lixenwraith/star-dash/parameter"
	"github.com/lixenwraith/star-dash/physics"
	"github.com/lixenwraith/star-dash/vmath"
)

// Tick advances the session by dt
// Control edges are honored in every status; simulation runs only while Running
func (w *World) Tick(dt time.Duration, in input.Intent) {
	w.applyControls(in)
	if w.status != StatusRunning {
		return
	}

	w.frame++
	w.runTime += dt

	w.applyIntent(in)

	for _, a := range w.enemies {
		a.Update(dt, w, w.rng)
	}

	w.animate()
	physics.IntegrateAll(w.pool, &w.env)
	w.stats.Collisions += physics.ResolvePairs(w.pool, &w.env)

	w.applyPolicy()
	w.flushBest()
	if w.status != StatusRunning {
		return
	}

	if w.opts.AutoSpawn {
		w.advanceSpawners(dt)
	}
	w.difficulty += w.opts.Spawn.DifficultyPerTick
	w.energy = min(parameter.PlayerEnergyMax, w.energy+parameter.PlayerEnergyRegen)
}

// applyIntent turns held directions into player forces and applies drag
func (w *World) applyIntent(in input.Intent) {
	p := w.player
	if in.Up {
		physics.ApplyForce(p, 0, -parameter.PlayerThrustUp)
		if !p.Grounded {
			w.emit(event.GameEvent{Type: event.EventJump, X: p.X, Y: p.Y, HasPos: true})
		}
	}
	if in.Down {
		physics.ApplyForce(p, 0, parameter.PlayerThrustDown)
	}
	if in.Left {
		physics.ApplyForce(p, -parameter.PlayerThrustSide, 0)
	}
	if in.Right {
		physics.ApplyForce(p, parameter.PlayerThrustSide, 0)
	}

	if in.Dragging {
		p.X = vmath.Clamp(p.X+in.DragX*parameter.PlayerDragFactor, p.Radius, w.env.Width-p.Radius)
		p.Y = vmath.Clamp(p.Y+in.DragY*parameter.PlayerDragFactor, p.Radius, w.env.Height-p.Radius)
	}
}

// animate advances renderer-facing rotation and collectible bob
func (w *World) animate() {
	for _, o := range w.obstacles {
		o.Rotation += parameter.ObstacleSpinPerTick
	}
	t := float64(w.frame)
	for i, c := range w.collectibles {
		c.Rotation += parameter.CollectibleSpinPerTick
		c.Y += math.Sin(t*parameter.CollectibleBobRate+float64(i)) * parameter.CollectibleBobAmp
	}
}
