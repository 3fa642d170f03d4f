package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/agent"
	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/event"
	"github.com/lixenwraith/star-dash/parameter"
	"github.com/lixenwraith/star-dash/physics"
	"github.com/lixenwraith/star-dash/vmath"
)

// applyPolicy runs removal and contact rules per collection
// Each pass walks from the back so removal keeps indices valid
// A run-ending contact stops the remaining passes for this tick
func (w *World) applyPolicy() {
	if w.obstaclePass() {
		return
	}
	w.collectiblePass()
	w.enemyPass()
}

func (w *World) obstaclePass() bool {
	for i := len(w.obstacles) - 1; i >= 0; i-- {
		o := w.obstacles[i]
		if o.X < parameter.ObstacleExitX {
			w.obstacles = removeBody(w.obstacles, i)
			w.remove(o)
			w.addScore(parameter.ScoreObstacleExit)
			w.stats.Exits++
			continue
		}
		if physics.Overlaps(w.player, o) {
			w.endRun("obstacle")
			return true
		}
	}
	return false
}

func (w *World) collectiblePass() {
	for i := len(w.collectibles) - 1; i >= 0; i-- {
		c := w.collectibles[i]
		if c.X < parameter.CollectibleExitX {
			w.collectibles = removeBody(w.collectibles, i)
			w.remove(c)
			continue
		}
		if physics.Overlaps(w.player, c) {
			w.collectibles = removeBody(w.collectibles, i)
			w.remove(c)
			w.addScore(parameter.ScoreCollect)
			w.stats.Collected++
			w.emit(event.GameEvent{Type: event.EventCollect, X: c.X, Y: c.Y, HasPos: true})
			w.emit(event.GameEvent{Type: event.EventEffect, X: c.X, Y: c.Y, HasPos: true})
			w.log.Debug("collect", zap.Uint64("id", uint64(c.ID)), zap.Int("score", w.score))
		}
	}
}

func (w *World) enemyPass() {
	for i := len(w.enemies) - 1; i >= 0; i-- {
		a := w.enemies[i]
		e := a.Body
		if e.X < parameter.EnemyExitX {
			w.enemies = removeAgent(w.enemies, i)
			w.remove(e)
			continue
		}
		if !physics.Overlaps(w.player, e) {
			continue
		}
		if a.State() == agent.StateAttack {
			w.endRun("enemy")
			return
		}
		w.repel(e)
		w.emit(event.GameEvent{Type: event.EventCollision, X: e.X, Y: e.Y, HasPos: true})
	}
}

// repel pushes the player away from an enemy; coincident centers are skipped
func (w *World) repel(e *core.Body) {
	dx, dy := e.Offset(w.player)
	nx, ny, d := vmath.Normalize2D(dx, dy)
	if d == 0 {
		return
	}
	physics.ApplyForce(w.player, nx*parameter.PlayerEnemyRepel, ny*parameter.PlayerEnemyRepel)
	w.stats.Pushes++
}

func removeBody(s []*core.Body, i int) []*core.Body {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	return s[:len(s)-1]
}

func removeAgent(s []*agent.Agent, i int) []*agent.Agent {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	return s[:len(s)-1]
}
