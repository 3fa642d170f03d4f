package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/agent"
	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/event"
	"github.com/lixenwraith/star-dash/parameter"
)

// SpawnRules sets spawner cadence; intervals are in reference frames
type SpawnRules struct {
	BaseSpeed         float64
	DifficultyPerTick float64

	ObstacleBase  float64
	ObstacleSlope float64
	ObstacleFloor float64

	CollectibleInterval float64

	EnemyBase  float64
	EnemySlope float64
	EnemyFloor float64
}

// DefaultSpawnRules returns the stock cadence
func DefaultSpawnRules() SpawnRules {
	return SpawnRules{
		BaseSpeed:           parameter.BaseGameSpeed,
		DifficultyPerTick:   parameter.DifficultyPerTick,
		ObstacleBase:        parameter.ObstacleIntervalBase,
		ObstacleSlope:       parameter.ObstacleIntervalSlope,
		ObstacleFloor:       parameter.ObstacleIntervalFloor,
		CollectibleInterval: parameter.CollectibleInterval,
		EnemyBase:           parameter.EnemyIntervalBase,
		EnemySlope:          parameter.EnemyIntervalSlope,
		EnemyFloor:          parameter.EnemyIntervalFloor,
	}
}

// ObstacleInterval returns the obstacle cadence at the given speed
func (r *SpawnRules) ObstacleInterval(speed float64) time.Duration {
	return frames(max(r.ObstacleBase-speed*r.ObstacleSlope, r.ObstacleFloor))
}

// CollectibleEvery returns the fixed collectible cadence
func (r *SpawnRules) CollectibleEvery() time.Duration {
	return frames(r.CollectibleInterval)
}

// EnemyInterval returns the enemy cadence at the given speed
func (r *SpawnRules) EnemyInterval(speed float64) time.Duration {
	return frames(max(r.EnemyBase-speed*r.EnemySlope, r.EnemyFloor))
}

func frames(n float64) time.Duration {
	return time.Duration(n * float64(parameter.FrameDuration))
}

// advanceSpawners accumulates dt and spawns when a timer passes its interval
func (w *World) advanceSpawners(dt time.Duration) {
	rules := &w.opts.Spawn

	w.obstacleTimer += dt
	if w.obstacleTimer > rules.ObstacleInterval(w.difficulty) {
		w.obstacleTimer = 0
		w.spawnObstacle()
	}

	w.collectibleTimer += dt
	if w.collectibleTimer > rules.CollectibleEvery() {
		w.collectibleTimer = 0
		w.spawnCollectible()
	}

	w.enemyTimer += dt
	if w.enemyTimer > rules.EnemyInterval(w.difficulty) {
		w.enemyTimer = 0
		w.spawnEnemy()
	}
}

func (w *World) spawnObstacle() {
	y := w.rng.Range(parameter.ObstacleMarginY, w.env.Height-parameter.ObstacleMarginY)
	vx := -(w.difficulty + w.rng.Float64()*parameter.ObstacleSpeedJitter)
	b := w.AddObstacle(w.env.Width+parameter.ObstacleSpawnX, y, vx)
	w.log.Debug("spawn obstacle", zap.Uint64("id", uint64(b.ID)), zap.Float64("y", y), zap.Float64("vx", vx))
}

func (w *World) spawnCollectible() {
	y := w.rng.Range(0, w.env.Height)
	b := w.AddCollectible(w.env.Width+parameter.CollectibleSpawnX, y, -w.difficulty)
	w.log.Debug("spawn collectible", zap.Uint64("id", uint64(b.ID)), zap.Float64("y", y))
}

func (w *World) spawnEnemy() {
	if len(w.enemies) >= parameter.EnemyMaxLive {
		return
	}
	y := w.rng.Range(parameter.EnemyMarginY, w.env.Height-parameter.EnemyMarginY)
	a := w.AddEnemy(w.env.Width+parameter.EnemySpawnX, y)
	w.log.Debug("spawn enemy", zap.Uint64("id", uint64(a.Body.ID)), zap.Float64("y", y))
}

// AddObstacle places an obstacle drifting at vx
func (w *World) AddObstacle(x, y, vx float64) *core.Body {
	b := core.MustBody(x, y, parameter.ObstacleRadius, parameter.ObstacleMass)
	b.VX = vx
	b.Profile = core.ProfileDrifter
	w.obstacles = append(w.obstacles, w.add(b, core.KindObstacle))
	return b
}

// AddCollectible places a collectible drifting at vx
func (w *World) AddCollectible(x, y, vx float64) *core.Body {
	b := core.MustBody(x, y, parameter.CollectibleRadius, parameter.CollectibleMass)
	b.VX = vx
	b.Profile = core.ProfileDrifter
	w.collectibles = append(w.collectibles, w.add(b, core.KindCollectible))
	return b
}

// AddEnemy places an agent targeting the player
func (w *World) AddEnemy(x, y float64) *agent.Agent {
	b := core.MustBody(x, y, parameter.EnemyRadius, parameter.EnemyMass)
	b.Profile = core.ProfileWalker
	w.add(b, core.KindEnemy)

	var behavior agent.Behavior
	if w.opts.Behavior != nil {
		behavior = w.opts.Behavior()
	}
	a := agent.New(b, w.opts.Agent, behavior)
	a.Target = w.player.ID
	a.OnAttack = w.onAttack
	w.enemies = append(w.enemies, a)
	return a
}

func (w *World) onAttack(a *agent.Agent) {
	w.stats.Attacks++
	w.emit(event.GameEvent{Type: event.EventCollision, X: a.Body.X, Y: a.Body.Y, HasPos: true})
	w.log.Debug("enemy attack", zap.Uint64("id", uint64(a.Body.ID)))
}
