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

// BehaviorFactory builds one behavior per spawned enemy
type BehaviorFactory func() agent.Behavior

// Options configures a World
type Options struct {
	Env    physics.Environment
	Agent  agent.Config
	Spawn  SpawnRules
	Seed   uint64
	Best   int  // Best score carried in from storage
	Music  bool // Background loop on at session start
	Logger *zap.Logger

	// Behavior builds enemy behaviors; nil uses the FSM
	Behavior BehaviorFactory

	// AutoSpawn drives the three spawners; tests disable it to place bodies by hand
	AutoSpawn bool
}

// DefaultOptions returns stock tuning with spawning enabled
func DefaultOptions() Options {
	return Options{
		Env:       physics.DefaultEnvironment(),
		Agent:     agent.DefaultConfig(),
		Spawn:     DefaultSpawnRules(),
		Seed:      1,
		Music:     true,
		AutoSpawn: true,
	}
}

// Stats counts run activity for diagnostics
type Stats struct {
	Spawned    [4]int // Indexed by core.Kind
	Collisions int
	Collected  int
	Exits      int
	Attacks    int
	Pushes     int
}

// World owns every Body of a session and advances it one tick at a time
// All methods run on the caller's goroutine; World is not safe for concurrent use
type World struct {
	opts Options
	env  physics.Environment
	log  *zap.Logger
	rng  *vmath.FastRand

	events *event.EventQueue

	nextID core.BodyID
	lookup map[core.BodyID]*core.Body
	pool   []*core.Body // Every live Body, insertion order

	player       *core.Body
	obstacles    []*core.Body
	collectibles []*core.Body
	enemies      []*agent.Agent

	GameState

	stats Stats
}

// NewWorld creates a world with the player placed and the session NotStarted
func NewWorld(opts Options) *World {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	w := &World{
		opts:   opts,
		env:    opts.Env,
		log:    opts.Logger.Named("world"),
		rng:    vmath.NewFastRand(opts.Seed),
		events: event.NewEventQueue(),
		nextID: 1,
		lookup: make(map[core.BodyID]*core.Body),
	}
	w.best = opts.Best
	w.music = opts.Music
	w.resetRun()
	w.status = StatusNotStarted
	return w
}

// Events returns the outbound event queue
func (w *World) Events() *event.EventQueue {
	return w.events
}

// Environment returns the active physics environment
func (w *World) Environment() physics.Environment {
	return w.env
}

// SetEnvironment replaces physics tuning between ticks
func (w *World) SetEnvironment(env physics.Environment) {
	w.env = env
	w.log.Info("environment updated",
		zap.Float64("gravity", env.Gravity),
		zap.Float64("friction", env.Friction),
		zap.Float64("max_velocity", env.MaxVelocity),
	)
}

// Player returns the player Body
func (w *World) Player() *core.Body {
	return w.player
}

// Obstacles returns the live obstacle collection
func (w *World) Obstacles() []*core.Body {
	return w.obstacles
}

// Collectibles returns the live collectible collection
func (w *World) Collectibles() []*core.Body {
	return w.collectibles
}

// Enemies returns the live agents
func (w *World) Enemies() []*agent.Agent {
	return w.enemies
}

// Bodies returns the pooled Body set
func (w *World) Bodies() []*core.Body {
	return w.pool
}

// Stats returns run counters
func (w *World) Stats() Stats {
	return w.stats
}

// Body resolves a handle for agents
func (w *World) Body(id core.BodyID) (*core.Body, bool) {
	b, ok := w.lookup[id]
	return b, ok
}

// add registers a Body in the pool and assigns its handle
func (w *World) add(b *core.Body, kind core.Kind) *core.Body {
	b.ID = w.nextID
	b.Kind = kind
	w.nextID++
	w.lookup[b.ID] = b
	w.pool = append(w.pool, b)
	if int(kind) < len(w.stats.Spawned) {
		w.stats.Spawned[kind]++
	}
	return b
}

// remove drops a Body from the pool; the owning collection is handled by the caller
func (w *World) remove(b *core.Body) {
	delete(w.lookup, b.ID)
	for i, p := range w.pool {
		if p == b {
			w.pool = append(w.pool[:i], w.pool[i+1:]...)
			return
		}
	}
}

// clearBodies drops every Body and collection
func (w *World) clearBodies() {
	clear(w.lookup)
	w.pool = w.pool[:0]
	w.obstacles = w.obstacles[:0]
	w.collectibles = w.collectibles[:0]
	w.enemies = w.enemies[:0]
	w.player = nil
}

func (w *World) spawnPlayer() {
	b := core.MustBody(parameter.PlayerStartX, w.env.Height/2, parameter.PlayerRadius, parameter.PlayerMass)
	w.player = w.add(b, core.KindPlayer)
}

func (w *World) emit(ev event.GameEvent) {
	ev.Frame = w.frame
	w.events.Push(ev)
}
