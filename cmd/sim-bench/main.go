package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/config"
	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/engine"
	"github.com/lixenwraith/star-dash/input"
	"github.com/lixenwraith/star-dash/parameter"
)

var (
	configFlag = flag.String("config", "", "Optional TOML config")
	ticksFlag  = flag.Int("ticks", parameter.BenchDefaultTicks, "Ticks per run")
	runsFlag   = flag.Int("runs", 5, "Number of runs")
	seedFlag   = flag.Uint64("seed", 1, "World seed")
	scriptFlag = flag.String("script", "", "Bundled enemy behavior name")
	verbose    = flag.Bool("v", false, "Log to stderr")
)

type runResult struct {
	score  int
	frames int64
	over   bool
	stats  engine.Stats
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if *scriptFlag != "" {
		cfg.Script.Behavior = *scriptFlag
	}

	log := zap.NewNop()
	if *verbose {
		cfg.Logging.File = ""
		l, err := config.NewLogger(cfg.Logging)
		if err == nil {
			log = l
			defer log.Sync()
		}
	}

	behaviors, err := cfg.BehaviorFactory(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load behavior: %v\n", err)
		os.Exit(1)
	}

	opts := cfg.Options()
	opts.Seed = *seedFlag
	opts.Logger = log
	opts.Behavior = behaviors
	world := engine.NewWorld(opts)

	// Simulated time advances one frame per tick regardless of wall time
	sim := engine.NewManualTimeProvider(time.Unix(0, 0), parameter.FrameDuration)
	clock := engine.NewFrameClock(sim, parameter.MaxFrameDelta)
	start := time.Now()
	results := make([]runResult, 0, *runsFlag)
	for i := 0; i < *runsFlag; i++ {
		results = append(results, runOnce(world, sim, clock, *ticksFlag))
	}
	elapsed := time.Since(start)

	var totalFrames int64
	fmt.Printf("%-4s %-7s %-8s %-5s %-8s %-10s %-9s %-6s %-8s %-7s\n",
		"RUN", "SCORE", "FRAMES", "OVER", "SPAWNED", "COLLISIONS", "COLLECTED", "EXITS", "ATTACKS", "PUSHES")
	for i, r := range results {
		totalFrames += r.frames
		spawned := 0
		for _, n := range r.stats.Spawned {
			spawned += n
		}
		fmt.Printf("%-4d %-7d %-8d %-5v %-8d %-10d %-9d %-6d %-8d %-7d\n",
			i+1, r.score, r.frames, r.over, spawned, r.stats.Collisions,
			r.stats.Collected, r.stats.Exits, r.stats.Attacks, r.stats.Pushes)
	}

	var perTick time.Duration
	if totalFrames > 0 {
		perTick = elapsed / time.Duration(totalFrames)
	}
	fmt.Printf("\nBest: %d  Frames: %d  Wall: %v  Avg tick: %v\n",
		world.GetBest(), totalFrames, elapsed.Round(time.Millisecond), perTick)
}

// runOnce plays one run with the dodging bot
func runOnce(world *engine.World, sim *engine.ManualTimeProvider, clock *engine.FrameClock, ticks int) runResult {
	clock.Reset()
	clock.Tick()
	if world.GetStatus() == engine.StatusNotStarted {
		sim.Step()
		world.Tick(clock.Tick(), input.Intent{Start: true})
	} else {
		world.Restart()
	}

	for i := 0; i < ticks && world.GetStatus() == engine.StatusRunning; i++ {
		sim.Step()
		world.Tick(clock.Tick(), steer(world))
		world.Events().Reset()
	}

	return runResult{
		score:  world.GetScore(),
		frames: world.GetFrameNumber(),
		over:   world.GetStatus() == engine.StatusOver,
		stats:  world.Stats(),
	}
}

// steer dodges the nearest obstacle ahead and otherwise drifts toward the nearest collectible
func steer(world *engine.World) input.Intent {
	p := world.Player()
	var in input.Intent

	if threat := nearestAhead(p, world.Obstacles(), true); threat != nil {
		if threat.Y >= p.Y {
			in.Up = true
		} else {
			in.Down = true
		}
		return in
	}

	for _, a := range world.Enemies() {
		dx, dy := a.Body.Offset(p)
		if math.Hypot(dx, dy) < parameter.BenchDodgeRange/2 {
			// Move away from the enemy
			in.Right = dx > 0
			in.Left = dx <= 0
			in.Up = dy < 0
			return in
		}
	}

	if c := nearestAhead(p, world.Collectibles(), false); c != nil {
		in.Up = c.Y < p.Y-p.Radius
		in.Down = c.Y > p.Y+p.Radius
	}
	return in
}

// nearestAhead returns the closest body in front of p; inLane limits it to bodies on a collision course
func nearestAhead(p *core.Body, bodies []*core.Body, inLane bool) *core.Body {
	var best *core.Body
	bestDX := parameter.BenchDodgeRange
	for _, b := range bodies {
		dx := b.X - p.X
		if dx < -p.Radius || dx > bestDX {
			continue
		}
		if inLane && math.Abs(b.Y-p.Y) > p.Radius+b.Radius+10 {
			continue
		}
		best, bestDX = b, dx
	}
	return best
}
