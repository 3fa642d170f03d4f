package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/audio"
	"github.com/lixenwraith/star-dash/config"
	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/engine"
	"github.com/lixenwraith/star-dash/event"
	"github.com/lixenwraith/star-dash/input"
	"github.com/lixenwraith/star-dash/parameter"
	"github.com/lixenwraith/star-dash/render"
	"github.com/lixenwraith/star-dash/score"
)

var (
	configFlag = flag.String("config", "star-dash.toml", "Path to TOML config")
	muteFlag   = flag.Bool("mute", false, "Start with audio disabled")
	seedFlag   = flag.Uint64("seed", 0, "World seed, 0 uses the config")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, watchable, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *seedFlag != 0 {
		cfg.Spawn.Seed = *seedFlag
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := score.Open(ctx, cfg.Store, log)
	if err != nil {
		log.Warn("score store unavailable, best score kept in memory", zap.String("backend", cfg.Store.Backend), zap.Error(err))
		store = score.NewMemoryStore(0)
	}
	defer store.Close()

	best, err := store.Load(ctx)
	if err != nil {
		log.Warn("best score load failed", zap.Error(err))
	}

	behaviors, err := cfg.BehaviorFactory(log)
	if err != nil {
		log.Warn("enemy script unavailable, using FSM", zap.Error(err))
	}

	opts := cfg.Options()
	opts.Best = best
	opts.Logger = log
	opts.Behavior = behaviors
	world := engine.NewWorld(opts)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen)
	collector := input.NewCollector(input.DefaultKeyTable(), cfg.Player.HoldWindow)
	collector.SetScale(renderer.Scale(opts.Env.Width, opts.Env.Height))

	sound := audio.NewSoundManager(opts.Env.Width, cfg.Audio.Volume, log)
	sound.SetMusic(cfg.Audio.Music)
	if err := sound.SetLoop(cfg.Audio.Loop); err != nil {
		log.Warn("music loop unavailable, using default", zap.Error(err))
	}
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Warn("audio initialization failed, continuing without audio", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	sink := score.NewSink(store, log)
	defer sink.Close()

	var updates <-chan *config.Config
	var reloadErrs <-chan error
	if watchable {
		if watcher, err := config.NewWatcher(*configFlag, log); err == nil {
			defer watcher.Close()
			updates, reloadErrs = watcher.Updates, watcher.Errors
		} else {
			log.Warn("config watch disabled", zap.Error(err))
		}
	}

	router := event.NewRouter(world.Events())
	router.Register(sound)
	router.Register(renderer)
	router.Register(sink)

	eventChan := make(chan tcell.Event, parameter.InputChannelSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta)
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	log.Info("session ready",
		zap.Int("best", best),
		zap.Bool("scripted", behaviors != nil),
		zap.String("store", cfg.Store.Backend),
	)

	for {
		select {
		case ev := <-eventChan:
			if !collector.Handle(ev, time.Now()) {
				log.Info("quit", zap.Int("score", world.GetScore()), zap.Int("best", world.GetBest()))
				// Drain pending writes, then persist best directly
				sink.Close()
				if err := store.Save(ctx, world.GetBest()); err != nil {
					log.Warn("best score save failed", zap.Error(err))
				}
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				renderer.Resize()
				collector.SetScale(renderer.Scale(opts.Env.Width, opts.Env.Height))
				screen.Sync()
			}

		case next, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			env := next.Environment()
			// Playfield size is fixed for a session
			env.Width, env.Height = opts.Env.Width, opts.Env.Height
			world.SetEnvironment(env)

		case err, ok := <-reloadErrs:
			if !ok {
				reloadErrs = nil
				continue
			}
			log.Warn("config reload rejected", zap.Error(err))

		case <-frameTicker.C:
			world.Tick(clock.Tick(), collector.Intent(time.Now()))
			router.DispatchAll()
			renderer.RenderFrame(world)
		}
	}
}

// loadConfig reads path over defaults; a missing file selects defaults and disables watching
func loadConfig(path string) (*config.Config, bool, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}
