package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/event"
	"github.com/lixenwraith/star-dash/input"
	"github.com/lixenwraith/star-dash/parameter"
)

// Status is the session phase
type Status uint8

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState holds per-session counters owned by a World
type GameState struct {
	status     Status
	score      int
	best       int
	difficulty float64
	energy     float64
	health     float64
	muted      bool
	music      bool
	bestDirty  bool // Best raised since the last flush

	frame   int64
	runTime time.Duration

	obstacleTimer    time.Duration
	collectibleTimer time.Duration
	enemyTimer       time.Duration
}

// GetStatus returns the session phase
func (gs *GameState) GetStatus() Status {
	return gs.status
}

// GetScore returns the current run score
func (gs *GameState) GetScore() int {
	return gs.score
}

// GetBest returns the best score seen by this session
func (gs *GameState) GetBest() int {
	return gs.best
}

// GetDifficulty returns the difficulty scalar
func (gs *GameState) GetDifficulty() float64 {
	return gs.difficulty
}

// GetEnergy returns player energy in [0, PlayerEnergyMax]
func (gs *GameState) GetEnergy() float64 {
	return gs.energy
}

// GetHealth returns player health
func (gs *GameState) GetHealth() float64 {
	return gs.health
}

// GetFrameNumber returns running ticks elapsed in this run
func (gs *GameState) GetFrameNumber() int64 {
	return gs.frame
}

// GetRunTime returns accumulated running time in this run
func (gs *GameState) GetRunTime() time.Duration {
	return gs.runTime
}

// IsMuted reports the mute toggle
func (gs *GameState) IsMuted() bool {
	return gs.muted
}

// IsMusicOn reports the background loop toggle
func (gs *GameState) IsMusicOn() bool {
	return gs.music
}

// addScore adds points and raises best when exceeded
func (gs *GameState) addScore(points int) {
	gs.score += points
	if gs.score > gs.best {
		gs.best = gs.score
		gs.bestDirty = true
	}
}

// flushBest emits the raised best at most once per tick
func (w *World) flushBest() {
	if !w.bestDirty {
		return
	}
	w.bestDirty = false
	w.emit(event.GameEvent{Type: event.EventBestScore, Value: w.best})
}

// resetRun clears bodies and counters for a fresh run, best and toggles survive
func (w *World) resetRun() {
	w.clearBodies()
	w.score = 0
	w.difficulty = w.opts.Spawn.BaseSpeed
	w.energy = parameter.PlayerEnergyMax
	w.health = parameter.PlayerHealthMax
	w.frame = 0
	w.runTime = 0
	w.obstacleTimer = 0
	w.collectibleTimer = 0
	w.enemyTimer = 0
	w.stats = Stats{}
	w.spawnPlayer()
}

// applyControls handles control edges; honored in every status
func (w *World) applyControls(in input.Intent) {
	if in.Mute {
		w.muted = !w.muted
		value := 0
		if w.muted {
			value = 1
		}
		w.emit(event.GameEvent{Type: event.EventMuteToggle, Value: value})
	}
	if in.Music {
		w.music = !w.music
		value := 0
		if w.music {
			value = 1
		}
		w.emit(event.GameEvent{Type: event.EventMusicToggle, Value: value})
	}

	switch w.status {
	case StatusNotStarted:
		if in.Start {
			w.startRun()
		}
	case StatusRunning:
		if in.Pause {
			w.status = StatusPaused
			w.emit(event.GameEvent{Type: event.EventPause})
			w.log.Info("paused", zap.Int64("frame", w.frame))
		}
	case StatusPaused:
		if in.Restart {
			w.Restart()
		} else if in.Pause {
			w.status = StatusRunning
			w.emit(event.GameEvent{Type: event.EventResume})
			w.log.Info("resumed", zap.Int64("frame", w.frame))
		}
	case StatusOver:
		if in.Restart {
			w.Restart()
		}
	}
}

func (w *World) startRun() {
	w.status = StatusRunning
	w.emit(event.GameEvent{Type: event.EventRunStart})
	w.log.Info("run started", zap.Int("best", w.best))
}

// Restart discards the current run and starts a new one
func (w *World) Restart() {
	w.resetRun()
	w.startRun()
}

// endRun freezes the score, emits game over once
func (w *World) endRun(cause string) {
	if w.status == StatusOver {
		return
	}
	w.status = StatusOver
	w.emit(event.GameEvent{Type: event.EventGameOver, Value: w.score})
	w.log.Info("run over",
		zap.String("cause", cause),
		zap.Int("score", w.score),
		zap.Int("best", w.best),
		zap.Int64("frames", w.frame),
	)
}
