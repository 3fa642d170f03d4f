package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/star-dash/core"
	"github.com/lixenwraith/star-dash/input"
	"github.com/lixenwraith/star-dash/parameter"
)

func TestSpawnIntervals(t *testing.T) {
	r := DefaultSpawnRules()

	tests := []struct {
		name  string
		got   time.Duration
		wantF float64
	}{
		{"obstacle base", r.ObstacleInterval(2), 50},
		{"obstacle floor", r.ObstacleInterval(20), 12},
		{"collectible", r.CollectibleEvery(), 180},
		{"enemy base", r.EnemyInterval(2), 280},
		{"enemy floor", r.EnemyInterval(40), 60},
	}
	for _, tt := range tests {
		want := time.Duration(tt.wantF * float64(parameter.FrameDuration))
		if tt.got != want {
			t.Errorf("%s: expected %v, got %v", tt.name, want, tt.got)
		}
	}
}

func TestAutoSpawnObstacleCadence(t *testing.T) {
	opts := DefaultOptions()
	w := NewWorld(opts)

	w.Tick(parameter.FrameDuration, input.Intent{Start: true})
	for i := 2; i < 50; i++ {
		w.Tick(parameter.FrameDuration, input.Intent{})
	}
	if n := len(w.Obstacles()); n != 0 {
		t.Fatalf("Expected no obstacle after 49 ticks, got %d", n)
	}

	w.Tick(parameter.FrameDuration, input.Intent{})
	if n := len(w.Obstacles()); n != 1 {
		t.Fatalf("Expected one obstacle on tick 50, got %d", n)
	}

	o := w.Obstacles()[0]
	if o.X != w.Environment().Width+parameter.ObstacleSpawnX {
		t.Errorf("Expected spawn x %.0f, got %.2f", w.Environment().Width+parameter.ObstacleSpawnX, o.X)
	}
	if o.Y < parameter.ObstacleMarginY || o.Y >= w.Environment().Height-parameter.ObstacleMarginY {
		t.Errorf("Expected y within margins, got %.2f", o.Y)
	}
	if o.VX > -w.GetDifficulty()+parameter.DifficultyPerTick || o.VX < -(w.GetDifficulty()+parameter.ObstacleSpeedJitter) {
		t.Errorf("Expected vx in [-(speed+2), -speed], got %.3f", o.VX)
	}
	if o.Profile != core.ProfileDrifter {
		t.Errorf("Expected drifter profile, got %+v", o.Profile)
	}
	if w.Stats().Spawned[core.KindObstacle] != 1 {
		t.Errorf("Expected spawn counter 1, got %d", w.Stats().Spawned[core.KindObstacle])
	}
}

func TestAutoSpawnAllKinds(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	w := NewWorld(opts)
	w.Tick(parameter.FrameDuration, input.Intent{Start: true})

	for i := 0; i < 400 && w.GetStatus() == StatusRunning; i++ {
		w.Tick(parameter.FrameDuration, input.Intent{})
	}

	st := w.Stats()
	if st.Spawned[core.KindObstacle] == 0 {
		t.Error("Expected obstacles spawned")
	}
	if w.GetStatus() == StatusRunning {
		if st.Spawned[core.KindCollectible] == 0 {
			t.Error("Expected a collectible within 400 ticks")
		}
		if st.Spawned[core.KindEnemy] == 0 {
			t.Error("Expected an enemy within 400 ticks")
		}
	}

	// Pool and collections agree
	n := 1 + len(w.Obstacles()) + len(w.Collectibles()) + len(w.Enemies())
	if len(w.Bodies()) != n {
		t.Errorf("Expected pool size %d, got %d", n, len(w.Bodies()))
	}
	for _, b := range w.Bodies() {
		if got, ok := w.Body(b.ID); !ok || got != b {
			t.Errorf("Expected lookup for body %d", b.ID)
		}
	}
}

func TestEnemyLeavesPastLeftEdge(t *testing.T) {
	w := newTestWorld(t)
	a := w.AddEnemy(40, 100)
	if a.Body.Profile != core.ProfileWalker {
		t.Errorf("Expected walker profile, got %+v", a.Body.Profile)
	}

	w.Tick(parameter.FrameDuration, input.Intent{Start: true})
	for i := 0; i < 60 && len(w.Enemies()) > 0; i++ {
		a.Body.VX = -8
		w.Tick(parameter.FrameDuration, input.Intent{})
	}
	if len(w.Enemies()) != 0 {
		t.Fatalf("Expected enemy removed past the left edge, still at x=%.2f", a.Body.X)
	}
	if _, ok := w.Body(a.Body.ID); ok {
		t.Error("Expected enemy dropped from pool")
	}
}

func TestEnemySpawnCap(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < parameter.EnemyMaxLive+5; i++ {
		w.spawnEnemy()
	}
	if len(w.Enemies()) != parameter.EnemyMaxLive {
		t.Errorf("Expected %d live enemies, got %d", parameter.EnemyMaxLive, len(w.Enemies()))
	}
}
