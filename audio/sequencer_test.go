package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/star-dash/event"
	"github.com/lixenwraith/star-dash/parameter"
)

// streamN pulls n frames from s in small chunks and returns the summed energy
func streamN(t *testing.T, s *Sequencer, n int) float64 {
	t.Helper()
	buf := make([][2]float64, 512)
	energy := 0.0
	for n > 0 {
		chunk := buf[:min(n, len(buf))]
		got, ok := s.Stream(chunk)
		if !ok || got != len(chunk) {
			t.Fatalf("Expected endless stream, got n=%d ok=%v", got, ok)
		}
		for _, f := range chunk {
			energy += f[0] * f[0]
		}
		n -= got
	}
	return energy
}

func TestNoteFreq(t *testing.T) {
	tests := []struct {
		midi int
		want float64
	}{
		{69, 440},
		{81, 880},
		{57, 220},
		{-1, 0},
		{128, 0},
	}
	for _, tt := range tests {
		if got := NoteFreq(tt.midi); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NoteFreq(%d): expected %v, got %v", tt.midi, tt.want, got)
		}
	}
}

func TestSamplesPerStep(t *testing.T) {
	if got := parameter.MusicSamplesPerStep(120); got != 5512 {
		t.Errorf("Expected 5512 samples per step at 120bpm, got %d", got)
	}
	if parameter.MusicSamplesPerStep(1) != parameter.MusicSamplesPerStep(parameter.MusicMinBPM) {
		t.Error("Expected tempo clamped to the minimum")
	}
}

func TestLoopRegistry(t *testing.T) {
	for _, name := range []string{"cruise", "drive"} {
		if _, err := GetLoop(name); err != nil {
			t.Errorf("Expected built-in loop %q, got %v", name, err)
		}
	}
	if _, err := GetLoop("polka"); !errors.Is(err, ErrUnknownLoop) {
		t.Errorf("Expected ErrUnknownLoop, got %v", err)
	}

	bad := []*Loop{
		{Name: "", BPM: 120, Length: 16},
		{Name: "short", BPM: 120, Length: 0},
		{Name: "drum", BPM: 120, Length: 4, Kick: []StepTrigger{{Step: 4, Velocity: 1}}},
		{Name: "bass", BPM: 120, Length: 4, Bass: []NoteTrigger{{Step: 0, Steps: 0}}},
	}
	for _, l := range bad {
		if err := RegisterLoop(l); !errors.Is(err, ErrInvalidLoop) {
			t.Errorf("Expected ErrInvalidLoop for %q, got %v", l.Name, err)
		}
	}

	custom := &Loop{Name: "test-pulse", BPM: 90, Root: 48, Length: 4, Kick: []StepTrigger{{Step: 0, Velocity: 1}}}
	if err := RegisterLoop(custom); err != nil {
		t.Fatalf("RegisterLoop: %v", err)
	}
	if got, _ := GetLoop("test-pulse"); got != custom {
		t.Error("Expected registered loop returned")
	}
}

func TestSequencerSilentUntilStarted(t *testing.T) {
	s := NewSequencer(cruiseLoop, 1.0)
	if s.Playing() {
		t.Fatal("Expected stopped sequencer")
	}
	if e := streamN(t, s, 2048); e != 0 {
		t.Errorf("Expected silence while stopped, energy %f", e)
	}

	s.Start()
	if e := streamN(t, s, 2048); e == 0 {
		t.Error("Expected sound after Start with a kick on step 0")
	}
}

func TestSequencerAdvancesAndCycles(t *testing.T) {
	s := NewSequencer(cruiseLoop, 1.0)
	stepLen := parameter.MusicSamplesPerStep(cruiseLoop.BPM)
	s.Start()

	streamN(t, s, 3*stepLen+1)
	if step, cycles := s.Position(); step != 3 || cycles != 0 {
		t.Errorf("Expected step 3 cycle 0, got step %d cycle %d", step, cycles)
	}

	streamN(t, s, (cruiseLoop.Length-3)*stepLen)
	if step, cycles := s.Position(); step != 0 || cycles != 1 {
		t.Errorf("Expected wrap to step 0 cycle 1, got step %d cycle %d", step, cycles)
	}

	s.Start()
	if step, cycles := s.Position(); step != 0 || cycles != 0 {
		t.Errorf("Expected Start to rewind, got step %d cycle %d", step, cycles)
	}
}

func TestSequencerPauseHoldsPlayhead(t *testing.T) {
	s := NewSequencer(cruiseLoop, 1.0)
	stepLen := parameter.MusicSamplesPerStep(cruiseLoop.BPM)
	s.Start()
	streamN(t, s, 2*stepLen+1)

	s.SetPaused(true)
	if e := streamN(t, s, 4*stepLen); e != 0 {
		t.Errorf("Expected silence while paused, energy %f", e)
	}
	if step, _ := s.Position(); step != 2 {
		t.Errorf("Expected playhead held at step 2, got %d", step)
	}

	s.SetPaused(false)
	streamN(t, s, stepLen)
	if step, _ := s.Position(); step != 3 {
		t.Errorf("Expected playhead to resume at step 3, got %d", step)
	}

	s.Stop()
	if s.Playing() {
		t.Error("Expected stopped after Stop")
	}
}

func TestSequencerSetLoop(t *testing.T) {
	s := NewSequencer(cruiseLoop, 1.0)
	drive, err := GetLoop("drive")
	if err != nil {
		t.Fatalf("GetLoop: %v", err)
	}
	s.Start()
	streamN(t, s, 1024)
	s.SetLoop(drive)
	if s.Loop() != drive {
		t.Fatal("Expected drive loop active")
	}
	if step, _ := s.Position(); step != 0 || !s.Playing() {
		t.Errorf("Expected running sequencer to restart at step 0, got step %d playing=%v", step, s.Playing())
	}
}

// TestSoundManagerMusicEvents verifies session events drive the background loop
func TestSoundManagerMusicEvents(t *testing.T) {
	sm := NewSoundManager(800, 1.0, nil)
	music := sm.Music()
	if music.Playing() {
		t.Fatal("Expected loop idle before the first run")
	}

	sm.HandleEvent(event.GameEvent{Type: event.EventRunStart})
	if !music.Playing() {
		t.Fatal("Expected loop playing after run start")
	}

	sm.HandleEvent(event.GameEvent{Type: event.EventPause})
	if music.Playing() {
		t.Error("Expected loop held while paused")
	}
	sm.HandleEvent(event.GameEvent{Type: event.EventResume})
	if !music.Playing() {
		t.Error("Expected loop playing after resume")
	}

	// Mute covers effect voices only
	sm.HandleEvent(event.GameEvent{Type: event.EventMuteToggle, Value: 1})
	if !music.Playing() {
		t.Error("Expected loop unaffected by mute")
	}

	sm.HandleEvent(event.GameEvent{Type: event.EventMusicToggle, Value: 0})
	if music.Playing() || sm.MusicOn() {
		t.Error("Expected loop stopped by music toggle")
	}
	sm.HandleEvent(event.GameEvent{Type: event.EventRunStart})
	if music.Playing() {
		t.Error("Expected run start to respect music off")
	}

	sm.HandleEvent(event.GameEvent{Type: event.EventMusicToggle, Value: 1})
	if !music.Playing() || !sm.MusicOn() {
		t.Error("Expected loop playing after music toggle on")
	}

	if err := sm.SetLoop("polka"); !errors.Is(err, ErrUnknownLoop) {
		t.Errorf("Expected ErrUnknownLoop, got %v", err)
	}
	if err := sm.SetLoop("drive"); err != nil || music.Loop().Name != "drive" {
		t.Errorf("Expected drive loop selected, got %v", err)
	}
}
