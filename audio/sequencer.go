package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/star-dash/vmath"
)

// Sequencer cycles a Loop as an endless beep.Streamer
// It stays in the mixer for the whole session and streams silence while stopped or paused
type Sequencer struct {
	mu sync.Mutex

	track  *loopTrack
	volume float64

	step    int // Step within the loop
	pos     int // Sample within the step
	cycles  int // Completed loop cycles since Start
	running bool
	paused  bool
}

var _ beep.Streamer = (*Sequencer)(nil)

// NewSequencer creates a stopped sequencer for loop at linear gain volume
func NewSequencer(loop *Loop, volume float64) *Sequencer {
	rng := vmath.NewFastRand(uint64(time.Now().UnixNano()))
	return &Sequencer{
		track:  newLoopTrack(loop, rng),
		volume: volume,
	}
}

// SetLoop swaps the arrangement; a running sequencer restarts from the top
func (s *Sequencer) SetLoop(loop *Loop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rng := s.track.kick.rng
	s.track = newLoopTrack(loop, rng)
	if s.running {
		s.rewind()
	}
}

// Loop returns the active arrangement
func (s *Sequencer) Loop() *Loop {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.track.loop
}

// Start rewinds to step 0 and plays; calling it while playing restarts the loop
func (s *Sequencer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
	s.paused = false
	s.rewind()
}

func (s *Sequencer) rewind() {
	s.step, s.pos, s.cycles = 0, 0, 0
	s.track.reset()
	s.track.triggerStep(0)
}

// Stop halts playback and silences voices
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.paused = false
	s.track.reset()
}

// SetPaused holds or releases the playhead without rewinding
func (s *Sequencer) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
}

// Playing reports whether samples are being produced
func (s *Sequencer) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running && !s.paused
}

// Position returns the current step and completed cycles
func (s *Sequencer) Position() (step, cycles int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step, s.cycles
}

func (s *Sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.paused {
		clear(samples)
		return len(samples), true
	}

	t := s.track
	for i := range samples {
		if s.pos >= t.stepLen {
			s.pos = 0
			s.step++
			if s.step >= t.loop.Length {
				s.step = 0
				s.cycles++
			}
			t.triggerStep(s.step)
		}
		v := t.sample() * s.volume
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *Sequencer) Err() error { return nil }
