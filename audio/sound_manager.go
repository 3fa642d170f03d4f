package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/star-dash/event"
	"github.com/lixenwraith/star-dash/parameter"
)

// SoundManager renders game events as synthesized voices over a background loop
// Voices mix on the speaker goroutine; all methods are safe to call without a device
// Mute silences effect voices only; the loop has its own toggle
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *Sequencer
	initialized bool
	muted       bool
	musicOn     bool
	volume      float64
	width       float64 // Playfield width for pan
	log         *zap.Logger

	played [soundTypeCount]int
}

var _ event.Handler = (*SoundManager)(nil)

// NewSoundManager creates a sound manager for a playfield of the given width
func NewSoundManager(width, volume float64, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	loop, err := GetLoop(parameter.MusicDefaultLoop)
	if err != nil {
		loop = cruiseLoop
	}
	return &SoundManager{
		mixer:   &beep.Mixer{},
		music:   NewSequencer(loop, parameter.MusicVolume*volume),
		musicOn: true,
		volume:  volume,
		width:   width,
		log:     log.Named("audio"),
	}
}

// Music returns the background sequencer
func (sm *SoundManager) Music() *Sequencer {
	return sm.music
}

// SetLoop selects the background arrangement by name
func (sm *SoundManager) SetLoop(name string) error {
	loop, err := GetLoop(name)
	if err != nil {
		return err
	}
	sm.music.SetLoop(loop)
	sm.log.Info("music loop selected", zap.String("loop", name), zap.Int("bpm", loop.BPM))
	return nil
}

// SetMusic enables or disables the background loop; disabling stops it
func (sm *SoundManager) SetMusic(on bool) {
	sm.mu.Lock()
	sm.musicOn = on
	sm.mu.Unlock()
	if !on {
		sm.music.Stop()
	}
}

// MusicOn reports the background loop toggle
func (sm *SoundManager) MusicOn() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicOn
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferWindow))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer, sm.music)
	sm.initialized = true
	return nil
}

// Cleanup stops all voices and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music.Stop()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences new voices
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Played returns how many voices of a type were queued
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}

// Build returns the voice for an event, panned when the event carries x
func (sm *SoundManager) Build(ev event.GameEvent) (beep.Streamer, SoundType, bool) {
	st, ok := soundFor(ev.Type)
	if !ok {
		return nil, 0, false
	}
	s := createSound(st, sm.volume)
	if ev.HasPos {
		s = withPan(s, Pan(ev.X, sm.width))
	}
	return s, st, true
}

// EventTypes lists the events with a voice, the toggles and the session events driving the loop
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollect,
		event.EventCollision,
		event.EventJump,
		event.EventGameOver,
		event.EventMuteToggle,
		event.EventMusicToggle,
		event.EventRunStart,
		event.EventPause,
		event.EventResume,
	}
}

// HandleEvent consumes one game event
// Toggles are applied here so the sink tracks the world's flags
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMuteToggle:
		sm.SetMuted(ev.Value != 0)
		return
	case event.EventMusicToggle:
		on := ev.Value != 0
		sm.SetMusic(on)
		if on {
			sm.music.Start()
		}
		return
	case event.EventRunStart:
		if sm.MusicOn() {
			sm.music.Start()
		}
		return
	case event.EventPause:
		sm.music.SetPaused(true)
		return
	case event.EventResume:
		sm.music.SetPaused(false)
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.muted {
		return
	}

	s, st, ok := sm.Build(ev)
	if !ok {
		return
	}
	sm.played[st]++

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.log.Debug("voice", zap.Stringer("sound", st), zap.Bool("panned", ev.HasPos))
}

// HandleAll consumes a batch of events in order
func (sm *SoundManager) HandleAll(events []event.GameEvent) {
	for _, ev := range events {
		sm.HandleEvent(ev)
	}
}
