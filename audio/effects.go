package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/star-dash/parameter"
	"github.com/lixenwraith/star-dash/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear frequency glide
type oscillator struct {
	freq     float64
	glide    float64 // Hz added per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	glide := 0.0
	if samples > 0 {
		glide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		glide:    glide,
		duration: samples,
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Symmetric(1)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.freq += o.glide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or less is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Voice durations
const (
	collectDuration   = 180 * time.Millisecond
	collisionDuration = 120 * time.Millisecond
	jumpDuration      = 90 * time.Millisecond
	gameOverDuration  = 700 * time.Millisecond
)

var sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// CreateCollectSound generates a bright two-partial chime
func CreateCollectSound(master float64) beep.Streamer {
	fund := NewEnvelope(NewOscillator(1320, collectDuration, WaveSine, sampleRate),
		collectDuration, parameter.AudioAttack, 120*time.Millisecond, sampleRate)
	over := NewEnvelope(NewOscillator(1980, collectDuration, WaveSine, sampleRate),
		collectDuration, parameter.AudioAttack, 80*time.Millisecond, sampleRate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, parameter.CollectVolume*master)
}

// CreateCollisionSound generates a low noisy thud
func CreateCollisionSound(master float64) beep.Streamer {
	body := NewEnvelope(NewSweep(140, 60, collisionDuration, WaveSine, sampleRate),
		collisionDuration, parameter.AudioAttack, parameter.AudioRelease*2, sampleRate)
	grit := NewEnvelope(NewOscillator(0, collisionDuration, WaveNoise, sampleRate),
		collisionDuration, parameter.AudioAttack, collisionDuration-parameter.AudioAttack, sampleRate)
	mixed := beep.Mix(newVolume(body, 0.8), newVolume(grit, 0.2))
	return newVolume(mixed, parameter.CollisionVolume*master)
}

// CreateJumpSound generates a short rising chirp
func CreateJumpSound(master float64) beep.Streamer {
	s := NewEnvelope(NewSweep(300, 700, jumpDuration, WaveSquare, sampleRate),
		jumpDuration, parameter.AudioAttack, parameter.AudioRelease, sampleRate)
	return newVolume(s, 0.3*parameter.JumpVolume*master)
}

// CreateGameOverSound generates a falling saw tone
func CreateGameOverSound(master float64) beep.Streamer {
	s := NewEnvelope(NewSweep(440, 110, gameOverDuration, WaveSaw, sampleRate),
		gameOverDuration, 10*time.Millisecond, 300*time.Millisecond, sampleRate)
	return newVolume(s, 0.5*parameter.GameOverVolume*master)
}

// createSound dispatches by type
func createSound(st SoundType, master float64) beep.Streamer {
	switch st {
	case SoundCollect:
		return CreateCollectSound(master)
	case SoundCollision:
		return CreateCollisionSound(master)
	case SoundJump:
		return CreateJumpSound(master)
	case SoundGameOver:
		return CreateGameOverSound(master)
	default:
		return nil
	}
}
