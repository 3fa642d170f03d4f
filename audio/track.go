package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/star-dash/parameter"
	"github.com/lixenwraith/star-dash/vmath"
)

// drumKind selects a percussion recipe
type drumKind uint8

const (
	drumKick drumKind = iota
	drumHihat
	drumSnare
)

var drumLengths = [...]time.Duration{
	drumKick:  150 * time.Millisecond,
	drumHihat: 40 * time.Millisecond,
	drumSnare: 120 * time.Millisecond,
}

// drumVoice is a retriggerable one-shot percussion voice
type drumVoice struct {
	kind   drumKind
	pos    int
	length int
	vel    float64
	phase  float64
	rng    *vmath.FastRand
}

func newDrumVoice(kind drumKind, rng *vmath.FastRand) *drumVoice {
	return &drumVoice{kind: kind, rng: rng}
}

func (v *drumVoice) trigger(vel float64) {
	v.pos = 0
	v.phase = 0
	v.vel = vel
	v.length = sampleRate.N(drumLengths[v.kind])
}

func (v *drumVoice) sample() float64 {
	if v.pos >= v.length {
		return 0
	}
	t := float64(v.pos) / float64(v.length)
	decay := (1 - t) * (1 - t)

	var s float64
	switch v.kind {
	case drumKick:
		// Pitch drops from 150Hz to 50Hz over the hit
		v.phase += (150 - 100*t) / float64(sampleRate)
		s = math.Sin(2 * math.Pi * v.phase)
	case drumHihat:
		s = 0.4 * v.rng.Symmetric(1)
		decay *= decay
	case drumSnare:
		v.phase += 180 / float64(sampleRate)
		s = 0.6*v.rng.Symmetric(1) + 0.4*math.Sin(2*math.Pi*v.phase)
	}
	v.pos++
	return s * decay * v.vel
}

// toneVoice is a decaying triangle voice for the bass line
type toneVoice struct {
	freq   float64
	phase  float64
	vel    float64
	pos    int
	length int
}

func (v *toneVoice) trigger(freq, vel float64, length int) {
	v.freq = freq
	v.phase = 0
	v.vel = vel
	v.pos = 0
	v.length = length
}

func (v *toneVoice) active() bool {
	return v.pos < v.length
}

func (v *toneVoice) sample() float64 {
	if !v.active() {
		return 0
	}
	tri := 4*math.Abs(v.phase-0.5) - 1
	env := 1 - float64(v.pos)/float64(v.length)
	if att := sampleRate.N(parameter.AudioAttack); v.pos < att {
		env *= float64(v.pos) / float64(att)
	}
	v.phase += v.freq / float64(sampleRate)
	v.phase -= math.Floor(v.phase)
	v.pos++
	return tri * env * v.vel
}

// loopTrack holds the voices for one Loop and triggers them per step
type loopTrack struct {
	loop    *Loop
	stepLen int

	kick, hihat, snare *drumVoice

	bass [parameter.MusicPolyphony]toneVoice
	next int // Round-robin steal index
}

func newLoopTrack(loop *Loop, rng *vmath.FastRand) *loopTrack {
	return &loopTrack{
		loop:    loop,
		stepLen: parameter.MusicSamplesPerStep(loop.BPM),
		kick:    newDrumVoice(drumKick, rng),
		hihat:   newDrumVoice(drumHihat, rng),
		snare:   newDrumVoice(drumSnare, rng),
	}
}

// triggerStep starts every voice scheduled on step
func (t *loopTrack) triggerStep(step int) {
	l := t.loop
	local := step % l.Length

	fire := func(v *drumVoice, set []StepTrigger) {
		for _, trig := range set {
			if trig.Step == local {
				v.trigger(trig.Velocity)
			}
		}
	}
	fire(t.kick, l.Kick)
	fire(t.hihat, l.Hihat)
	fire(t.snare, l.Snare)

	for _, n := range l.Bass {
		if n.Step != local {
			continue
		}
		t.bass[t.next].trigger(NoteFreq(l.Root+n.Offset), n.Velocity, n.Steps*t.stepLen)
		t.next = (t.next + 1) % len(t.bass)
	}
}

func (t *loopTrack) sample() float64 {
	s := 0.7 * (t.kick.sample() + t.hihat.sample() + t.snare.sample())
	for i := range t.bass {
		s += 0.5 * t.bass[i].sample()
	}
	return s
}

// reset silences every voice
func (t *loopTrack) reset() {
	t.kick.length, t.hihat.length, t.snare.length = 0, 0, 0
	for i := range t.bass {
		t.bass[i] = toneVoice{}
	}
	t.next = 0
}
