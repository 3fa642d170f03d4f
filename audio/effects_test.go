package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and per-channel energy
func drain(s beep.Streamer) (total int, left, right float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			left += buf[i][0] * buf[i][0]
			right += buf[i][1] * buf[i][1]
		}
		total += n
		if !ok || n == 0 {
			return
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected mono, got %f/%f", i, samples[i][0], samples[i][1])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave only emits full-scale values
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, sampleRate)

	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Errorf("Square wave sample %d should be +/-1, got %f", i, samples[i][0])
		}
	}
}

// TestOscillatorNoise verifies noise stays in range and is not constant
func TestOscillatorNoise(t *testing.T) {
	osc := NewOscillator(0, 50*time.Millisecond, WaveNoise, sampleRate)

	samples := make([][2]float64, 256)
	n, _ := osc.Stream(samples)

	distinct := make(map[float64]bool)
	for i := 0; i < n; i++ {
		v := samples[i][0]
		if v < -1.0 || v > 1.0 {
			t.Errorf("Noise sample %d out of range: %f", i, v)
		}
		distinct[v] = true
	}
	if len(distinct) < 10 {
		t.Errorf("Expected varied noise, got %d distinct values", len(distinct))
	}
}

// TestOscillatorDuration verifies the stream ends after its duration
func TestOscillatorDuration(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, sampleRate)

	total, _, _ := drain(osc)
	expected := sampleRate.N(100 * time.Millisecond)
	if total != expected {
		t.Errorf("Expected %d samples, got %d", expected, total)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if n != 0 || ok {
		t.Errorf("Expected drained oscillator to return 0,false, got %d,%v", n, ok)
	}
}

// TestSweepGlides verifies a rising sweep crosses zero more often at the end than at the start
func TestSweepGlides(t *testing.T) {
	dur := 200 * time.Millisecond
	osc := NewSweep(100, 2000, dur, WaveSine, sampleRate)

	samples := make([][2]float64, sampleRate.N(dur))
	n, _ := osc.Stream(samples)
	quarter := n / 4

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
				c++
			}
		}
		return c
	}

	head := crossings(0, quarter)
	tail := crossings(n-quarter, n)
	if tail <= head {
		t.Errorf("Expected more zero crossings at sweep end, head=%d tail=%d", head, tail)
	}
}

// TestEnvelopeAttackPhase verifies linear ramp during attack
func TestEnvelopeAttackPhase(t *testing.T) {
	dur := 100 * time.Millisecond
	attack := 10 * time.Millisecond
	osc := NewOscillator(220, dur, WaveSquare, sampleRate)
	env := NewEnvelope(osc, dur, attack, 0, sampleRate)

	attSamples := sampleRate.N(attack)
	samples := make([][2]float64, attSamples*2)
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}

	half := attSamples / 2
	want := float64(half) / float64(attSamples)
	if math.Abs(math.Abs(samples[half][0])-want) > 1e-9 {
		t.Errorf("Expected magnitude %f mid-attack, got %f", want, math.Abs(samples[half][0]))
	}

	if math.Abs(samples[attSamples+5][0]) != 1.0 {
		t.Errorf("Expected full scale after attack, got %f", samples[attSamples+5][0])
	}
}

// TestEnvelopeRelease verifies the tail fades out
func TestEnvelopeRelease(t *testing.T) {
	dur := 50 * time.Millisecond
	release := 20 * time.Millisecond
	osc := NewOscillator(220, dur, WaveSquare, sampleRate)
	env := NewEnvelope(osc, dur, 0, release, sampleRate)

	total := sampleRate.N(dur)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("Expected %d samples, got %d", total, n)
	}

	last := math.Abs(samples[total-1][0])
	mid := math.Abs(samples[total-sampleRate.N(release)/2][0])
	if last >= mid {
		t.Errorf("Expected release to decay, mid=%f last=%f", mid, last)
	}
	if math.Abs(samples[0][0]) != 1.0 {
		t.Errorf("Expected full scale without attack, got %f", samples[0][0])
	}
}

// TestCreateSounds verifies every voice streams audible, bounded output
func TestCreateSounds(t *testing.T) {
	tests := []struct {
		st  SoundType
		dur time.Duration
	}{
		{SoundCollect, collectDuration},
		{SoundCollision, collisionDuration},
		{SoundJump, jumpDuration},
		{SoundGameOver, gameOverDuration},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := createSound(tt.st, 1.0)
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			total, left, _ := drain(s)
			if total != sampleRate.N(tt.dur) {
				t.Errorf("Expected %d samples, got %d", sampleRate.N(tt.dur), total)
			}
			if left == 0 {
				t.Error("Expected non-silent output")
			}
		})
	}
}

// TestCreateSoundInvalid verifies unknown types produce no voice
func TestCreateSoundInvalid(t *testing.T) {
	if s := createSound(soundTypeCount, 1.0); s != nil {
		t.Error("Expected nil streamer for invalid sound type")
	}
}

// TestMasterVolume verifies master gain scales energy and zero silences
func TestMasterVolume(t *testing.T) {
	// Square wave has no noise component so energy is deterministic
	_, loud, _ := drain(CreateJumpSound(1.0))
	_, quiet, _ := drain(CreateJumpSound(0.5))
	_, silent, _ := drain(CreateJumpSound(0))

	if quiet >= loud {
		t.Errorf("Expected lower energy at half volume, loud=%f quiet=%f", loud, quiet)
	}
	ratio := quiet / loud
	if math.Abs(ratio-0.25) > 1e-6 {
		t.Errorf("Expected energy ratio 0.25, got %f", ratio)
	}
	if silent != 0 {
		t.Errorf("Expected silence at zero volume, got %f", silent)
	}
}

// TestSoundTypeString verifies names
func TestSoundTypeString(t *testing.T) {
	if SoundCollect.String() != "collect" {
		t.Errorf("Expected collect, got %s", SoundCollect.String())
	}
	if soundTypeCount.String() != "unknown" {
		t.Errorf("Expected unknown, got %s", soundTypeCount.String())
	}
}
