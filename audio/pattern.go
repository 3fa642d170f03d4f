package audio

import (
	"errors"
	"fmt"
	"sync"
)

// StepTrigger fires a drum on a step
type StepTrigger struct {
	Step     int
	Velocity float64
}

// NoteTrigger fires a bass note relative to the loop root
type NoteTrigger struct {
	Step     int
	Offset   int // Semitones above Root
	Velocity float64
	Steps    int // Note length in steps
}

// Loop is one cycled background arrangement on a sixteenth-note grid
type Loop struct {
	Name   string
	BPM    int
	Root   int // MIDI note
	Length int // Steps per cycle

	Kick  []StepTrigger
	Hihat []StepTrigger
	Snare []StepTrigger
	Bass  []NoteTrigger
}

var (
	// ErrInvalidLoop wraps a loop the sequencer cannot cycle
	ErrInvalidLoop = errors.New("invalid loop")
	// ErrUnknownLoop wraps a lookup of an unregistered name
	ErrUnknownLoop = errors.New("unknown loop")
)

var (
	loopMu sync.RWMutex
	loops  = make(map[string]*Loop)
)

// Validate rejects loops the sequencer cannot cycle
func (l *Loop) Validate() error {
	if l.Name == "" || l.Length <= 0 || l.BPM <= 0 {
		return fmt.Errorf("%w: %q length=%d bpm=%d", ErrInvalidLoop, l.Name, l.Length, l.BPM)
	}
	for _, set := range [][]StepTrigger{l.Kick, l.Hihat, l.Snare} {
		for _, trig := range set {
			if trig.Step < 0 || trig.Step >= l.Length {
				return fmt.Errorf("%w: %q drum step %d", ErrInvalidLoop, l.Name, trig.Step)
			}
		}
	}
	for _, n := range l.Bass {
		if n.Step < 0 || n.Step >= l.Length || n.Steps <= 0 {
			return fmt.Errorf("%w: %q bass step %d", ErrInvalidLoop, l.Name, n.Step)
		}
	}
	return nil
}

// RegisterLoop adds or replaces a loop by name
func RegisterLoop(l *Loop) error {
	if err := l.Validate(); err != nil {
		return err
	}
	loopMu.Lock()
	loops[l.Name] = l
	loopMu.Unlock()
	return nil
}

// GetLoop retrieves a loop by name
func GetLoop(name string) (*Loop, error) {
	loopMu.RLock()
	defer loopMu.RUnlock()
	l, ok := loops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLoop, name)
	}
	return l, nil
}

// cruiseLoop is the stock loop: four-on-floor, off-beat hat and a root-fifth bass
var cruiseLoop = &Loop{
	Name:   "cruise",
	BPM:    120,
	Root:   45, // A2
	Length: 16,
	Kick:   everyN(4, 16, 1.0, 0),
	Hihat:  everyN(4, 16, 0.5, 2),
	Snare:  []StepTrigger{{Step: 4, Velocity: 0.7}, {Step: 12, Velocity: 0.7}},
	Bass: []NoteTrigger{
		{Step: 0, Offset: 0, Velocity: 0.8, Steps: 3},
		{Step: 6, Offset: 7, Velocity: 0.6, Steps: 2},
		{Step: 8, Offset: 0, Velocity: 0.8, Steps: 3},
		{Step: 14, Offset: 12, Velocity: 0.5, Steps: 2},
	},
}

func everyN(n, length int, vel float64, offset int) []StepTrigger {
	var out []StepTrigger
	for s := offset; s < length; s += n {
		out = append(out, StepTrigger{Step: s, Velocity: vel})
	}
	return out
}

func init() {
	builtin := []*Loop{
		cruiseLoop,
		{
			Name:   "drive",
			BPM:    140,
			Root:   40, // E2
			Length: 16,
			Kick:   everyN(4, 16, 1.0, 0),
			Hihat:  everyN(2, 16, 0.4, 1),
			Bass: []NoteTrigger{
				{Step: 2, Offset: 0, Velocity: 0.7, Steps: 1},
				{Step: 3, Offset: 0, Velocity: 0.5, Steps: 1},
				{Step: 6, Offset: 0, Velocity: 0.7, Steps: 1},
				{Step: 7, Offset: 3, Velocity: 0.5, Steps: 1},
				{Step: 10, Offset: 0, Velocity: 0.7, Steps: 1},
				{Step: 11, Offset: 5, Velocity: 0.5, Steps: 1},
				{Step: 14, Offset: 7, Velocity: 0.7, Steps: 1},
				{Step: 15, Offset: 0, Velocity: 0.5, Steps: 1},
			},
		},
	}
	for _, l := range builtin {
		if err := RegisterLoop(l); err != nil {
			panic(err)
		}
	}
}
