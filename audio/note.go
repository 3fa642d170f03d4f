package audio

import "math"

// NoteFreq returns the equal-tempered frequency of a MIDI note, A4 (69) = 440Hz
func NoteFreq(midi int) float64 {
	if midi < 0 || midi > 127 {
		return 0
	}
	return 440 * math.Pow(2, float64(midi-69)/12)
}
