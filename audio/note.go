package audio

import "math"

// noteFrequencies maps MIDI note numbers to Hz, A4 (69) = 440Hz, equal temperament
var noteFrequencies [128]float64

func init() {
	for i := range noteFrequencies {
		noteFrequencies[i] = 440 * math.Pow(2, float64(i-69)/12)
	}
}

// NoteFreq returns the frequency of a MIDI note, 0 outside 0-127
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= len(noteFrequencies) {
		return 0
	}
	return noteFrequencies[midi]
}
