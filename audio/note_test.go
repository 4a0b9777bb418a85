package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/valentine/parameter"
)

func TestNoteFreq(t *testing.T) {
	assert.InDelta(t, 440.0, NoteFreq(69), 1e-9)
	assert.InDelta(t, 523.25, NoteFreq(72), 0.01)
	assert.InDelta(t, 392.00, NoteFreq(67), 0.01)
	assert.Zero(t, NoteFreq(-1))
	assert.Zero(t, NoteFreq(128))
}

func TestFallbackMelodyIsAudible(t *testing.T) {
	for _, midi := range parameter.FallbackMelody {
		hz := NoteFreq(midi)
		assert.Greater(t, hz, 20.0)
		assert.Less(t, hz, float64(parameter.FallbackSampleRate)/2, "below Nyquist")
	}
}
