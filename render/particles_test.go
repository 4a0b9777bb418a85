package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/valentine/parameter"
	"github.com/lixenwraith/valentine/proposal"
)

// fixedRandom returns the same draw every time
type fixedRandom struct{ f float64 }

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) IntN(n int) int   { return int(r.f * float64(n)) }

func TestKeyframe(t *testing.T) {
	tests := []struct {
		progress float64
		want     float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.1, 0.5},
		{0.2, 1},
		{0.5, 1},
		{0.8, 1},
		{0.9, 0.5},
		{1, 0},
		{1.5, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Keyframe(tt.progress), 1e-9, "progress %v", tt.progress)
	}
}

func TestParticleSampleTiming(t *testing.T) {
	p := Particle{
		Glyph:       "x",
		Lane:        0.5,
		Duration:    time.Second,
		Delay:       500 * time.Millisecond,
		RepeatDelay: time.Second,
	}

	assert.False(t, p.SampleAt(400*time.Millisecond, 80, 20).Visible, "before delay")

	s := p.SampleAt(1000*time.Millisecond, 80, 20)
	require.True(t, s.Visible)
	assert.Equal(t, "x", s.Glyph)
	assert.Equal(t, 40, s.X)
	assert.Equal(t, 10, s.Y)
	assert.InDelta(t, 1, s.Opacity, 1e-9)

	assert.False(t, p.SampleAt(2000*time.Millisecond, 80, 20).Visible, "in repeat gap")
	assert.True(t, p.SampleAt(3000*time.Millisecond, 80, 20).Visible, "second cycle")
}

func TestParticleDriftLeavesScreen(t *testing.T) {
	p := Particle{Glyph: "x", Lane: 0, Drift: -100, Duration: time.Second}
	assert.False(t, p.SampleAt(900*time.Millisecond, 80, 20).Visible)
}

func TestNewFieldPerMood(t *testing.T) {
	start := time.Unix(0, 0)

	hearts := NewField(proposal.MoodAffectionate, fixedRandom{0.5}, start)
	require.Len(t, hearts.Particles, parameter.HeartCount)
	for i, p := range hearts.Particles {
		assert.Equal(t, parameter.HeartGlyph, p.Glyph)
		assert.Equal(t, parameter.HeartDuration, p.Duration)
		assert.Equal(t, time.Duration(i)*parameter.HeartDelayStep, p.Delay)
		assert.True(t, p.Pulse)
		assert.InDelta(t, 0, p.Drift, 1e-9)
	}

	tears := NewField(proposal.MoodSorrowful, fixedRandom{0}, start)
	require.Len(t, tears.Particles, parameter.TearCount)
	for i, p := range tears.Particles {
		assert.Equal(t, parameter.TearGlyphs[i%len(parameter.TearGlyphs)], p.Glyph)
		assert.Equal(t, parameter.TearBaseDuration, p.Duration)
		assert.InDelta(t, -parameter.ParticleDriftRange, p.Drift, 1e-9)
		assert.False(t, p.Pulse)
	}

	celebration := NewField(proposal.MoodCelebratory, fixedRandom{0.5}, start)
	assert.Len(t, celebration.Particles, parameter.HeartCount)
}

func TestFieldSamplesOnlyVisible(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewField(proposal.MoodAffectionate, fixedRandom{0.5}, start)

	assert.Empty(t, f.Samples(start, 100, 30), "nothing has started falling")

	samples := f.Samples(start.Add(2500*time.Millisecond), 100, 30)
	require.NotEmpty(t, samples)
	for _, s := range samples {
		assert.True(t, s.Visible)
		assert.GreaterOrEqual(t, s.X, 0)
		assert.Less(t, s.X, 100)
	}
}
