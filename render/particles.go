package render

import (
	"math"
	"time"

	"github.com/lixenwraith/valentine/parameter"
	"github.com/lixenwraith/valentine/proposal"
)

// Particle is one floating glyph falling from the top edge
type Particle struct {
	Glyph       string
	Lane        float64 // horizontal start, fraction of screen width
	Drift       float64 // horizontal travel over one fall, pixels
	Duration    time.Duration
	Delay       time.Duration
	RepeatDelay time.Duration
	Pulse       bool // scale pulse, rendered as a brighter mid-fall
}

// Sample is the particle's appearance at one instant
type Sample struct {
	Glyph   string
	X, Y    int
	Opacity float64
	Visible bool
}

// SampleAt positions the particle at elapsed time since the field started
func (p Particle) SampleAt(elapsed time.Duration, w, h int) Sample {
	local := elapsed - p.Delay
	if local < 0 || p.Duration <= 0 {
		return Sample{}
	}
	cycle := p.Duration + p.RepeatDelay
	phase := local % cycle
	if phase >= p.Duration {
		return Sample{}
	}

	progress := float64(phase) / float64(p.Duration)
	opacity := Keyframe(progress)
	if p.Pulse {
		// peak at mid-fall, mirrors the 1 -> 1.2 -> 1 scale keyframes
		opacity *= 1 + (parameter.HeartScalePeak-1)*math.Sin(progress*math.Pi)
		opacity = math.Min(opacity, 1)
	}

	x := int(math.Round(p.Lane*float64(w) + p.Drift*progress/parameter.PixelsPerColumn))
	y := int(progress * float64(h))
	return Sample{Glyph: p.Glyph, X: x, Y: y, Opacity: opacity, Visible: opacity > 0 && x >= 0 && x < w && y < h}
}

// Keyframe maps fall progress to opacity: 0 -> 1 by FadeInEnd, hold, 1 -> 0 after FadeOutStart
func Keyframe(progress float64) float64 {
	switch {
	case progress <= 0 || progress >= 1:
		return 0
	case progress < parameter.ParticleFadeInEnd:
		return progress / parameter.ParticleFadeInEnd
	case progress > parameter.ParticleFadeOutStart:
		return (1 - progress) / (1 - parameter.ParticleFadeOutStart)
	default:
		return 1
	}
}

// Field is the animated background of one mood
type Field struct {
	Mood      proposal.Mood
	Particles []Particle
	Start     time.Time
}

// NewField builds the particle set for a mood, randomized by rng
func NewField(m proposal.Mood, rng proposal.RandomSource, start time.Time) *Field {
	f := &Field{Mood: m, Start: start}

	drift := func() float64 {
		return rng.Float64()*2*parameter.ParticleDriftRange - parameter.ParticleDriftRange
	}
	jitter := func(max time.Duration) time.Duration {
		return time.Duration(rng.Float64() * float64(max))
	}

	if m == proposal.MoodSorrowful {
		for i := 0; i < parameter.TearCount; i++ {
			f.Particles = append(f.Particles, Particle{
				Glyph:       parameter.TearGlyphs[i%len(parameter.TearGlyphs)],
				Lane:        float64(i) * parameter.TearLaneStep,
				Drift:       drift(),
				Duration:    parameter.TearBaseDuration + jitter(parameter.TearDurationJitter),
				Delay:       time.Duration(i) * parameter.TearDelayStep,
				RepeatDelay: jitter(parameter.TearRepeatDelay),
			})
		}
		return f
	}

	for i := 0; i < parameter.HeartCount; i++ {
		f.Particles = append(f.Particles, Particle{
			Glyph:       parameter.HeartGlyph,
			Lane:        float64(i) * parameter.HeartLaneStep,
			Drift:       drift(),
			Duration:    parameter.HeartDuration,
			Delay:       time.Duration(i) * parameter.HeartDelayStep,
			RepeatDelay: jitter(parameter.HeartRepeatDelay),
			Pulse:       true,
		})
	}
	return f
}

// Samples returns every visible particle at now
func (f *Field) Samples(now time.Time, w, h int) []Sample {
	elapsed := now.Sub(f.Start)
	out := make([]Sample, 0, len(f.Particles))
	for _, p := range f.Particles {
		if s := p.SampleAt(elapsed, w, h); s.Visible {
			out = append(out, s)
		}
	}
	return out
}
