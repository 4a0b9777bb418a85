package parameter

import "time"

// Heart particles (affectionate and celebratory moods)
const (
	HeartCount       = 20
	HeartGlyph       = "💝"
	HeartDuration    = 5 * time.Second
	HeartDelayStep   = 400 * time.Millisecond
	HeartRepeatDelay = 3 * time.Second // upper bound, drawn per particle
	HeartLaneStep    = 0.10            // fraction of screen width per lane
	HeartScalePeak   = 1.2
)

// Crying particles (sorrowful mood)
const (
	TearCount          = 15
	TearBaseDuration   = 3 * time.Second
	TearDurationJitter = 2 * time.Second // upper bound added to base
	TearDelayStep      = 300 * time.Millisecond
	TearRepeatDelay    = 2 * time.Second
	TearLaneStep       = 0.08
)

// TearGlyphs cycle by particle index
var TearGlyphs = []string{"😢", "😭", "🥺", "😿", "💔"}

// Shared particle motion
const (
	// ParticleDriftRange is the max horizontal drift in pixels, drawn in [-range, +range)
	ParticleDriftRange = 50.0

	// Opacity keyframes: fade in until FadeInEnd, hold, fade out from FadeOutStart
	ParticleFadeInEnd    = 0.2
	ParticleFadeOutStart = 0.8

	// ParticleRotation is the max tilt applied to tears, degrees (rendered as lane jitter)
	ParticleRotation = 30.0
)
