package parameter

import "time"

// Music Playback
const (
	// MusicVolume is the linear playback volume (0.0-1.0)
	MusicVolume = 0.25

	// MusicLoop repeats the track forever
	MusicLoop = true

	// MusicSpeakerBuffer sets speaker latency
	MusicSpeakerBuffer = 100 * time.Millisecond
)

// Fallback melody, used when no audio resource is configured
const (
	FallbackSampleRate   = 44100
	FallbackNoteDuration = 400 * time.Millisecond
	FallbackAmplitude    = 0.3
)

// FallbackMelody is a short C-major phrase in MIDI note numbers, looped
// C5 E5 G5 E5 F5 D5 C5 G4
var FallbackMelody = []int{72, 76, 79, 76, 77, 74, 72, 67}

// Music notifications
const (
	MusicReadyTitle             = "🎵 Music ready!"
	MusicReadyDescription       = "Click the button to play romantic music"
	MusicUnavailableTitle       = "🎵 Music unavailable"
	MusicUnavailableDescription = "Don't worry, the love is still in the air! ❤️"
	MusicBlockedTitle           = "🎵 Click anywhere to enable music"
	MusicBlockedDescription     = "Requires an interaction first"
)
