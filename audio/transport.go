package audio

import (
	"errors"
	"sync"
)

var (
	// ErrNotLoaded is returned by Play before the resource finished loading
	ErrNotLoaded = errors.New("audio resource not loaded")

	// ErrUnsupportedFormat is returned for resources that are neither mp3 nor wav
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrDisabled is reported by the disabled transport
	ErrDisabled = errors.New("audio disabled")
)

// Transport is the playback backend driven by Controller
// Callbacks must be delivered on the owner's event loop, never concurrently with it
type Transport interface {
	// Configure sets linear volume (0.0-1.0) and looping before playback starts
	Configure(volume float64, loop bool)

	// Load prepares the resource; done reports readiness or failure exactly once
	Load(done func(error))

	// Play starts or resumes playback; done reports whether playback began
	Play(done func(error))

	// Pause halts playback; it cannot fail
	Pause()
}

// DisabledTransport refuses every operation, used when audio is switched off
type DisabledTransport struct{}

// Configure implements Transport
func (DisabledTransport) Configure(float64, bool) {}

// Load implements Transport
func (DisabledTransport) Load(done func(error)) { done(ErrDisabled) }

// Play implements Transport
func (DisabledTransport) Play(done func(error)) { done(ErrDisabled) }

// Pause implements Transport
func (DisabledTransport) Pause() {}

// inlinePost runs the callback immediately on the calling goroutine
func inlinePost(fn func()) { fn() }

// postOnce guards a callback so only the first delivery runs
func postOnce(post func(func()), done func(error)) func(error) {
	var once sync.Once
	return func(err error) {
		once.Do(func() {
			post(func() { done(err) })
		})
	}
}
