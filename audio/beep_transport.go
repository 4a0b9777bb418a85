package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"github.com/lixenwraith/valentine/parameter"
)

// SpeakerInitFunc opens the output device
type SpeakerInitFunc func(sr beep.SampleRate, bufferSize int) error

// BeepTransport plays a looped music track through the beep speaker
// The track is decoded fully into memory on Load; the speaker opens on first Play
type BeepTransport struct {
	mu sync.Mutex

	path   string
	post   func(func())
	logger *zap.Logger

	volume float64
	loop   bool

	buffer *beep.Buffer
	ctrl   *beep.Ctrl

	initSpeaker  SpeakerInitFunc
	speakerReady bool
	closed       bool

	wg sync.WaitGroup
}

// NewBeepTransport creates a transport for the resource at path
// Empty path selects the built-in melody; post marshals callbacks to the event loop
func NewBeepTransport(path string, post func(func()), logger *zap.Logger) *BeepTransport {
	if post == nil {
		post = inlinePost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BeepTransport{
		path:        path,
		post:        post,
		logger:      logger,
		volume:      parameter.MusicVolume,
		loop:        parameter.MusicLoop,
		initSpeaker: speaker.Init,
	}
}

// SetSpeakerInit replaces the device opener, used by tests and headless runs
func (t *BeepTransport) SetSpeakerInit(fn SpeakerInitFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.initSpeaker = fn
}

// Configure implements Transport
func (t *BeepTransport) Configure(volume float64, loop bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.volume = math.Max(0, math.Min(1, volume))
	t.loop = loop
}

// Load implements Transport; decoding runs in the background
func (t *BeepTransport) Load(done func(error)) {
	report := postOnce(t.post, done)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		buf, err := t.decode()
		if err == nil {
			t.mu.Lock()
			t.buffer = buf
			t.mu.Unlock()
			t.logger.Debug("audio decoded",
				zap.String("path", t.path),
				zap.Int("samples", buf.Len()),
				zap.Int("rate", int(buf.Format().SampleRate)),
			)
		}
		report(err)
	}()
}

// Play implements Transport; opening the device runs in the background
func (t *BeepTransport) Play(done func(error)) {
	report := postOnce(t.post, done)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		report(t.start())
	}()
}

// Pause implements Transport
func (t *BeepTransport) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ctrl == nil {
		return
	}
	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
}

// Close stops playback, waits for background work and releases the device
// Safe to call more than once
func (t *BeepTransport) Close() {
	t.wg.Wait()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true

	if t.ctrl != nil {
		speaker.Lock()
		t.ctrl.Paused = true
		speaker.Unlock()
	}
	if t.speakerReady {
		speaker.Clear()
		speaker.Close()
		t.speakerReady = false
	}
}

func (t *BeepTransport) start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("audio transport closed")
	}
	if t.buffer == nil {
		return ErrNotLoaded
	}

	sr := t.buffer.Format().SampleRate
	if !t.speakerReady {
		if err := t.initSpeaker(sr, sr.N(parameter.MusicSpeakerBuffer)); err != nil {
			return fmt.Errorf("open speaker: %w", err)
		}
		t.speakerReady = true
	}

	// Resume an existing stream
	if t.ctrl != nil {
		speaker.Lock()
		t.ctrl.Paused = false
		speaker.Unlock()
		return nil
	}

	var stream beep.Streamer = t.buffer.Streamer(0, t.buffer.Len())
	if t.loop {
		stream = beep.Loop(-1, t.buffer.Streamer(0, t.buffer.Len()))
	}
	volume := &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   math.Log2(math.Max(t.volume, 1e-6)),
		Silent:   t.volume == 0,
	}
	t.ctrl = &beep.Ctrl{Streamer: volume}
	speaker.Play(t.ctrl)
	return nil
}

// decode reads the whole resource into a buffer
func (t *BeepTransport) decode() (*beep.Buffer, error) {
	if t.path == "" {
		return fallbackMelody()
	}

	f, err := os.Open(t.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", t.path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(t.path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%s: %w", t.path, ErrUnsupportedFormat)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", t.path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.path, err)
	}
	return buf, nil
}

// fallbackMelody renders the built-in phrase into a buffer
func fallbackMelody() (*beep.Buffer, error) {
	sr := beep.SampleRate(parameter.FallbackSampleRate)
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}

	notes := make([]beep.Streamer, 0, len(parameter.FallbackMelody))
	for _, midi := range parameter.FallbackMelody {
		hz := NoteFreq(midi)
		tone, err := generators.SineTone(sr, hz)
		if err != nil {
			return nil, fmt.Errorf("melody tone %.2fHz: %w", hz, err)
		}
		notes = append(notes, &effects.Gain{
			Streamer: beep.Take(sr.N(parameter.FallbackNoteDuration), tone),
			Gain:     parameter.FallbackAmplitude - 1,
		})
	}

	buf := beep.NewBuffer(format)
	buf.Append(beep.Seq(notes...))
	return buf, nil
}
