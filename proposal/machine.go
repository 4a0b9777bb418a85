package proposal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/valentine/media"
	"github.com/lixenwraith/valentine/notify"
	"github.com/lixenwraith/valentine/parameter"
)

// Machine owns the interaction state and applies transitions to it
// Not safe for concurrent use; drive it from a single event loop
type Machine struct {
	state  State
	rng    RandomSource
	lib    media.Library
	sink   notify.Sink
	logger *zap.Logger
}

// Option configures a Machine
type Option func(*Machine)

// WithLogger sets the logger used for transition tracing
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSink sets the notification sink
func WithSink(s notify.Sink) Option {
	return func(m *Machine) {
		if s != nil {
			m.sink = s
		}
	}
}

// NewMachine creates a machine in the initial undecided state
func NewMachine(lib media.Library, rng RandomSource, opts ...Option) (*Machine, error) {
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("proposal: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("proposal: nil random source")
	}

	m := &Machine{
		rng:    rng,
		lib:    lib,
		sink:   notify.Discard,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// State returns a copy of the current record
func (m *Machine) State() State {
	return m.state
}

// Decline applies one negative answer
// Returns false without touching state once accepted
func (m *Machine) Decline() bool {
	if m.state.Accepted {
		return false
	}

	s := &m.state
	s.DeclineCount++
	s.DeclineSize = s.DeclineSize.Flip()
	s.DeclineOffset = Offset{
		X: m.rng.Float64()*2*parameter.DeclineOffsetRange - parameter.DeclineOffsetRange,
		Y: m.rng.Float64()*2*parameter.DeclineOffsetRange - parameter.DeclineOffsetRange,
	}
	s.MediaIndex = (s.MediaIndex + 1) % len(m.lib.Sad)

	m.logger.Debug("declined",
		zap.Int("count", s.DeclineCount),
		zap.Stringer("size", s.DeclineSize),
		zap.Float64("offset_x", s.DeclineOffset.X),
		zap.Float64("offset_y", s.DeclineOffset.Y),
		zap.Int("media", s.MediaIndex),
	)
	return true
}

// Accept moves to the terminal accepted phase
// Returns false and does nothing when already accepted
func (m *Machine) Accept() bool {
	if m.state.Accepted {
		return false
	}

	m.state.Accepted = true
	m.state.MediaIndex = m.rng.IntN(len(m.lib.Happy))

	m.logger.Info("accepted",
		zap.Int("declines", m.state.DeclineCount),
		zap.Int("media", m.state.MediaIndex),
	)
	m.sink.Notify(notify.Success(parameter.AcceptedToastTitle, parameter.AcceptedToastDescription))
	return true
}

// Caption returns the decline button caption for the current state
func (m *Machine) Caption() string {
	return CaptionFor(m.state.DeclineCount)
}

// Emphasis returns the accept button emphasis for the current state
func (m *Machine) Emphasis() Emphasis {
	return AcceptButtonEmphasis(m.state.DeclineCount)
}

// Mood returns the background mood for the current state
func (m *Machine) Mood() Mood {
	return BackgroundMood(m.state.DeclineCount, m.state.Accepted)
}

// Media returns the item to show for the current mood
func (m *Machine) Media() media.Item {
	switch m.Mood() {
	case MoodCelebratory:
		return m.lib.HappyAt(m.state.MediaIndex)
	case MoodSorrowful:
		return m.lib.SadAt(m.state.MediaIndex)
	default:
		return m.lib.Intro
	}
}
