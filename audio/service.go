package audio

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Options configures AudioService
type Options struct {
	Enabled bool
	Path    string
	Volume  float64
	Loop    bool
}

// AudioService wraps the music transport as a Service
// Handles graceful degradation: a disabled or failed backend yields DisabledTransport
type AudioService struct {
	opts   Options
	post   func(func())
	logger *zap.Logger

	beep      *BeepTransport
	transport Transport
	disabled  atomic.Bool
}

// NewService creates an audio service; post delivers transport callbacks to the event loop
func NewService(opts Options, post func(func()), logger *zap.Logger) *AudioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudioService{opts: opts, post: post, logger: logger}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool - force mute (true disables the backend entirely)
func (s *AudioService) Init(args ...any) error {
	enabled := s.opts.Enabled
	if len(args) > 0 {
		if off, ok := args[0].(bool); ok && off {
			enabled = false
		}
	}

	if !enabled {
		s.disabled.Store(true)
		s.transport = DisabledTransport{}
		s.logger.Info("audio disabled")
		return nil
	}

	s.beep = NewBeepTransport(s.opts.Path, s.post, s.logger.Named("beep"))
	s.beep.Configure(s.opts.Volume, s.opts.Loop)
	s.transport = s.beep
	return nil
}

// Start implements service.Service
func (s *AudioService) Start() error {
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	if s.beep != nil {
		s.beep.Close()
	}
	return nil
}

// IsDisabled returns true if audio was switched off
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Transport returns the active transport; DisabledTransport before Init
func (s *AudioService) Transport() Transport {
	if s.transport == nil {
		return DisabledTransport{}
	}
	return s.transport
}
