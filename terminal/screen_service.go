package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects how colors are emitted
type ColorMode uint8

const (
	ColorModeAuto ColorMode = iota
	ColorMode256
	ColorModeTrueColor
)

// ParseColorMode maps the config/flag spelling to a ColorMode
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return ColorModeAuto
	}
}

// ScreenFactory creates the tcell screen, replaced by tests with a simulation screen
type ScreenFactory func() (tcell.Screen, error)

// ScreenService manages the tcell screen lifecycle and input polling
type ScreenService struct {
	factory   ScreenFactory
	screen    tcell.Screen
	colorMode ColorMode
	mouse     bool

	eventCh chan tcell.Event
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
}

// NewScreenService creates a screen service; nil factory uses tcell.NewScreen
func NewScreenService(factory ScreenFactory) *ScreenService {
	if factory == nil {
		factory = tcell.NewScreen
	}
	return &ScreenService{
		factory: factory,
		eventCh: make(chan tcell.Event, 256),
		doneCh:  make(chan struct{}),
	}
}

// Name implements service.Service
func (s *ScreenService) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (s *ScreenService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: ColorMode (optional), args[1]: bool enable mouse (optional)
func (s *ScreenService) Init(args ...any) error {
	if len(args) > 0 {
		if cm, ok := args[0].(ColorMode); ok {
			s.colorMode = cm
		}
	}
	if len(args) > 1 {
		if m, ok := args[1].(bool); ok {
			s.mouse = m
		}
	}

	// tcell reads these while building the screen
	switch s.colorMode {
	case ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case ColorModeTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := s.factory()
	if err != nil {
		return fmt.Errorf("terminal create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if s.mouse {
		screen.EnableMouse()
	}
	screen.HideCursor()
	screen.Clear()

	s.screen = screen
	return nil
}

// Start implements service.Service - launches input polling goroutine
func (s *ScreenService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.screen == nil {
		return nil
	}
	s.running = true

	go s.pollLoop()
	return nil
}

// pollLoop forwards input events until the screen is finalized
func (s *ScreenService) pollLoop() {
	defer close(s.doneCh)
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.eventCh <- ev
	}
}

// Stop implements service.Service - restores the terminal
func (s *ScreenService) Stop() error {
	s.mu.Lock()
	if s.stopped || s.screen == nil {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	running := s.running
	s.mu.Unlock()

	s.screen.Fini()
	if running {
		// drain so a blocked send cannot keep the poller alive
		for {
			select {
			case <-s.eventCh:
				continue
			case <-s.doneCh:
				return nil
			}
		}
	}
	return nil
}

// Screen returns the initialized screen
func (s *ScreenService) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event stream
func (s *ScreenService) Events() <-chan tcell.Event {
	return s.eventCh
}

// EmergencyReset finalizes the screen from a panic handler
func (s *ScreenService) EmergencyReset() {
	if s.screen != nil {
		s.screen.Fini()
	}
}
