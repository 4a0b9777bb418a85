package audio

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/valentine/notify"
	"github.com/lixenwraith/valentine/parameter"
)

// State is the externally observable player state
type State struct {
	Muted bool
	Ready bool
}

// Controller owns the mute/readiness sub-machine of the music player
// All methods and transport callbacks must run on one event loop
type Controller struct {
	transport Transport
	sink      notify.Sink
	logger    *zap.Logger

	state State
	hook  Hook

	loadReported bool
	attempts     int // playback attempts started, for diagnostics
}

// NewController creates a muted, not-ready controller
func NewController(t Transport, sink notify.Sink, logger *zap.Logger) *Controller {
	if t == nil {
		t = DisabledTransport{}
	}
	if sink == nil {
		sink = notify.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		transport: t,
		sink:      sink,
		logger:    logger,
		state:     State{Muted: true},
	}
}

// Start configures the transport and requests the resource
func (c *Controller) Start(volume float64, loop bool) {
	c.transport.Configure(volume, loop)
	c.transport.Load(c.OnLoaded)
}

// State returns the current player state
func (c *Controller) State() State {
	return c.state
}

// HookConsumed reports whether the first-interaction hook retired
func (c *Controller) HookConsumed() bool {
	return c.hook.Consumed()
}

// Attempts returns the number of playback attempts issued so far
func (c *Controller) Attempts() int {
	return c.attempts
}

// OnLoaded is the readiness signal of the resource
// Ready never reverts; each outcome is announced at most once
func (c *Controller) OnLoaded(err error) {
	c.state.Ready = true
	if c.loadReported {
		return
	}
	c.loadReported = true

	if err != nil {
		c.logger.Warn("audio resource failed to load", zap.Error(err))
		c.sink.Notify(notify.Info(parameter.MusicUnavailableTitle, parameter.MusicUnavailableDescription))
		return
	}
	c.logger.Info("audio resource loaded")
	c.sink.Notify(notify.Info(parameter.MusicReadyTitle, parameter.MusicReadyDescription))
}

// RequestToggleMute handles the explicit mute button
// Muted: attempts playback, on failure stays muted and shows a hint
// Unmuted: pauses and mutes unconditionally
func (c *Controller) RequestToggleMute() {
	if !c.state.Muted {
		c.transport.Pause()
		c.state.Muted = true
		c.logger.Debug("audio paused")
		return
	}

	c.attempts++
	c.transport.Play(func(err error) {
		c.state.Ready = true
		if err != nil {
			c.logger.Warn("audio playback rejected", zap.Error(err))
			c.sink.Notify(notify.Info(parameter.MusicBlockedTitle, parameter.MusicBlockedDescription))
			return
		}
		c.state.Muted = false
		c.hook.retire()
		c.logger.Debug("audio playing", zap.String("trigger", "toggle"))
	})
}

// FirstInteraction is invoked for user interactions other than the mute button
// It attempts playback once per armed hook; failures stay silent and keep the hook armed
func (c *Controller) FirstInteraction() {
	if !c.hook.Armed() || !c.state.Muted {
		return
	}

	c.hook.begin()
	c.attempts++
	c.transport.Play(func(err error) {
		if c.hook.Consumed() {
			// the mute button won the race
			return
		}
		if err != nil {
			c.hook.finish(false)
			c.state.Ready = true
			c.logger.Debug("first-interaction playback failed", zap.Error(err))
			return
		}
		c.hook.finish(true)
		c.state.Muted = false
		c.state.Ready = true
		c.logger.Debug("audio playing", zap.String("trigger", "first-interaction"))
	})
}
