// Package engine runs the single-threaded event loop that owns the proposal
// state machine and the audio controller, and drives frame rendering.
package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/valentine/audio"
	"github.com/lixenwraith/valentine/notify"
	"github.com/lixenwraith/valentine/parameter"
	"github.com/lixenwraith/valentine/proposal"
	"github.com/lixenwraith/valentine/render"
)

// Game wires the interaction state to the screen
// Every field is touched only by the goroutine running Run
type Game struct {
	screen   tcell.Screen
	machine  *proposal.Machine
	audio    *audio.Controller
	toasts   *notify.Queue
	renderer *render.Renderer
	mailbox  *Mailbox

	clock  Clock
	logger *zap.Logger
	frame  time.Duration

	buttons tcell.ButtonMask // held mouse buttons, clicks fire on press
	frames  uint64
}

// Option configures a Game
type Option func(*Game)

// WithClock overrides the frame clock
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithFPS sets the frame rate, clamped to the supported range
func WithFPS(fps int) Option {
	return func(g *Game) {
		fps = min(max(fps, parameter.MinFPS), parameter.MaxFPS)
		g.frame = time.Second / time.Duration(fps)
	}
}

// NewGame assembles a game; mailbox must be the one the audio transport posts to
func NewGame(
	screen tcell.Screen,
	machine *proposal.Machine,
	ctrl *audio.Controller,
	toasts *notify.Queue,
	renderer *render.Renderer,
	mailbox *Mailbox,
	opts ...Option,
) *Game {
	g := &Game{
		screen:   screen,
		machine:  machine,
		audio:    ctrl,
		toasts:   toasts,
		renderer: renderer,
		mailbox:  mailbox,
		clock:    SystemClock{},
		logger:   zap.NewNop(),
		frame:    time.Second / parameter.DefaultFPS,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Post queues fn onto the loop, safe from any goroutine
func (g *Game) Post(fn func()) {
	if !g.mailbox.Post(fn) {
		g.logger.Debug("task dropped after loop exit")
	}
}

// FrameInterval returns the time between frames
func (g *Game) FrameInterval() time.Duration {
	return g.frame
}

// Frames returns the number of frames drawn
func (g *Game) Frames() uint64 {
	return g.frames
}

// View snapshots the derived state for rendering
func (g *Game) View(now time.Time) render.View {
	st := g.machine.State()
	return render.View{
		Mood:          g.machine.Mood(),
		Accepted:      st.Accepted,
		Caption:       g.machine.Caption(),
		Emphasis:      g.machine.Emphasis(),
		DeclineSize:   st.DeclineSize,
		DeclineOffset: st.DeclineOffset,
		Media:         g.machine.Media(),
		Audio:         g.audio.State(),
		Toasts:        g.toasts.Visible(now),
	}
}

// Run processes input, posted tasks and frames until quit, ctx cancellation or input close
// The mailbox is closed on return so late transport callbacks are dropped
func (g *Game) Run(ctx context.Context, events <-chan tcell.Event) error {
	defer g.mailbox.Close()

	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	g.Frame()
	for {
		select {
		case <-ctx.Done():
			g.logger.Debug("loop cancelled", zap.Error(ctx.Err()))
			return nil

		case ev, ok := <-events:
			if !ok {
				g.logger.Debug("input closed")
				return nil
			}
			if !g.Handle(ev) {
				g.logger.Info("quit requested")
				return nil
			}

		case fn := <-g.mailbox.Tasks():
			fn()

		case <-ticker.C:
			g.Frame()
		}
	}
}

// Handle applies one terminal event; false means quit
func (g *Game) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := KeyAction(ev)
		if a == ActionQuit {
			return false
		}
		g.interact(a)

	case *tcell.EventMouse:
		pressed := ev.Buttons() &^ g.buttons
		g.buttons = ev.Buttons()
		if pressed&tcell.Button1 == 0 {
			return true
		}
		x, y := ev.Position()
		target := g.renderer.HitTest(x, y)
		g.logger.Debug("click", zap.Int("x", x), zap.Int("y", y), zap.Stringer("target", target))
		g.interact(TargetAction(target))

	case *tcell.EventResize:
		g.screen.Sync()
		g.Frame()
	}
	return true
}

// interact dispatches a and then fires the first-interaction hook
// A mute toggle races the hook; the controller keeps whichever playback succeeds first
func (g *Game) interact(a Action) {
	g.Dispatch(a)
	g.audio.FirstInteraction()
}

// Dispatch applies an action to the state machines
func (g *Game) Dispatch(a Action) {
	switch a {
	case ActionAccept:
		g.machine.Accept()
	case ActionDecline:
		g.machine.Decline()
	case ActionToggleMute:
		g.audio.RequestToggleMute()
	}
}

// Frame prunes expired toasts and draws one frame
func (g *Game) Frame() {
	now := g.clock.Now()
	g.toasts.Prune(now)
	g.renderer.Draw(g.screen, g.View(now), now)
	g.screen.Show()
	g.frames++
}
