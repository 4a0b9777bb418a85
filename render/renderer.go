package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/parameter"
	"github.com/lixenwraith/valentine/proposal"
)

// Priority determines draw order, lower values draw first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityParticle
	PriorityContent
	PriorityControl
	PriorityOverlay
)

// Frame is the per-frame input shared by every layer
type Frame struct {
	Screen        tcell.Screen
	View          View
	Layout        Layout
	Palette       Palette
	Now           time.Time
	Width, Height int
}

// Layer draws one part of the screen
type Layer interface {
	Draw(f *Frame)
}

// LayerFunc adapts a function to Layer
type LayerFunc func(f *Frame)

// Draw implements Layer
func (fn LayerFunc) Draw(f *Frame) { fn(f) }

// VisibilityToggle is optionally implemented by layers shown only in some states
type VisibilityToggle interface {
	Visible(v View) bool
}

type layerEntry struct {
	layer    Layer
	priority Priority
}

// Renderer draws a View onto a tcell screen
// It owns presentation-only state: particle field, button tweens and the last layout
type Renderer struct {
	rng   proposal.RandomSource
	field *Field

	scale *Tween
	offX  *Tween
	offY  *Tween

	layers []layerEntry

	layout Layout
}

// NewRenderer creates a renderer with the standard layers, rng randomizes particle fields
func NewRenderer(rng proposal.RandomSource) *Renderer {
	r := &Renderer{
		rng:   rng,
		scale: NewTween(parameter.TweenDuration),
		offX:  NewTween(parameter.TweenDuration),
		offY:  NewTween(parameter.TweenDuration),
	}

	r.Register(LayerFunc(drawBackground), PriorityBackground)
	r.Register(LayerFunc(r.drawParticles), PriorityParticle)
	r.Register(LayerFunc(drawMedia), PriorityContent)
	r.Register(LayerFunc(drawTitle), PriorityContent)
	r.Register(undecidedOnly{LayerFunc(drawAccept)}, PriorityControl)
	r.Register(undecidedOnly{LayerFunc(drawDecline)}, PriorityControl)
	r.Register(LayerFunc(drawMute), PriorityControl)
	r.Register(LayerFunc(drawToasts), PriorityOverlay)
	return r
}

// Register adds a layer at the given priority, keeping sorted order via insertion
// Equal priorities draw in registration order
func (r *Renderer) Register(l Layer, p Priority) {
	entry := layerEntry{layer: l, priority: p}
	pos := len(r.layers)
	for i, e := range r.layers {
		if p < e.priority {
			pos = i
			break
		}
	}

	r.layers = append(r.layers, layerEntry{})
	copy(r.layers[pos+1:], r.layers[pos:])
	r.layers[pos] = entry
}

// Layout returns the layout of the last drawn frame
func (r *Renderer) Layout() Layout {
	return r.layout
}

// HitTest maps a cell of the last drawn frame to a clickable element
func (r *Renderer) HitTest(x, y int) Target {
	return r.layout.HitTest(x, y)
}

// Animating reports whether a button transition is still in flight at now
func (r *Renderer) Animating(now time.Time) bool {
	return !r.scale.Done(now) || !r.offX.Done(now) || !r.offY.Done(now)
}

// Draw renders one frame; the caller shows the screen
func (r *Renderer) Draw(s tcell.Screen, v View, now time.Time) {
	w, h := s.Size()
	if r.field == nil || r.field.Mood != v.Mood {
		r.field = NewField(v.Mood, r.rng, now)
	}

	r.scale.Set(v.Emphasis.Scale, now)
	r.offX.Set(v.DeclineOffset.X, now)
	r.offY.Set(v.DeclineOffset.Y, now)
	offset := proposal.Offset{X: r.offX.Value(now), Y: r.offY.Value(now)}
	r.layout = ComputeLayout(w, h, v, r.scale.Value(now), offset)

	f := &Frame{
		Screen:  s,
		View:    v,
		Layout:  r.layout,
		Palette: PaletteFor(v.Mood),
		Now:     now,
		Width:   w,
		Height:  h,
	}
	for _, e := range r.layers {
		if vt, ok := e.layer.(VisibilityToggle); ok && !vt.Visible(v) {
			continue
		}
		e.layer.Draw(f)
	}
}

// Faint particles render as a dot in the particle tint, the rest as their glyph
func (r *Renderer) drawParticles(f *Frame) {
	pal := f.Palette
	for _, p := range r.field.Samples(f.Now, f.Width, f.Height) {
		bg := pal.Background(p.X, f.Width)
		if p.Opacity >= 0.5 {
			drawText(f.Screen, p.X, p.Y, p.Glyph, plain(tcell.StyleDefault.Background(Tcell(bg))))
			continue
		}
		fg := Fade(pal.Particle, bg, p.Opacity*2)
		f.Screen.SetContent(p.X, p.Y, '·', nil, tcell.StyleDefault.Foreground(Tcell(fg)).Background(Tcell(bg)))
	}
}

// undecidedOnly hides a layer once the proposal is accepted
type undecidedOnly struct{ Layer }

// Visible implements VisibilityToggle
func (u undecidedOnly) Visible(v View) bool { return !v.Accepted }
