package render

import (
	"math"

	"github.com/lixenwraith/valentine/audio"
	"github.com/lixenwraith/valentine/media"
	"github.com/lixenwraith/valentine/notify"
	"github.com/lixenwraith/valentine/parameter"
	"github.com/lixenwraith/valentine/proposal"
)

// View is the derived state the renderer draws
type View struct {
	Mood          proposal.Mood
	Accepted      bool
	Caption       string
	Emphasis      proposal.Emphasis
	DeclineSize   proposal.ButtonSize
	DeclineOffset proposal.Offset
	Media         media.Item
	Audio         audio.State
	Toasts        []notify.Toast
}

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Target identifies a clickable element
type Target uint8

const (
	TargetNone Target = iota
	TargetAccept
	TargetDecline
	TargetMute
)

func (t Target) String() string {
	switch t {
	case TargetAccept:
		return "accept"
	case TargetDecline:
		return "decline"
	case TargetMute:
		return "mute"
	default:
		return "none"
	}
}

// Layout places every element for one frame
type Layout struct {
	Width, Height int

	Media   Rect
	Title   Rect
	Accept  Rect
	Decline Rect
	Mute    Rect
}

// HitTest returns the element under (x, y)
// The decline button is drawn last and wins overlaps, as it does on screen
func (l Layout) HitTest(x, y int) Target {
	switch {
	case l.Mute.Contains(x, y):
		return TargetMute
	case l.Decline.Contains(x, y):
		return TargetDecline
	case l.Accept.Contains(x, y):
		return TargetAccept
	default:
		return TargetNone
	}
}

// AcceptSize returns the accept button footprint for an emphasis at the given animated scale
func AcceptSize(tier proposal.Tier, scale float64) (w, h int) {
	base := TextWidth(parameter.AcceptLabel) + 2*parameter.TierPadding[tier]
	return int(math.Round(float64(base) * scale)), parameter.TierHeight[tier]
}

// DeclineSize returns the decline button footprint for a caption and size toggle
func DeclineSize(caption string, size proposal.ButtonSize) (w, h int) {
	pad := 2
	if size == proposal.SizeCompact {
		pad = 1
	}
	return TextWidth(caption) + 2*pad, 1
}

// CellOffset converts a pixel offset to whole cells
func CellOffset(off proposal.Offset) (dx, dy int) {
	return int(math.Round(off.X / parameter.PixelsPerColumn)), int(math.Round(off.Y / parameter.PixelsPerRow))
}

// ComputeLayout places elements for a w*h screen
// scale and offset are the animated values, which may lag the view's targets
func ComputeLayout(w, h int, v View, scale float64, offset proposal.Offset) Layout {
	l := Layout{Width: w, Height: h}
	l.Mute = Rect{X: w - parameter.MuteButtonW - parameter.MarginX, Y: h - 1 - parameter.MarginY, W: parameter.MuteButtonW, H: 1}

	artW, artH := artWidth(v.Media), len(v.Media.Art)+1 // art plus alt line

	if v.Accepted {
		title := parameter.CelebrationText
		total := 1 + parameter.SectionGap + artH
		top := max(0, (h-total)/2)
		l.Title = centered(w, top, TextWidth(title), 1)
		l.Media = centered(w, top+1+parameter.SectionGap, artW, artH)
		return l
	}

	yesW, yesH := AcceptSize(v.Emphasis.Tier, scale)
	noW, noH := DeclineSize(v.Caption, v.DeclineSize)
	rowH := max(yesH, noH)

	total := artH + parameter.SectionGap + 1 + parameter.SectionGap + rowH
	top := max(0, (h-total)/2)

	l.Media = centered(w, top, artW, artH)
	l.Title = centered(w, top+artH+parameter.SectionGap, TextWidth(parameter.QuestionText), 1)

	rowY := l.Title.Y + 1 + parameter.SectionGap
	rowW := yesW + parameter.ButtonGap + noW
	startX := max(0, (w-rowW)/2)

	l.Accept = Rect{X: startX, Y: rowY + (rowH-yesH)/2, W: yesW, H: yesH}

	dx, dy := CellOffset(offset)
	noX := clampInt(startX+yesW+parameter.ButtonGap+dx, 0, max(0, w-noW))
	noY := clampInt(rowY+(rowH-noH)/2+dy, 0, max(0, h-noH))
	l.Decline = Rect{X: noX, Y: noY, W: noW, H: noH}

	return l
}

// artWidth is the widest of the art rows and the alt line in cells
func artWidth(it media.Item) int {
	return max(TextWidth(it.Alt), it.Width())
}

func centered(w, y, contentW, contentH int) Rect {
	return Rect{X: max(0, (w-contentW)/2), Y: y, W: contentW, H: contentH}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
