package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/valentine/media"
	"github.com/lixenwraith/valentine/parameter"
	"github.com/lixenwraith/valentine/proposal"
)

func undecidedView(declines int) View {
	lib := media.Default()
	return View{
		Mood:     proposal.BackgroundMood(declines, false),
		Caption:  proposal.CaptionFor(declines),
		Emphasis: proposal.AcceptButtonEmphasis(declines),
		Media:    lib.Intro,
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, Rect{}.Contains(0, 0))
}

func TestAcceptSizeGrowsWithEmphasis(t *testing.T) {
	prevW, prevH := 0, 0
	for n := 0; n <= 8; n++ {
		e := proposal.AcceptButtonEmphasis(n)
		w, h := AcceptSize(e.Tier, e.Scale)
		assert.GreaterOrEqual(t, w, prevW, "declines %d", n)
		assert.GreaterOrEqual(t, h, prevH, "declines %d", n)
		prevW, prevH = w, h
	}

	base, _ := AcceptSize(proposal.TierMedium, 1)
	assert.Equal(t, TextWidth(parameter.AcceptLabel)+2*parameter.TierPadding[proposal.TierMedium], base)
}

func TestDeclineSizeCompact(t *testing.T) {
	def, _ := DeclineSize("No", proposal.SizeDefault)
	compact, _ := DeclineSize("No", proposal.SizeCompact)
	assert.Equal(t, def-2, compact)
}

func TestCellOffset(t *testing.T) {
	dx, dy := CellOffset(proposal.Offset{X: -100, Y: 100})
	assert.Equal(t, -10, dx)
	assert.Equal(t, 5, dy)
}

func TestComputeLayoutUndecided(t *testing.T) {
	v := undecidedView(0)
	l := ComputeLayout(100, 40, v, v.Emphasis.Scale, proposal.Offset{})

	require.False(t, l.Accept.Empty())
	require.False(t, l.Decline.Empty())
	assert.Equal(t, l.Accept.Y, l.Decline.Y, "buttons share a row without offset")
	assert.Equal(t, l.Accept.X+l.Accept.W+parameter.ButtonGap, l.Decline.X)
	assert.Less(t, l.Media.Y, l.Title.Y)
	assert.Less(t, l.Title.Y, l.Accept.Y)

	assert.Equal(t, TargetAccept, l.HitTest(l.Accept.X, l.Accept.Y))
	assert.Equal(t, TargetDecline, l.HitTest(l.Decline.X+1, l.Decline.Y))
	assert.Equal(t, TargetMute, l.HitTest(l.Mute.X, l.Mute.Y))
	assert.Equal(t, TargetNone, l.HitTest(0, 0))
}

func TestComputeLayoutMuteBottomRight(t *testing.T) {
	l := ComputeLayout(80, 24, undecidedView(0), 1, proposal.Offset{})
	assert.Equal(t, Rect{X: 80 - parameter.MuteButtonW - parameter.MarginX, Y: 24 - 1 - parameter.MarginY, W: parameter.MuteButtonW, H: 1}, l.Mute)
}

func TestComputeLayoutDeclineStaysOnScreen(t *testing.T) {
	v := undecidedView(3)
	l := ComputeLayout(60, 20, v, v.Emphasis.Scale, proposal.Offset{X: 10000, Y: 10000})
	assert.Equal(t, 60-l.Decline.W, l.Decline.X)
	assert.Equal(t, 20-l.Decline.H, l.Decline.Y)

	l = ComputeLayout(60, 20, v, v.Emphasis.Scale, proposal.Offset{X: -10000, Y: -10000})
	assert.Equal(t, 0, l.Decline.X)
	assert.Equal(t, 0, l.Decline.Y)
}

func TestComputeLayoutDeclineWinsOverlap(t *testing.T) {
	v := undecidedView(1)
	yesW, _ := AcceptSize(v.Emphasis.Tier, v.Emphasis.Scale)
	// pull the decline button back over the accept button
	shift := -float64(yesW+parameter.ButtonGap) * parameter.PixelsPerColumn
	l := ComputeLayout(120, 40, v, v.Emphasis.Scale, proposal.Offset{X: shift})

	require.True(t, l.Accept.Contains(l.Decline.X, l.Decline.Y))
	assert.Equal(t, TargetDecline, l.HitTest(l.Decline.X, l.Decline.Y))
}

func TestComputeLayoutAccepted(t *testing.T) {
	v := View{
		Mood:     proposal.MoodCelebratory,
		Accepted: true,
		Media:    media.Default().HappyAt(0),
	}
	l := ComputeLayout(100, 40, v, 1, proposal.Offset{})

	assert.True(t, l.Accept.Empty())
	assert.True(t, l.Decline.Empty())
	assert.False(t, l.Title.Empty())
	assert.Less(t, l.Title.Y, l.Media.Y)
	assert.Equal(t, TargetMute, l.HitTest(l.Mute.X, l.Mute.Y))
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "accept", TargetAccept.String())
	assert.Equal(t, "decline", TargetDecline.String())
	assert.Equal(t, "mute", TargetMute.String())
	assert.Equal(t, "none", TargetNone.String())
}
