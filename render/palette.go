package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/valentine/parameter/visual"
	"github.com/lixenwraith/valentine/proposal"
)

// Palette is the color set of one mood
type Palette struct {
	BgLeft, BgRight     colorful.Color // background gradient ends
	TextLeft, TextRight colorful.Color // title gradient ends
	Particle            colorful.Color // faded particle tint

	AcceptFg, AcceptBg   colorful.Color
	DeclineFg, DeclineBg colorful.Color
	MuteFg, MuteBg       colorful.Color
	DisabledFg           colorful.Color
	CaptionFg            colorful.Color
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad palette color " + s)
	}
	return c
}

var (
	pink100   = hex(visual.Pink100)
	pink200   = hex(visual.Pink200)
	pink500   = hex(visual.Pink500)
	pink700   = hex(visual.Pink700)
	purple100 = hex(visual.Purple100)
	purple200 = hex(visual.Purple200)
	purple500 = hex(visual.Purple500)
	gray200   = hex(visual.Gray200)
	gray500   = hex(visual.Gray500)
	gray700   = hex(visual.Gray700)
	blue100   = hex(visual.Blue100)
	white     = hex(visual.White)
)

// PaletteFor returns the palette of a mood
func PaletteFor(m proposal.Mood) Palette {
	p := Palette{
		BgLeft:     pink100,
		BgRight:    purple100,
		TextLeft:   pink500,
		TextRight:  purple500,
		Particle:   pink500,
		AcceptFg:   pink700,
		AcceptBg:   pink200,
		DeclineFg:  gray700,
		DeclineBg:  gray200,
		MuteFg:     pink500,
		MuteBg:     pink100.BlendLuv(white, 0.5),
		DisabledFg: gray500,
		CaptionFg:  gray700,
	}
	switch m {
	case proposal.MoodCelebratory:
		p.BgLeft, p.BgRight = pink200, purple200
	case proposal.MoodSorrowful:
		p.Particle = blue100.BlendLuv(purple500, 0.4)
	}
	return p
}

// Gradient returns the blend of a and b at t in [0,1]
func Gradient(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendLuv(b, t).Clamped()
}

// Background returns the background color of column x on a w-wide screen
func (p Palette) Background(x, w int) colorful.Color {
	if w <= 1 {
		return p.BgLeft
	}
	return Gradient(p.BgLeft, p.BgRight, float64(x)/float64(w-1))
}

// Tcell converts a colorful color to a tcell RGB color
func Tcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade blends fg toward bg, opacity 1 keeps fg
func Fade(fg, bg colorful.Color, opacity float64) colorful.Color {
	return Gradient(bg, fg, opacity)
}
