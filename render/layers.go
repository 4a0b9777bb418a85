package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/valentine/parameter"
)

func drawBackground(f *Frame) {
	for x := 0; x < f.Width; x++ {
		st := tcell.StyleDefault.Background(Tcell(f.Palette.Background(x, f.Width)))
		for y := 0; y < f.Height; y++ {
			f.Screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// onBackground keeps the gradient under text drawn directly on the page
func onBackground(f *Frame, x0 int, fg func(i int) colorful.Color) func(int) tcell.Style {
	return func(i int) tcell.Style {
		return tcell.StyleDefault.
			Foreground(Tcell(fg(i))).
			Background(Tcell(f.Palette.Background(x0+i, f.Width)))
	}
}

func drawTitle(f *Frame) {
	text := parameter.QuestionText
	if f.View.Accepted {
		text = parameter.CelebrationText
	}

	pal, rect := f.Palette, f.Layout.Title
	text = Truncate(text, f.Width)
	n := max(1, TextWidth(text)-1)
	styleAt := onBackground(f, rect.X, func(i int) colorful.Color {
		return Gradient(pal.TextLeft, pal.TextRight, float64(i)/float64(n))
	})
	drawText(f.Screen, rect.X, rect.Y, text, func(i int) tcell.Style { return styleAt(i).Bold(true) })
}

func drawMedia(f *Frame) {
	pal, rect, item := f.Palette, f.Layout.Media, f.View.Media
	for i, row := range item.Art {
		row = Truncate(row, f.Width)
		x := rect.X + (rect.W-TextWidth(row))/2
		drawText(f.Screen, x, rect.Y+i, row, onBackground(f, x, func(int) colorful.Color { return pal.CaptionFg }))
	}

	alt := Truncate(item.Alt, f.Width)
	x := rect.X + (rect.W-TextWidth(alt))/2
	styleAt := onBackground(f, x, func(int) colorful.Color { return pal.DisabledFg })
	drawText(f.Screen, x, rect.Y+len(item.Art), alt, func(i int) tcell.Style { return styleAt(i).Italic(true) })
}

func drawAccept(f *Frame) {
	pal := f.Palette
	st := tcell.StyleDefault.Foreground(Tcell(pal.AcceptFg)).Background(Tcell(pal.AcceptBg)).Bold(true)
	drawButton(f.Screen, f.Layout.Accept, parameter.AcceptLabel, st)
}

func drawDecline(f *Frame) {
	pal := f.Palette
	st := tcell.StyleDefault.Foreground(Tcell(pal.DeclineFg)).Background(Tcell(pal.DeclineBg))
	drawButton(f.Screen, f.Layout.Decline, f.View.Caption, st)
}

// drawMute shows the music toggle, dimmed while the resource has not reported
func drawMute(f *Frame) {
	pal, audio := f.Palette, f.View.Audio
	glyph := parameter.UnmutedGlyph
	if audio.Muted {
		glyph = parameter.MutedGlyph
	}
	st := tcell.StyleDefault.Foreground(Tcell(pal.MuteFg)).Background(Tcell(pal.MuteBg))
	if !audio.Ready {
		st = tcell.StyleDefault.Foreground(Tcell(pal.DisabledFg)).Background(Tcell(pal.DeclineBg)).Dim(true)
	}
	drawButton(f.Screen, f.Layout.Mute, glyph, st)
}

// drawButton fills rect with st and centers label on its middle row
func drawButton(s tcell.Screen, rect Rect, label string, st tcell.Style) {
	if rect.Empty() {
		return
	}
	fillRect(s, rect, st)
	label = Truncate(label, rect.W)
	x := rect.X + (rect.W-TextWidth(label))/2
	drawText(s, x, rect.Y+rect.H/2, label, plain(st))
}

func fillRect(s tcell.Screen, rect Rect, st tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			s.SetContent(x, y, ' ', nil, st)
		}
	}
}
