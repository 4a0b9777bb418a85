package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/valentine/notify"
	"github.com/lixenwraith/valentine/parameter"
	"github.com/lixenwraith/valentine/parameter/visual"
)

var (
	toastBg      = white
	toastText    = hex(visual.Gray900)
	toastMuted   = hex(visual.Gray600)
	toastInfo    = hex(visual.Blue500)
	toastSuccess = hex(visual.Green500)
	toastTrack   = hex(visual.Gray300)
)

func toastAccent(c notify.Category) (colorful.Color, string) {
	if c == notify.CategorySuccess {
		return toastSuccess, "✓"
	}
	return toastInfo, "ℹ"
}

// ToastSize returns the box size of a toast on a w-wide screen
func ToastSize(t notify.Toast, w int) (bw, bh int) {
	inner := max(TextWidth(t.Title)+2, TextWidth(t.Description)) // icon and space before title
	bw = min(inner+4, parameter.ToastMaxWidth, w-2*parameter.MarginX)
	bh = 3
	if t.Description != "" {
		bh = 4
	}
	return bw, bh
}

// drawToasts stacks toasts upward from above the mute button, newest lowest, right-aligned
// The bottom border doubles as a countdown bar
func drawToasts(f *Frame) {
	toasts := f.View.Toasts
	y := f.Layout.Mute.Y - 1
	for i := len(toasts) - 1; i >= 0; i-- {
		t := toasts[i]
		bw, bh := ToastSize(t, f.Width)
		if bw < 6 || y-bh+1 < 0 {
			return
		}
		rect := Rect{X: f.Width - parameter.MarginX - bw, Y: y - bh + 1, W: bw, H: bh}
		drawToast(f.Screen, t, rect, f.Now)
		y = rect.Y - 1
	}
}

func drawToast(s tcell.Screen, t notify.Toast, rect Rect, now time.Time) {
	accent, icon := toastAccent(t.Category)
	base := tcell.StyleDefault.Background(Tcell(toastBg))
	border := base.Foreground(Tcell(accent))

	fillRect(s, rect, base)

	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1
	for x := rect.X + 1; x < right; x++ {
		s.SetContent(x, rect.Y, '─', nil, border)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		s.SetContent(rect.X, y, '│', nil, border)
		s.SetContent(right, y, '│', nil, border)
	}
	s.SetContent(rect.X, rect.Y, '╭', nil, border)
	s.SetContent(right, rect.Y, '╮', nil, border)
	s.SetContent(rect.X, bottom, '╰', nil, border)
	s.SetContent(right, bottom, '╯', nil, border)

	inner := rect.W - 4
	remaining := int(math.Round((1 - t.Progress(now)) * float64(rect.W-2)))
	track := base.Foreground(Tcell(toastTrack))
	for i := 0; i < rect.W-2; i++ {
		if i < remaining {
			s.SetContent(rect.X+1+i, bottom, '━', nil, border)
		} else {
			s.SetContent(rect.X+1+i, bottom, '─', nil, track)
		}
	}

	x := drawText(s, rect.X+2, rect.Y+1, icon, plain(border.Bold(true)))
	drawText(s, x+1, rect.Y+1, Truncate(t.Title, inner-(x+1-rect.X-2)), plain(base.Foreground(Tcell(toastText)).Bold(true)))
	if t.Description != "" {
		drawText(s, rect.X+2, rect.Y+2, Truncate(t.Description, inner), plain(base.Foreground(Tcell(toastMuted))))
	}
}
