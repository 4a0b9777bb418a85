package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most w cells, marking the cut with an ellipsis
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if TextWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}

// drawText writes s starting at (x, y) and returns the x after the last cell
// Zero-width runes (variation selectors, joiners) attach to the previous cell
// styleAt picks the style per cell offset, letting callers paint gradients
func drawText(s tcell.Screen, x, y int, text string, styleAt func(i int) tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x + TextWidth(text)
	}

	var (
		prevX     = -1
		prevRune  rune
		combining []rune
		prevStyle tcell.Style
	)
	flush := func() {
		if prevX >= 0 && prevX < w {
			s.SetContent(prevX, y, prevRune, combining, prevStyle)
		}
	}

	col := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			if prevX >= 0 {
				combining = append(combining, r)
			}
			continue
		}
		flush()
		prevX, prevRune, combining = col, r, nil
		prevStyle = styleAt(col - x)
		col += rw
	}
	flush()
	return col
}

// plain returns a styleAt that always yields st
func plain(st tcell.Style) func(int) tcell.Style {
	return func(int) tcell.Style { return st }
}
