package parameter

import "time"

// Frame pacing
const (
	DefaultFPS = 60
	MinFPS     = 10
	MaxFPS     = 120
)

// Pixel to cell conversion for offsets expressed in pixels
const (
	PixelsPerColumn = 10.0
	PixelsPerRow    = 20.0
)

// TweenDuration matches the button animation time
const TweenDuration = 200 * time.Millisecond

// Button geometry per emphasis tier: horizontal padding and height in rows
var (
	TierPadding = [4]int{1, 2, 3, 4}
	TierHeight  = [4]int{1, 1, 3, 3}
)

// Layout
const (
	ButtonGap   = 4
	SectionGap  = 1
	MuteButtonW = 4
	MarginX     = 2
	MarginY     = 1
)

// Toasts
const (
	ToastDuration   = 3 * time.Second
	ToastMaxVisible = 3
	ToastMaxWidth   = 48
)

// Mute button glyphs
const (
	MutedGlyph   = "🔇"
	UnmutedGlyph = "🔊"
)
