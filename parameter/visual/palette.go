package visual

// Generic palette as hex strings, without screen semantics
// Renderers pick from these through their mood palettes
// Values follow the familiar 100/200/500/700 lightness steps per hue

const (
	// --- Pink ---
	Pink100 = "#fed7e2"
	Pink200 = "#fbb6ce"
	Pink500 = "#d53f8c"
	Pink700 = "#97266d"

	// --- Purple ---
	Purple100 = "#e9d8fd"
	Purple200 = "#d6bcfa"
	Purple500 = "#805ad5"

	// --- Blue ---
	Blue100 = "#bee3f8"
	Blue500 = "#3182ce"

	// --- Green ---
	Green500 = "#38a169"

	// --- Gray ---
	White   = "#ffffff"
	Gray200 = "#e2e8f0"
	Gray300 = "#cbd5e0"
	Gray500 = "#718096"
	Gray600 = "#4a5568"
	Gray700 = "#2d3748"
	Gray900 = "#1a202c"
)
