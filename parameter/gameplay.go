package parameter

// Decline captions shown on the No button, indexed by decline count
var DeclineCaptions = []string{
	"Are you sure? 🥺",
	"Really sure? 😢",
	"Think again! 💭",
	"Last chance! 💝",
	"Surely not? 🥹",
	"You might regret this! 🫣",
	"Give it another thought! 🤔",
	"Are you absolutely certain? 😩",
	"This is your final chance! 🥺",
	"Don't do this to me! 😭",
}

// DeclineCaptionFallback is shown once every predefined caption was used
const DeclineCaptionFallback = "I'll keep asking... 😤"

// Decline Button Movement
const (
	// DeclineOffsetRange bounds each axis of the No button displacement, in pixels
	// The offset is drawn uniformly from [-DeclineOffsetRange, +DeclineOffsetRange)
	DeclineOffsetRange = 100.0
)

// Accept Button Emphasis
const (
	// AcceptScaleStep is the scale bonus gained per decline
	AcceptScaleStep = 0.15

	// AcceptScaleMaxBonus caps the scale bonus (scale never exceeds 1 + bonus)
	AcceptScaleMaxBonus = 1.0

	// Tier breakpoints, inclusive upper bounds of decline counts
	AcceptTierMediumMax = 0
	AcceptTierLargeMax  = 2
	AcceptTierXLMax     = 4
)

// Static copy
const (
	QuestionText    = "Will you be my Valentine? 💝"
	AcceptLabel     = "Yes! 💖"
	CelebrationText = "Yaaay! I knew you'd say yes! 🎉"

	AcceptedToastTitle       = "💖 Thank you! 💖"
	AcceptedToastDescription = "I'm so happy you said yes!"
)
