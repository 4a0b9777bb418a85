package proposal

import "github.com/lixenwraith/valentine/parameter"

// Mood selects the background theme
type Mood uint8

const (
	MoodAffectionate Mood = iota
	MoodSorrowful
	MoodCelebratory
)

func (m Mood) String() string {
	switch m {
	case MoodSorrowful:
		return "sorrowful"
	case MoodCelebratory:
		return "celebratory"
	default:
		return "affectionate"
	}
}

// Tier is the discrete accept button size
type Tier uint8

const (
	TierMedium Tier = iota
	TierLarge
	TierXL
	Tier2XL
)

func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "lg"
	case TierXL:
		return "xl"
	case Tier2XL:
		return "2xl"
	default:
		return "md"
	}
}

// Emphasis combines the size tier with the continuous scale of the accept button
// The two are independent; the renderer combines them
type Emphasis struct {
	Tier  Tier
	Scale float64
}

// CaptionFor returns the decline button caption after n declines
// Total over all ints: counts past the list yield the fallback, negatives the first caption
func CaptionFor(n int) string {
	if n < 0 {
		n = 0
	}
	if n >= len(parameter.DeclineCaptions) {
		return parameter.DeclineCaptionFallback
	}
	return parameter.DeclineCaptions[n]
}

// AcceptButtonEmphasis returns tier and scale of the accept button after n declines
func AcceptButtonEmphasis(n int) Emphasis {
	if n < 0 {
		n = 0
	}

	var tier Tier
	switch {
	case n <= parameter.AcceptTierMediumMax:
		tier = TierMedium
	case n <= parameter.AcceptTierLargeMax:
		tier = TierLarge
	case n <= parameter.AcceptTierXLMax:
		tier = TierXL
	default:
		tier = Tier2XL
	}

	return Emphasis{
		Tier:  tier,
		Scale: 1 + min(float64(n)*parameter.AcceptScaleStep, parameter.AcceptScaleMaxBonus),
	}
}

// BackgroundMood picks the background theme
func BackgroundMood(n int, accepted bool) Mood {
	switch {
	case accepted:
		return MoodCelebratory
	case n > 0:
		return MoodSorrowful
	default:
		return MoodAffectionate
	}
}
