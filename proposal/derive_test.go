package proposal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/valentine/parameter"
)

func TestCaptionForIsTotal(t *testing.T) {
	n := len(parameter.DeclineCaptions)
	assert.Equal(t, 10, n)

	for k := 0; k < n; k++ {
		assert.Equal(t, parameter.DeclineCaptions[k], CaptionFor(k))
	}
	for _, k := range []int{n, n + 1, 12, 100, 1 << 30} {
		assert.Equal(t, parameter.DeclineCaptionFallback, CaptionFor(k), "k=%d", k)
	}
	assert.Equal(t, parameter.DeclineCaptions[0], CaptionFor(-5))
}

func TestCaptionConcreteCounts(t *testing.T) {
	assert.Equal(t, parameter.DeclineCaptions[7], CaptionFor(7))
	assert.Equal(t, "Are you absolutely certain? 😩", CaptionFor(7))
	assert.Equal(t, "I'll keep asking... 😤", CaptionFor(12))
}

func TestAcceptButtonEmphasisTiers(t *testing.T) {
	tests := []struct {
		n    int
		tier Tier
	}{
		{0, TierMedium},
		{1, TierLarge},
		{2, TierLarge},
		{3, TierXL},
		{4, TierXL},
		{5, Tier2XL},
		{50, Tier2XL},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, AcceptButtonEmphasis(tt.n).Tier, "n=%d", tt.n)
	}
}

func TestAcceptButtonScaleMonotonicAndBounded(t *testing.T) {
	prev := AcceptButtonEmphasis(0).Scale
	assert.InDelta(t, 1.0, prev, 1e-9)

	for n := 1; n <= 200; n++ {
		s := AcceptButtonEmphasis(n).Scale
		assert.GreaterOrEqual(t, s, prev, "n=%d", n)
		assert.LessOrEqual(t, s, 1+parameter.AcceptScaleMaxBonus)
		prev = s
	}

	assert.InDelta(t, 1.15, AcceptButtonEmphasis(1).Scale, 1e-9)
	assert.InDelta(t, 1.90, AcceptButtonEmphasis(6).Scale, 1e-9)
	assert.InDelta(t, 2.0, AcceptButtonEmphasis(7).Scale, 1e-9)
}

func TestBackgroundMood(t *testing.T) {
	assert.Equal(t, MoodAffectionate, BackgroundMood(0, false))
	for _, k := range []int{1, 2, 10, 1000} {
		assert.Equal(t, MoodSorrowful, BackgroundMood(k, false))
	}
	for _, k := range []int{0, 1, 99} {
		assert.Equal(t, MoodCelebratory, BackgroundMood(k, true))
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "compact", SizeCompact.String())
	assert.Equal(t, "default", SizeDefault.String())
	assert.Equal(t, SizeCompact, SizeDefault.Flip())
	assert.Equal(t, "2xl", Tier2XL.String())
	assert.Equal(t, "celebratory", MoodCelebratory.String())
	assert.Equal(t, "accepted", PhaseAccepted.String())
}
