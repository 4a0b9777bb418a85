package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTweenFirstSetSnaps(t *testing.T) {
	now := time.Unix(1000, 0)
	tw := NewTween(200 * time.Millisecond)
	tw.Set(1.5, now)

	assert.Equal(t, 1.5, tw.Value(now))
	assert.True(t, tw.Done(now.Add(200*time.Millisecond)))
}

func TestTweenInterpolatesFromShownValue(t *testing.T) {
	now := time.Unix(1000, 0)
	tw := NewTween(200 * time.Millisecond)
	tw.Set(1, now)
	tw.Set(2, now)

	assert.InDelta(t, 1.5, tw.Value(now.Add(100*time.Millisecond)), 1e-9)
	assert.False(t, tw.Done(now.Add(100*time.Millisecond)))

	// retarget mid-flight continues from 1.5
	mid := now.Add(100 * time.Millisecond)
	tw.Set(1, mid)
	assert.InDelta(t, 1.5, tw.Value(mid), 1e-9)
	assert.InDelta(t, 1.0, tw.Value(mid.Add(time.Second)), 1e-9)
	assert.Equal(t, 1.0, tw.Target())
}

func TestTweenSameTargetKeepsTimeline(t *testing.T) {
	now := time.Unix(1000, 0)
	tw := NewTween(200 * time.Millisecond)
	tw.Set(0, now)
	tw.Set(10, now)
	tw.Set(10, now.Add(100*time.Millisecond))

	assert.InDelta(t, 10, tw.Value(now.Add(200*time.Millisecond)), 1e-9)
}
