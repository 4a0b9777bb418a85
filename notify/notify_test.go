package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/valentine/parameter"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC)}
}

func TestQueueExpiresToasts(t *testing.T) {
	clock := newClock()
	q := NewQueue(3, clock.Now)

	q.Notify(Info("hello", "world"))
	require.Len(t, q.Visible(clock.Now()), 1)

	clock.Advance(parameter.ToastDuration - time.Millisecond)
	assert.Len(t, q.Visible(clock.Now()), 1, "toast should still be visible just before expiry")

	clock.Advance(time.Millisecond)
	assert.Empty(t, q.Visible(clock.Now()), "toast should expire at its deadline")

	assert.Equal(t, 1, q.Prune(clock.Now()))
	assert.Equal(t, 0, q.Len())
}

func TestQueueDropsOldestOverCapacity(t *testing.T) {
	clock := newClock()
	q := NewQueue(2, clock.Now)

	q.Notify(Info("one", ""))
	q.Notify(Info("two", ""))
	q.Notify(Success("three", ""))

	visible := q.Visible(clock.Now())
	require.Len(t, visible, 2)
	assert.Equal(t, "two", visible[0].Title)
	assert.Equal(t, "three", visible[1].Title)
	assert.Equal(t, CategorySuccess, visible[1].Category)
}

func TestQueueDefaultsDuration(t *testing.T) {
	clock := newClock()
	q := NewQueue(1, clock.Now)

	q.Notify(Notification{Title: "no duration"})
	visible := q.Visible(clock.Now())
	require.Len(t, visible, 1)
	assert.Equal(t, parameter.ToastDuration, visible[0].Duration)
	assert.Equal(t, clock.Now().Add(parameter.ToastDuration), visible[0].ExpiresAt)
}

func TestToastProgress(t *testing.T) {
	clock := newClock()
	q := NewQueue(1, clock.Now)
	q.Notify(Notification{Title: "x", Duration: 2 * time.Second})
	toast := q.Visible(clock.Now())[0]

	assert.InDelta(t, 0.0, toast.Progress(clock.Now()), 1e-9)
	assert.InDelta(t, 0.5, toast.Progress(clock.Now().Add(time.Second)), 1e-9)
	assert.InDelta(t, 1.0, toast.Progress(clock.Now().Add(time.Hour)), 1e-9)
}

func TestSinkFuncAndDiscard(t *testing.T) {
	var got []Notification
	sink := SinkFunc(func(n Notification) { got = append(got, n) })
	sink.Notify(Info("a", "b"))
	require.Len(t, got, 1)
	assert.Equal(t, "info", got[0].Category.String())

	assert.NotPanics(t, func() { Discard.Notify(Success("x", "y")) })
}

func TestQueueDismiss(t *testing.T) {
	q := NewQueue(3, nil)
	q.Notify(Info("a", ""))
	q.Notify(Info("b", ""))
	q.Dismiss()
	assert.Equal(t, 0, q.Len())
}
