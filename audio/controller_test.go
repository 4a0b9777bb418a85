package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/valentine/notify"
	"github.com/lixenwraith/valentine/parameter"
)

var errRejected = errors.New("playback rejected")

// fakeTransport records requests and lets the test resolve them
type fakeTransport struct {
	volume float64
	loop   bool
	loads  []func(error)
	plays  []func(error)
	pauses int
}

func (f *fakeTransport) Configure(volume float64, loop bool) { f.volume, f.loop = volume, loop }
func (f *fakeTransport) Load(done func(error))               { f.loads = append(f.loads, done) }
func (f *fakeTransport) Play(done func(error))               { f.plays = append(f.plays, done) }
func (f *fakeTransport) Pause()                              { f.pauses++ }

// resolvePlay completes the i-th play request
func (f *fakeTransport) resolvePlay(t *testing.T, i int, err error) {
	t.Helper()
	require.Greater(t, len(f.plays), i, "no play request #%d", i)
	f.plays[i](err)
}

type recorder struct{ got []notify.Notification }

func (r *recorder) Notify(n notify.Notification) { r.got = append(r.got, n) }

func newTestController() (*Controller, *fakeTransport, *recorder) {
	ft := &fakeTransport{}
	rec := &recorder{}
	return NewController(ft, rec, nil), ft, rec
}

func TestControllerInitialState(t *testing.T) {
	c, _, _ := newTestController()
	assert.Equal(t, State{Muted: true, Ready: false}, c.State())
	assert.False(t, c.HookConsumed())
}

func TestStartConfiguresAndLoads(t *testing.T) {
	c, ft, rec := newTestController()
	c.Start(parameter.MusicVolume, true)

	assert.Equal(t, parameter.MusicVolume, ft.volume)
	assert.True(t, ft.loop)
	require.Len(t, ft.loads, 1)

	ft.loads[0](nil)
	assert.Equal(t, State{Muted: true, Ready: true}, c.State())
	require.Len(t, rec.got, 1)
	assert.Equal(t, parameter.MusicReadyTitle, rec.got[0].Title)
	assert.Equal(t, notify.CategoryInfo, rec.got[0].Category)
}

func TestLoadFailureStillReady(t *testing.T) {
	c, ft, rec := newTestController()
	c.Start(0.25, true)
	ft.loads[0](errors.New("no such file"))

	assert.Equal(t, State{Muted: true, Ready: true}, c.State())
	require.Len(t, rec.got, 1)
	assert.Equal(t, parameter.MusicUnavailableTitle, rec.got[0].Title)

	// readiness is idempotent and announced once
	c.OnLoaded(nil)
	assert.True(t, c.State().Ready)
	assert.Len(t, rec.got, 1)
}

func TestToggleBeforeReadyRejected(t *testing.T) {
	c, ft, rec := newTestController()

	c.RequestToggleMute()
	ft.resolvePlay(t, 0, errRejected)

	assert.Equal(t, State{Muted: true, Ready: true}, c.State())
	require.Len(t, rec.got, 1, "exactly one notification")
	assert.Equal(t, parameter.MusicBlockedTitle, rec.got[0].Title)
	assert.False(t, c.HookConsumed(), "hook stays armed after a failed toggle")
}

func TestToggleUnmutesThenPauses(t *testing.T) {
	c, ft, rec := newTestController()
	c.OnLoaded(nil)
	rec.got = nil

	c.RequestToggleMute()
	assert.True(t, c.State().Muted, "still muted while play is in flight")
	ft.resolvePlay(t, 0, nil)
	assert.Equal(t, State{Muted: false, Ready: true}, c.State())
	assert.True(t, c.HookConsumed(), "explicit unmute retires the hook")

	c.RequestToggleMute()
	assert.Equal(t, State{Muted: true, Ready: true}, c.State())
	assert.Equal(t, 1, ft.pauses)
	assert.Len(t, ft.plays, 1, "pausing issues no play request")
	assert.Empty(t, rec.got)
}

func TestToggleParity(t *testing.T) {
	c, ft, _ := newTestController()
	c.OnLoaded(nil)

	for i := 1; i <= 10; i++ {
		c.RequestToggleMute()
		if c.State().Muted {
			ft.resolvePlay(t, len(ft.plays)-1, nil)
		}
		assert.Equal(t, i%2 == 0, c.State().Muted, "after %d toggles", i)
	}
}

func TestFirstInteractionListensOnce(t *testing.T) {
	c, ft, rec := newTestController()

	c.FirstInteraction()
	require.Len(t, ft.plays, 1)

	// second interaction while the first attempt is in flight is ignored
	c.FirstInteraction()
	assert.Len(t, ft.plays, 1)

	ft.resolvePlay(t, 0, nil)
	assert.Equal(t, State{Muted: false, Ready: true}, c.State())
	assert.True(t, c.HookConsumed())

	// muting later does not re-arm the hook
	c.RequestToggleMute()
	c.FirstInteraction()
	assert.Len(t, ft.plays, 1)
	assert.True(t, c.State().Muted)
	assert.Empty(t, rec.got)
}

func TestFirstInteractionFailureKeepsHookArmed(t *testing.T) {
	c, ft, rec := newTestController()

	c.FirstInteraction()
	ft.resolvePlay(t, 0, errRejected)

	assert.Equal(t, State{Muted: true, Ready: true}, c.State())
	assert.False(t, c.HookConsumed())
	assert.Empty(t, rec.got, "hook failures are silent")

	c.FirstInteraction()
	require.Len(t, ft.plays, 2)
	ft.resolvePlay(t, 1, nil)
	assert.False(t, c.State().Muted)
	assert.True(t, c.HookConsumed())
}

func TestFirstInteractionNoopWhenUnmuted(t *testing.T) {
	c, ft, _ := newTestController()
	c.RequestToggleMute()
	ft.resolvePlay(t, 0, nil)

	c.FirstInteraction()
	assert.Len(t, ft.plays, 1)
}

func TestToggleWinsRaceAgainstHook(t *testing.T) {
	c, ft, _ := newTestController()
	c.OnLoaded(nil)

	c.FirstInteraction()  // plays[0]
	c.RequestToggleMute() // plays[1]
	ft.resolvePlay(t, 1, nil)
	require.False(t, c.State().Muted)

	c.RequestToggleMute() // user pauses again
	require.True(t, c.State().Muted)

	// the stale hook attempt must not flip the state back
	ft.resolvePlay(t, 0, nil)
	assert.True(t, c.State().Muted)
	assert.Equal(t, 2, c.Attempts())
}

func TestDisabledTransport(t *testing.T) {
	rec := &recorder{}
	c := NewController(nil, rec, nil)
	c.Start(1, false)
	assert.Equal(t, State{Muted: true, Ready: true}, c.State())
	require.Len(t, rec.got, 1)
	assert.Equal(t, parameter.MusicUnavailableTitle, rec.got[0].Title)

	c.RequestToggleMute()
	assert.Equal(t, State{Muted: true, Ready: true}, c.State())
	assert.Len(t, rec.got, 2)
}
