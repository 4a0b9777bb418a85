package render

import "time"

// Tween moves a value linearly toward its latest target
type Tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
	set      bool
}

// NewTween creates a tween with the given transition time
func NewTween(d time.Duration) *Tween {
	return &Tween{duration: d}
}

// Set retargets the tween, starting from the value shown at now
// The first call snaps without animating
func (t *Tween) Set(target float64, now time.Time) {
	if !t.set {
		t.from, t.to, t.start, t.set = target, target, now, true
		return
	}
	if target == t.to {
		return
	}
	t.from = t.Value(now)
	t.to = target
	t.start = now
}

// Value returns the interpolated value at now
func (t *Tween) Value(now time.Time) float64 {
	if t.duration <= 0 {
		return t.to
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	switch {
	case p <= 0:
		return t.from
	case p >= 1:
		return t.to
	}
	return t.from + (t.to-t.from)*p
}

// Target returns the value the tween settles on
func (t *Tween) Target() float64 {
	return t.to
}

// Done reports whether the tween reached its target
func (t *Tween) Done(now time.Time) bool {
	return now.Sub(t.start) >= t.duration
}
