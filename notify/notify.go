// Package notify carries fire-and-forget user notifications and the toast
// queue that displays them until they expire.
package notify

import (
	"sync"
	"time"

	"github.com/lixenwraith/valentine/parameter"
)

// Category selects toast styling
type Category uint8

const (
	CategoryInfo Category = iota
	CategorySuccess
)

func (c Category) String() string {
	switch c {
	case CategorySuccess:
		return "success"
	default:
		return "info"
	}
}

// Notification is a single toast request
type Notification struct {
	Title       string
	Description string
	Category    Category
	Duration    time.Duration
}

// Sink receives notifications; nothing is returned to the caller
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(n Notification)

// Notify implements Sink
func (f SinkFunc) Notify(n Notification) { f(n) }

// Discard drops every notification
var Discard Sink = SinkFunc(func(Notification) {})

// Info builds an info notification with the default duration
func Info(title, description string) Notification {
	return Notification{Title: title, Description: description, Category: CategoryInfo, Duration: parameter.ToastDuration}
}

// Success builds a success notification with the default duration
func Success(title, description string) Notification {
	return Notification{Title: title, Description: description, Category: CategorySuccess, Duration: parameter.ToastDuration}
}

// Toast is a notification with its display deadline
type Toast struct {
	Notification
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Progress returns elapsed fraction of the display time in [0,1]
func (t Toast) Progress(now time.Time) float64 {
	total := t.ExpiresAt.Sub(t.ShownAt)
	if total <= 0 {
		return 1
	}
	p := float64(now.Sub(t.ShownAt)) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Queue keeps the live toasts, oldest first
// Safe for concurrent Notify; readers normally run on the render loop
type Queue struct {
	mu         sync.Mutex
	toasts     []Toast
	maxVisible int
	now        func() time.Time
}

// NewQueue creates a queue holding at most maxVisible toasts
// now is the clock used to stamp incoming notifications
func NewQueue(maxVisible int, now func() time.Time) *Queue {
	if maxVisible < 1 {
		maxVisible = 1
	}
	if now == nil {
		now = time.Now
	}
	return &Queue{maxVisible: maxVisible, now: now}
}

// Notify implements Sink
// Zero duration falls back to the default toast duration
func (q *Queue) Notify(n Notification) {
	if n.Duration <= 0 {
		n.Duration = parameter.ToastDuration
	}
	shown := q.now()

	q.mu.Lock()
	defer q.mu.Unlock()

	q.toasts = append(q.toasts, Toast{Notification: n, ShownAt: shown, ExpiresAt: shown.Add(n.Duration)})
	if over := len(q.toasts) - q.maxVisible; over > 0 {
		q.toasts = append(q.toasts[:0], q.toasts[over:]...)
	}
}

// Prune drops expired toasts, returns how many were removed
func (q *Queue) Prune(now time.Time) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	removed := len(q.toasts) - len(kept)
	q.toasts = kept
	return removed
}

// Visible returns a copy of the toasts still live at now, newest last
func (q *Queue) Visible(now time.Time) []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		if now.Before(t.ExpiresAt) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of stored toasts, expired or not
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

// Dismiss clears every toast
func (q *Queue) Dismiss() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.toasts = nil
}
