package engine

import "sync"

// Mailbox carries callbacks from background goroutines onto the event loop
type Mailbox struct {
	tasks  chan func()
	closed chan struct{}
	once   sync.Once
}

// NewMailbox creates a mailbox buffering up to size pending tasks
func NewMailbox(size int) *Mailbox {
	if size < 1 {
		size = 1
	}
	return &Mailbox{
		tasks:  make(chan func(), size),
		closed: make(chan struct{}),
	}
}

// Post queues fn for the loop, safe from any goroutine
// Blocks while the buffer is full; returns false once the mailbox is closed
func (m *Mailbox) Post(fn func()) bool {
	select {
	case <-m.closed:
		return false
	default:
	}
	select {
	case m.tasks <- fn:
		return true
	case <-m.closed:
		return false
	}
}

// Tasks is the receive side drained by the loop
func (m *Mailbox) Tasks() <-chan func() {
	return m.tasks
}

// Close rejects further posts; queued tasks are dropped with the loop
func (m *Mailbox) Close() {
	m.once.Do(func() { close(m.closed) })
}
