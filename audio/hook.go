package audio

// Hook is the listens-once first-interaction trigger
// It stays armed until a playback attempt succeeds, then ignores every later interaction
type Hook struct {
	consumed bool
	pending  bool
}

// Armed reports whether the next interaction may attempt playback
func (h *Hook) Armed() bool {
	return !h.consumed && !h.pending
}

// Consumed reports whether the hook has retired
func (h *Hook) Consumed() bool {
	return h.consumed
}

func (h *Hook) begin() { h.pending = true }

func (h *Hook) finish(ok bool) {
	h.pending = false
	if ok {
		h.consumed = true
	}
}

func (h *Hook) retire() {
	h.consumed = true
	h.pending = false
}
