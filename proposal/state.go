// Package proposal holds the interaction state machine behind the proposal
// screen: decline and accept transitions plus the pure derivations the
// renderer reads (caption, accept button emphasis, background mood).
package proposal

// Phase is the top-level machine state
type Phase uint8

const (
	PhaseUndecided Phase = iota
	PhaseAccepted
)

func (p Phase) String() string {
	if p == PhaseAccepted {
		return "accepted"
	}
	return "undecided"
}

// ButtonSize is the two-state size toggle of the decline button
type ButtonSize uint8

const (
	SizeDefault ButtonSize = iota
	SizeCompact
)

func (s ButtonSize) String() string {
	if s == SizeCompact {
		return "compact"
	}
	return "default"
}

// Flip returns the other size
func (s ButtonSize) Flip() ButtonSize {
	if s == SizeCompact {
		return SizeDefault
	}
	return SizeCompact
}

// Offset is a pixel displacement relative to the button's resting place
type Offset struct {
	X, Y float64
}

// State is the whole interaction record of one session
type State struct {
	DeclineCount  int
	Accepted      bool
	DeclineOffset Offset
	DeclineSize   ButtonSize
	MediaIndex    int
}

// Phase derives the machine phase from the record
func (s State) Phase() Phase {
	if s.Accepted {
		return PhaseAccepted
	}
	return PhaseUndecided
}
