package terminal

import (
	"io"
	"os"
)

// Sequences undoing what a crashed screen left behind
var (
	seqMouseOff = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	seqCursorOn = []byte("\x1b[?25h")
	seqAltExit  = []byte("\x1b[?1049l")
	seqSGR0     = []byte("\x1b[0m")
	seqWrapOn   = []byte("\x1b[?7h")
)

// EmergencyReset restores a sane terminal without going through tcell
// Used from panic handlers where the screen may be half torn down
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{seqMouseOff, seqCursorOn, seqAltExit, seqSGR0, seqWrapOn} {
		_, _ = w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
		restoreCookedMode()
	}
}
