package terminal

import (
	"io"
	"os"
)

// Sequences undoing what tcell enables on Init
var (
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset restores the terminal when tcell could not run Fini, e.g. after a panic
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{csiMouseOff, csiCursorShow, csiAltScreenExit, csiSGR0, csiAutoWrapOn} {
		w.Write(seq)
	}

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort in crash context
	resetTerminalMode()
}
