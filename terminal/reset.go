// Package terminal holds the crash-path terminal recovery helper. During
// normal operation tcell owns the terminal; these raw sequences exist for
// the panic path, where the screen may be left in any state.
package terminal

import (
	"io"
	"os"
	"os/exec"
)

var (
	csiMouseOff     = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	csiCursorShow   = []byte("\x1b[?25h")
	csiAltScreenOff = []byte("\x1b[?1049l")
	csiSGR0         = []byte("\x1b[0m")
)

// EmergencyReset restores the terminal to a usable state without relying
// on tcell. Best-effort: errors are ignored because it only runs while a
// panic is already unwinding.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenOff)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios raw mode.
	if stty, err := exec.LookPath("stty"); err == nil {
		cmd := exec.Command(stty, "sane")
		cmd.Stdin = os.Stdin
		cmd.Run()
	}
}
