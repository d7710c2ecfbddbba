//go:build !linux

package terminal

// resetTerminalMode is a no-op; tcell's own Fini handles termios on these platforms
func resetTerminalMode() {}
