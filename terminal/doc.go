// @focus: #sys { term }
// Package terminal holds the pieces of terminal handling that sit beside tcell:
//   - colour capability detection and xterm-256 quantisation
//   - clipboard access through the tcell screen (OSC 52)
//   - emergency restoration of the tty after a panic
package terminal
