package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrEmptyClip is returned for an empty payload; copying nothing is treated as a caller bug
var ErrEmptyClip = errors.New("nothing to copy")

// Clipboard receives a single string payload, no format negotiation
type Clipboard interface {
	Copy(text string) error
}

// ScreenClipboard writes through the tcell screen, which emits OSC 52.
// The terminal decides whether to honour it; there is no acknowledgement.
type ScreenClipboard struct {
	screen tcell.Screen
}

func NewScreenClipboard(s tcell.Screen) *ScreenClipboard {
	return &ScreenClipboard{screen: s}
}

func (c *ScreenClipboard) Copy(text string) error {
	if text == "" {
		return ErrEmptyClip
	}
	c.screen.SetClipboard([]byte(text))
	return nil
}

// MemoryClipboard keeps the last payload; used when no screen is attached
type MemoryClipboard struct {
	Text string
}

func (c *MemoryClipboard) Copy(text string) error {
	if text == "" {
		return ErrEmptyClip
	}
	c.Text = text
	return nil
}
