// @focus: #render { swatch }
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palette/colour"
	"github.com/lixenwraith/palette/constants"
	"github.com/lixenwraith/palette/terminal"
)

// Renderer composes one frame at a time into its buffer
type Renderer struct {
	buf   *Buffer
	mode  terminal.ColorMode
	theme Theme
}

// NewRenderer creates a renderer for the given colour capability
func NewRenderer(mode terminal.ColorMode) *Renderer {
	return &Renderer{
		buf:   NewBuffer(0, 0),
		mode:  mode,
		theme: DefaultTheme,
	}
}

// Buffer exposes the composed frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

func (r *Renderer) Mode() terminal.ColorMode {
	return r.mode
}

// Begin starts a frame of the given size, cleared to the theme background
func (r *Renderer) Begin(width, height int) {
	if w, h := r.buf.Size(); w != width || h != height {
		r.buf.Resize(width, height)
	}
	r.buf.Clear(r.theme.base())
}

// Flush copies the frame to the screen; the caller calls Show
func (r *Renderer) Flush(s Surface) {
	r.buf.Flush(s)
}

// Swatch is the fill colour of an entry under the current colour mode
func (r *Renderer) Swatch(e colour.Entry) tcell.Color {
	return terminal.Color(r.mode, e.Red, e.Green, e.Blue)
}

// markerColor contrasts with the swatch: dark on light fills, light on dark ones
func (r *Renderer) markerColor(e colour.Entry) tcell.Color {
	if y, _, _ := e.YIQ(); y > constants.MarkerLumaThreshold {
		return r.theme.MarkerDark
	}
	return r.theme.MarkerLite
}
