package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palette/constants"
	"github.com/lixenwraith/palette/grid"
)

// DrawGrid paints every visible cell as a flat swatch.
// The cell whose index equals cursor gets a marker when showCursor is set.
func (r *Renderer) DrawGrid(g grid.Grid, geo grid.Geometry, cursor int, showCursor bool) {
	for _, c := range g.Cells() {
		if !geo.Visible(c) {
			continue
		}
		x, y := geo.Origin(c)
		fill := tcell.StyleDefault.Background(r.Swatch(c.Entry))
		r.buf.fillRect(x, y, geo.CellWidth, geo.CellHeight, fill)

		if showCursor && c.Index == cursor {
			mx := x + geo.CellWidth/2
			my := y + geo.CellHeight/2
			r.buf.Set(mx, my, constants.CursorRune, fill.Foreground(r.markerColor(c.Entry)))
		}
	}
}
