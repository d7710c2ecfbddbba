package engine

import (
	"fmt"

	"github.com/lixenwraith/palette/grid"
	"github.com/lixenwraith/palette/render"
)

const (
	gridHints   = "q quit  s sort  r reload  Enter copy  Space info"
	detailHints = "↑↓ select  Enter copy  Esc close"
)

// Draw composes and shows one frame
func (a *App) Draw() {
	w, h := a.screen.Size()
	a.state.ExpireMessage(a.clock.Now())

	r := a.renderer
	r.Begin(w, h)

	geo := a.geometry()
	r.DrawGrid(a.state.Grid, geo, a.state.Cursor, true)

	if d := a.state.Detail; d != nil {
		r.DrawDetail(d.Entry, render.LayoutDetail(d.Entry, w, h), d.Selected)
	} else if c, ok := a.state.HoverCell(); ok && geo.Visible(c) {
		x, y := geo.Origin(c)
		text := grid.TooltipWithHints(c.Entry)
		r.DrawTooltip(text, render.PlaceTooltip(text, x, y, geo.CellWidth, w, h))
	}

	r.DrawStatus(a.status())
	r.Flush(a.screen)
	a.screen.Show()
}

func (a *App) status() render.Status {
	s := render.Status{
		Left:    gridHints,
		Message: a.state.Message,
		IsError: a.state.IsError,
	}
	if a.state.Detail != nil {
		s.Left = detailHints
	}

	count := fmt.Sprintf("%d colours  %s", a.state.Grid.Len(), a.state.Sort)
	if c, ok := a.state.CursorCell(); ok {
		s.Right = c.Fill() + "  " + count
	} else {
		s.Right = count
	}
	return s
}
