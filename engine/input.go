package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palette/input"
	"github.com/lixenwraith/palette/palette"
)

// realButtons are the mouse buttons tracked for press edges; wheel events are impulses
const realButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// HandleEvent applies one terminal event and returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.follow()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	in := a.keys.Lookup(ev, a.state.Detail != nil)

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentEscape:
		a.closeDetail()
	case input.IntentReload:
		a.reload()
	case input.IntentMotion:
		a.motion(in.Motion)
	case input.IntentCopy:
		a.copyCursor()
	case input.IntentOpenDetail:
		a.openDetail(a.state.Cursor)
	case input.IntentSortHex:
		a.resort(palette.SortHex)
	case input.IntentSortHSV:
		a.resort(palette.SortHSV)
	case input.IntentSortToggle:
		a.resort(a.state.Sort.Toggle())
	case input.IntentSelectUp:
		a.selectField(-1)
	case input.IntentSelectDown:
		a.selectField(1)
	case input.IntentCopyField:
		a.copyField(a.state.Detail.Selected)
	}
	return true
}

func (a *App) motion(m input.MotionOp) {
	switch m {
	case input.MotionLeft:
		a.move(0, -1)
	case input.MotionRight:
		a.move(0, 1)
	case input.MotionUp:
		a.move(-1, 0)
	case input.MotionDown:
		a.move(1, 0)
	case input.MotionPageUp:
		a.move(-a.pageRows(), 0)
	case input.MotionPageDown:
		a.move(a.pageRows(), 0)
	case input.MotionFirst:
		a.moveTo(0)
	case input.MotionLast:
		a.moveTo(a.state.Grid.Len() - 1)
	}
}

// selectField moves the detail highlight by delta, clamped to the rows
func (a *App) selectField(delta int) {
	d := a.state.Detail
	n := len(a.detailBox().Fields)
	d.Selected = max(min(d.Selected+delta, n-1), 0)
}

func (a *App) copyField(i int) {
	fields := a.detailBox().Fields
	if i < 0 || i >= len(fields) {
		return
	}
	a.copy(fields[i].Copy)
}

func (a *App) move(dRow, dCol int) {
	a.moveTo(a.state.Grid.Step(a.state.Cursor, dRow, dCol))
}

func (a *App) moveTo(i int) {
	if a.state.Grid.Len() == 0 {
		return
	}
	a.state.Cursor = max(min(i, a.state.Grid.Len()-1), 0)
	a.state.Hover = -1
	a.follow()
}

// pageRows is one screen of grid rows
func (a *App) pageRows() int {
	return max(a.geometry().VisibleRows(), 1)
}

// scroll moves the viewport without moving the cursor
func (a *App) scroll(dRows int) {
	geo := a.geometry()
	maxTop := max(a.state.Grid.Rows()-geo.VisibleRows(), 0)
	a.state.Top = max(min(a.state.Top+dRows, maxTop), 0)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	pressed := btn &^ a.buttons & realButtons
	a.buttons = btn & realButtons

	switch {
	case btn&tcell.WheelUp != 0:
		a.scroll(-1)
		return
	case btn&tcell.WheelDown != 0:
		a.scroll(1)
		return
	}

	if a.state.Detail != nil {
		a.detailMouse(x, y, pressed)
		return
	}

	c, ok := a.state.Grid.Hit(x, y, a.geometry())
	if !ok {
		a.state.Hover = -1
		return
	}
	a.state.Hover = c.Index

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		a.state.Cursor = c.Index
		a.copy(c.Fill())
	case pressed&tcell.ButtonSecondary != 0:
		a.openDetail(c.Index)
	}
}

func (a *App) detailMouse(x, y int, pressed tcell.ButtonMask) {
	if pressed == 0 {
		return
	}
	box := a.detailBox()
	if i, ok := box.FieldAt(x, y); ok {
		if pressed&tcell.ButtonPrimary != 0 {
			a.state.Detail.Selected = i
			a.copyField(i)
		}
		return
	}
	if !box.Contains(x, y) {
		a.closeDetail()
	}
}
