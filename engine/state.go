package engine

import (
	"time"

	"github.com/lixenwraith/palette/colour"
	"github.com/lixenwraith/palette/grid"
	"github.com/lixenwraith/palette/palette"
)

// DetailState is the open detail popup
type DetailState struct {
	Entry    colour.Entry
	Selected int // highlighted field
}

// State is what the screen shows. Grid is replaced on every re-sort or reload, never edited.
type State struct {
	Table   *palette.Table
	Sort    palette.SortMode
	Grid    grid.Grid
	Columns int

	Cursor int // grid index of the keyboard selection
	Top    int // first visible grid row
	Hover  int // grid index under the pointer, -1 when none

	Detail *DetailState // nil when closed

	Message      string
	IsError      bool
	MessageUntil time.Time
}

// NewState lays out table in the given order
func NewState(table *palette.Table, mode palette.SortMode, columns int) *State {
	s := &State{
		Sort:    mode,
		Columns: max(columns, 1),
		Hover:   -1,
	}
	s.SetTable(table)
	return s
}

// SetTable installs a freshly loaded table; the cursor stays on its colour if that colour survived
func (s *State) SetTable(table *palette.Table) {
	hex, ok := s.cursorHex()
	s.Table = table
	s.Detail = nil
	s.Hover = -1
	s.relayout(hex, ok)
}

// Resort rebuilds the grid in a new order, keeping the cursor on the same colour
func (s *State) Resort(mode palette.SortMode) {
	hex, ok := s.cursorHex()
	s.Sort = mode
	s.Hover = -1
	s.relayout(hex, ok)
}

func (s *State) relayout(hex string, keep bool) {
	s.Grid = grid.Layout(palette.Sort(s.Table.Entries(), s.Sort), s.Columns)
	s.Cursor = 0
	if !keep {
		return
	}
	if c, ok := s.Grid.Find(hex); ok {
		s.Cursor = c.Index
	}
}

func (s *State) cursorHex() (string, bool) {
	c, ok := s.Grid.Index(s.Cursor)
	if !ok {
		return "", false
	}
	return c.Fill(), true
}

// CursorCell is the keyboard-selected cell, false on an empty grid
func (s *State) CursorCell() (grid.Cell, bool) {
	return s.Grid.Index(s.Cursor)
}

// HoverCell is the cell under the pointer
func (s *State) HoverCell() (grid.Cell, bool) {
	if s.Hover < 0 {
		return grid.Cell{}, false
	}
	return s.Grid.Index(s.Hover)
}

// SetMessage shows text in the status bar until the given time
func (s *State) SetMessage(text string, isError bool, until time.Time) {
	s.Message = text
	s.IsError = isError
	s.MessageUntil = until
}

// ExpireMessage clears a message whose time has passed and reports whether it did
func (s *State) ExpireMessage(now time.Time) bool {
	if s.Message == "" || now.Before(s.MessageUntil) {
		return false
	}
	s.Message = ""
	s.IsError = false
	return true
}
