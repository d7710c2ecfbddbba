// Package grid lays colour entries out row-major with a fixed column count and
// maps screen coordinates back to cells. It holds no drawing code.
package grid

import (
	"strings"

	"github.com/lixenwraith/palette/colour"
)

// Cell is one swatch position
type Cell struct {
	Index    int // position in the ordered input
	Row, Col int
	Entry    colour.Entry
}

// Fill is the background colour of the swatch
func (c Cell) Fill() string {
	return c.Entry.Hex()
}

// Grid is an immutable layout; re-sorting builds a new one
type Grid struct {
	cells   []Cell
	columns int
}

// Layout places entries[i] at row i/columns, column i%columns in input order
func Layout(entries []colour.Entry, columns int) Grid {
	if columns < 1 {
		columns = 1
	}
	cells := make([]Cell, len(entries))
	for i, e := range entries {
		cells[i] = Cell{Index: i, Row: i / columns, Col: i % columns, Entry: e}
	}
	return Grid{cells: cells, columns: columns}
}

func (g Grid) Columns() int { return g.columns }

func (g Grid) Len() int { return len(g.cells) }

// Rows counts rows including a partially filled last one
func (g Grid) Rows() int {
	if g.columns == 0 {
		return 0
	}
	return (len(g.cells) + g.columns - 1) / g.columns
}

// At returns the cell at row, col; the trailing gap of the last row has no cell
func (g Grid) At(row, col int) (Cell, bool) {
	if row < 0 || col < 0 || col >= g.columns {
		return Cell{}, false
	}
	return g.Index(row*g.columns + col)
}

// Index returns the i-th cell in layout order
func (g Grid) Index(i int) (Cell, bool) {
	if i < 0 || i >= len(g.cells) {
		return Cell{}, false
	}
	return g.cells[i], true
}

// Cells returns a copy of all cells in layout order
func (g Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Find returns the cell holding the entry with the given hex key
func (g Grid) Find(hex string) (Cell, bool) {
	for _, c := range g.cells {
		if c.Entry.Hex() == hex {
			return c, true
		}
	}
	return Cell{}, false
}

// Step moves from index i by dRow rows and dCol columns.
// Columns clamp at the row edges, rows clamp at the top and bottom,
// and a move into the gap after the last cell lands on the last cell.
func (g Grid) Step(i, dRow, dCol int) int {
	if len(g.cells) == 0 {
		return 0
	}
	row, col := i/g.columns, i%g.columns
	row = clamp(row+dRow, 0, g.Rows()-1)
	col = clamp(col+dCol, 0, g.columns-1)
	return clamp(row*g.columns+col, 0, len(g.cells)-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Tooltip is the hex value followed by the names, one per line, case-insensitively ordered
func Tooltip(e colour.Entry) string {
	var b strings.Builder
	b.WriteString(e.Hex())
	b.WriteString(":")
	for _, n := range e.Names() {
		b.WriteByte('\n')
		b.WriteString(n)
	}
	return b.String()
}

// TooltipWithHints appends the interaction hints shown under a hovered swatch
func TooltipWithHints(e colour.Entry) string {
	return Tooltip(e) + "\n\nClick to copy #hex\nRight-click for details"
}
