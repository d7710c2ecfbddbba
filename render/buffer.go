package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Surface is the subset of tcell.Screen the compositor writes to
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Cell is one composed screen position
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is an off-screen frame. Draw calls compose into it and Flush copies the
// result to the screen in one pass; tcell diffs against what it last showed.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(tcell.StyleDefault)
}

// Clear fills every cell with a blank in style using exponential copy
func (b *Buffer) Clear(style tcell.Style) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: style}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetContent satisfies Surface. Combining runes are ignored.
func (b *Buffer) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	b.Set(x, y, primary, style)
}

// Get reads one cell; out-of-bounds reads return a zero Cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Row returns the runes of line y as a string, trailing blanks trimmed
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		r := b.cells[y*b.width+x].Rune
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Flush copies the frame to s, clipped to the smaller of both sizes
func (b *Buffer) Flush(s Surface) {
	sw, sh := s.Size()
	w, h := min(sw, b.width), min(sh, b.height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := b.cells[y*b.width+x]
			s.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
