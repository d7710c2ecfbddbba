package render

import "github.com/gdamore/tcell/v2"

// Box drawing characters - single line
const (
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
	boxH  = '─'
	boxV  = '│'
)

// drawText renders text at x,y and returns the number of columns written.
// Stops at maxW columns when maxW > 0.
func (b *Buffer) drawText(x, y int, text string, style tcell.Style, maxW int) int {
	// Not using 'for' index due to multi-byte characters
	col := 0
	for _, r := range text {
		if maxW > 0 && col >= maxW {
			break
		}
		b.Set(x+col, y, r, style)
		col++
	}
	return col
}

// fillRect paints a rectangle with blanks in style
func (b *Buffer) fillRect(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, ' ', style)
		}
	}
}

// drawBox draws a single-line frame with an optional title set into the top edge
func (b *Buffer) drawBox(x, y, w, h int, title string, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}

	b.Set(x, y, boxTL, style)
	b.Set(x+w-1, y, boxTR, style)
	b.Set(x, y+h-1, boxBL, style)
	b.Set(x+w-1, y+h-1, boxBR, style)

	for i := 1; i < w-1; i++ {
		b.Set(x+i, y, boxH, style)
		b.Set(x+i, y+h-1, boxH, style)
	}
	for i := 1; i < h-1; i++ {
		b.Set(x, y+i, boxV, style)
		b.Set(x+w-1, y+i, boxV, style)
	}

	if title != "" && w > 4 {
		b.drawText(x+2, y, " "+title+" ", style, w-4)
	}
}

// textWidth counts runes; every glyph this program draws is single-width
func textWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
