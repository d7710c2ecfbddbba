package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palette/colour"
	"github.com/lixenwraith/palette/constants"
	"github.com/lixenwraith/palette/detail"
)

// detailHint is the popup footer
const detailHint = "Enter/click: copy  Esc: close"

// DetailBox is the computed geometry of the detail popup.
// The engine keeps it to hit-test mouse clicks against the rows.
type DetailBox struct {
	X, Y, W, H int
	Title      string
	Fields     []detail.Field
	LabelW     int
	SwatchY    int // first row of the colour bar
	RowsY      int // screen row of Fields[0]
}

// LayoutDetail centres a popup sized for the fields on a screen of the given size
func LayoutDetail(e colour.Entry, screenW, screenH int) DetailBox {
	fields := detail.Fields(e)
	title := detail.Title(e)
	labelW := detail.LabelWidth(fields)

	textW := 0
	for _, f := range fields {
		textW = max(textW, textWidth(f.Text))
	}

	inner := max(
		labelW+constants.DetailLabelGap+textW,
		textWidth(title)+2,
		textWidth(detailHint),
	)
	w := inner + 2*constants.DetailPaddingX + 2

	// border, swatch, blank, fields, blank, hint, border
	h := 1 + constants.DetailSwatchRows + 1 + len(fields) + 1 + 1 + 1

	x := max((screenW-w)/2, 0)
	y := max((screenH-constants.StatusBarHeight-h)/2, 0)

	return DetailBox{
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		Title:   title,
		Fields:  fields,
		LabelW:  labelW,
		SwatchY: y + 1,
		RowsY:   y + 1 + constants.DetailSwatchRows + 1,
	}
}

// Contains reports whether x,y falls inside the popup frame
func (b DetailBox) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// FieldAt maps a screen position to the index of the field on that row
func (b DetailBox) FieldAt(x, y int) (int, bool) {
	if x <= b.X || x >= b.X+b.W-1 {
		return 0, false
	}
	i := y - b.RowsY
	if i < 0 || i >= len(b.Fields) {
		return 0, false
	}
	return i, true
}

// DrawDetail paints the popup; selected is the highlighted field index
func (r *Renderer) DrawDetail(e colour.Entry, box DetailBox, selected int) {
	body := r.theme.popup()
	r.buf.fillRect(box.X, box.Y, box.W, box.H, body)
	r.buf.drawBox(box.X, box.Y, box.W, box.H, box.Title, body.Foreground(r.theme.Border))

	left := box.X + 1 + constants.DetailPaddingX
	inner := box.W - 2 - 2*constants.DetailPaddingX

	swatch := tcell.StyleDefault.Background(r.Swatch(e))
	r.buf.fillRect(left, box.SwatchY, inner, constants.DetailSwatchRows, swatch)

	textX := left + box.LabelW + constants.DetailLabelGap
	for i, f := range box.Fields {
		y := box.RowsY + i
		rowStyle := body
		if i == selected {
			rowStyle = tcell.StyleDefault.Background(r.theme.SelectedBg).Foreground(r.theme.SelectedFg)
			r.buf.fillRect(box.X+1, y, box.W-2, 1, rowStyle)
		}
		// Labels are right-aligned against the text column
		labelX := left + box.LabelW - textWidth(f.Label)
		r.buf.drawText(labelX, y, f.Label, rowStyle.Foreground(r.theme.LabelFg), 0)
		r.buf.drawText(textX, y, f.Text, rowStyle, inner-box.LabelW-constants.DetailLabelGap)
	}

	hintY := box.RowsY + len(box.Fields) + 1
	r.buf.drawText(left, hintY, detailHint, body.Foreground(r.theme.HintFg), inner)
}
