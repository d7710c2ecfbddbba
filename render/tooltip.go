package render

import (
	"strings"

	"github.com/lixenwraith/palette/constants"
)

// TooltipRect is where a tooltip lands on screen
type TooltipRect struct {
	X, Y, W, H int
}

// PlaceTooltip positions a tooltip beside the anchor cell, flipping to the left side
// when it would overflow and sliding up to stay above the status bar
func PlaceTooltip(text string, anchorX, anchorY, cellW, screenW, screenH int) TooltipRect {
	lines := strings.Split(text, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, textWidth(l))
	}
	w += 2 * constants.TooltipPadding
	h := len(lines)

	x := anchorX + cellW + constants.TooltipOffsetX
	if x+w > screenW {
		x = anchorX - constants.TooltipOffsetX - w
	}
	x = max(x, 0)

	bottom := screenH - constants.StatusBarHeight
	y := anchorY
	if y+h > bottom {
		y = bottom - h
	}
	y = max(y, 0)

	return TooltipRect{X: x, Y: y, W: w, H: h}
}

// DrawTooltip renders text as a flat note at rect
func (r *Renderer) DrawTooltip(text string, rect TooltipRect) {
	style := r.theme.tooltip()
	r.buf.fillRect(rect.X, rect.Y, rect.W, rect.H, style)
	for i, line := range strings.Split(text, "\n") {
		r.buf.drawText(rect.X+constants.TooltipPadding, rect.Y+i, line, style, rect.W-2*constants.TooltipPadding)
	}
}
