package render

// Status is the content of the bottom bar
type Status struct {
	Left    string // key hints
	Right   string // colour count and scroll position
	Message string // transient feedback, replaces Left while set
	IsError bool
}

// DrawStatus paints the bar on the last screen row
func (r *Renderer) DrawStatus(s Status) {
	w, h := r.buf.Size()
	if h == 0 {
		return
	}
	y := h - 1
	base := r.theme.status()
	r.buf.fillRect(0, y, w, 1, base)

	rightW := textWidth(s.Right)
	leftMax := max(w-rightW-2, 0)

	switch {
	case leftMax == 0:
	case s.Message != "" && s.IsError:
		r.buf.drawText(1, y, s.Message, base.Foreground(r.theme.ErrorFg), leftMax)
	case s.Message != "":
		r.buf.drawText(1, y, s.Message, base.Foreground(r.theme.MessageFg), leftMax)
	default:
		r.buf.drawText(1, y, s.Left, base.Foreground(r.theme.HintFg), leftMax)
	}

	if rightW > 0 && rightW < w {
		r.buf.drawText(w-rightW-1, y, s.Right, base, 0)
	}
}
