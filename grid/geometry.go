package grid

// Geometry describes where a grid sits on screen
type Geometry struct {
	X, Y       int // top-left corner of the first visible row
	CellWidth  int
	CellHeight int
	Top        int // first visible row (scroll offset)
	Height     int // rows of screen space available, 0 means unbounded
}

// VisibleRows is how many grid rows fit in Height
func (geo Geometry) VisibleRows() int {
	if geo.Height <= 0 || geo.CellHeight <= 0 {
		return 0
	}
	return geo.Height / geo.CellHeight
}

// Origin is the screen position of a cell's top-left corner
func (geo Geometry) Origin(c Cell) (x, y int) {
	return geo.X + c.Col*geo.CellWidth, geo.Y + (c.Row-geo.Top)*geo.CellHeight
}

// Visible reports whether the cell's row is inside the viewport
func (geo Geometry) Visible(c Cell) bool {
	if c.Row < geo.Top {
		return false
	}
	vr := geo.VisibleRows()
	return vr == 0 || c.Row < geo.Top+vr
}

// Hit maps a screen coordinate to the cell drawn there
func (g Grid) Hit(x, y int, geo Geometry) (Cell, bool) {
	if geo.CellWidth <= 0 || geo.CellHeight <= 0 {
		return Cell{}, false
	}
	dx, dy := x-geo.X, y-geo.Y
	if dx < 0 || dy < 0 {
		return Cell{}, false
	}
	if geo.Height > 0 && dy >= geo.VisibleRows()*geo.CellHeight {
		return Cell{}, false
	}
	return g.At(geo.Top+dy/geo.CellHeight, dx/geo.CellWidth)
}

// ScrollTo returns the Top value that keeps row visible, moving as little as possible
func (geo Geometry) ScrollTo(row int) int {
	vr := geo.VisibleRows()
	if vr == 0 {
		return 0
	}
	switch {
	case row < geo.Top:
		return row
	case row >= geo.Top+vr:
		return row - vr + 1
	default:
		return geo.Top
	}
}
