package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palette/colour"
	"github.com/lixenwraith/palette/constants"
	"github.com/lixenwraith/palette/grid"
	"github.com/lixenwraith/palette/terminal"
)

func mustEntry(t *testing.T, r, g, b int, names ...string) colour.Entry {
	t.Helper()
	if len(names) == 0 {
		names = []string{"c"}
	}
	e, err := colour.FromComponents(r, g, b, names...)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func bgAt(b *Buffer, x, y int) tcell.Color {
	_, bg, _ := b.Get(x, y).Style.Decompose()
	return bg
}

func TestBufferBounds(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Set(1, 1, 'x', tcell.StyleDefault)
	b.Set(10, 10, 'y', tcell.StyleDefault)
	b.Set(-1, 0, 'z', tcell.StyleDefault)

	if got := b.Get(1, 1).Rune; got != 'x' {
		t.Errorf("Get(1,1) = %q", got)
	}
	if got := b.Get(10, 10); got != (Cell{}) {
		t.Errorf("out of bounds Get = %+v", got)
	}
	if got := b.Row(1); got != " x" {
		t.Errorf("Row(1) = %q", got)
	}

	b.Resize(2, 2)
	if w, h := b.Size(); w != 2 || h != 2 {
		t.Errorf("Size after resize = %d,%d", w, h)
	}
	if got := b.Row(1); got != "" {
		t.Errorf("Row after resize = %q, want blank", got)
	}
}

func TestBufferFlushClips(t *testing.T) {
	src := NewBuffer(5, 1)
	src.drawText(0, 0, "hello", tcell.StyleDefault, 0)

	dst := NewBuffer(3, 2)
	src.Flush(dst)
	if got := dst.Row(0); got != "hel" {
		t.Errorf("flushed row = %q, want hel", got)
	}
}

func TestDrawGridTrueColor(t *testing.T) {
	entries := []colour.Entry{
		mustEntry(t, 255, 0, 0),
		mustEntry(t, 0, 255, 0),
		mustEntry(t, 0, 0, 255),
	}
	g := grid.Layout(entries, 2)
	geo := grid.Geometry{X: 1, Y: 1, CellWidth: 3, CellHeight: 1}

	r := NewRenderer(terminal.ColorModeTrueColor)
	r.Begin(10, 4)
	r.DrawGrid(g, geo, 0, true)
	buf := r.Buffer()

	tests := []struct {
		name    string
		x, y    int
		r, g, b int32
	}{
		{"Red left edge", 1, 1, 255, 0, 0},
		{"Red right edge", 3, 1, 255, 0, 0},
		{"Green", 4, 1, 0, 255, 0},
		{"Blue next row", 1, 2, 0, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := bgAt(buf, tt.x, tt.y).RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("bg at (%d,%d) = (%d,%d,%d), want (%d,%d,%d)", tt.x, tt.y, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}

	// Cursor marker centred in the first cell, light on the dark red
	cell := buf.Get(2, 1)
	if cell.Rune != constants.CursorRune {
		t.Errorf("marker rune = %q", cell.Rune)
	}
	fg, _, _ := cell.Style.Decompose()
	if fg != DefaultTheme.MarkerLite {
		t.Errorf("marker fg = %v, want light", fg)
	}

	// Gap after the last cell keeps the background
	if bgAt(buf, 4, 2) != DefaultTheme.Bg {
		t.Error("empty grid slot was painted")
	}
}

func TestDrawGrid256(t *testing.T) {
	g := grid.Layout([]colour.Entry{mustEntry(t, 255, 0, 0)}, 1)
	r := NewRenderer(terminal.ColorMode256)
	r.Begin(4, 2)
	r.DrawGrid(g, grid.Geometry{CellWidth: 2, CellHeight: 1}, 0, false)

	if got := bgAt(r.Buffer(), 0, 0); got != tcell.PaletteColor(196) {
		t.Errorf("256 swatch = %v, want palette 196", got)
	}
	if r.Buffer().Get(1, 0).Rune == constants.CursorRune {
		t.Error("marker drawn with showCursor=false")
	}
}

func TestDrawGridScrolled(t *testing.T) {
	var entries []colour.Entry
	for i := 0; i < 6; i++ {
		entries = append(entries, mustEntry(t, i*40, 0, 0))
	}
	g := grid.Layout(entries, 2)
	geo := grid.Geometry{CellWidth: 1, CellHeight: 1, Top: 1, Height: 1}

	r := NewRenderer(terminal.ColorModeTrueColor)
	r.Begin(4, 3)
	r.DrawGrid(g, geo, -1, false)

	// Row 1 holds entries 2 and 3 and is drawn at the top
	if red, _, _ := bgAt(r.Buffer(), 0, 0).RGB(); red != 80 {
		t.Errorf("top-left red = %d, want 80", red)
	}
	if bgAt(r.Buffer(), 0, 1) != DefaultTheme.Bg {
		t.Error("row outside viewport was drawn")
	}
}

func TestMarkerContrast(t *testing.T) {
	r := NewRenderer(terminal.ColorModeTrueColor)
	if got := r.markerColor(mustEntry(t, 255, 255, 255)); got != DefaultTheme.MarkerDark {
		t.Error("white swatch should get a dark marker")
	}
	if got := r.markerColor(mustEntry(t, 0, 0, 128)); got != DefaultTheme.MarkerLite {
		t.Error("navy swatch should get a light marker")
	}
}

func TestPlaceTooltip(t *testing.T) {
	text := "#ff0000:\nred"

	tests := []struct {
		name       string
		ax, ay     int
		wantX      int
		wantY      int
		screenW, h int
	}{
		{"Right of cell", 0, 0, 8 + constants.TooltipOffsetX, 0, 80, 24},
		{"Flips left", 70, 0, 70 - constants.TooltipOffsetX - 10, 0, 80, 24},
		{"Slides above status", 0, 22, 8 + constants.TooltipOffsetX, 24 - constants.StatusBarHeight - 2, 80, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect := PlaceTooltip(text, tt.ax, tt.ay, 8, tt.screenW, tt.h)
			if rect.W != 8+2*constants.TooltipPadding || rect.H != 2 {
				t.Fatalf("size %dx%d", rect.W, rect.H)
			}
			if rect.X != tt.wantX || rect.Y != tt.wantY {
				t.Errorf("at (%d,%d), want (%d,%d)", rect.X, rect.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDrawTooltip(t *testing.T) {
	r := NewRenderer(terminal.ColorModeTrueColor)
	r.Begin(20, 5)
	r.DrawTooltip("#ff0000:\nred", TooltipRect{X: 2, Y: 1, W: 10, H: 2})

	buf := r.Buffer()
	if got := buf.Row(1); got != "   #ff0000:" {
		t.Errorf("row 1 = %q", got)
	}
	if bgAt(buf, 2, 2) != DefaultTheme.TooltipBg {
		t.Error("tooltip padding not filled")
	}
}

func TestLayoutDetail(t *testing.T) {
	e := mustEntry(t, 255, 0, 0, "red", "Red")
	box := LayoutDetail(e, 100, 40)

	if len(box.Fields) != 7 {
		t.Fatalf("expected 7 fields, got %d", len(box.Fields))
	}
	if box.H != 1+constants.DetailSwatchRows+1+7+3 {
		t.Errorf("height %d", box.H)
	}
	if box.X+box.W > 100 || box.Y+box.H > 40 {
		t.Errorf("box %+v overflows screen", box)
	}

	i, ok := box.FieldAt(box.X+3, box.RowsY+2)
	if !ok || i != 2 {
		t.Errorf("FieldAt hex row = %d,%v", i, ok)
	}
	if _, ok := box.FieldAt(box.X, box.RowsY); ok {
		t.Error("border column matched a field")
	}
	if _, ok := box.FieldAt(box.X+3, box.RowsY+7); ok {
		t.Error("row after last field matched")
	}
	if !box.Contains(box.X, box.Y) || box.Contains(box.X+box.W, box.Y) {
		t.Error("Contains disagrees with frame")
	}
}

func TestDrawDetail(t *testing.T) {
	e := mustEntry(t, 255, 0, 0, "red", "Red")
	r := NewRenderer(terminal.ColorModeTrueColor)
	r.Begin(80, 30)
	box := LayoutDetail(e, 80, 30)
	r.DrawDetail(e, box, 2)
	buf := r.Buffer()

	if !strings.Contains(buf.Row(box.Y), "#ff0000 - Info") {
		t.Errorf("title row = %q", buf.Row(box.Y))
	}
	if !strings.Contains(buf.Row(box.RowsY), "Names:  Red") {
		t.Errorf("first name row = %q", buf.Row(box.RowsY))
	}
	if !strings.Contains(buf.Row(box.RowsY+2), "HTML colour:  #ff0000") {
		t.Errorf("hex row = %q", buf.Row(box.RowsY+2))
	}
	if !strings.Contains(buf.Row(box.RowsY+6), "HLS:  H: 0.0000  L: 0.5000  S: 1.0000") {
		t.Errorf("HLS row = %q", buf.Row(box.RowsY+6))
	}

	// Selected row highlight and swatch bar
	if bgAt(buf, box.X+1, box.RowsY+2) != DefaultTheme.SelectedBg {
		t.Error("selected row not highlighted")
	}
	if r, _, _ := bgAt(buf, box.X+1+constants.DetailPaddingX, box.SwatchY).RGB(); r != 255 {
		t.Error("swatch bar missing")
	}
}

func TestDrawStatus(t *testing.T) {
	r := NewRenderer(terminal.ColorModeTrueColor)
	r.Begin(40, 3)
	r.DrawStatus(Status{Left: "q quit", Right: "752 colours"})
	buf := r.Buffer()

	row := buf.Row(2)
	if !strings.HasPrefix(row, " q quit") || !strings.HasSuffix(row, "752 colours") {
		t.Errorf("status row = %q", row)
	}

	r.Begin(40, 3)
	r.DrawStatus(Status{Left: "q quit", Message: "copy failed", IsError: true})
	row = r.Buffer().Row(2)
	if !strings.HasPrefix(row, " copy failed") {
		t.Errorf("message row = %q", row)
	}
	fg, _, _ := r.Buffer().Get(1, 2).Style.Decompose()
	if fg != DefaultTheme.ErrorFg {
		t.Errorf("error message fg = %v", fg)
	}
}
