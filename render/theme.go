package render

import "github.com/gdamore/tcell/v2"

// Theme holds every non-swatch colour the interface uses
type Theme struct {
	Bg         tcell.Color // Screen background behind the grid
	Fg         tcell.Color // Default text
	StatusBg   tcell.Color // Bottom bar
	StatusFg   tcell.Color
	HintFg     tcell.Color // Key hints in the status bar and popup footer
	MessageFg  tcell.Color // Transient status messages
	ErrorFg    tcell.Color // Failed reloads and copies
	TooltipBg  tcell.Color // Hover tooltip
	TooltipFg  tcell.Color
	PopupBg    tcell.Color // Detail popup body
	PopupFg    tcell.Color
	Border     tcell.Color // Popup frame and title
	LabelFg    tcell.Color // Detail row labels
	SelectedBg tcell.Color // Selected detail row
	SelectedFg tcell.Color
	MarkerDark tcell.Color // Cursor marker on light swatches
	MarkerLite tcell.Color // Cursor marker on dark swatches
}

// DefaultTheme is a dark scheme; the tooltip keeps the yellow note look
var DefaultTheme = Theme{
	Bg:         tcell.NewRGBColor(20, 20, 30),
	Fg:         tcell.NewRGBColor(200, 200, 200),
	StatusBg:   tcell.NewRGBColor(40, 60, 90),
	StatusFg:   tcell.NewRGBColor(255, 255, 255),
	HintFg:     tcell.NewRGBColor(100, 180, 200),
	MessageFg:  tcell.NewRGBColor(144, 238, 144),
	ErrorFg:    tcell.NewRGBColor(255, 80, 80),
	TooltipBg:  tcell.NewRGBColor(0xff, 0xd9, 0x66),
	TooltipFg:  tcell.NewRGBColor(0x44, 0x44, 0x44),
	PopupBg:    tcell.NewRGBColor(30, 35, 45),
	PopupFg:    tcell.NewRGBColor(200, 200, 200),
	Border:     tcell.NewRGBColor(60, 80, 100),
	LabelFg:    tcell.NewRGBColor(140, 140, 140),
	SelectedBg: tcell.NewRGBColor(50, 50, 70),
	SelectedFg: tcell.NewRGBColor(255, 255, 255),
	MarkerDark: tcell.NewRGBColor(0, 0, 0),
	MarkerLite: tcell.NewRGBColor(255, 255, 255),
}

func (t Theme) base() tcell.Style {
	return tcell.StyleDefault.Background(t.Bg).Foreground(t.Fg)
}

func (t Theme) status() tcell.Style {
	return tcell.StyleDefault.Background(t.StatusBg).Foreground(t.StatusFg)
}

func (t Theme) tooltip() tcell.Style {
	return tcell.StyleDefault.Background(t.TooltipBg).Foreground(t.TooltipFg)
}

func (t Theme) popup() tcell.Style {
	return tcell.StyleDefault.Background(t.PopupBg).Foreground(t.PopupFg)
}
